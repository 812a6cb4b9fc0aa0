package store

import (
	"bloodconnect/internal/utils"
	"bloodconnect/pkg/types"
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const driveTableName = schemaName + ".blood_drives"

var driveColumns = utils.StructTagValues(types.BloodDrive{})

type DriveRepository struct {
	pool *pgxpool.Pool
}

func NewDriveRepository(pool *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{pool: pool}
}

func (r *DriveRepository) Drives(ctx context.Context) ([]*types.BloodDrive, error) {
	query, args, err := psql().
		Select(driveColumns...).
		From(driveTableName).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate drives query: %w", err)
	}

	drives := make([]*types.BloodDrive, 0)
	err = pgxscan.Select(ctx, r.pool, &drives, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch drives: %w", err)
	}

	return drives, nil
}

func (r *DriveRepository) UpsertDrive(ctx context.Context, drive *types.BloodDrive) error {
	driveMap := utils.StructToMap(drive)

	query, args, err := psql().
		Insert(driveTableName).
		SetMap(driveMap).
		Suffix(upsertSuffix(driveMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert drive query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert drive")
}

func (r *DriveRepository) DeleteDrive(ctx context.Context, id string) error {
	query, args, err := psql().Delete(driveTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete drive query for drive %s: %w", id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete drive")
}
