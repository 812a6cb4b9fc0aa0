package store

import (
	"bloodconnect/internal/utils"
	"bloodconnect/pkg/types"
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donorTableName = schemaName + ".donors"

var donorColumns = utils.StructTagValues(types.Donor{})

type DonorRepository struct {
	pool *pgxpool.Pool
}

func NewDonorRepository(pool *pgxpool.Pool) *DonorRepository {
	return &DonorRepository{pool: pool}
}

func (r *DonorRepository) Donors(ctx context.Context) ([]*types.Donor, error) {
	query, args, err := psql().
		Select(donorColumns...).
		From(donorTableName).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donors query: %w", err)
	}

	donors := make([]*types.Donor, 0)
	err = pgxscan.Select(ctx, r.pool, &donors, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donors: %w", err)
	}

	return donors, nil
}

func (r *DonorRepository) Donor(ctx context.Context, id string) (*types.Donor, error) {
	query, args, err := psql().
		Select(donorColumns...).
		From(donorTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate donor query: %w", err)
	}

	var donor = new(types.Donor)
	err = pgxscan.Get(ctx, r.pool, donor, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, fmt.Errorf("failed to fetch donor: %w", err)
	}

	if err != nil {
		return nil, types.ErrDonorNotFound
	}

	return donor, nil
}

// SearchDonors evaluates the directory filter in SQL. strpos is used
// instead of ILIKE so user input is never treated as a pattern.
func (r *DonorRepository) SearchDonors(ctx context.Context, filters types.SearchFilters) ([]*types.Donor, error) {
	query, args, err := donorSearchQuery(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to generate donor search query: %w", err)
	}

	donors := make([]*types.Donor, 0)
	err = pgxscan.Select(ctx, r.pool, &donors, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search donors: %w", err)
	}

	return donors, nil
}

func donorSearchQuery(filters types.SearchFilters) (string, []any, error) {
	builder := psql().
		Select(donorColumns...).
		From(donorTableName)

	if filters.BloodType != "" {
		builder = builder.Where(sq.Eq{"blood_type": string(filters.BloodType)})
	}

	if location := strings.TrimSpace(filters.Location); location != "" {
		builder = builder.Where(sq.Expr("strpos(lower(location), lower(?)) > 0", location))
	}

	return builder.OrderBy("display_order ASC", "id ASC").ToSql()
}

func (r *DonorRepository) UpsertDonor(ctx context.Context, donor *types.Donor) error {
	if !donor.BloodType.Valid() {
		return fmt.Errorf("donor %s: %w", donor.ID, types.ErrInvalidBloodType)
	}

	donorMap := utils.StructToMap(donor)
	donorMap["blood_type"] = string(donor.BloodType)

	query, args, err := psql().
		Insert(donorTableName).
		SetMap(donorMap).
		Suffix(upsertSuffix(donorMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert donor query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert donor")
}

func (r *DonorRepository) DeleteDonor(ctx context.Context, id string) error {
	query, args, err := psql().Delete(donorTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete donor query for donor %s: %w", id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete donor")
}
