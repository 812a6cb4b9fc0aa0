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

const articleTableName = schemaName + ".articles"

var articleColumns = utils.StructTagValues(types.Article{})

type ArticleRepository struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

func (r *ArticleRepository) Articles(ctx context.Context) ([]*types.Article, error) {
	query, args, err := psql().
		Select(articleColumns...).
		From(articleTableName).
		OrderBy("display_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate articles query: %w", err)
	}

	articles := make([]*types.Article, 0)
	err = pgxscan.Select(ctx, r.pool, &articles, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}

	return articles, nil
}

func (r *ArticleRepository) ArticleBySlug(ctx context.Context, slug string) (*types.Article, error) {
	query, args, err := psql().
		Select(articleColumns...).
		From(articleTableName).
		Where(sq.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate article query: %w", err)
	}

	var article types.Article
	err = pgxscan.Get(ctx, r.pool, &article, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}

	return &article, nil
}

func (r *ArticleRepository) UpsertArticle(ctx context.Context, article *types.Article) error {
	articleMap := utils.StructToMap(article)

	query, args, err := psql().
		Insert(articleTableName).
		SetMap(articleMap).
		Suffix(upsertSuffix(articleMap)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert article query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert article")
}

func (r *ArticleRepository) DeleteArticle(ctx context.Context, id string) error {
	query, args, err := psql().Delete(articleTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete article query for article %s: %w", id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to delete article")
}
