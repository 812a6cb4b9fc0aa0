package content

import (
	"context"
	"fmt"

	"bloodconnect/pkg/types"
)

type DriveSource interface {
	Drives(ctx context.Context) ([]*types.BloodDrive, error)
}

type ArticleSource interface {
	Articles(ctx context.Context) ([]*types.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*types.Article, error)
}

// Service serves the static blood drive schedule and blog articles.
type Service struct {
	drives   DriveSource
	articles ArticleSource
}

func New(drives DriveSource, articles ArticleSource) *Service {
	return &Service{drives: drives, articles: articles}
}

func (s *Service) Drives(ctx context.Context) ([]*types.BloodDrive, error) {
	drives, err := s.drives.Drives(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blood drives: %w", err)
	}
	return drives, nil
}

func (s *Service) Articles(ctx context.Context) ([]*types.Article, error) {
	articles, err := s.articles.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// ArticleBySlug returns types.ErrArticleNotFound when no article has slug.
func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*types.Article, error) {
	if slug == "" {
		return nil, types.ErrArticleNotFound
	}
	return s.articles.ArticleBySlug(ctx, slug)
}
