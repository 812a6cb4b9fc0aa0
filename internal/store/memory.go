package store

import (
	"bloodconnect/pkg/types"
	"context"
)

// MemoryStore serves a fixed collection loaded at construction. It is
// read-only afterwards and hands out copies, so callers can never mutate
// the directory.
type MemoryStore struct {
	donors   []types.Donor
	drives   []types.BloodDrive
	articles []types.Article
}

func NewMemoryStore(donors []*types.Donor, drives []*types.BloodDrive, articles []*types.Article) *MemoryStore {
	s := &MemoryStore{
		donors:   make([]types.Donor, 0, len(donors)),
		drives:   make([]types.BloodDrive, 0, len(drives)),
		articles: make([]types.Article, 0, len(articles)),
	}

	for _, d := range donors {
		s.donors = append(s.donors, *d)
	}
	for _, d := range drives {
		s.drives = append(s.drives, *d)
	}
	for _, a := range articles {
		s.articles = append(s.articles, *a)
	}

	return s
}

func (s *MemoryStore) Donors(_ context.Context) ([]*types.Donor, error) {
	out := make([]*types.Donor, 0, len(s.donors))
	for _, d := range s.donors {
		d := d
		out = append(out, &d)
	}
	return out, nil
}

func (s *MemoryStore) Donor(_ context.Context, id string) (*types.Donor, error) {
	for _, d := range s.donors {
		if d.ID == id {
			d := d
			return &d, nil
		}
	}
	return nil, types.ErrDonorNotFound
}

func (s *MemoryStore) Drives(_ context.Context) ([]*types.BloodDrive, error) {
	out := make([]*types.BloodDrive, 0, len(s.drives))
	for _, d := range s.drives {
		d := d
		out = append(out, &d)
	}
	return out, nil
}

func (s *MemoryStore) Articles(_ context.Context) ([]*types.Article, error) {
	out := make([]*types.Article, 0, len(s.articles))
	for _, a := range s.articles {
		a := a
		out = append(out, &a)
	}
	return out, nil
}

func (s *MemoryStore) ArticleBySlug(_ context.Context, slug string) (*types.Article, error) {
	for _, a := range s.articles {
		if a.Slug == slug {
			a := a
			return &a, nil
		}
	}
	return nil, types.ErrArticleNotFound
}
