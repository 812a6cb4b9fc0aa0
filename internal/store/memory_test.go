package store

import (
	"context"
	"testing"

	"bloodconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	src := []*types.Donor{{ID: "1", Name: "Jane Doe", BloodType: types.BloodTypeAPos}}
	s := NewMemoryStore(src, nil, nil)

	src[0].Name = "changed"

	donors, err := s.Donors(context.Background())
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, "Jane Doe", donors[0].Name)

	donors[0].Name = "mutated"
	again, err := s.Donor(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", again.Name)
}

func TestMemoryStore_NotFound(t *testing.T) {
	s := NewMemoryStore(nil, nil, []*types.Article{{ID: "a1", Slug: "hello"}})

	_, err := s.Donor(context.Background(), "x")
	assert.ErrorIs(t, err, types.ErrDonorNotFound)

	_, err = s.ArticleBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrArticleNotFound)

	a, err := s.ArticleBySlug(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)
}

func TestMemoryStore_Empty(t *testing.T) {
	s := NewMemoryStore(nil, nil, nil)

	donors, err := s.Donors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, donors)
	assert.Empty(t, donors)

	drives, err := s.Drives(context.Background())
	require.NoError(t, err)
	assert.Empty(t, drives)
}
