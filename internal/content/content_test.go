package content

import (
	"context"
	"testing"

	"bloodconnect/internal/seed"
	"bloodconnect/internal/store"
	"bloodconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	mem := store.NewMemoryStore(nil, seed.Drives(), seed.Articles())
	svc := New(mem, mem)

	drives, err := svc.Drives(context.Background())
	require.NoError(t, err)
	assert.Len(t, drives, len(seed.Drives()))

	articles, err := svc.Articles(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, articles)

	a, err := svc.ArticleBySlug(context.Background(), articles[0].Slug)
	require.NoError(t, err)
	assert.Equal(t, articles[0].ID, a.ID)

	_, err = svc.ArticleBySlug(context.Background(), "")
	assert.ErrorIs(t, err, types.ErrArticleNotFound)

	_, err = svc.ArticleBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, types.ErrArticleNotFound)
}
