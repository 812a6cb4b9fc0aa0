package directory

import (
	"context"
	"errors"
	"testing"

	"bloodconnect/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listSource implements DonorSource over a plain slice.
type listSource struct {
	donors []*types.Donor
	err    error
}

func (s *listSource) Donors(_ context.Context) ([]*types.Donor, error) {
	return s.donors, s.err
}

func (s *listSource) Donor(_ context.Context, id string) (*types.Donor, error) {
	for _, d := range s.donors {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, types.ErrDonorNotFound
}

// searchingSource also implements Searcher and records the filters it saw.
type searchingSource struct {
	listSource
	seen   *types.SearchFilters
	result []*types.Donor
}

func (s *searchingSource) SearchDonors(_ context.Context, filters types.SearchFilters) ([]*types.Donor, error) {
	s.seen = &filters
	return s.result, nil
}

func directory() []*types.Donor {
	return []*types.Donor{
		{ID: "1", Name: "Jane Doe", BloodType: types.BloodTypeAPos, Location: "Springfield, IL"},
		{ID: "2", Name: "John Smith", BloodType: types.BloodTypeONeg, Location: "Shelbyville, IL"},
		{ID: "3", Name: "Alice Brown", BloodType: types.BloodTypeBPos, Location: "Capital City, IL"},
		{ID: "4", Name: "Bob Green", BloodType: types.BloodTypeABPos, Location: "Springfield, IL"},
	}
}

func ids(donors []*types.Donor) []string {
	out := make([]string, 0, len(donors))
	for _, d := range donors {
		out = append(out, d.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	svc := New(&listSource{donors: directory()})

	tests := []struct {
		name    string
		filters types.SearchFilters
		want    []string
	}{
		{"blood type and location", types.SearchFilters{BloodType: types.BloodTypeAPos, Location: "springfield"}, []string{"1"}},
		{"location only keeps order", types.SearchFilters{Location: "Springfield"}, []string{"1", "4"}},
		{"no match", types.SearchFilters{BloodType: types.BloodTypeONeg, Location: "Capital"}, []string{}},
		{"empty filters return all", types.SearchFilters{}, []string{"1", "2", "3", "4"}},
		{"whitespace location is no filter", types.SearchFilters{Location: "   "}, []string{"1", "2", "3", "4"}},
		{"location is trimmed", types.SearchFilters{Location: "  shelby "}, []string{"2"}},
		{"substring match", types.SearchFilters{Location: ", il"}, []string{"1", "2", "3", "4"}},
		{"blood type only", types.SearchFilters{BloodType: types.BloodTypeBPos}, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tt.filters)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_Idempotent(t *testing.T) {
	svc := New(&listSource{donors: directory()})
	filters := types.SearchFilters{Location: "springfield"}

	first, err := svc.Search(context.Background(), filters)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), filters)
	require.NoError(t, err)

	assert.Equal(t, ids(first), ids(second))
}

func TestSearch_BloodTypeIsCaseSensitive(t *testing.T) {
	svc := New(&listSource{donors: directory()})

	_, err := svc.Search(context.Background(), types.SearchFilters{BloodType: "a+"})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "bloodType")
}

func TestSearch_SourceError(t *testing.T) {
	svc := New(&listSource{err: errors.New("db down")})

	_, err := svc.Search(context.Background(), types.SearchFilters{})
	assert.ErrorContains(t, err, "db down")
}

func TestSearch_UsesSearcher(t *testing.T) {
	src := &searchingSource{}
	svc := New(src)

	got, err := svc.Search(context.Background(), types.SearchFilters{BloodType: " O- ", Location: " north "})
	require.NoError(t, err)

	require.NotNil(t, src.seen)
	assert.Equal(t, types.BloodTypeONeg, src.seen.BloodType)
	assert.Equal(t, "north", src.seen.Location)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDonor(t *testing.T) {
	svc := New(&listSource{donors: directory()})

	d, err := svc.Donor(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Alice Brown", d.Name)

	_, err = svc.Donor(context.Background(), "99")
	assert.ErrorIs(t, err, types.ErrDonorNotFound)
}

func TestMatches(t *testing.T) {
	d := &types.Donor{BloodType: types.BloodTypeABNeg, Location: "Northwood"}

	assert.True(t, Matches(d, types.SearchFilters{}))
	assert.True(t, Matches(d, types.SearchFilters{Location: "WOOD"}))
	assert.False(t, Matches(d, types.SearchFilters{BloodType: types.BloodTypeABPos}))
	assert.False(t, Matches(d, types.SearchFilters{Location: "south"}))
}
