// Package directory answers read-only donor queries against an injected
// donor source.
package directory

import (
	"context"
	"fmt"
	"strings"

	"bloodconnect/pkg/types"
)

type DonorSource interface {
	Donors(ctx context.Context) ([]*types.Donor, error)
	Donor(ctx context.Context, id string) (*types.Donor, error)
}

// Searcher is implemented by sources that can evaluate the filter
// themselves, e.g. in SQL. Results must follow the same rules as Matches.
type Searcher interface {
	SearchDonors(ctx context.Context, filters types.SearchFilters) ([]*types.Donor, error)
}

type Service struct {
	source DonorSource
}

func New(source DonorSource) *Service {
	return &Service{source: source}
}

// Search returns every donor matching both filters, in directory order.
// An empty result is not an error.
func (s *Service) Search(ctx context.Context, filters types.SearchFilters) ([]*types.Donor, error) {
	filters = filters.Normalize()

	if filters.BloodType != "" && !filters.BloodType.Valid() {
		verr := types.NewValidationError()
		verr.Add("bloodType", "Please select a valid blood type.")
		return nil, verr
	}

	if searcher, ok := s.source.(Searcher); ok {
		donors, err := searcher.SearchDonors(ctx, filters)
		if err != nil {
			return nil, fmt.Errorf("search donors: %w", err)
		}
		if donors == nil {
			donors = make([]*types.Donor, 0)
		}
		return donors, nil
	}

	all, err := s.source.Donors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}

	out := make([]*types.Donor, 0, len(all))
	for _, d := range all {
		if Matches(d, filters) {
			out = append(out, d)
		}
	}

	return out, nil
}

func (s *Service) Donor(ctx context.Context, id string) (*types.Donor, error) {
	return s.source.Donor(ctx, id)
}

// Matches reports whether donor satisfies filters: exact blood type and
// case-insensitive location substring, each skipped when empty.
func Matches(donor *types.Donor, filters types.SearchFilters) bool {
	if filters.BloodType != "" && donor.BloodType != filters.BloodType {
		return false
	}

	location := strings.TrimSpace(filters.Location)
	if location != "" && !strings.Contains(strings.ToLower(donor.Location), strings.ToLower(location)) {
		return false
	}

	return true
}
