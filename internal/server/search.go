package server

import (
	"errors"
	"net/http"

	"bloodconnect/pkg/types"
)

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filters types.SearchFilters
	if err := decoder.Decode(&filters, query); err != nil {
		s.logger.WithError(err).Debug("failed to decode search query")
	}
	filters = filters.Normalize()

	data := &types.SearchPageData{
		BasePageData: types.BasePageData{Title: "Find a Blood Donor"},
		BloodTypes:   types.BloodTypes(),
		Filters:      filters,
		HasSearched:  query.Get("searched") == "1" || !filters.IsEmpty(),
	}

	status := http.StatusOK
	if data.HasSearched {
		donors, err := s.directory.Search(r.Context(), filters)

		var verr *types.ValidationError
		switch {
		case errors.As(err, &verr):
			data.FieldErrors = verr.Fields
			status = http.StatusBadRequest
		case err != nil:
			s.logger.WithError(err).Error("donor search failed")
			s.internalServerError(w)
			return
		default:
			data.Results = make([]types.PublicDonor, 0, len(donors))
			for _, d := range donors {
				data.Results = append(data.Results, d.Public())
			}
		}
	}

	if err := s.renderTemplateStatus(w, r, status, "page.search", data); err != nil {
		s.logger.WithError(err).Error("failed to render search page")
		s.internalServerError(w)
		return
	}
}
