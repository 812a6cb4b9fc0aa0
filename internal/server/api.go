package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloodconnect/pkg/types"
)

const (
	errCodeBadRequest      = "bad_request"
	errCodeValidation      = "validation_failed"
	errCodeGenerationError = "generation_failed"
	errCodeInternalError   = "internal_error"
)

type apiError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// apiResponse is the envelope for every JSON response. Exactly one of Data
// and Error is set.
type apiResponse struct {
	Data  any       `json:"data"`
	Error *apiError `json:"error"`
}

func writeJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(apiResponse{Data: data})
}

func writeJSONError(w http.ResponseWriter, statusCode int, apiErr *apiError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(apiResponse{Error: apiErr})
}

func (s *Service) handleAPISearchDonors(w http.ResponseWriter, r *http.Request) {
	var filters types.SearchFilters
	if err := decoder.Decode(&filters, r.URL.Query()); err != nil {
		writeJSONError(w, http.StatusBadRequest, &apiError{Code: errCodeBadRequest, Message: "invalid query"})
		return
	}

	donors, err := s.directory.Search(r.Context(), filters)

	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSONError(w, http.StatusBadRequest, &apiError{Code: errCodeValidation, Message: "invalid search filters", Fields: verr.Fields})
		return
	case err != nil:
		s.logger.WithError(err).Error("donor search failed")
		writeJSONError(w, http.StatusInternalServerError, &apiError{Code: errCodeInternalError, Message: "search failed"})
		return
	}

	results := make([]types.PublicDonor, 0, len(donors))
	for _, d := range donors {
		results = append(results, d.Public())
	}

	writeJSONSuccess(w, http.StatusOK, results)
}

func (s *Service) handleAPIGenerateReminder(w http.ResponseWriter, r *http.Request) {
	req := new(types.ReminderRequest)

	body := http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(body).Decode(req); err != nil {
		writeJSONError(w, http.StatusBadRequest, &apiError{Code: errCodeBadRequest, Message: "invalid JSON body"})
		return
	}
	s.prepareReminderRequest(req)

	result, err := s.generator.Generate(r.Context(), req)

	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSONError(w, http.StatusBadRequest, &apiError{Code: errCodeValidation, Message: "invalid reminder request", Fields: verr.Fields})
		return
	case err != nil:
		s.logger.WithError(err).Error("reminder generation failed")
		writeJSONError(w, http.StatusBadGateway, &apiError{Code: errCodeGenerationError, Message: generationFailedMessage})
		return
	}

	writeJSONSuccess(w, http.StatusOK, result)
}
