package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bloodconnect/pkg/types"
)

func (s *Service) handlePostContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	donorID := strings.TrimSpace(r.PathValue("id"))

	back := "/search"
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, back, "Invalid form payload.")
		return
	}

	// Return the visitor to the results they were looking at.
	if ref := r.PostForm.Get("returnTo"); strings.HasPrefix(ref, "/search") {
		if u, err := url.Parse(ref); err == nil && u.Host == "" {
			back = u.String()
		}
	}

	donor, err := s.directory.Donor(ctx, donorID)
	if errors.Is(err, types.ErrDonorNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("donor_id", donorID).Error("failed to load donor")
		s.internalServerError(w)
		return
	}

	req := new(types.ContactRequest)
	if err := decoder.Decode(req, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode contact form")
		s.redirectWithError(w, r, back, "Invalid form payload.")
		return
	}

	if _, err := s.notifier.RequestContact(ctx, donor, req); err != nil {
		s.logger.WithError(err).WithField("donor_id", donorID).Error("failed to send contact request")
		s.redirectWithError(w, r, back, "We could not reach a coordinator. Please try again.")
		return
	}

	s.redirectWithNotice(w, r, back, fmt.Sprintf(
		"A BloodConnect coordinator has been notified to help connect you with a donor of type %s in %s.",
		donor.BloodType, donor.Location,
	))
}
