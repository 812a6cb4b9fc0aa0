package server

import (
	"net/http"
	"time"
)

const flashCookieName = "bloodconnect_flash"

type flash struct {
	Notice string
	Error  string
}

func (s *Service) setFlash(w http.ResponseWriter, f flash) {
	encoded, err := s.cookie.Encode(flashCookieName, f)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode flash cookie")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		HttpOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int((5 * time.Minute).Seconds()),
	})
}

// popFlash reads and clears the flash cookie. A missing or tampered cookie
// yields an empty flash.
func (s *Service) popFlash(w http.ResponseWriter, r *http.Request) flash {
	var f flash

	c, err := r.Cookie(flashCookieName)
	if err != nil {
		return f
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})

	if err := s.cookie.Decode(flashCookieName, c.Value, &f); err != nil {
		s.logger.WithError(err).Debug("discarding undecodable flash cookie")
		return flash{}
	}

	return f
}
