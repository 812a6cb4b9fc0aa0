package server

import "net/http"

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	s.setFlash(w, flash{Notice: notice})
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (s *Service) redirectWithError(w http.ResponseWriter, r *http.Request, path, msg string) {
	s.setFlash(w, flash{Error: msg})
	http.Redirect(w, r, path, http.StatusSeeOther)
}
