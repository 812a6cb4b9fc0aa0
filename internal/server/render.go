package server

import (
	"bytes"
	"net/http"
	"strings"

	"bloodconnect/pkg/types"
)

var navItems = []types.NavItem{
	{Label: "Find Donors", Href: "/search"},
	{Label: "Blood Drives", Href: "/drives"},
	{Label: "Blog", Href: "/blog"},
	{Label: "Reminders", Href: "/reminders"},
}

func navbarFor(path string) types.NavbarData {
	items := make([]types.NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = path == item.Href || strings.HasPrefix(path, item.Href+"/")
		items[i] = item
	}
	return types.NavbarData{Items: items}
}

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	return s.renderTemplateStatus(w, r, http.StatusOK, templateName, data)
}

// renderTemplateStatus renders into a buffer first so a template error can
// still produce a clean 500.
func (s *Service) renderTemplateStatus(w http.ResponseWriter, r *http.Request, status int, templateName string, data any) error {
	if setter, ok := data.(types.NavbarDataSetter); ok {
		setter.SetNavbarData(navbarFor(r.URL.Path))
	}

	if setter, ok := data.(types.FlashSetter); ok {
		f := s.popFlash(w, r)
		setter.SetFlash(f.Notice, f.Error)
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
