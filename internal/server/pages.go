package server

import (
	"errors"
	"net/http"

	"bloodconnect/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := &types.HomePageData{
		BasePageData: types.BasePageData{Title: "Connect. Donate. Save Lives."},
		Stats:        getStats(),
		Steps:        getSteps(),
	}

	drives, err := s.content.Drives(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load drives for home page")
	} else if len(drives) > 0 {
		data.UpcomingDrive = drives[0]
	}

	articles, err := s.content.Articles(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load articles for home page")
	} else {
		if len(articles) > 3 {
			articles = articles[:3]
		}
		data.Articles = articles
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) handleDrives(w http.ResponseWriter, r *http.Request) {
	drives, err := s.content.Drives(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list blood drives")
		s.internalServerError(w)
		return
	}

	data := &types.DrivesPageData{
		BasePageData: types.BasePageData{Title: "Upcoming Blood Drives"},
		Drives:       drives,
	}

	if err := s.renderTemplate(w, r, "page.drives", data); err != nil {
		s.logger.WithError(err).Error("failed to render drives page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleBlog(w http.ResponseWriter, r *http.Request) {
	articles, err := s.content.Articles(r.Context())
	if err != nil {
		s.logger.WithError(err).Error("failed to list articles")
		s.internalServerError(w)
		return
	}

	data := &types.BlogPageData{
		BasePageData: types.BasePageData{Title: "BloodConnect Blog"},
		Articles:     articles,
	}

	if err := s.renderTemplate(w, r, "page.blog", data); err != nil {
		s.logger.WithError(err).Error("failed to render blog page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleArticle(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	article, err := s.content.ArticleBySlug(r.Context(), slug)
	if errors.Is(err, types.ErrArticleNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		s.logger.WithError(err).WithField("slug", slug).Error("failed to load article")
		s.internalServerError(w)
		return
	}

	data := &types.ArticlePageData{
		BasePageData: types.BasePageData{Title: article.Title + " | BloodConnect Blog"},
		Article:      article,
	}

	if err := s.renderTemplate(w, r, "page.article", data); err != nil {
		s.logger.WithError(err).Error("failed to render article page")
		s.internalServerError(w)
		return
	}
}

func getStats() []types.StatData {
	return []types.StatData{
		{Value: "3", Label: "Lives a single donation can save"},
		{Value: "8", Label: "Blood types we match"},
		{Value: "56", Label: "Days between whole blood donations"},
	}
}

func getSteps() []types.StepData {
	return []types.StepData{
		{
			Number:      1,
			Title:       "Find a donor",
			Description: "Search the directory by blood type and location.",
		},
		{
			Number:      2,
			Title:       "Request contact",
			Description: "A BloodConnect coordinator connects you with the donor.",
		},
		{
			Number:      3,
			Title:       "Keep donors coming back",
			Description: "Generate personalised email and SMS reminders when donors are eligible again.",
		},
	}
}
