package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bloodconnect/internal/content"
	"bloodconnect/internal/directory"
	"bloodconnect/internal/notify"
	"bloodconnect/internal/reminder"
	"bloodconnect/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template
	cookie    *securecookie.SecureCookie
	tickets   *securecookie.SecureCookie

	directory *directory.Service
	content   *content.Service
	generator *reminder.Generator
	notifier  *notify.Notifier

	handler http.Handler
	server  *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	directory *directory.Service,
	content *content.Service,
	generator *reminder.Generator,
	notifier *notify.Notifier,
) (*Service, error) {
	mux := flow.New()

	cookie, tickets, err := newSecureCookies(config, logger)
	if err != nil {
		return nil, err
	}

	s := &Service{
		logger:  logger,
		config:  config,
		cookie:  cookie,
		tickets: tickets,

		directory: directory,
		content:   content,
		generator: generator,
		notifier:  notifier,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates
	s.handler = s.StripTrailingSlash(mux)
	s.server.Handler = s.handler

	if err := s.buildRouter(mux); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the full middleware chain, mainly for httptest.
func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) buildRouter(r *flow.Mux) error {
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/search", s.handleSearch, http.MethodGet)
	r.HandleFunc("/donors/:id/contact", s.handlePostContact, http.MethodPost)

	r.HandleFunc("/drives", s.handleDrives, http.MethodGet)
	r.HandleFunc("/blog", s.handleBlog, http.MethodGet)
	r.HandleFunc("/blog/:slug", s.handleArticle, http.MethodGet)

	r.HandleFunc("/reminders", s.handleGetReminders, http.MethodGet)
	r.HandleFunc("/reminders", s.handlePostReminders, http.MethodPost)
	r.HandleFunc("/reminders/send", s.handlePostSendReminder, http.MethodPost)

	r.HandleFunc("/api/donors", s.handleAPISearchDonors, http.MethodGet)
	r.HandleFunc("/api/reminders", s.handleAPIGenerateReminder, http.MethodPost)

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		return fmt.Errorf("failed to mount static assets: %w", err)
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)

	return nil
}

// newSecureCookies decodes the configured keys and returns the flash cookie
// codec and the reminder ticket codec. Outside production a missing hash key
// is replaced with a random one, which invalidates both on restart.
func newSecureCookies(config *types.Config, logger *logrus.Logger) (*securecookie.SecureCookie, *securecookie.SecureCookie, error) {
	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("decode COOKIE_HASH_KEY: %w", err)
	}

	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("decode COOKIE_BLOCK_KEY: %w", err)
	}

	if len(hashKey) == 0 {
		if config.IsProduction() {
			return nil, nil, fmt.Errorf("set COOKIE_HASH_KEY")
		}
		logger.Warn("COOKIE_HASH_KEY not set, generating an ephemeral key")
		hashKey = securecookie.GenerateRandomKey(32)
	}

	if len(blockKey) == 0 {
		blockKey = nil
	}

	// Tickets carry the whole generated copy, so the 4096 byte cap is lifted.
	tickets := securecookie.New(hashKey, blockKey).
		MaxAge(int(reminderTicketTTL.Seconds())).
		MaxLength(0)

	return securecookie.New(hashKey, blockKey), tickets, nil
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil {
				return defaultVal
			}
			return *s
		},
		"fieldError": func(errs map[string]string, field string) string {
			return errs[field]
		},
		"selected": func(a, b types.BloodType) bool {
			return a == b
		},
		"searchURL": func(f types.SearchFilters) string {
			v := url.Values{}
			v.Set("searched", "1")
			if f.BloodType != "" {
				v.Set("bloodType", string(f.BloodType))
			}
			if f.Location != "" {
				v.Set("location", f.Location)
			}
			return "/search?" + v.Encode()
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
