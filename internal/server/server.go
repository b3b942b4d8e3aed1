package server

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	portfolio "github.com/arignang/portfolio"
	"github.com/arignang/portfolio/internal/config"
	"github.com/arignang/portfolio/internal/content"
	"github.com/arignang/portfolio/internal/ideas"
	"github.com/arignang/portfolio/internal/mailer"
)

// IdeaRequester runs one research idea request.
type IdeaRequester interface {
	Request(ctx context.Context, topic string) ([]ideas.Idea, error)
}

type Server struct {
	cfg       config.Config
	site      *content.Site
	ideas     IdeaRequester
	mail      mailer.Mailer
	themeCSS  template.CSS
	jsonLD    template.JS
	version   string
	buildTime string
	pages     map[string]*template.Template
	partials  *template.Template
	httpSrv   *http.Server
}

func New(cfg config.Config, site *content.Site, gen IdeaRequester, mail mailer.Mailer, themes []config.Theme, version, buildTime string) *Server {
	return &Server{
		cfg:       cfg,
		site:      site,
		ideas:     gen,
		mail:      mail,
		themeCSS:  template.CSS(config.ThemeStylesheet(themes)),
		version:   version,
		buildTime: buildTime,
	}
}

// Handler loads templates and returns the fully wrapped router.
func (s *Server) Handler() (http.Handler, error) {
	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	ld, err := s.site.PublicationsJSONLD()
	if err != nil {
		return nil, fmt.Errorf("render publications json-ld: %w", err)
	}
	s.jsonLD = template.JS(ld)

	mux := http.NewServeMux()
	s.routes(mux)

	return recoveryMiddleware(loggingMiddleware(securityHeaders(mux))), nil
}

// Start builds the handler and serves until Shutdown is called.
func (s *Server) Start() error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	addr := s.cfg.Server.Addr()
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	slog.Info("Starting server", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) routes(mux *http.ServeMux) {
	staticFS, _ := fs.Sub(portfolio.StaticFS, "web/static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /projects", s.handleProjectsGrid)
	mux.HandleFunc("GET /projects/{slug}", s.handleProjectDetail)
	mux.HandleFunc("POST /ideas", s.handleIdeas)
	mux.HandleFunc("POST /contact", s.handleContact)

	mux.HandleFunc("GET /api/v1/projects", s.handleAPIProjects)
	mux.HandleFunc("POST /api/v1/ideas", s.handleAPIIdeas)
	mux.HandleFunc("GET /healthz", s.handleHealth)
}

func (s *Server) loadTemplates() error {
	funcMap := template.FuncMap{
		"join": strings.Join,
		"add":  func(a, b int) int { return a + b },
		"sub":  func(a, b int) int { return a - b },
		"initials": func(name string) string {
			var out []rune
			for _, f := range strings.Fields(name) {
				out = append(out, []rune(f)[0])
				if len(out) == 2 {
					break
				}
			}
			return strings.ToUpper(string(out))
		},
		"external": func(u string) bool {
			return strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://")
		},
	}

	s.pages = make(map[string]*template.Template)

	pageNames := []string{"home", "project", "not_found"}
	for _, page := range pageNames {
		t, err := template.New("base.html").Funcs(funcMap).ParseFS(portfolio.TemplateFS,
			"web/templates/layouts/base.html",
			"web/templates/partials/*.html",
			"web/templates/pages/"+page+".html",
		)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", page, err)
		}
		s.pages[page] = t
	}

	// Parse partials standalone for HTMX responses
	partials, err := template.New("partials").Funcs(funcMap).ParseFS(portfolio.TemplateFS,
		"web/templates/partials/*.html",
	)
	if err != nil {
		return fmt.Errorf("parse partials: %w", err)
	}
	s.partials = partials

	return nil
}

// render executes a full page template.
func (s *Server) render(w http.ResponseWriter, status int, page string, data map[string]any) {
	tmpl, ok := s.pages[page]
	if !ok {
		http.Error(w, "Template not found", 500)
		return
	}

	data["Profile"] = s.site.Profile
	data["ThemeCSS"] = s.themeCSS
	data["Version"] = s.version
	data["BuildTime"] = s.buildTime

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		slog.Error("Template execution error", "page", page, "error", err)
	}
}

// renderPartial executes a named partial template for HTMX responses.
func (s *Server) renderPartial(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.partials.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Partial execution error", "name", name, "error", err)
		http.Error(w, "Template error", 500)
	}
}
