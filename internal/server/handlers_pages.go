package server

import (
	"net/http"
	"strconv"

	"github.com/arignang/portfolio/internal/content"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Page":     "home",
		"Site":     s.site,
		"Tags":     s.site.Tags(),
		"Projects": s.site.QueryProjects(content.ProjectQuery{Page: 1}),
		"JSONLD":   s.jsonLD,
	}
	s.render(w, http.StatusOK, "home", data)
}

func (s *Server) handleProjectsGrid(w http.ResponseWriter, r *http.Request) {
	page := s.site.QueryProjects(projectQuery(r))
	s.renderPartial(w, "projects_grid", map[string]any{
		"Tags":     s.site.Tags(),
		"Projects": page,
	})
}

func (s *Server) handleProjectDetail(w http.ResponseWriter, r *http.Request) {
	project, ok := s.site.Project(r.PathValue("slug"))
	if !ok {
		s.render(w, http.StatusNotFound, "not_found", map[string]any{"Page": "not_found"})
		return
	}

	s.render(w, http.StatusOK, "project", map[string]any{
		"Page":    "project",
		"Project": project,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, map[string]string{"status": "ok"})
}

// projectQuery reads the search box, tag chip and page from the query string.
// A page that is not a number is treated as page 1.
func projectQuery(r *http.Request) content.ProjectQuery {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}
	return content.ProjectQuery{
		Search: q.Get("q"),
		Tag:    q.Get("tag"),
		Page:   page,
	}
}
