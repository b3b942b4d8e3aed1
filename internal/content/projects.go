package content

import "strings"

// ProjectsPerPage is the size of one page of the project grid.
const ProjectsPerPage = 6

// AllTag selects every project.
const AllTag = "All"

// ProjectQuery is the visitor's current search box, tag chip and page.
type ProjectQuery struct {
	Search string
	Tag    string
	Page   int
}

// ProjectPage is one page of the filtered project grid.
type ProjectPage struct {
	Projects   []Project `json:"projects"`
	Search     string    `json:"search"`
	Tag        string    `json:"tag"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	Total      int       `json:"total"`
}

// HasPrev reports whether a previous page exists.
func (p ProjectPage) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p ProjectPage) HasNext() bool { return p.Page < p.TotalPages }

// Pages lists page numbers 1..TotalPages for the pager.
func (p ProjectPage) Pages() []int {
	pages := make([]int, p.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Tags returns "All" followed by every project tag in first-seen order.
func (s *Site) Tags() []string {
	tags := []string{AllTag}
	seen := map[string]bool{AllTag: true}
	for _, p := range s.Projects {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// QueryProjects applies search, then the tag filter, then pagination.
// Search is a case-insensitive substring match on title, description and
// tags. The tag filter is an exact match. A page outside 1..TotalPages falls
// back to page 1.
func (s *Site) QueryProjects(q ProjectQuery) ProjectPage {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	tag := strings.TrimSpace(q.Tag)
	if tag == "" {
		tag = AllTag
	}

	matched := make([]Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if term != "" && !p.matches(term) {
			continue
		}
		if tag != AllTag && !p.hasTag(tag) {
			continue
		}
		matched = append(matched, p)
	}

	totalPages := (len(matched) + ProjectsPerPage - 1) / ProjectsPerPage
	page := q.Page
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * ProjectsPerPage
	end := min(start+ProjectsPerPage, len(matched))
	if start > end {
		start = end
	}

	return ProjectPage{
		Projects:   matched[start:end],
		Search:     q.Search,
		Tag:        tag,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(matched),
	}
}

// Project looks a project up by slug.
func (s *Site) Project(slug string) (Project, bool) {
	for _, p := range s.Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

func (p Project) matches(term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func (p Project) hasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
