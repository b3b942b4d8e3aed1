// Package content holds the static portfolio datasets and the queries the
// page runs over them.
package content

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type Site struct {
	Profile        Profile         `yaml:"profile" json:"profile"`
	Experience     []Experience    `yaml:"experience" json:"experience"`
	Education      []Education     `yaml:"education" json:"education"`
	Skills         []SkillCategory `yaml:"skills" json:"skills"`
	SoftSkills     []string        `yaml:"soft_skills" json:"soft_skills"`
	Certifications []Certification `yaml:"certifications" json:"certifications"`
	Projects       []Project       `yaml:"projects" json:"projects"`
	Publications   []Publication   `yaml:"publications" json:"publications"`
	Testimonials   []Testimonial   `yaml:"testimonials" json:"testimonials"`
}

type Profile struct {
	Name         string   `yaml:"name" json:"name"`
	Headline     string   `yaml:"headline" json:"headline"`
	Tagline      string   `yaml:"tagline" json:"tagline"`
	AboutTitle   string   `yaml:"about_title" json:"about_title"`
	About        []string `yaml:"about" json:"about"`
	Focus        []Focus  `yaml:"focus" json:"focus"`
	PhotoURL     string   `yaml:"photo_url" json:"photo_url"`
	CVURL        string   `yaml:"cv_url" json:"cv_url"`
	Email        string   `yaml:"email" json:"email"`
	ContactBlurb string   `yaml:"contact_blurb" json:"contact_blurb"`
	Links        []Link   `yaml:"links" json:"links"`
}

// Focus is one of the interest areas under the about section.
type Focus struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

type Experience struct {
	Role        string `yaml:"role" json:"role"`
	Company     string `yaml:"company" json:"company"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
}

type Education struct {
	Degree      string   `yaml:"degree" json:"degree"`
	Institution string   `yaml:"institution" json:"institution"`
	Period      string   `yaml:"period" json:"period"`
	Details     []string `yaml:"details" json:"details"`
}

type SkillCategory struct {
	Title  string   `yaml:"title" json:"title"`
	Skills []string `yaml:"skills" json:"skills"`
}

type Certification struct {
	Name     string `yaml:"name" json:"name"`
	Issuer   string `yaml:"issuer" json:"issuer"`
	URL      string `yaml:"url" json:"url"`
	ImageURL string `yaml:"image_url" json:"image_url"`
	Headline string `yaml:"headline" json:"headline"`
}

type Project struct {
	Slug                string            `yaml:"slug" json:"slug"`
	Title               string            `yaml:"title" json:"title"`
	Description         string            `yaml:"description" json:"description"`
	DetailedDescription string            `yaml:"detailed_description" json:"detailed_description"`
	Challenges          string            `yaml:"challenges,omitempty" json:"challenges,omitempty"`
	VideoURL            string            `yaml:"video_url,omitempty" json:"video_url,omitempty"`
	Tags                []string          `yaml:"tags" json:"tags"`
	ImageURL            string            `yaml:"image_url" json:"image_url"`
	LiveURL             string            `yaml:"live_url,omitempty" json:"live_url,omitempty"`
	RepoURL             string            `yaml:"repo_url" json:"repo_url"`
	Gallery             []string          `yaml:"gallery,omitempty" json:"gallery,omitempty"`
	TechnicalDetails    []TechnicalDetail `yaml:"technical_details,omitempty" json:"technical_details,omitempty"`
	CodeSnippet         *CodeSnippet      `yaml:"code_snippet,omitempty" json:"code_snippet,omitempty"`
}

// HasDetailPage reports whether the project carries enough material for its
// own page rather than only the modal.
func (p Project) HasDetailPage() bool {
	return len(p.Gallery) > 0 || len(p.TechnicalDetails) > 0 || p.CodeSnippet != nil
}

type TechnicalDetail struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

type CodeSnippet struct {
	Language    string `yaml:"language" json:"language"`
	Code        string `yaml:"code" json:"code"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type Publication struct {
	Title   string   `yaml:"title" json:"title"`
	Authors []string `yaml:"authors" json:"authors"`
	Venue   string   `yaml:"venue" json:"venue"`
	Year    int      `yaml:"year" json:"year"`
	URL     string   `yaml:"url" json:"url"`
}

type Testimonial struct {
	Quote    string `yaml:"quote" json:"quote"`
	Author   string `yaml:"author" json:"author"`
	Title    string `yaml:"title" json:"title"`
	ImageURL string `yaml:"image_url" json:"image_url"`
}

// Load reads the site content from path. When path does not exist the
// embedded fallback document is used instead.
func Load(path string, fallback []byte) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read content file: %w", err)
		}
		data = fallback
	}
	return Parse(data)
}

// Parse decodes a content document and fills derived fields.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := site.normalize(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) normalize() error {
	seen := make(map[string]bool, len(s.Projects))
	for i := range s.Projects {
		p := &s.Projects[i]
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d has no title", i+1)
		}
		if p.Slug == "" {
			p.Slug = Slugify(p.Title)
		}
		if seen[p.Slug] {
			return fmt.Errorf("duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
		if p.Tags == nil {
			p.Tags = []string{}
		}
	}
	return nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and collapses everything but letters and digits into
// single hyphens.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}
