package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	portfolio "github.com/arignang/portfolio"
)

func TestEmbeddedContent(t *testing.T) {
	site, err := Parse(portfolio.ContentYAML)
	require.NoError(t, err)

	assert.Equal(t, "Arignan S", site.Profile.Name)
	assert.Len(t, site.Projects, 12)
	assert.NotEmpty(t, site.Experience)
	assert.NotEmpty(t, site.Education)
	assert.NotEmpty(t, site.Skills)
	assert.NotEmpty(t, site.Certifications)
	assert.NotEmpty(t, site.Publications)
	assert.NotEmpty(t, site.Testimonials)

	p, ok := site.Project("ai-powered-sign-language-translator")
	require.True(t, ok)
	assert.True(t, p.HasDetailPage())
	require.NotNil(t, p.CodeSnippet)
	assert.Equal(t, "python", p.CodeSnippet.Language)
}

func TestLoad(t *testing.T) {
	fallback := []byte("profile:\n  name: Fallback\n")

	t.Run("file wins over fallback", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "content.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: From File\n"), 0o644))
		site, err := Load(path, fallback)
		require.NoError(t, err)
		assert.Equal(t, "From File", site.Profile.Name)
	})

	t.Run("missing file uses fallback", func(t *testing.T) {
		site, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), fallback)
		require.NoError(t, err)
		assert.Equal(t, "Fallback", site.Profile.Name)
	})
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{"slug derived", "projects:\n  - title: Hello World\n", false},
		{"untitled project", "projects:\n  - description: nothing\n", true},
		{"duplicate slug", "projects:\n  - title: Same\n  - title: same\n", true},
		{"explicit slugs differ", "projects:\n  - title: Same\n    slug: one\n  - title: same\n    slug: two\n", false},
		{"bad yaml", "projects: [", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"3D Mapping with LiDAR", "3d-mapping-with-lidar"},
		{"RL-Powered Robotic Grasping", "rl-powered-robotic-grasping"},
		{"  UI/UX -- Design!  ", "ui-ux-design"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPublicationsJSONLD(t *testing.T) {
	site := &Site{Publications: []Publication{
		{Title: "Paper", Authors: []string{"A", "B"}, Venue: "ICRA", Year: 2023, URL: "#"},
	}}

	out, err := site.PublicationsJSONLD()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "ItemList", doc["@type"])

	items := doc["itemListElement"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, float64(1), item["position"])
	article := item["item"].(map[string]any)
	assert.Equal(t, "ScholarlyArticle", article["@type"])
	assert.Equal(t, "2023", article["datePublished"])
	assert.Len(t, article["author"], 2)
}

func TestExternalLinks(t *testing.T) {
	site := &Site{
		Profile: Profile{CVURL: "/static/cv.pdf", Links: []Link{{Label: "GitHub", URL: "https://github.com/x"}}},
		Projects: []Project{
			{Title: "P", RepoURL: "https://github.com/x/p", LiveURL: "#", VideoURL: "http://video"},
		},
		Certifications: []Certification{{Name: "C", URL: "mailto:a@b.c"}},
		Publications:   []Publication{{Title: "Pub", URL: "https://doi.org/1"}},
	}

	var urls []string
	for _, l := range site.ExternalLinks() {
		urls = append(urls, l.URL)
	}
	assert.Equal(t, []string{"https://github.com/x", "https://github.com/x/p", "http://video", "https://doi.org/1"}, urls)
}

func makeProjects(n int) []Project {
	out := make([]Project, n)
	for i := range out {
		out[i] = Project{Slug: fmt.Sprintf("p%d", i+1), Title: fmt.Sprintf("Project %d", i+1), Tags: []string{"Go"}}
	}
	return out
}
