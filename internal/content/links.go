package content

import "strings"

// ExternalLink is a URL referenced somewhere in the content.
type ExternalLink struct {
	Source string // where the link appears, e.g. "project: Autonomous Navigation Rover"
	URL    string
}

// ExternalLinks collects every http(s) URL in the datasets. Placeholders
// ("#"), mailto links and relative paths are skipped.
func (s *Site) ExternalLinks() []ExternalLink {
	var links []ExternalLink
	add := func(source, url string) {
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			links = append(links, ExternalLink{Source: source, URL: url})
		}
	}

	for _, l := range s.Profile.Links {
		add("profile: "+l.Label, l.URL)
	}
	add("profile: cv", s.Profile.CVURL)
	for _, p := range s.Projects {
		src := "project: " + p.Title
		add(src, p.RepoURL)
		add(src, p.LiveURL)
		add(src, p.VideoURL)
	}
	for _, c := range s.Certifications {
		add("certification: "+c.Name, c.URL)
	}
	for _, p := range s.Publications {
		add("publication: "+p.Title, p.URL)
	}
	return links
}
