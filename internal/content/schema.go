package content

import (
	"encoding/json"
	"strconv"
)

type ldPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ldOrganization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type ldArticle struct {
	Type          string         `json:"@type"`
	Headline      string         `json:"headline"`
	Author        []ldPerson     `json:"author"`
	DatePublished string         `json:"datePublished"`
	Publisher     ldOrganization `json:"publisher"`
	URL           string         `json:"url"`
}

type ldListItem struct {
	Type     string    `json:"@type"`
	Position int       `json:"position"`
	Item     ldArticle `json:"item"`
}

type ldItemList struct {
	Context string       `json:"@context"`
	Type    string       `json:"@type"`
	Items   []ldListItem `json:"itemListElement"`
}

// PublicationsJSONLD renders the publications as a schema.org ItemList of
// ScholarlyArticle entries for search engines.
func (s *Site) PublicationsJSONLD() (string, error) {
	list := ldItemList{
		Context: "https://schema.org",
		Type:    "ItemList",
		Items:   make([]ldListItem, 0, len(s.Publications)),
	}
	for i, pub := range s.Publications {
		authors := make([]ldPerson, 0, len(pub.Authors))
		for _, a := range pub.Authors {
			authors = append(authors, ldPerson{Type: "Person", Name: a})
		}
		list.Items = append(list.Items, ldListItem{
			Type:     "ListItem",
			Position: i + 1,
			Item: ldArticle{
				Type:          "ScholarlyArticle",
				Headline:      pub.Title,
				Author:        authors,
				DatePublished: strconv.Itoa(pub.Year),
				Publisher:     ldOrganization{Type: "Organization", Name: pub.Venue},
				URL:           pub.URL,
			},
		})
	}

	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
