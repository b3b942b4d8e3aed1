package ideas

import (
	"fmt"
	"strings"

	"github.com/arignang/portfolio/internal/ai"
)

// IdeaCount is how many ideas the prompt asks for.
const IdeaCount = 3

// BuildPrompt returns the instruction sent to the model for topic. The topic
// is embedded verbatim.
func BuildPrompt(topic string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %d innovative research project ideas related to the field of: \"%s\". ", IdeaCount, topic)
	sb.WriteString("The ideas should be suitable for an undergraduate or early-stage graduate engineering student. ")
	sb.WriteString("Focus on the intersection of software, hardware, AI, and robotics. ")
	sb.WriteString("Return each idea as an object with a title, a description and a list of keywords.")
	return sb.String()
}

// ResponseSchema is the structured-output constraint for an idea list.
func ResponseSchema() *ai.Schema {
	return &ai.Schema{
		Type: ai.TypeArray,
		Items: &ai.Schema{
			Type: ai.TypeObject,
			Properties: map[string]*ai.Schema{
				"title": {
					Type:        ai.TypeString,
					Description: "A concise and academic title for a research project.",
				},
				"description": {
					Type:        ai.TypeString,
					Description: "A one-paragraph summary of the research project, including the problem, proposed solution, and potential impact.",
				},
				"keywords": {
					Type:        ai.TypeArray,
					Items:       &ai.Schema{Type: ai.TypeString},
					Description: "A list of 3-5 relevant technical keywords or fields for this research idea.",
				},
			},
			Required:         []string{"title", "description", "keywords"},
			PropertyOrdering: []string{"title", "description", "keywords"},
		},
	}
}
