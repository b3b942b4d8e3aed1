// Package mcpserver exposes the research idea generator and the project
// catalogue as MCP tools over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arignang/portfolio/internal/content"
	"github.com/arignang/portfolio/internal/ideas"
)

// IdeaRequester is the part of ideas.Generator the tools need.
type IdeaRequester interface {
	Request(ctx context.Context, topic string) ([]ideas.Idea, error)
}

// Tools holds the tool handlers.
type Tools struct {
	ideas IdeaRequester
	site  *content.Site
}

func NewTools(gen IdeaRequester, site *content.Site) *Tools {
	return &Tools{ideas: gen, site: site}
}

// New builds an MCP server with every tool registered.
func New(t *Tools, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"portfolio",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool("research_ideas",
		mcp.WithDescription("Generate three research project ideas at the intersection of software, hardware, AI and robotics for a topic"),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Field or keyword to brainstorm around, e.g. \"Swarm Robotics\""),
		),
	), t.HandleResearchIdeas)

	s.AddTool(mcp.NewTool("list_projects",
		mcp.WithDescription("Search the portfolio's projects by text and tag, six per page"),
		mcp.WithString("search", mcp.Description("Case-insensitive text matched against title, description and tags")),
		mcp.WithString("tag", mcp.Description("Exact tag to filter by"), mcp.DefaultString(content.AllTag)),
		mcp.WithNumber("page", mcp.Description("Page number starting at 1"), mcp.DefaultNumber(1), mcp.Min(1)),
	), t.HandleListProjects)

	return s
}

// Serve runs s on stdin/stdout until the client disconnects.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func (t *Tools) HandleResearchIdeas(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	if err := ideas.ValidateTopic(topic); err != nil {
		return mcp.NewToolResultError(ideas.EmptyTopicMessage), nil
	}

	ctx = ideas.WithRequestID(ctx, uuid.NewString())
	result, err := t.ideas.Request(ctx, topic)
	if err != nil {
		var ie *ideas.Error
		if errors.As(err, &ie) {
			return mcp.NewToolResultError(ie.Kind.Title() + ": " + ie.Kind.Message()), nil
		}
		return mcp.NewToolResultError(ideas.KindUnknown.Message()), nil
	}

	return jsonResult(result)
}

func (t *Tools) HandleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := t.site.QueryProjects(content.ProjectQuery{
		Search: req.GetString("search", ""),
		Tag:    req.GetString("tag", content.AllTag),
		Page:   int(req.GetFloat("page", 1)),
	})
	return jsonResult(page)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("Failed to encode tool result", "error", err)
		return mcp.NewToolResultError("failed to encode result"), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
