// Package main is the entry point for the portfolio CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	portfolio "github.com/arignang/portfolio"
	"github.com/arignang/portfolio/internal/ai"
	"github.com/arignang/portfolio/internal/config"
	"github.com/arignang/portfolio/internal/content"
	"github.com/arignang/portfolio/internal/ideas"
)

// Set at build time via ldflags.
var (
	version   = "dev"
	buildTime = "unknown"
)

// cfg is loaded once in PersistentPreRunE and shared by every subcommand.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site with an AI research idea generator",
	Long: `portfolio serves a single-page portfolio: profile, experience, projects,
publications, a contact form and a research idea generator backed by Gemini
or a local Ollama model. The idea generator is also available from the
command line and as an MCP tool.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		cfg = loaded
		slog.SetDefault(cfg.Logging.NewLogger())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "path to configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newGenerator builds the idea generator from cfg. A missing Gemini key is
// not fatal: requests fail with an invalid credential error until one is set.
func newGenerator(cfg config.Config) (*ideas.Generator, error) {
	provider, err := ai.NewProvider(ai.Options{
		Provider:    cfg.AI.Provider,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		BaseURL:     cfg.AI.BaseURL,
		OllamaURL:   cfg.AI.OllamaURL,
		OllamaModel: cfg.AI.OllamaModel,
		Timeout:     cfg.AI.Timeout(),
	})
	if err != nil {
		return nil, err
	}

	if g, ok := provider.(*ai.GeminiProvider); ok && !g.HasAPIKey() {
		slog.Warn("Gemini API key is not configured; research idea requests will fail",
			"env", config.EnvPrefix+"_AI_API_KEY")
	}

	return ideas.NewGenerator(provider,
		ideas.WithTemperature(cfg.AI.Temperature),
		ideas.WithMaxTokens(cfg.AI.MaxTokens),
	), nil
}

func loadSite(cfg config.Config) (*content.Site, error) {
	site, err := content.Load(cfg.Content.Path, portfolio.ContentYAML)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	slog.Debug("Loaded content", "projects", len(site.Projects), "publications", len(site.Publications))
	return site, nil
}

func topicArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
