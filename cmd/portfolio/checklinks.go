package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/arignang/portfolio/internal/linkcheck"
)

var checkLinksCmd = &cobra.Command{
	Use:   "check-links",
	Short: "Check every external link in the portfolio content",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite(cfg)
		if err != nil {
			return err
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		parallel, _ := cmd.Flags().GetInt("parallel")
		checker := linkcheck.New(linkcheck.WithTimeout(timeout), linkcheck.WithParallelism(parallel))

		links := site.ExternalLinks()
		slog.Info("Checking links", "count", len(links))
		results := checker.CheckAll(cmd.Context(), links)

		out := cmd.OutOrStdout()
		for _, r := range results {
			status := "OK"
			if !r.OK() {
				status = "BROKEN"
			}
			detail := fmt.Sprintf("%d", r.StatusCode)
			if r.Err != nil {
				detail = r.Err.Error()
			}
			fmt.Fprintf(out, "%-6s %-40s %s (%s)\n", status, r.Link.Source, r.Link.URL, detail)
		}

		if broken := linkcheck.Broken(results); len(broken) > 0 {
			return fmt.Errorf("%d of %d links broken", len(broken), len(results))
		}
		return nil
	},
}

func init() {
	checkLinksCmd.Flags().Duration("timeout", 15*time.Second, "per-link request timeout")
	checkLinksCmd.Flags().Int("parallel", 4, "number of links checked at once")
	rootCmd.AddCommand(checkLinksCmd)
}
