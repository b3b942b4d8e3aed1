package main

import (
	"github.com/spf13/cobra"

	"github.com/arignang/portfolio/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the research idea generator as an MCP tool over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite(cfg)
		if err != nil {
			return err
		}
		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}
		return mcpserver.Serve(mcpserver.New(mcpserver.NewTools(gen, site), version))
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
