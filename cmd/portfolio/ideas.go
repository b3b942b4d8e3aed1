package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arignang/portfolio/internal/ideas"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas <topic...>",
	Short: "Generate research project ideas for a topic",
	Example: `  portfolio ideas Swarm Robotics
  portfolio ideas --json "Edge AI"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := topicArg(args)
		if err := ideas.ValidateTopic(topic); err != nil {
			return errors.New(ideas.EmptyTopicMessage)
		}

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		result, err := gen.Request(cmd.Context(), topic)
		if err != nil {
			kind := ideas.KindOf(err)
			return fmt.Errorf("%s: %s", kind.Title(), kind.Message())
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		if len(result) == 0 {
			fmt.Fprintln(os.Stderr, "No ideas returned.")
			return nil
		}
		for i, idea := range result {
			fmt.Fprintf(out, "%d. %s\n", i+1, idea.Title)
			fmt.Fprintf(out, "   %s\n", idea.Description)
			if len(idea.Keywords) > 0 {
				fmt.Fprintf(out, "   Keywords: %s\n", strings.Join(idea.Keywords, ", "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	ideasCmd.Flags().Bool("json", false, "print ideas as JSON")
	rootCmd.AddCommand(ideasCmd)
}
