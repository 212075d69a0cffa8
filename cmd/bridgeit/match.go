package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "match <id>",
		Short: "Rank matches for one entry",
		Long:  "Scores entities of the complementary type (grupo vs. empresa) by tag overlap and prints them best first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, args[0], limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of results")

	return cmd
}

func runMatch(cmd *cobra.Command, id string, limit int) error {
	return withDeps(func(d *Deps) error {
		if !d.Config.MatchingEnabled() {
			return fmt.Errorf("matching is disabled for this deployment (features.matching)")
		}

		result, err := d.Match.Handle(cmd.Context(), id, d.csvURL())
		if err != nil {
			return err
		}

		if len(result.Matches) == 0 {
			fmt.Printf("No matches for %s: no tag overlap with any %s.\n",
				result.Source.DisplayName(), complementLabel(string(result.Source.Type)))
			return nil
		}

		matches := result.Matches
		if limit > 0 && len(matches) > limit {
			matches = matches[:limit]
		}

		fmt.Printf("Matches for %s:\n\n", result.Source.DisplayName())
		for i, m := range matches {
			fmt.Printf("%d. %s  (score %.2f)\n", i+1, m.Candidate.DisplayName(), m.Score)
			if len(m.MatchedTematica) > 0 {
				fmt.Printf("   temáticas en común: %s\n", strings.Join(m.MatchedTematica, ", "))
			}
			if len(m.MatchedConvo) > 0 {
				fmt.Printf("   convocatorias en común: %s\n", strings.Join(m.MatchedConvo, ", "))
			}
			fmt.Println()
		}
		return nil
	})
}

func complementLabel(t string) string {
	if t == "empresa" {
		return "grupo"
	}
	return "empresa"
}
