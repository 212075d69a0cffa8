package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bridgeit/directory/internal/domain/entities"
	"github.com/bridgeit/directory/internal/domain/services"
)

func newListCmd() *cobra.Command {
	var (
		tematica []string
		convo    []string
		query    string
		sortDir  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List directory entries",
		Long:  "Loads the published CSV and prints the directory, optionally narrowed by facet selections and free-text search.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, tematica, convo, query, sortDir)
		},
	}

	cmd.Flags().StringSliceVarP(&tematica, "tematica", "t", nil, "Filter by capability/theme tag (repeatable, OR)")
	cmd.Flags().StringSliceVarP(&convo, "convo", "k", nil, "Filter by funding-call tag (repeatable, OR)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text search over name, pitch, summary and tags")
	cmd.Flags().StringVarP(&sortDir, "sort", "s", "", "Sort by name: asc or desc")

	return cmd
}

func runList(cmd *cobra.Command, tematica, convo []string, query, sortDir string) error {
	return withDeps(func(d *Deps) error {
		state := services.NewFilterState().WithQuery(query)
		for _, t := range tematica {
			state.Tematica[entities.NormalizeTag(t)] = true
		}
		for _, t := range convo {
			state.Convo[entities.NormalizeTag(t)] = true
		}

		var sortAsc *bool
		switch sortDir {
		case "asc":
			v := true
			sortAsc = &v
		case "desc":
			v := false
			sortAsc = &v
		case "":
		default:
			return fmt.Errorf("invalid sort %q, use asc or desc", sortDir)
		}

		result, err := d.Directory.Handle(cmd.Context(), d.csvURL(), state, sortAsc)
		if err != nil {
			return err
		}

		if result.Total() == 0 {
			fmt.Println("No entries match.")
			return nil
		}

		printColumn("Grupos de investigación", result.Grupos, d)
		printColumn("Empresas", result.Empresas, d)
		fmt.Printf("%d entries (%d grupos, %d empresas)\n",
			result.Total(), len(result.Grupos), len(result.Empresas))
		return nil
	})
}

func printColumn(title string, items []entities.Entity, d *Deps) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s (%d)\n\n", title, len(items))
	for _, e := range items {
		fmt.Printf("  %s  [%s]\n", e.DisplayName(), e.ID)
		text := e.Pitch
		if text == "" || !d.Config.PitchEnabled() {
			text = e.SummaryLong
		}
		if text != "" {
			fmt.Printf("    %s\n", entities.Truncate(text, 120))
		}
		if len(e.Tematica) > 0 {
			fmt.Printf("    tematica: %s\n", strings.Join(e.Tematica, ", "))
		}
		if len(e.Convo) > 0 {
			fmt.Printf("    convocatorias: %s\n", strings.Join(e.Convo, ", "))
		}
		fmt.Println()
	}
}
