package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bridgeit/directory/internal/domain/services"
)

func newFacetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Print the facet frequency tables",
		Args:  cobra.NoArgs,
		RunE:  runFacets,
	}
	return cmd
}

func runFacets(cmd *cobra.Command, args []string) error {
	return withDeps(func(d *Deps) error {
		result, err := d.Directory.Handle(cmd.Context(), d.csvURL(), services.NewFilterState(), nil)
		if err != nil {
			return err
		}

		printFacetGroup("Temáticas / capacidades", result.Facets.Tematica)
		printFacetGroup("Convocatorias de interés", result.Facets.Convo)
		return nil
	})
}

func printFacetGroup(title string, counts []services.FacetCount) {
	fmt.Printf("%s\n", title)
	if len(counts) == 0 {
		fmt.Println("  —")
		return
	}
	for _, fc := range counts {
		fmt.Printf("  %-40s %d\n", fc.Tag, fc.Count)
	}
	fmt.Println()
}
