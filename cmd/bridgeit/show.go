package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one directory entry",
		Long:  "Loads the published CSV and prints the full record for the given id, embedding its profile page when one is declared.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
	return cmd
}

func runShow(cmd *cobra.Command, id string) error {
	return withDeps(func(d *Deps) error {
		result, err := d.Item.Handle(cmd.Context(), id, globalCSV)
		if err != nil {
			return err
		}

		e := result.Entity
		badge := "Grupo de investigación"
		if e.Type == "empresa" {
			badge = "Empresa"
		}

		fmt.Printf("%s  [%s]\n%s\n\n", e.DisplayName(), e.ID, badge)
		if e.Pitch != "" && d.Config.PitchEnabled() {
			fmt.Printf("%s\n\n", e.Pitch)
		}

		switch {
		case result.Profile.Embedded:
			fmt.Printf("Resumen (from %s):\n%s\n\n", result.Profile.Href, result.Profile.HTML)
		case e.SummaryLong != "":
			fmt.Printf("Resumen:\n%s\n\n", e.SummaryLong)
		}

		if result.Profile.Href != "" && !result.Profile.Embedded {
			fmt.Printf("Ficha ampliada: %s\n", result.Profile.Href)
		}
		if len(e.Tematica) > 0 {
			fmt.Printf("Temáticas / capacidades: %s\n", strings.Join(e.Tematica, ", "))
		}
		if len(e.Convo) > 0 {
			fmt.Printf("Convocatorias de interés: %s\n", strings.Join(e.Convo, ", "))
		}

		var material []string
		if e.Web != "" {
			material = append(material, "Web: "+e.Web)
		}
		if e.PDF != "" {
			material = append(material, "PDF: "+e.PDF)
		}
		for _, v := range e.Videos {
			material = append(material, "Vídeo: "+v)
		}
		for _, u := range e.Links {
			material = append(material, "Enlace: "+u)
		}
		if len(material) > 0 {
			fmt.Println("\nMaterial y enlaces:")
			for _, m := range material {
				fmt.Printf("  %s\n", m)
			}
		}
		return nil
	})
}
