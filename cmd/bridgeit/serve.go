package main

import (
	"github.com/spf13/cobra"

	"github.com/bridgeit/directory/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the directory API over HTTP",
		Long:  "Exposes the directory, facet, item and matching endpoints as a JSON API for the site frontend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	return withDeps(func(d *Deps) error {
		if addr != "" {
			d.Config.Server.Addr = addr
		}
		if globalCSV != "" {
			d.Config.Source.CSVURL = globalCSV
		}

		srv := server.New(d.Config, d.Log, d.Directory, d.Item, d.Match)
		return srv.Run(cmd.Context())
	})
}
