package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cognicore/lexis/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analyses as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := ctx.components(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = comps.Config.Server.Addr
			}
			srv := server.New(server.Options{
				Analyzer:    comps.Analyzer,
				Logger:      slog.Default().With("component", "server"),
				Width:       comps.Config.Width,
				MaxDistance: comps.Config.MaxDistance,
			})
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}
