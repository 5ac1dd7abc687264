package main

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"javapy/internal/server"
	"javapy/internal/trace"
)

func newServeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translator over HTTP (POST /analyze)",
		Long: `Serve accepts POST /analyze (alias /analizar) with {"code": "..."} and
answers with tokens, lexicalErrors, syntaxErrors and pythonCode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd)
		},
	}
	c.Flags().String("addr", "127.0.0.1:8080", "listen address")
	c.Flags().Int64("max-body", server.DefaultMaxBody, "request body limit in bytes")
	c.Flags().Bool("verify", false, "parse the generated Python for every request")
	addAnalysisFlags(c)
	return c
}

func (a *app) runServe(cmd *cobra.Command) error {
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("failed to get addr flag: %w", err)
	}
	maxBody, err := cmd.Flags().GetInt64("max-body")
	if err != nil {
		return fmt.Errorf("failed to get max-body flag: %w", err)
	}
	opts, err := a.analysisOptions(cmd)
	if err != nil {
		return err
	}
	// per-run timer is meaningless for a long-lived server
	opts.Timer = nil

	ctx := cmd.Context()
	srv := server.New(server.Options{
		Driver:  opts,
		MaxBody: maxBody,
		Tracer:  trace.FromContext(ctx),
	})
	return srv.ListenAndServe(ctx, addr, func(bound net.Addr) {
		if !a.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "listening on http://%s\n", bound)
		}
	})
}
