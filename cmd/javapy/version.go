package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"javapy/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show javapy build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			full, err := cmd.Flags().GetBool("full")
			if err != nil {
				return fmt.Errorf("failed to get full flag: %w", err)
			}
			out := cmd.OutOrStdout()
			switch strings.ToLower(format) {
			case "pretty":
				renderVersionPretty(out, a.applyColor(out), full)
				return nil
			case "json":
				return renderVersionJSON(out, full)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	c.Flags().String("format", "pretty", "output format (pretty|json)")
	c.Flags().Bool("full", false, "include commit and build date even when unknown")
	return c
}

func renderVersionPretty(out io.Writer, colored, full bool) {
	fmt.Fprintln(out, version.String(colored))
	if full {
		fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
		fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
	}
}

func renderVersionJSON(out io.Writer, full bool) error {
	payload := versionPayload{
		Tool:      "javapy",
		Version:   strings.TrimSpace(version.Version),
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
	}
	if full {
		payload.GitCommit = valueOrUnknown(payload.GitCommit)
		payload.BuildDate = valueOrUnknown(payload.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
