package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"javapy/internal/diagfmt"
	"javapy/internal/driver"
	"javapy/internal/source"
)

func newDiagCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "diag [flags] [file|dir|-]",
		Short: "Report lexical and syntactic diagnostics",
		Long:  `Run the scanner and translator and print diagnostics only; exit code 1 when any are found`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDiag(cmd, args)
		},
	}
	c.Flags().String("format", "pretty", "output format (pretty|short|json)")
	c.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	c.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	c.Flags().String("ui", "off", "progress UI for directories (auto|on|off)")
	addAnalysisFlags(c)
	return c
}

func (a *app) runDiag(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	withNotes, err := flags.GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := flags.GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	opts, err := a.analysisOptions(cmd)
	if err != nil {
		return err
	}

	an, err := a.analyze(cmd, args, opts, mode, nil)
	if err != nil {
		return err
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	switch format {
	case "short":
		for _, r := range an.results {
			if err := diagfmt.Short(out, r.Diagnostics(), an.fileSet); err != nil {
				return err
			}
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		if r := an.single(); r != nil {
			if err := diagfmt.JSON(out, sortedBag(r.Diagnostics()), an.fileSet, jsonOpts); err != nil {
				return fmt.Errorf("failed to format diagnostics: %w", err)
			}
			break
		}
		if err := writeDiagnosticsMap(out, an, jsonOpts); err != nil {
			return err
		}
	default:
		prettyOpts := a.prettyOpts(out)
		prettyOpts.PathMode = pathMode
		prettyOpts.ShowNotes = withNotes
		if err := a.printPrettyGrouped(out, an, prettyOpts, fullPath); err != nil {
			return err
		}
	}

	a.printTimings(cmd.ErrOrStderr(), an)
	if an.hasErrors() {
		return errHasDiagnostics
	}
	return nil
}

// printPrettyGrouped prints directory results under "== path ==" headers;
// a single source prints without a header.
func (a *app) printPrettyGrouped(w io.Writer, an *analysis, opts diagfmt.PrettyOpts, fullPath bool) error {
	if an.single() != nil {
		return a.printPretty(w, an, opts)
	}
	first := true
	for _, r := range an.results {
		diags := r.Diagnostics()
		if len(diags) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintf(w, "== %s ==\n", resultDisplayPath(r, fullPath))
		if err := diagfmt.Pretty(w, sortedBag(diags), an.fileSet, opts); err != nil {
			return err
		}
	}
	return nil
}

func resultDisplayPath(r *driver.Result, fullPath bool) string {
	if !fullPath {
		return r.Path
	}
	if f := r.File(); f != nil {
		return f.FormatPath("absolute", "")
	}
	if abs, err := source.AbsolutePath(r.Path); err == nil {
		return abs
	}
	return r.Path
}

func writeDiagnosticsMap(w io.Writer, an *analysis, opts diagfmt.JSONOpts) error {
	output := make(map[string]diagfmt.DiagnosticsOutput, len(an.results))
	for _, r := range an.results {
		output[resultDisplayPath(r, opts.PathMode == diagfmt.PathModeAbsolute)] =
			diagfmt.BuildDiagnosticsOutput(sortedBag(r.Diagnostics()), an.fileSet, opts)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode diagnostics output: %w", err)
	}
	return nil
}
