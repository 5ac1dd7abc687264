package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"javapy/internal/diagfmt"
	"javapy/internal/driver"
)

func newCheckCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "check [file|dir|-]",
		Short: "Translate and verify that the generated Python parses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args)
		},
	}
	c.Flags().String("ui", "off", "progress UI for directories (auto|on|off)")
	addAnalysisFlags(c)
	return c
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	uiFlag, err := cmd.Flags().GetString("ui")
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
	opts.Verify = true

	an, err := a.analyze(cmd, args, opts, mode, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range an.results {
		fmt.Fprintln(out, checkLine(r))
	}
	failed := countWithErrors(an.results)
	if failed > 0 {
		for _, r := range an.results {
			if err := diagfmt.Short(cmd.ErrOrStderr(), r.Diagnostics(), an.fileSet); err != nil {
				return err
			}
		}
	}
	if !a.quiet && an.dir != nil {
		summary(out, len(an.results), failed)
	}

	a.printTimings(cmd.ErrOrStderr(), an)
	if an.hasErrors() {
		return errHasDiagnostics
	}
	return nil
}

// checkLine is "path: ok (N statements)", "path: N diagnostic(s)" or
// "path: python: <parse error>".
func checkLine(r *driver.Result) string {
	n := len(r.Diagnostics())
	switch {
	case n > 0:
		return fmt.Sprintf("%s: %d diagnostic(s)", r.Path, n)
	case r.Verify != nil && !r.Verify.OK:
		return fmt.Sprintf("%s: python: %s", r.Path, r.Verify)
	case r.Verify != nil:
		return fmt.Sprintf("%s: %s", r.Path, r.Verify)
	default:
		return r.Path + ": ok"
	}
}

func summary(w io.Writer, total, failed int) {
	fmt.Fprintf(w, "%d file(s) checked, %d failed\n", total, failed)
}
