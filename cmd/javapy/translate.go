package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"javapy/internal/buildpipeline"
	"javapy/internal/driver"
	"javapy/internal/observ"
)

func newTranslateCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "translate [file|dir|-]",
		Short: "Translate sources to Python",
		Long: `Translate a source file, a directory tree or standard input to Python.

A single source is written to stdout (or -o FILE). A directory produces one
.py file per source, next to it or under -o DIR / [output].dir, keeping the
relative layout. Diagnostics go to stderr; the exit code is 1 when any
source has diagnostics or fails --verify.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTranslate(cmd, args)
		},
	}
	c.Flags().StringP("output", "o", "", "output file (single source) or directory (directory input)")
	c.Flags().Bool("verify", false, "parse the generated Python and report syntax errors")
	c.Flags().String("format", "text", "output format (text|json)")
	c.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	addAnalysisFlags(c)
	return c
}

func (a *app) runTranslate(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	outFlag, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
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

	outDir := outFlag
	if outDir == "" {
		outDir = a.manifest.ResolveOutputDir()
	}
	var written int
	an, err := a.analyze(cmd, args, opts, mode, func(res *driver.DirResult, sink buildpipeline.ProgressSink) error {
		n, err := writeDirOutputs(res, outDir, sink, a.timer)
		written = n
		return err
	})
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if r := an.single(); r != nil {
		if err := a.emitSingle(stdout, stderr, r, outFlag, format); err != nil {
			return err
		}
	} else {
		if err := a.printPretty(stderr, an, a.prettyOpts(stderr)); err != nil {
			return err
		}
		if format == "json" {
			if err := writeResultMap(stdout, an.results); err != nil {
				return err
			}
		}
		if !a.quiet {
			fmt.Fprintf(stderr, "translated %d file(s), wrote %d, %d with errors\n",
				len(an.results), written, countWithErrors(an.results))
		}
	}

	a.printTimings(stderr, an)
	if an.hasErrors() {
		return errHasDiagnostics
	}
	return nil
}

// emitSingle writes one result: Python text or the result JSON to outPath
// (stdout when empty or "-"), diagnostics to stderr for text output.
func (a *app) emitSingle(stdout, stderr io.Writer, r *driver.Result, outPath, format string) error {
	var payload []byte
	if format == "json" {
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		payload = append(data, '\n')
	} else {
		if err := a.printPretty(stderr, &analysis{fileSet: r.FileSet, results: []*driver.Result{r}}, a.prettyOpts(stderr)); err != nil {
			return err
		}
		payload = []byte(r.Output)
	}

	if outPath == "" || outPath == "-" {
		_, err := stdout.Write(payload)
		return err
	}
	started := time.Now()
	if err := writeOutputFile(outPath, payload); err != nil {
		return err
	}
	r.Timings.Set(buildpipeline.StageWrite, time.Since(started))
	return nil
}

// writeDirOutputs stores every translated file of res. Load failures are
// skipped; write errors are collected and reported together.
func writeDirOutputs(res *driver.DirResult, outDir string, sink buildpipeline.ProgressSink, timer *observ.Timer) (int, error) {
	var (
		written int
		errs    []error
	)
	for _, r := range res.Files {
		f := r.File()
		if f == nil {
			continue
		}
		dst := outputPathFor(filepath.FromSlash(f.Path), res.Dir, outDir)
		buildpipeline.Emit(sink, buildpipeline.Event{File: r.Path, Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusWorking})
		started := time.Now()
		err := writeOutputFile(dst, []byte(r.Output))
		elapsed := time.Since(started)
		r.Timings.Set(buildpipeline.StageWrite, elapsed)
		timer.Add(string(buildpipeline.StageWrite), elapsed)
		if err != nil {
			buildpipeline.Emit(sink, buildpipeline.Event{File: r.Path, Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusError, Err: err})
			errs = append(errs, err)
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

// outputPathFor maps a source path under srcRoot to its .py target. An
// empty outDir places the file next to the source.
func outputPathFor(src, srcRoot, outDir string) string {
	target := strings.TrimSuffix(src, filepath.Ext(src)) + ".py"
	if outDir == "" {
		return target
	}
	rel, err := filepath.Rel(srcRoot, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(target)
	}
	return filepath.Join(outDir, rel)
}

func writeOutputFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeResultMap prints {path: result} for a directory run.
func writeResultMap(w io.Writer, results []*driver.Result) error {
	out := make(map[string]driver.ResultView, len(results))
	for _, r := range results {
		out[r.Path] = r.View()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	return nil
}

func countWithErrors(results []*driver.Result) int {
	n := 0
	for _, r := range results {
		if r.HasErrors() {
			n++
		}
	}
	return n
}
