package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"javapy/internal/buildpipeline"
	"javapy/internal/diag"
	"javapy/internal/diagfmt"
	"javapy/internal/driver"
	"javapy/internal/source"
)

// stdinName is the display name of sources read from standard input.
const stdinName = "<stdin>"

type inputKind uint8

const (
	inputStdin inputKind = iota
	inputFile
	inputDir
)

type input struct {
	kind inputKind
	path string
}

// resolveInput maps the positional argument to stdin, a file or a
// directory. No argument and "-" both mean stdin.
func resolveInput(args []string) (input, error) {
	if len(args) == 0 || args[0] == "-" {
		return input{kind: inputStdin}, nil
	}
	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return input{}, fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return input{kind: inputDir, path: path}, nil
	}
	return input{kind: inputFile, path: path}, nil
}

// analysis is the outcome of a single-source or directory run.
type analysis struct {
	in      input
	fileSet *source.FileSet
	results []*driver.Result
	dir     *driver.DirResult
}

func (an *analysis) hasErrors() bool {
	for _, r := range an.results {
		if r.HasErrors() {
			return true
		}
	}
	return false
}

func (an *analysis) single() *driver.Result {
	if an.dir != nil || len(an.results) != 1 {
		return nil
	}
	return an.results[0]
}

// addAnalysisFlags registers the per-command [translate] overrides.
func addAnalysisFlags(c *cobra.Command) {
	c.Flags().Bool("strict-loops", false, "reject counted loops whose header does not match the canonical shape")
	c.Flags().Int("jobs", 0, "max parallel workers for directories (0 = config or GOMAXPROCS)")
	c.Flags().Bool("cache", false, "reuse results from the on-disk cache")
	c.Flags().String("cache-dir", "", "cache location (implies --cache)")
}

// analysisOptions layers command flags over the config-derived options.
func (a *app) analysisOptions(cmd *cobra.Command) (driver.Options, error) {
	opts := a.driverOptions()
	flags := cmd.Flags()
	var err error
	if flagChanged(cmd, "strict-loops") {
		if opts.StrictLoops, err = flags.GetBool("strict-loops"); err != nil {
			return opts, fmt.Errorf("failed to get strict-loops flag: %w", err)
		}
	}
	if flagChanged(cmd, "jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return opts, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		if opts.Jobs < 0 {
			return opts, errors.New("--jobs must be >= 0")
		}
	}
	if flags.Lookup("verify") != nil && flagChanged(cmd, "verify") {
		if opts.Verify, err = flags.GetBool("verify"); err != nil {
			return opts, fmt.Errorf("failed to get verify flag: %w", err)
		}
	}
	cache, err := openCache(cmd)
	if err != nil {
		return opts, err
	}
	opts.Cache = cache
	return opts, nil
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	if cmd.Flags().Lookup("cache") == nil {
		return nil, nil
	}
	enabled, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache flag: %w", err)
	}
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	switch {
	case dir != "":
		return driver.OpenDiskCacheAt(dir)
	case enabled:
		return driver.OpenDiskCache("javapy")
	default:
		return nil, nil
	}
}

// analyze runs the driver over args. For directories, afterDir runs while
// the progress display is still attached, so it can report extra stages.
func (a *app) analyze(
	cmd *cobra.Command,
	args []string,
	opts driver.Options,
	mode uiMode,
	afterDir func(*driver.DirResult, buildpipeline.ProgressSink) error,
) (*analysis, error) {
	ctx := cmd.Context()
	in, err := resolveInput(args)
	if err != nil {
		return nil, err
	}

	switch in.kind {
	case inputStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		res, err := driver.Analyze(ctx, stdinName, string(data), opts)
		if err != nil {
			return nil, err
		}
		return &analysis{in: in, fileSet: res.FileSet, results: []*driver.Result{res}}, nil

	case inputFile:
		res, err := driver.AnalyzeFile(ctx, in.path, opts)
		if err != nil {
			return nil, err
		}
		return &analysis{in: in, fileSet: res.FileSet, results: []*driver.Result{res}}, nil

	default:
		var dirRes *driver.DirResult
		err := a.runWithProgress(cmd, "javapy "+cmd.Name()+" "+in.path, mode, func(sink buildpipeline.ProgressSink) error {
			o := opts
			o.Progress = sink
			r, err := driver.AnalyzeDir(ctx, in.path, o)
			if err != nil {
				return fmt.Errorf("failed to analyze %s: %w", in.path, err)
			}
			dirRes = r
			if afterDir != nil {
				return afterDir(r, sink)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &analysis{in: in, fileSet: dirRes.FileSet, results: dirRes.Files, dir: dirRes}, nil
	}
}

// sortedBag collects diags into a position-sorted bag for Pretty.
func sortedBag(diags []diag.Diagnostic) *diag.Bag {
	bag := diag.NewBag(max(len(diags), 1))
	for _, d := range diags {
		bag.Add(d)
	}
	bag.Sort()
	return bag
}

// printPretty writes every result's diagnostics in the pretty format.
func (a *app) printPretty(w io.Writer, an *analysis, opts diagfmt.PrettyOpts) error {
	for _, r := range an.results {
		diags := r.Diagnostics()
		if len(diags) == 0 {
			continue
		}
		if err := diagfmt.Pretty(w, sortedBag(diags), an.fileSet, opts); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) prettyOpts(w io.Writer) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:   a.useColor(w),
		Context: 2,
	}
}
