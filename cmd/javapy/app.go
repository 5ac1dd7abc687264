package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"javapy/internal/config"
	"javapy/internal/driver"
	"javapy/internal/observ"
	"javapy/internal/trace"
)

// app holds per-invocation state resolved from javapy.toml and the
// global flags.
type app struct {
	manifest *config.Manifest
	// manifestFound is false when defaults are in use.
	manifestFound bool

	colorMode      string
	quiet          bool
	timings        bool
	maxDiagnostics int

	timer    *observ.Timer
	tracer   trace.Tracer
	cleanups []func()
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	if err := a.readGlobalFlags(cmd); err != nil {
		return err
	}
	if err := a.setupTracing(cmd); err != nil {
		return err
	}
	return a.setupProfiling(cmd)
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		m, err := config.Load(path)
		if err != nil {
			return err
		}
		a.manifest, a.manifestFound = m, true
		return nil
	}
	m, found, err := config.Discover(".")
	if err != nil {
		return err
	}
	a.manifest, a.manifestFound = m, found
	return nil
}

func (a *app) readGlobalFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if a.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if a.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if a.timings {
		a.timer = observ.NewTimer()
	}

	cfg := a.manifest.Config
	a.colorMode = cfg.Output.Color
	if flagChanged(cmd, "color") || a.colorMode == "" {
		if a.colorMode, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	switch a.colorMode {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", a.colorMode)
	}

	a.maxDiagnostics = cfg.Translate.MaxDiagnostics
	if flagChanged(cmd, "max-diagnostics") {
		if a.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		if a.maxDiagnostics < 0 {
			return errors.New("--max-diagnostics must be >= 0")
		}
	}
	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// useColor decides coloring for w: explicit on/off wins, auto colors
// terminals unless NO_COLOR is set.
func (a *app) useColor(w io.Writer) bool {
	switch a.colorMode {
	case "on":
		return true
	case "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// applyColor sets fatih/color's global switch for output going to w.
func (a *app) applyColor(w io.Writer) bool {
	enabled := a.useColor(w)
	color.NoColor = !enabled
	return enabled
}

// driverOptions merges [translate] settings with per-command overrides
// already applied by the caller.
func (a *app) driverOptions() driver.Options {
	t := a.manifest.Config.Translate
	return driver.Options{
		MaxDiagnostics: a.maxDiagnostics,
		StrictLoops:    t.StrictLoops,
		Verify:         t.Verify,
		Jobs:           t.Jobs,
		Extensions:     t.Extensions,
		Timer:          a.timer,
	}
}

func (a *app) close() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

// dumpTrace prints the in-memory trace ring, if any, after a failure.
func (a *app) dumpTrace(w io.Writer) {
	ring := trace.RingOf(a.tracer)
	if ring == nil {
		return
	}
	events := ring.Snapshot()
	if len(events) == 0 {
		return
	}
	fmt.Fprintf(w, "trace: last %d event(s)\n", len(events))
	if err := ring.Dump(w, trace.FormatText); err != nil {
		fmt.Fprintf(w, "trace: dump failed: %v\n", err)
	}
}
