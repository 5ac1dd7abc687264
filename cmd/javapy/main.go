package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"javapy/internal/version"
)

// errHasDiagnostics makes the process exit 1 without printing anything
// beyond the diagnostics already shown.
var errHasDiagnostics = errors.New("diagnostics reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root, a := newRootCmd()

	defer func() {
		// при панике сначала сбрасываем кольцо трассировки
		if r := recover(); r != nil {
			a.dumpTrace(os.Stderr)
			a.close()
			panic(r)
		}
	}()

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errHasDiagnostics) {
		fmt.Fprintln(os.Stderr, "error:", err)
		a.dumpTrace(os.Stderr)
	}
	a.close()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The returned app owns resources
// (tracer, profiler) opened by PersistentPreRunE; call close after Execute.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}
	root := &cobra.Command{
		Use:   "javapy",
		Short: "Java-like mini-language to Python translator",
		Long: `javapy scans and translates a small Java-like language (typed declarations,
assignments, if/else, while, do-while, for, System.out.println) into Python,
reporting lexical and syntactic diagnostics with line and column.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 0, "maximum diagnostics per category (0 = config or default)")
	pf.String("config", "", "path to javapy.toml (default: searched upward from the working directory)")
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 0, "ring buffer capacity for --trace-mode ring|both")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	root.AddCommand(
		newTranslateCmd(a),
		newTokenizeCmd(a),
		newDiagCmd(a),
		newCheckCmd(a),
		newServeCmd(a),
		newInitCmd(a),
		newCacheCmd(a),
		newVersionCmd(a),
	)
	return root, a
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
