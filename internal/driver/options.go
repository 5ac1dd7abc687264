package driver

import (
	"runtime"

	"javapy/internal/buildpipeline"
	"javapy/internal/diag"
	"javapy/internal/observ"
)

// Options configures one Analyze/AnalyzeFile/AnalyzeDir call.
type Options struct {
	// MaxDiagnostics bounds each category separately (0 → diag.DefaultMax).
	MaxDiagnostics int
	// MaxTokenLen is forwarded to the scanner (0 → lexer default).
	MaxTokenLen int
	StrictLoops bool
	// Verify parses the generated text with pycheck.
	Verify bool
	// Jobs limits AnalyzeDir concurrency (0 → GOMAXPROCS).
	Jobs int
	// Extensions selects files in AnalyzeDir (nil → DefaultExtensions).
	Extensions []string

	Cache    *DiskCache
	Progress buildpipeline.ProgressSink
	Timer    *observ.Timer
}

// DefaultExtensions are the source suffixes picked up by AnalyzeDir.
var DefaultExtensions = []string{".java", ".jv"}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return diag.DefaultMax
	}
	return o.MaxDiagnostics
}

func (o Options) jobs(files int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, files))
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}
