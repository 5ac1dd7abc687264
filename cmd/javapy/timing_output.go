package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"javapy/internal/buildpipeline"
)

// printStageTimings prints per-stage durations of a single-file run.
func printStageTimings(out io.Writer, timings buildpipeline.Timings) {
	if out == nil {
		return
	}
	var sb strings.Builder
	for _, st := range []struct {
		stage buildpipeline.Stage
		verb  string
	}{
		{buildpipeline.StageScan, "scanned"},
		{buildpipeline.StageTranslate, "translated"},
		{buildpipeline.StageVerify, "verified"},
		{buildpipeline.StageWrite, "wrote"},
	} {
		if timings.Has(st.stage) {
			fmt.Fprintf(&sb, "%s %.1f ms\n", st.verb, toMillis(timings.Duration(st.stage)))
		}
	}
	if sb.Len() > 0 {
		fmt.Fprintf(&sb, "total %.1f ms\n", toMillis(timings.Sum()))
	}
	_, _ = io.WriteString(out, sb.String())
}

// printTimings prints the run's timings when --timings is set: stage
// lines for one source, the aggregated timer table for directories.
func (a *app) printTimings(out io.Writer, an *analysis) {
	if !a.timings || an == nil {
		return
	}
	if r := an.single(); r != nil {
		printStageTimings(out, r.Timings)
		return
	}
	fmt.Fprint(out, a.timer.Summary())
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
