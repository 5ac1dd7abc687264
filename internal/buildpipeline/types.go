package buildpipeline

import "time"

// Stage describes a high-level pipeline phase.
type Stage string

const (
	// StageScan tokenizes a source file.
	StageScan Stage = "scan"
	// StageTranslate runs the single-pass translator.
	StageTranslate Stage = "translate"
	// StageVerify parses the generated Python.
	StageVerify Stage = "verify"
	// StageWrite stores the output file.
	StageWrite Stage = "write"
)

// Stages lists the stages in execution order.
var Stages = []Stage{StageScan, StageTranslate, StageVerify, StageWrite}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	// StatusCached marks a file served from the result cache.
	StatusCached Status = "cached"
)

// Event reports progress for a file, or for the whole run when File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
	// Diagnostics is the count of lexical plus syntactic findings, set on
	// terminal events.
	Diagnostics int
}

// Terminal reports whether no further events follow for this file.
func (e Event) Terminal() bool {
	return e.Status == StatusDone || e.Status == StatusError || e.Status == StatusCached
}

// ProgressSink consumes progress events. Implementations must be safe
// for concurrent use; AnalyzeDir emits from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// Timings holds stage durations.
type Timings struct {
	stages map[Stage]time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// Has reports whether a duration for stage is recorded.
func (t Timings) Has(stage Stage) bool {
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Sum returns the sum of durations across the provided stages; with no
// arguments it sums everything recorded.
func (t Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	if len(stages) == 0 {
		for _, d := range t.stages {
			total += d
		}
		return total
	}
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
