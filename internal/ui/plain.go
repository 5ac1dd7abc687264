package ui

import (
	"fmt"
	"io"
	"sync"

	"javapy/internal/buildpipeline"
)

// LineSink prints one line per terminal file event. Used when stderr is
// not a terminal or --ui=off.
type LineSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewLineSink(out io.Writer) *LineSink {
	return &LineSink{out: out}
}

func (s *LineSink) OnEvent(ev buildpipeline.Event) {
	if ev.File == "" || !ev.Terminal() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	line := fmt.Sprintf("%-7s %s", ev.Status, ev.File)
	if ev.Diagnostics > 0 {
		line += fmt.Sprintf(" (%d diagnostic(s))", ev.Diagnostics)
	}
	if ev.Err != nil {
		line += ": " + ev.Err.Error()
	}
	fmt.Fprintln(s.out, line)
}
