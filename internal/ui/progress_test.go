package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"javapy/internal/buildpipeline"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	m := NewProgressModel("translate", []string{"a.java", "b.java"}, nil).(*progressModel)

	m.applyEvent(buildpipeline.Event{File: "a.java", Stage: buildpipeline.StageTranslate, Status: buildpipeline.StatusWorking})
	if m.items[0].status != "translating" {
		t.Fatalf("status = %q", m.items[0].status)
	}
	if got := m.fraction(); got != 0.25 {
		t.Fatalf("fraction = %v, want 0.25", got)
	}

	m.applyEvent(buildpipeline.Event{File: "a.java", Stage: buildpipeline.StageTranslate, Status: buildpipeline.StatusError, Diagnostics: 2})
	m.applyEvent(buildpipeline.Event{File: "b.java", Stage: buildpipeline.StageTranslate, Status: buildpipeline.StatusCached})
	m.applyEvent(buildpipeline.Event{File: "unknown.java", Status: buildpipeline.StatusDone})
	if got := m.fraction(); got != 1 {
		t.Fatalf("fraction = %v, want 1", got)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: translate", "error", "cached", "2 diagnostic(s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestProgressModelLearnsQueuedFiles(t *testing.T) {
	m := NewProgressModel("translate", nil, nil).(*progressModel)
	m.applyEvent(buildpipeline.Event{File: "late.java", Stage: buildpipeline.StageScan, Status: buildpipeline.StatusQueued})
	m.applyEvent(buildpipeline.Event{File: "late.java", Stage: buildpipeline.StageTranslate, Status: buildpipeline.StatusDone})
	if len(m.items) != 1 || !m.items[0].final {
		t.Fatalf("items = %+v", m.items)
	}
	m.applyEvent(buildpipeline.Event{File: "late.java", Stage: buildpipeline.StageScan, Status: buildpipeline.StatusQueued})
	if len(m.items) != 1 {
		t.Fatalf("duplicate item for repeated queued event: %+v", m.items)
	}
}

func TestRunStageLabel(t *testing.T) {
	m := NewProgressModel("x", []string{"a"}, nil).(*progressModel)
	m.applyEvent(buildpipeline.Event{Stage: buildpipeline.StageVerify, Status: buildpipeline.StatusWorking})
	if m.stageLabel != "verifying" {
		t.Fatalf("stageLabel = %q", m.stageLabel)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/very/long/path.java", 10); got != "src/ver..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("日本語.java", 3); got != "日" {
		t.Fatalf("truncate wide = %q", got)
	}
}

func TestLineSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewLineSink(&buf)
	s.OnEvent(buildpipeline.Event{File: "a.java", Status: buildpipeline.StatusWorking})
	s.OnEvent(buildpipeline.Event{File: "a.java", Status: buildpipeline.StatusError, Diagnostics: 1})
	s.OnEvent(buildpipeline.Event{File: "b.java", Status: buildpipeline.StatusError, Err: errors.New("denied")})
	s.OnEvent(buildpipeline.Event{Status: buildpipeline.StatusDone})
	want := "error   a.java (1 diagnostic(s))\nerror   b.java: denied\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}
