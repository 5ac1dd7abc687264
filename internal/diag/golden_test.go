package diag

import (
	"testing"

	"javapy/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	userFile := fs.Add("/workspace/testdata/golden/sample.java", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynExpectSemicolon,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynInvalidStatement,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.java:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.java:2:1 note line\n" +
		"warning SYN2012 testdata/golden/sample.java:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsKeepsOrder(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", []byte("x\ny\n"))

	diags := []Diagnostic{
		NewError(SynExpectSemicolon, source.Span{File: id, Start: 2, End: 3}, "second"),
		NewError(LexUnknownChar, source.Span{File: id, Start: 0, End: 1}, "first"),
	}

	expected := "error SYN2012 <input>:2:1 second\n" +
		"error LEX1001 <input>:1:1 first"
	if got := FormatShortDiagnostics(diags, fs, false); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatDiagnosticsSkipsUnknownFile(t *testing.T) {
	fs := source.NewFileSet()
	diags := []Diagnostic{NewError(SynInvalidStatement, source.Span{File: 7}, "lost")}
	if got := FormatShortDiagnostics(diags, fs, false); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
