package driver

import (
	"encoding/json"
	"io"

	"javapy/internal/buildpipeline"
	"javapy/internal/diag"
	"javapy/internal/pycheck"
	"javapy/internal/source"
	"javapy/internal/token"
)

// Result is the outcome of translating one source.
type Result struct {
	FileSet *source.FileSet
	FileID  source.FileID
	// Path is the display name: relative path for files, the
	// caller-provided name for in-memory sources.
	Path string

	// Tokens includes the trailing EOF sentinel.
	Tokens  []token.Token
	Lexical []diag.Diagnostic
	Syntax  []diag.Diagnostic
	// IO holds load failures; such a result has no tokens.
	IO     []diag.Diagnostic
	Output string

	Verify *pycheck.Report
	Cached bool

	Timings buildpipeline.Timings
}

// File returns the source file, nil after a load failure.
func (r *Result) File() *source.File {
	if r == nil || r.FileSet == nil || len(r.IO) > 0 {
		return nil
	}
	return r.FileSet.Get(r.FileID)
}

// Diagnostics returns IO, lexical and syntactic findings in that order.
func (r *Result) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(r.IO)+len(r.Lexical)+len(r.Syntax))
	out = append(out, r.IO...)
	out = append(out, r.Lexical...)
	return append(out, r.Syntax...)
}

// Bag collects Diagnostics into a bag large enough for all of them.
func (r *Result) Bag() *diag.Bag {
	all := r.Diagnostics()
	bag := diag.NewBag(max(len(all), 1))
	for _, d := range all {
		bag.Add(d)
	}
	return bag
}

// HasErrors reports whether the output should be treated as unreliable.
func (r *Result) HasErrors() bool {
	return len(r.IO)+len(r.Lexical)+len(r.Syntax) > 0 || (r.Verify != nil && !r.Verify.OK)
}

// TokenView is the external form of a token.
type TokenView struct {
	Type   string `json:"type"`
	Lexeme string `json:"lexeme"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// DiagnosticView is the external form of a diagnostic.
type DiagnosticView struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Lexeme   string `json:"lexeme"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
}

// VerifyView reports the Python parse check.
type VerifyView struct {
	OK         bool   `json:"ok"`
	Statements int    `json:"statements"`
	Line       int    `json:"line,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ResultView is the request/response contract. Field names follow the
// /analizar endpoint.
type ResultView struct {
	Tokens        []TokenView      `json:"tokens"`
	LexicalErrors []DiagnosticView `json:"lexicalErrors"`
	SyntaxErrors  []DiagnosticView `json:"syntaxErrors"`
	PythonCode    string           `json:"pythonCode"`
	Verification  *VerifyView      `json:"verification,omitempty"`
}

// View converts r to its external form. EOF is not listed among tokens;
// IO failures are listed with the lexical errors.
func (r *Result) View() ResultView {
	v := ResultView{
		Tokens:        make([]TokenView, 0, len(r.Tokens)),
		LexicalErrors: make([]DiagnosticView, 0, len(r.IO)+len(r.Lexical)),
		SyntaxErrors:  make([]DiagnosticView, 0, len(r.Syntax)),
		PythonCode:    r.Output,
	}
	for _, tok := range r.Tokens {
		if tok.Kind == token.EOF {
			continue
		}
		v.Tokens = append(v.Tokens, TokenView{
			Type:   tok.Kind.String(),
			Lexeme: tok.Text,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Col,
		})
	}
	for _, d := range r.IO {
		v.LexicalErrors = append(v.LexicalErrors, diagnosticView(d))
	}
	for _, d := range r.Lexical {
		v.LexicalErrors = append(v.LexicalErrors, diagnosticView(d))
	}
	for _, d := range r.Syntax {
		v.SyntaxErrors = append(v.SyntaxErrors, diagnosticView(d))
	}
	if r.Verify != nil {
		vv := &VerifyView{OK: r.Verify.OK, Statements: r.Verify.Statements, Line: r.Verify.Line}
		if r.Verify.Err != nil {
			vv.Error = r.Verify.Err.Error()
		}
		v.Verification = vv
	}
	return v
}

func diagnosticView(d diag.Diagnostic) DiagnosticView {
	return DiagnosticView{
		Type:     d.Category().String(),
		Code:     d.Code.ID(),
		Severity: d.Severity.Label(),
		Lexeme:   d.Lexeme,
		Message:  d.Message,
		Line:     d.Pos.Line,
		Column:   d.Pos.Col,
	}
}

func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.View())
}

// WriteJSON writes the result view as indented JSON.
func WriteJSON(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.View())
}
