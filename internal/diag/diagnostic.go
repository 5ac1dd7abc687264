package diag

import (
	"javapy/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Lexeme is the offending source text, or "EOF" when input ran out.
	Lexeme  string
	Primary source.Span
	Pos     source.LineCol
	Notes   []Note
}

// Category is derived from the code range.
func (d Diagnostic) Category() Category {
	return d.Code.Category()
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
