package token

import (
	"javapy/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Pos  source.LineCol
}

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool {
	return t.Kind == k
}

// IsLiteral reports whether the token is a number, string, char or boolean literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, CharLit, BoolLit:
		return true
	default:
		return false
	}
}

// IsQuoted reports whether the token renders with quotes.
func (t Token) IsQuoted() bool {
	return t.Kind == StringLit || t.Kind == CharLit
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwInt && t.Kind <= KwSystem
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool {
	return t.Kind == Ident
}
