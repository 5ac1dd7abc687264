package translator

import (
	"strings"

	"javapy/internal/token"
)

// RenderToken is the per-token rule shared by every construct: string
// literals are double-quoted, char literals single-quoted, true/false become
// True/False and the logical operators become their Python keywords.
// Everything else is its lexeme.
func RenderToken(tok token.Token) string {
	switch tok.Kind {
	case token.StringLit:
		return `"` + tok.Text + `"`
	case token.CharLit:
		return "'" + tok.Text + "'"
	case token.BoolLit:
		switch tok.Text {
		case "true":
			return "True"
		case "false":
			return "False"
		}
		return tok.Text
	case token.AndAnd:
		return "and"
	case token.OrOr:
		return "or"
	case token.Bang:
		return "not"
	default:
		return tok.Text
	}
}

// FormatConcat renders a print argument. Without a top-level '+' or without
// any quoted literal the flat rendering is returned unchanged; otherwise
// each '+'-separated segment that is not a single quoted literal is wrapped
// in str(...).
func FormatConcat(toks []token.Token) string {
	segments := splitTopLevelPlus(toks)
	if len(segments) < 2 || !hasQuoted(toks) {
		return joinRendered(toks)
	}
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if len(seg) == 1 && seg[0].IsQuoted() {
			parts = append(parts, RenderToken(seg[0]))
			continue
		}
		parts = append(parts, "str("+joinRendered(seg)+")")
	}
	return strings.Join(parts, " + ")
}

// splitTopLevelPlus splits on binary '+' outside parentheses.
func splitTopLevelPlus(toks []token.Token) [][]token.Token {
	var (
		segments [][]token.Token
		depth    int
		start    int
	)
	for i, tok := range toks {
		switch tok.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.Plus:
			if depth == 0 {
				segments = append(segments, toks[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, toks[start:])
}

func hasQuoted(toks []token.Token) bool {
	for _, tok := range toks {
		if tok.IsQuoted() {
			return true
		}
	}
	return false
}

// joinRendered renders each token and joins them with single spaces.
func joinRendered(toks []token.Token) string {
	parts := make([]string, 0, len(toks))
	for _, tok := range toks {
		parts = append(parts, RenderToken(tok))
	}
	return joinParts(parts)
}

func joinParts(parts []string) string {
	return strings.TrimSpace(strings.Join(parts, " "))
}

// joinValue is joinRendered with unary minus glued to its operand (-5).
func joinValue(toks []token.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 && !isUnaryMinus(toks, i-1) {
			b.WriteByte(' ')
		}
		b.WriteString(RenderToken(tok))
	}
	return strings.TrimSpace(b.String())
}

// isUnaryMinus reports whether toks[i] is a '-' in prefix position.
func isUnaryMinus(toks []token.Token, i int) bool {
	if toks[i].Kind != token.Minus {
		return false
	}
	if i == 0 {
		return true
	}
	prev := toks[i-1].Kind
	return isBinaryOp(prev) || prev == token.LParen || prev == token.Bang
}

// sourceText reconstructs the lexeme as written, quotes included.
func sourceText(tok token.Token) string {
	switch tok.Kind {
	case token.StringLit:
		return `"` + tok.Text + `"`
	case token.CharLit:
		return "'" + tok.Text + "'"
	default:
		return tok.Text
	}
}

// lexemeOf is the text a diagnostic cites for tok.
func lexemeOf(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "EOF"
	}
	return sourceText(tok)
}

func quoteLexeme(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return "'" + sourceText(tok) + "'"
}
