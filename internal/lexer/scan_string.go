package lexer

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// scanString читает "..." на одной строке. Token.Text - содержимое без кавычек,
// escape-последовательности сохраняются как есть.
func (lx *Lexer) scanString() (token.Token, bool) {
	return lx.scanQuoted('"', token.StringLit, diag.LexUnterminatedString, "unterminated string literal")
}

// scanChar читает '...'; пустой литерал ” репортится отдельно.
func (lx *Lexer) scanChar() (token.Token, bool) {
	return lx.scanQuoted('\'', token.CharLit, diag.LexUnterminatedChar, "unterminated char literal")
}

func (lx *Lexer) scanQuoted(quote byte, kind token.Kind, unterminated diag.Code, msg string) (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	contentStart := lx.cursor.Off
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			contentEnd := lx.cursor.Off
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if kind == token.CharLit && contentEnd == contentStart {
				lx.errLex(diag.LexEmptyChar, sp, "empty char literal")
				return token.Token{}, false
			}
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[contentStart:contentEnd])}, true
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				break
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(unterminated, sp, msg)
	return token.Token{}, false
}
