package lexer

import (
	"javapy/internal/diag"
)

// skipTrivia пропускает пробелы, переводы строк и комментарии перед значимым токеном.
// - //... до \n
// - /* ... */ без вложенности; если не закрыт - репорт и курсор на EOF
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			lx.cursor.Bump()
			continue
		case '/':
			if lx.skipComment() {
				continue
			}
		}
		return
	}
}

func (lx *Lexer) skipComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	start := lx.cursor.Mark()
	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true
	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return true
			}
			lx.cursor.Bump()
		}
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		return true
	}
	return false
}
