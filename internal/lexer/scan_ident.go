package lexer

import (
	"javapy/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Token.Text - ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, bool) {
	start := lx.cursor.Mark()

	if r, sz := lx.peekRune(); sz == 0 {
		return token.Token{}, false
	} else if !isIdentStart(r) {
		return lx.scanOperatorOrPunct()
	}
	lx.bumpRune()
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinue(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}, true
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}, true
}
