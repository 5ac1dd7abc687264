package lexer

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// Поддержка: 0, 123, 1.0, 3.14. Точка без цифры после неё в число не входит.
// Число, сразу за которым идёт символ идентификатора (12abc), репортится и отбрасывается.
func (lx *Lexer) scanNumber() (token.Token, bool) {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if lx.atIdentContinue() {
		for lx.atIdentContinue() {
			lx.bumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, "bad number literal '"+lx.text(sp)+"'")
		return token.Token{}, false
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}, true
}

func (lx *Lexer) atIdentContinue() bool {
	r, sz := lx.peekRune()
	return sz > 0 && isIdentContinue(r)
}
