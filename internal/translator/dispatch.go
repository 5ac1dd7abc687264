package translator

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// run - основной цикл верхнего уровня: пока не EOF - statement.
func (p *pass) run() {
	for !p.at(token.EOF) {
		p.statement(false)
	}
}

// statement выбирает продукцию по текущему токену. Каждая ветка съедает
// хотя бы один токен, поэтому проход всегда завершается.
func (p *pass) statement(inBlock bool) {
	p.stmts++
	tok := p.cur()
	switch {
	case tok.Kind.IsTypeKeyword():
		p.declaration()
	case tok.Kind == token.KwIf:
		p.conditional("if")
	case tok.Kind == token.KwFor:
		p.countedLoop()
	case tok.Kind == token.KwWhile:
		p.pretestLoop()
	case tok.Kind == token.KwSystem:
		p.print()
	case tok.Kind == token.Ident:
		next := p.peek(1)
		switch {
		case next.Kind == token.Assign:
			p.assignment()
		case next.Kind.IsUpdateOp():
			p.update()
		case inBlock:
			// внутри блока одиночный идентификатор просто пропускаем
			p.advance()
		default:
			p.invalid(tok)
		}
	default:
		p.invalid(tok)
	}
}

func (p *pass) invalid(tok token.Token) {
	p.errorAt(tok, diag.SynInvalidStatement, "invalid statement starting with "+quoteLexeme(tok))
	p.advance()
}

// block translates statements until the closing '}' one indent unit deeper.
// The opening '{' is already consumed. Reports SYN2007 when the block runs
// into EOF; the output already emitted stays.
func (p *pass) block(opener token.Token, construct string) bool {
	mark := p.out.Len()
	p.depth++
	for !p.atAny(token.RBrace, token.EOF) {
		p.statement(true)
	}
	if p.out.Len() == mark {
		p.emit("pass")
	}
	p.depth--

	if p.at(token.RBrace) {
		p.advance()
		return true
	}
	p.errorWithNote(p.cur(), diag.SynUnclosedBrace,
		"expected '}' to close "+construct+" block", opener, construct+" starts here")
	return false
}
