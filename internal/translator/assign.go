package translator

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// assignment: <id> = <tokens> ;
// Значение - все токены до ';' (цепочки вида x = y = 3 проходят как есть).
// Строка выводится даже без ';' (оптимистично), диагностика добавляется.
func (p *pass) assignment() {
	id := p.advance()
	p.advance() // '='

	valueTok := p.cur()
	value := p.untilSemicolon()
	if len(value) == 0 {
		p.errorAt(valueTok, diag.SynMissingValue, "missing value in assignment to '"+id.Text+"'")
		return
	}
	p.checkTrailingOperator(value)

	p.emit(id.Text + " = " + joinRendered(value))
	p.expectSemicolon("assignment to '" + id.Text + "'")
}

// update: <id>++ ; <id>-- ; <id> op= <tokens> ;
func (p *pass) update() {
	id := p.advance()
	op := p.advance()

	var line string
	switch op.Kind {
	case token.PlusPlus:
		line = id.Text + " += 1"
	case token.MinusMinus:
		line = id.Text + " -= 1"
	default:
		valueTok := p.cur()
		value := p.untilSemicolon()
		if len(value) == 0 {
			p.errorAt(valueTok, diag.SynMissingValue, "missing value after '"+op.Text+"'")
			return
		}
		p.checkTrailingOperator(value)
		line = id.Text + " " + op.Text + " " + joinRendered(value)
	}

	p.emit(line)
	p.expectSemicolon("update of '" + id.Text + "'")
}

// untilSemicolon captures every token up to ';' without consuming it. A
// statement boundary ('{', '}' or EOF) also ends the capture so a missing
// ';' cannot swallow the enclosing block.
func (p *pass) untilSemicolon() []token.Token {
	var toks []token.Token
	for !isStatementBoundary(p.cur().Kind) {
		toks = append(toks, p.advance())
	}
	return toks
}

// checkTrailingOperator reports a value that ends on a binary operator.
func (p *pass) checkTrailingOperator(value []token.Token) {
	if last := value[len(value)-1]; isBinaryOp(last.Kind) {
		p.errorAt(p.cur(), diag.SynMissingValue, "expected operand after "+quoteLexeme(last))
	}
}
