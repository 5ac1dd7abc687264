package translator

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// isBinaryOp reports whether k joins two operands in a flat expression.
func isBinaryOp(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.AndAnd, token.OrOr:
		return true
	default:
		return false
	}
}

func startsOperand(k token.Kind) bool {
	switch k {
	case token.NumberLit, token.StringLit, token.CharLit, token.BoolLit,
		token.Ident, token.LParen, token.Minus, token.Bang:
		return true
	default:
		return false
	}
}

// isStatementBoundary - токены, на которых заканчивается любой захват до ')'.
func isStatementBoundary(k token.Kind) bool {
	switch k {
	case token.Semicolon, token.LBrace, token.RBrace, token.EOF:
		return true
	default:
		return false
	}
}

// expression captures a flat value: operands separated by binary operators.
// Capture stops at the first token that cannot continue the sequence, so a
// missing ';' leaves the next statement intact. complete is false when the
// sequence ended on an operator; nothing is consumed when the current token
// cannot start an operand.
func (p *pass) expression() (toks []token.Token, complete bool) {
	if !startsOperand(p.cur().Kind) {
		return nil, false
	}
	for {
		for p.atAny(token.Minus, token.Bang) {
			toks = append(toks, p.advance())
		}
		switch k := p.cur().Kind; {
		case k == token.LParen:
			toks = p.group(toks)
		case startsOperand(k):
			toks = append(toks, p.advance())
		default:
			return toks, false
		}
		if !isBinaryOp(p.cur().Kind) {
			return toks, true
		}
		toks = append(toks, p.advance())
	}
}

// group appends a parenthesized run up to its matching ')'.
func (p *pass) group(toks []token.Token) []token.Token {
	open := p.advance()
	toks = append(toks, open)
	depth := 1
	for depth > 0 {
		if isStatementBoundary(p.cur().Kind) {
			p.errorWithNote(p.cur(), diag.SynUnclosedParen, "expected ')', found "+quoteLexeme(p.cur()), open, "'(' opened here")
			return toks
		}
		switch p.cur().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		toks = append(toks, p.advance())
	}
	return toks
}

// parenthesized captures the tokens between an already consumed '(' and its
// matching ')', consuming the ')'. ok is false when a statement boundary came first.
func (p *pass) parenthesized() (toks []token.Token, ok bool) {
	depth := 0
	for {
		k := p.cur().Kind
		if isStatementBoundary(k) {
			return toks, false
		}
		if k == token.RParen {
			if depth == 0 {
				p.advance()
				return toks, true
			}
			depth--
		}
		if k == token.LParen {
			depth++
		}
		toks = append(toks, p.advance())
	}
}
