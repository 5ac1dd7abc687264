package translator

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// conditional: if ( <cond> ) { <block> } [else { <block> } | else if ...]
// keyword is "if" or "elif" for chained else-if.
func (p *pass) conditional(keyword string) {
	kw := p.advance()

	cond, ok := p.condition(kw)
	if !ok {
		return
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace,
		"expected '{' after if condition, found "+quoteLexeme(p.cur())); !ok {
		return
	}

	p.emit(keyword + " " + cond + ":")
	if !p.block(kw, "if") {
		return
	}

	// else распознаётся только сразу после '}' блока if
	if !p.at(token.KwElse) {
		return
	}
	elseTok := p.advance()
	if p.at(token.KwIf) {
		p.conditional("elif")
		return
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace,
		"expected '{' after else, found "+quoteLexeme(p.cur())); !ok {
		return
	}
	p.emit("else:")
	p.block(elseTok, "else")
}

// pretestLoop: while ( <cond> ) { <block> }
// Ничего не выводится, пока не встречена '{'.
func (p *pass) pretestLoop() {
	kw := p.advance()

	cond, ok := p.condition(kw)
	if !ok {
		return
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace,
		"expected '{' after while condition, found "+quoteLexeme(p.cur())); !ok {
		return
	}

	p.emit("while " + cond + ":")
	p.block(kw, "while")
}

// condition parses `( <tokens> )` after if/while and renders it.
func (p *pass) condition(kw token.Token) (string, bool) {
	open, ok := p.expect(token.LParen, diag.SynExpectLParen,
		"expected '(' after "+kw.Text+", found "+quoteLexeme(p.cur()))
	if !ok {
		return "", false
	}
	toks, closed := p.parenthesized()
	if !closed {
		p.errorWithNote(p.cur(), diag.SynUnclosedParen,
			"missing ')' in "+kw.Text+" condition, found "+quoteLexeme(p.cur()), open, "'(' opened here")
		return "", false
	}
	if len(toks) == 0 {
		p.errorAt(open, diag.SynMissingValue, "empty "+kw.Text+" condition")
		return "", false
	}
	return renderCondition(toks), true
}

// renderCondition joins condition tokens with the shared rule.
func renderCondition(toks []token.Token) string {
	parts := make([]string, 0, len(toks))
	for _, tok := range toks {
		if dropDuplicateAssign(parts, tok) {
			continue
		}
		parts = append(parts, RenderToken(tok))
	}
	return joinParts(parts)
}
