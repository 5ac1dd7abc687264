package translator

import (
	"javapy/internal/diag"
	"javapy/internal/token"
)

// print: System . out . println ( <expr> ) ;
// System.out.print(x) выводится как print(x, end="").
func (p *pass) print() {
	sys := p.advance()

	method, ok := p.printPrefix(sys)
	if !ok {
		return
	}
	open := p.advance() // '('

	args, closed := p.parenthesized()
	if !closed {
		p.errorWithNote(p.cur(), diag.SynUnclosedParen,
			"missing ')' in "+method+" call, found "+quoteLexeme(p.cur()), open, "'(' opened here")
	}
	p.expectSemicolon(method + " call")

	expr := FormatConcat(args)
	switch {
	case method == "println":
		p.emit("print(" + expr + ")")
	case expr == "":
		p.emit(`print(end="")`)
	default:
		p.emit("print(" + expr + `, end="")`)
	}
}

// printPrefix checks `. out . println (` after System and returns the method
// name. The '(' is left for the caller.
func (p *pass) printPrefix(sys token.Token) (string, bool) {
	bad := func(what string) (string, bool) {
		p.errorWithNote(p.cur(), diag.SynBadPrintCall,
			"malformed print call: expected "+what+", found "+quoteLexeme(p.cur()), sys, "print call starts here")
		return "", false
	}
	if !p.at(token.Dot) {
		return bad("'.'")
	}
	p.advance()
	if !p.at(token.Ident) || p.cur().Text != "out" {
		return bad("'out'")
	}
	p.advance()
	if !p.at(token.Dot) {
		return bad("'.'")
	}
	p.advance()
	if !p.at(token.Ident) || (p.cur().Text != "println" && p.cur().Text != "print") {
		return bad("'println' or 'print'")
	}
	method := p.advance().Text
	if !p.at(token.LParen) {
		return bad("'('")
	}
	return method, true
}
