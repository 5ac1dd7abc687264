package translator

import (
	"fmt"

	"javapy/internal/diag"
	"javapy/internal/token"
)

// loopHeader reads a for header. In strict mode the first token that does
// not fit the expected shape is reported once.
type loopHeader struct {
	p        *pass
	strict   bool
	reported bool
	broken   bool // переменная, начало или граница не найдены
}

// deviation records a mismatch at tok; only the first one per header is kept.
func (h *loopHeader) deviation(tok token.Token, msg string) {
	if !h.strict || h.reported {
		return
	}
	h.reported = true
	h.p.errorAt(tok, diag.SynForBadHeader, "malformed for header: "+msg+", found "+quoteLexeme(tok))
}

// clause captures one header clause up to stop and consumes stop, which is
// returned as end. A clause that runs into '{', '}', EOF or the other
// separator reports the token found and leaves it unconsumed.
func (h *loopHeader) clause(stop token.Kind, what string) (toks []token.Token, end token.Token, ok bool) {
	p := h.p
	depth := 0
	for {
		tok := p.cur()
		switch {
		case tok.Kind == stop && (depth == 0 || stop == token.Semicolon):
			return toks, p.advance(), true
		case tok.Kind == token.Semicolon,
			tok.Kind == token.RParen && depth == 0,
			tok.Kind == token.LBrace, tok.Kind == token.RBrace, tok.Kind == token.EOF:
			h.deviation(tok, "expected "+what)
			return toks, tok, false
		case tok.Kind == token.LParen:
			depth++
		case tok.Kind == token.RParen:
			depth--
		}
		toks = append(toks, p.advance())
	}
}

// clauseReader walks the tokens of one captured clause. Past the last token
// it keeps returning the clause terminator.
type clauseReader struct {
	toks []token.Token
	end  token.Token
}

func (r *clauseReader) peek() token.Token {
	if len(r.toks) == 0 {
		return r.end
	}
	return r.toks[0]
}

func (r *clauseReader) next() token.Token {
	tok := r.peek()
	if len(r.toks) > 0 {
		r.toks = r.toks[1:]
	}
	return tok
}

func (r *clauseReader) rest() []token.Token {
	toks := r.toks
	r.toks = nil
	return toks
}

// initClause: [<type>] <id> = <start>
func (h *loopHeader) initClause(r clauseReader) (variable token.Token, start []token.Token) {
	if r.peek().Kind.IsTypeKeyword() {
		r.next()
	} else {
		h.deviation(r.peek(), "expected a type")
	}
	variable = r.peek()
	if variable.Kind != token.Ident {
		h.deviation(variable, "expected the loop variable")
		h.broken = true
		return variable, nil
	}
	r.next()
	if r.peek().Kind == token.Assign {
		r.next()
	} else {
		h.deviation(r.peek(), "expected '='")
	}
	if start = r.rest(); len(start) == 0 {
		h.deviation(r.end, "expected a start value")
		h.broken = true
	}
	return variable, start
}

// condClause: <id> <cmp> <limit>
func (h *loopHeader) condClause(r clauseReader, variable token.Token) (cmp token.Token, limit []token.Token) {
	if condVar := r.next(); condVar.Kind != token.Ident {
		h.deviation(condVar, "expected the loop variable")
	} else if condVar.Text != variable.Text {
		h.deviation(condVar, "condition must test '"+variable.Text+"'")
	}
	cmp = r.next()
	if !isLoopComparison(cmp.Kind) {
		h.deviation(cmp, "expected a comparison")
	}
	if limit = r.rest(); len(limit) == 0 {
		h.deviation(r.end, "expected a limit")
		h.broken = true
	}
	return cmp, limit
}

// updateClause: <id> ++ | <id> --
func (h *loopHeader) updateClause(r clauseReader, variable, cmp token.Token) (step token.Token) {
	if updVar := r.next(); updVar.Kind != token.Ident {
		h.deviation(updVar, "expected the loop variable")
	} else if updVar.Text != variable.Text {
		h.deviation(updVar, "update must change '"+variable.Text+"'")
	}
	step = r.next()
	if step.Kind != token.PlusPlus && step.Kind != token.MinusMinus {
		h.deviation(step, "'++'")
	}
	if descending := cmp.Kind == token.Gt || cmp.Kind == token.GtEq; descending != (step.Kind == token.MinusMinus) {
		h.deviation(step, "an update matching the comparison direction")
	}
	if extra := dropStrayPlus(r.rest()); len(extra) > 0 {
		h.deviation(extra[0], "expected ')'")
	}
	return step
}

func isLoopComparison(k token.Kind) bool {
	return k == token.Lt || k == token.LtEq || k == token.Gt || k == token.GtEq
}

// countedLoop: for ( <type> <id> = <start> ; <id> < <limit> ; <id> ++ ) { <block> }
// Каждая клауза захватывается до своего разделителя, значения внутри неё
// извлекаются по позициям, поэтому старт и граница могут быть выражениями.
// Без StrictLoops диагностик нет вовсе. Пропущенная ')' перед '{' терпима;
// без '{' или без переменной/начала/границы заголовок не выводится и тело
// не разбирается как тело цикла.
func (p *pass) countedLoop() {
	p.advance() // 'for'
	h := &loopHeader{p: p, strict: p.opts.StrictLoops}

	if !p.at(token.LParen) {
		h.deviation(p.cur(), "expected '('")
		return
	}
	p.advance()

	toks, end, ok := h.clause(token.Semicolon, "';'")
	if !ok {
		return
	}
	variable, start := h.initClause(clauseReader{toks, end})

	if toks, end, ok = h.clause(token.Semicolon, "';'"); !ok {
		return
	}
	cmp, limit := h.condClause(clauseReader{toks, end}, variable)

	toks, end, ok = h.clause(token.RParen, "')'")
	if !ok && !p.at(token.LBrace) {
		return
	}
	step := h.updateClause(clauseReader{toks, end}, variable, cmp)

	if !p.at(token.LBrace) {
		h.deviation(p.cur(), "expected '{'")
		return
	}
	if h.broken {
		return
	}
	p.advance()

	p.emit(fmt.Sprintf("for %s in %s:", RenderToken(variable),
		rangeCall(joinValue(start), joinValue(limit), cmp.Kind, step.Kind)))

	p.depth++
	mark := p.out.Len()
	for !p.atAny(token.RBrace, token.EOF) {
		p.statement(true)
	}
	if p.out.Len() == mark {
		p.emit("pass")
	}
	p.depth--
	if !p.at(token.RBrace) {
		h.deviation(p.cur(), "'}' to close the for block")
		return
	}
	p.advance()
}

// rangeCall renders the range for the comparison/step pair. The plain
// `<` with `++` shape gives range(start, limit); inclusive and descending
// loops adjust the bound and step.
func rangeCall(start, limit string, cmp, step token.Kind) string {
	switch {
	case cmp == token.LtEq && step != token.MinusMinus:
		return fmt.Sprintf("range(%s, %s + 1)", start, limit)
	case cmp == token.Gt && step == token.MinusMinus:
		return fmt.Sprintf("range(%s, %s, -1)", start, limit)
	case cmp == token.GtEq && step == token.MinusMinus:
		return fmt.Sprintf("range(%s, %s - 1, -1)", start, limit)
	default:
		return fmt.Sprintf("range(%s, %s)", start, limit)
	}
}
