package translator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"javapy/internal/diag"
	"javapy/internal/source"
	"javapy/internal/token"

	"fortio.org/safecast"
)

const indentUnit = "    "

// pass - состояние одного прохода: курсор, буфер вывода, отступ и диагностики.
// Создаётся заново на каждый вызов Translate.
type pass struct {
	toks  []token.Token
	pos   int
	out   strings.Builder
	depth int
	bag   *diag.Bag
	opts  Options
	stmts int
}

func newPass(tokens []token.Token, opts Options) *pass {
	toks := tokens
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		toks = append(slices.Clip(tokens), eofAfter(tokens))
	}
	return &pass{
		toks: toks,
		bag:  diag.NewBag(opts.MaxDiagnostics),
		opts: opts,
	}
}

// eofAfter builds the sentinel placed right after the last token.
func eofAfter(tokens []token.Token) token.Token {
	if len(tokens) == 0 {
		return token.Token{Kind: token.EOF, Pos: source.LineCol{Line: 1, Col: 1}}
	}
	sp, pos := endOf(tokens[len(tokens)-1])
	return token.Token{Kind: token.EOF, Span: sp, Pos: pos}
}

// endOf returns the empty span and position just past tok.
func endOf(tok token.Token) (source.Span, source.LineCol) {
	n, err := safecast.Conv[uint32](utf8.RuneCountInString(sourceText(tok)))
	if err != nil {
		panic(fmt.Errorf("lexeme length overflow: %w", err))
	}
	pos := tok.Pos
	pos.Col += n
	return tok.Span.At(), pos
}

// cur - текущий токен; на EOF курсор дальше не двигается.
func (p *pass) cur() token.Token {
	return p.toks[p.pos]
}

// peek смотрит на n токенов вперёд, не выходя за EOF.
func (p *pass) peek(n int) token.Token {
	return p.toks[min(p.pos+n, len(p.toks)-1)]
}

func (p *pass) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *pass) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.cur().Kind)
}

// advance - съедает текущий токен и возвращает его. EOF не съедается.
func (p *pass) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

// expect съедает токен kind или репортит code на текущем токене.
func (p *pass) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errorAt(p.cur(), code, msg)
	return p.cur(), false
}

func (p *pass) expectSemicolon(what string) bool {
	_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after "+what+", found "+quoteLexeme(p.cur()))
	return ok
}

// emit пишет строку с текущим отступом.
func (p *pass) emit(line string) {
	for i, n := 0, p.depth; i < n; i++ {
		p.out.WriteString(indentUnit)
	}
	p.out.WriteString(line)
	p.out.WriteByte('\n')
}

// errorAt records a syntactic error citing tok. On EOF the position is the
// one right after the last real token and the lexeme is "EOF".
func (p *pass) errorAt(tok token.Token, code diag.Code, msg string) {
	sp, pos := tok.Span, tok.Pos
	if tok.Kind == token.EOF && len(p.toks) > 1 {
		sp, pos = endOf(p.toks[len(p.toks)-2])
	}
	diag.ReportError(diag.BagReporter{Bag: p.bag}, code, sp, msg).
		WithLexeme(lexemeOf(tok)).
		At(pos).
		Emit()
}

// errorWithNote is errorAt plus a note pointing at the construct opener.
func (p *pass) errorWithNote(tok token.Token, code diag.Code, msg string, opener token.Token, note string) {
	sp, pos := tok.Span, tok.Pos
	if tok.Kind == token.EOF && len(p.toks) > 1 {
		sp, pos = endOf(p.toks[len(p.toks)-2])
	}
	diag.ReportError(diag.BagReporter{Bag: p.bag}, code, sp, msg).
		WithLexeme(lexemeOf(tok)).
		At(pos).
		WithNote(opener.Span, note).
		Emit()
}
