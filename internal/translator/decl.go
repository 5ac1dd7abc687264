package translator

import (
	"strings"

	"javapy/internal/diag"
	"javapy/internal/token"
)

// declaration: <type> <id> = <value> ;
// Прерывается на первом отсутствующем обязательном токене; ';' проверяется
// уже после того, как строка выведена.
func (p *pass) declaration() {
	typ := p.advance()

	id, ok := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected identifier after '"+typ.Text+"', found "+quoteLexeme(p.cur()))
	if !ok {
		return
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectAssign,
		"expected '=' after '"+id.Text+"', found "+quoteLexeme(p.cur())); !ok {
		return
	}

	valueTok := p.cur()
	value, complete := p.expression()
	if len(value) == 0 {
		p.errorAt(valueTok, diag.SynMissingValue, "missing value in declaration of '"+id.Text+"'")
		return
	}
	if !complete {
		p.errorAt(p.cur(), diag.SynMissingValue, "expected operand after "+quoteLexeme(value[len(value)-1]))
	}

	p.emit(id.Text + " = " + renderDeclValue(typ.Kind, value))
	p.expectSemicolon("declaration of '" + id.Text + "'")
}

// renderDeclValue applies the per-type value rule: string and char
// declarations re-quote a literal with double quotes, only boolean
// declarations capitalize a true/false literal, other types pass it through.
func renderDeclValue(typ token.Kind, value []token.Token) string {
	quoted := typ == token.KwString || typ == token.KwChar
	if len(value) == 1 {
		v := value[0]
		switch {
		case quoted && v.IsQuoted():
			return doubleQuoted(v)
		case v.Kind == token.BoolLit && typ != token.KwBoolean:
			return v.Text
		}
		return RenderToken(v)
	}
	if quoted && hasQuoted(value) && len(splitTopLevelPlus(value)) > 1 {
		return FormatConcat(value)
	}
	return joinValue(value)
}

// doubleQuoted renders a string or char literal between double quotes.
func doubleQuoted(tok token.Token) string {
	if tok.Kind == token.CharLit {
		return `"` + escapeDoubleQuotes(tok.Text) + `"`
	}
	return `"` + tok.Text + `"`
}

// escapeDoubleQuotes escapes bare '"' while leaving existing escapes alone.
func escapeDoubleQuotes(s string) string {
	if !strings.Contains(s, `"`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
