package lexer

import (
	"unicode/utf8"

	"javapy/internal/diag"
	"javapy/internal/source"
	"javapy/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Scan lexes the whole file and returns the tokens terminated by EOF.
func Scan(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next возвращает следующий значимый токен.
// Ошибочные лексемы репортятся и пропускаются. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipTrivia()

		if lx.cursor.EOF() {
			sp := lx.emptySpan()
			return token.Token{
				Kind: token.EOF,
				Span: sp,
				Pos:  lx.file.Position(sp.Start),
			}
		}

		tok, ok := lx.scanToken()
		if !ok {
			continue
		}
		if tok.Span.Len() > lx.opts.maxTokenLen() {
			lx.errLex(diag.LexTokenTooLong, tok.Span, "token too long")
			continue
		}
		tok.Pos = lx.file.Position(tok.Span.Start)
		return tok
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// scanToken picks a scanner by the current byte. ok is false when the
// lexeme was malformed; the scanner has already reported it.
func (lx *Lexer) scanToken() (tok token.Token, ok bool) {
	ch := lx.cursor.Peek()
	switch {
	case ch < utf8.RuneSelf && isIdentStart(rune(ch)):
		return lx.scanIdentOrKeyword()
	case ch >= utf8.RuneSelf:
		// Возможный Unicode идентификатор → scanIdentOrKeyword() разберётся
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
