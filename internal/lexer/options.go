package lexer

import (
	"javapy/internal/diag"
	"javapy/internal/source"
)

// DefaultMaxTokenLen bounds a single lexeme when Options.MaxTokenLen is zero.
const DefaultMaxTokenLen = 4096

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
	// MaxTokenLen is the longest accepted lexeme in bytes; longer ones are
	// reported as LEX1005 and dropped.
	MaxTokenLen int
}

func (o Options) maxTokenLen() uint32 {
	if o.MaxTokenLen <= 0 {
		return DefaultMaxTokenLen
	}
	return uint32(min(o.MaxTokenLen, 1<<30))
}

// errLex reports a lexical error carrying the offending lexeme and its position.
func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).
		WithLexeme(string(lx.file.Content[sp.Start:sp.End])).
		At(lx.file.Position(sp.Start)).
		Emit()
}
