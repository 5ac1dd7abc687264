package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"int":     KwInt,
		"double":  KwDouble,
		"char":    KwChar,
		"String":  KwString,
		"string":  KwString,
		"boolean": KwBoolean,
		"if":      KwIf,
		"else":    KwElse,
		"for":     KwFor,
		"while":   KwWhile,
		"System":  KwSystem,
		"true":    BoolLit,
		"false":   BoolLit,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"If", "WHILE", "TRUE", "system", // регистр важен
		"out", "println", "print", // часть print-префикса, но идентификаторы
		"public", "class", "void", "nombre",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
