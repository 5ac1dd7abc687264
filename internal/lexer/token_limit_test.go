package lexer

import (
	"strings"
	"testing"

	"javapy/internal/diag"
	"javapy/internal/source"
	"javapy/internal/token"
)

func TestTokenTooLongIsReportedAndDropped(t *testing.T) {
	content := strings.Repeat("a", 9) + " b"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("long.java", []byte(content))
	file := fs.Get(fileID)

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}, MaxTokenLen: 8})

	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "b" {
		t.Fatalf("expected ident b after dropped token, got %v %q", tok.Kind, tok.Text)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", items)
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	content := strings.Repeat("b", DefaultMaxTokenLen)
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("limit.java", []byte(content))
	file := fs.Get(fileID)

	bag := diag.NewBag(1)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("expected ident token, got %v", tok.Kind)
	}
	if bag.HasErrors() {
		t.Fatalf("did not expect diagnostics, got %v", bag.Items())
	}
}
