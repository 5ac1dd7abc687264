package testkit

import (
	"strings"
	"testing"

	"javapy/internal/lexer"
	"javapy/internal/source"
	"javapy/internal/token"
)

func scan(t *testing.T, src string) ([]token.Token, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("kit.java", []byte(src)))
	return lexer.Scan(f, lexer.Options{}), f
}

func TestTokenInvariantsHoldForScanner(t *testing.T) {
	for _, src := range []string{"", "int x = 5;", "String s = \"héllo\";\n// c\nx++;", "@@ #"} {
		toks, f := scan(t, src)
		if err := CheckTokenInvariants(toks, f); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestTokenInvariantsDetectBrokenStreams(t *testing.T) {
	toks, f := scan(t, "a b")

	noEOF := toks[:len(toks)-1]
	if err := CheckTokenInvariants(noEOF, f); err == nil || !strings.Contains(err.Error(), "want EOF") {
		t.Fatalf("missing EOF: %v", err)
	}

	swapped := []token.Token{toks[1], toks[0], toks[2]}
	if err := CheckTokenInvariants(swapped, f); err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("out of order: %v", err)
	}

	moved := append([]token.Token(nil), toks...)
	moved[1].Pos.Col++
	if err := CheckTokenInvariants(moved, f); err == nil || !strings.Contains(err.Error(), "pos") {
		t.Fatalf("wrong pos: %v", err)
	}
}

func TestCheckOutputShape(t *testing.T) {
	good := "x = 1\nwhile x > 0:\n    if x == 1:\n        pass\n    x -= 1\nprint(x)\n"
	if err := CheckOutputShape(good); err != nil {
		t.Fatal(err)
	}
	for name, bad := range map[string]string{
		"no newline":  "x = 1",
		"odd indent":  "if x:\n  y = 1\n",
		"no header":   "x = 1\n    y = 2\n",
		"double step": "if x:\n        y = 1\n",
		"blank":       "x = 1\n\ny = 2\n",
	} {
		if err := CheckOutputShape(bad); err == nil {
			t.Errorf("%s: accepted %q", name, bad)
		}
	}
}
