package lexer_test

import (
	"strings"
	"testing"

	"javapy/internal/diag"
	"javapy/internal/lexer"
	"javapy/internal/source"
	"javapy/internal/testkit"
	"javapy/internal/token"
)

// scanAll лексит строку и возвращает токены (с EOF) и собранные диагностики.
func scanAll(t *testing.T, input string) ([]token.Token, []diag.Diagnostic) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.java", []byte(input))
	bag := diag.NewBag(100)
	toks := lexer.Scan(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag.Items()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func expectKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestDeclaration(t *testing.T) {
	toks, diags := scanAll(t, "int x = 5;")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expectKinds(t, toks, token.KwInt, token.Ident, token.Assign, token.NumberLit, token.Semicolon, token.EOF)
	if toks[1].Text != "x" || toks[3].Text != "5" {
		t.Fatalf("unexpected texts: %q %q", toks[1].Text, toks[3].Text)
	}
}

func TestKeywordsAndLiterals(t *testing.T) {
	toks, _ := scanAll(t, "double char String string boolean if else for while System true false")
	expectKinds(t, toks,
		token.KwDouble, token.KwChar, token.KwString, token.KwString, token.KwBoolean,
		token.KwIf, token.KwElse, token.KwFor, token.KwWhile, token.KwSystem,
		token.BoolLit, token.BoolLit, token.EOF)
	if toks[10].Text != "true" {
		t.Fatalf("bool literal text = %q", toks[10].Text)
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	toks, _ := scanAll(t, "Int WHILE system")
	expectKinds(t, toks, token.Ident, token.Ident, token.Ident, token.EOF)
}

func TestOperatorsGreedy(t *testing.T) {
	toks, diags := scanAll(t, "== != <= >= ++ -- += -= *= /= && || + - * / % = ! < >")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expectKinds(t, toks,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq, token.PlusPlus, token.MinusMinus,
		token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.AndAnd, token.OrOr, token.Plus, token.Minus, token.Star, token.Slash,
		token.Percent, token.Assign, token.Bang, token.Lt, token.Gt, token.EOF)
}

func TestPunctuation(t *testing.T) {
	toks, _ := scanAll(t, "System.out.println(x);{}")
	expectKinds(t, toks,
		token.KwSystem, token.Dot, token.Ident, token.Dot, token.Ident,
		token.LParen, token.Ident, token.RParen, token.Semicolon,
		token.LBrace, token.RBrace, token.EOF)
}

func TestIncrementWithoutSpaces(t *testing.T) {
	toks, _ := scanAll(t, "i++)")
	expectKinds(t, toks, token.Ident, token.PlusPlus, token.RParen, token.EOF)
}

func TestStringAndCharContent(t *testing.T) {
	toks, diags := scanAll(t, `"Hola \"mundo\"" 'a' '\n'`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expectKinds(t, toks, token.StringLit, token.CharLit, token.CharLit, token.EOF)
	if toks[0].Text != `Hola \"mundo\"` {
		t.Fatalf("string text = %q", toks[0].Text)
	}
	if toks[1].Text != "a" || toks[2].Text != `\n` {
		t.Fatalf("char texts = %q %q", toks[1].Text, toks[2].Text)
	}
}

func TestNumbers(t *testing.T) {
	toks, diags := scanAll(t, "0 42 3.14 7.")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expectKinds(t, toks, token.NumberLit, token.NumberLit, token.NumberLit, token.NumberLit, token.Dot, token.EOF)
	if toks[2].Text != "3.14" || toks[3].Text != "7" {
		t.Fatalf("unexpected number texts: %q %q", toks[2].Text, toks[3].Text)
	}
}

func TestCommentsSkipped(t *testing.T) {
	toks, diags := scanAll(t, "a // line comment\n/* block\ncomment */ b / c")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	expectKinds(t, toks, token.Ident, token.Ident, token.Slash, token.Ident, token.EOF)
	if toks[1].Pos != (source.LineCol{Line: 3, Col: 12}) {
		t.Fatalf("b position = %+v", toks[1].Pos)
	}
}

func TestPositionsAreOneBasedRuneColumns(t *testing.T) {
	toks, _ := scanAll(t, "int x = 5;\n  String ñame = \"é\"; y")
	want := []source.LineCol{
		{Line: 1, Col: 1}, {Line: 1, Col: 5}, {Line: 1, Col: 7}, {Line: 1, Col: 9}, {Line: 1, Col: 10},
		{Line: 2, Col: 3}, {Line: 2, Col: 10}, {Line: 2, Col: 15}, {Line: 2, Col: 17}, {Line: 2, Col: 20},
		{Line: 2, Col: 22},
	}
	for i, pos := range want {
		if toks[i].Pos != pos {
			t.Errorf("token %d (%q) pos = %+v, want %+v", i, toks[i].Text, toks[i].Pos, pos)
		}
	}
	if toks[6].Text != "ñame" {
		t.Fatalf("unicode identifier text = %q", toks[6].Text)
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		code   diag.Code
		lexeme string
		pos    source.LineCol
		kinds  []token.Kind
	}{
		{"unknown char", "x # y", diag.LexUnknownChar, "#", source.LineCol{Line: 1, Col: 3},
			[]token.Kind{token.Ident, token.Ident, token.EOF}},
		{"unknown unicode char", "a € b", diag.LexUnknownChar, "€", source.LineCol{Line: 1, Col: 3},
			[]token.Kind{token.Ident, token.Ident, token.EOF}},
		{"unterminated string", "s = \"abc\nx", diag.LexUnterminatedString, "\"abc", source.LineCol{Line: 1, Col: 5},
			[]token.Kind{token.Ident, token.Assign, token.Ident, token.EOF}},
		{"unterminated char", "c = 'a", diag.LexUnterminatedChar, "'a", source.LineCol{Line: 1, Col: 5},
			[]token.Kind{token.Ident, token.Assign, token.EOF}},
		{"empty char", "c = '';", diag.LexEmptyChar, "''", source.LineCol{Line: 1, Col: 5},
			[]token.Kind{token.Ident, token.Assign, token.Semicolon, token.EOF}},
		{"bad number", "x = 12abc;", diag.LexBadNumber, "12abc", source.LineCol{Line: 1, Col: 5},
			[]token.Kind{token.Ident, token.Assign, token.Semicolon, token.EOF}},
		{"unterminated comment", "x /* never", diag.LexUnterminatedBlockComment, "/* never", source.LineCol{Line: 1, Col: 3},
			[]token.Kind{token.Ident, token.EOF}},
		{"lone ampersand", "a & b", diag.LexUnknownChar, "&", source.LineCol{Line: 1, Col: 3},
			[]token.Kind{token.Ident, token.Ident, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, diags := scanAll(t, tt.input)
			if len(diags) != 1 {
				t.Fatalf("diagnostics = %d, want 1: %v", len(diags), diags)
			}
			d := diags[0]
			if d.Code != tt.code {
				t.Fatalf("code = %s, want %s", d.Code.ID(), tt.code.ID())
			}
			if d.Category() != diag.CategoryLexical {
				t.Fatalf("category = %v", d.Category())
			}
			if d.Lexeme != tt.lexeme {
				t.Fatalf("lexeme = %q, want %q", d.Lexeme, tt.lexeme)
			}
			if d.Pos != tt.pos {
				t.Fatalf("pos = %+v, want %+v", d.Pos, tt.pos)
			}
			expectKinds(t, toks, tt.kinds...)
		})
	}
}

func TestScanningAlwaysCompletes(t *testing.T) {
	toks, diags := scanAll(t, "@@@ int [] x")
	if len(diags) != 5 {
		t.Fatalf("diagnostics = %d, want 5", len(diags))
	}
	expectKinds(t, toks, token.KwInt, token.Ident, token.EOF)
}

func TestEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("eof.java", []byte("x"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("first token = %v", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v", tok.Kind)
		}
		if tok.Pos != (source.LineCol{Line: 1, Col: 2}) {
			t.Fatalf("EOF pos = %+v", tok.Pos)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("peek.java", []byte("a b"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next after peek = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second = %q", n.Text)
	}
}

func TestTokensOrderedBySpan(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("order.java", []byte(strings.Repeat("if (a >= 10) { a--; }\n", 5)+"String s = \"ñ\"; char c = 'x';"))
	toks := lexer.Scan(fs.Get(id), lexer.Options{})
	if err := testkit.CheckTokenInvariants(toks, fs.Get(id)); err != nil {
		t.Fatal(err)
	}
}
