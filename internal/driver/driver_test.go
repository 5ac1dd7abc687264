package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"javapy/internal/buildpipeline"
	"javapy/internal/diag"
	"javapy/internal/observ"
)

const sample = `int contador = 3;
String nombre = "Ana";
while (contador > 0) {
    System.out.println("Hola " + nombre);
    contador--;
}
`

const sampleOut = `contador = 3
nombre = "Ana"
while contador > 0:
    print("Hola " + str(nombre))
    contador -= 1
`

func TestAnalyzeContract(t *testing.T) {
	res, err := Analyze(context.Background(), "demo.java", sample, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Output != sampleOut {
		t.Fatalf("output mismatch:\n%s", res.Output)
	}
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics())
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res); err != nil {
		t.Fatal(err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"tokens", "lexicalErrors", "syntaxErrors", "pythonCode"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q in %s", key, buf.String())
		}
	}
	if _, ok := got["verification"]; ok {
		t.Error("verification must be omitted when not requested")
	}

	view := res.View()
	if len(view.Tokens) != len(res.Tokens)-1 {
		t.Fatalf("EOF must not be listed: %d vs %d", len(view.Tokens), len(res.Tokens))
	}
	first := view.Tokens[0]
	if first.Lexeme != "int" || first.Line != 1 || first.Column != 1 {
		t.Fatalf("unexpected first token %+v", first)
	}
	str := view.Tokens[8]
	if str.Lexeme != "Ana" || str.Line != 2 || str.Column != 17 {
		t.Fatalf("unexpected string token %+v", str)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	res, err := Analyze(context.Background(), "", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"tokens":[],"lexicalErrors":[],"syntaxErrors":[],"pythonCode":""}`
	if string(data) != want {
		t.Fatalf("got %s\nwant %s", data, want)
	}
}

func TestAnalyzeDiagnosticsView(t *testing.T) {
	res, err := Analyze(context.Background(), "bad.java", "int x = 5\n@ y = 2;\n", Options{})
	if err != nil {
		t.Fatal(err)
	}
	view := res.View()
	if len(view.LexicalErrors) != 1 || len(view.SyntaxErrors) != 1 {
		t.Fatalf("unexpected diagnostics: %+v", view)
	}
	lex := view.LexicalErrors[0]
	if lex.Type != "Lexical" || lex.Code != "LEX1001" || lex.Lexeme != "@" || lex.Line != 2 || lex.Column != 1 || lex.Severity != "error" {
		t.Fatalf("unexpected lexical view %+v", lex)
	}
	syn := view.SyntaxErrors[0]
	if syn.Type != "Syntactic" || syn.Code != "SYN2012" || syn.Line != 2 {
		t.Fatalf("unexpected syntax view %+v", syn)
	}
	if res.Output != "x = 5\ny = 2\n" {
		t.Fatalf("recovery output %q", res.Output)
	}
}

func TestAnalyzeVerify(t *testing.T) {
	res, err := Analyze(context.Background(), "demo.java", sample, Options{Verify: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Verify == nil || !res.Verify.OK || res.Verify.Statements != 3 {
		t.Fatalf("unexpected verify report %+v", res.Verify)
	}
	if v := res.View().Verification; v == nil || !v.OK {
		t.Fatalf("verification view %+v", v)
	}
	if !res.Timings.Has(buildpipeline.StageVerify) {
		t.Fatal("verify stage must be timed")
	}
}

func TestAnalyzeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Analyze(ctx, "x", "int x = 1;", Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAnalyzeFileMissing(t *testing.T) {
	_, err := AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "nope.java"), Options{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	src := "int x = 5\nSystem.out.println(\"x=\" + x);\n"
	opts := Options{Cache: cache, Verify: true}

	first, err := Analyze(context.Background(), "a.java", src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first run cannot be cached")
	}
	second, err := Analyze(context.Background(), "a.java", src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second run should hit the cache")
	}
	if second.Output != first.Output || len(second.Syntax) != len(first.Syntax) || len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("cached result differs:\n%+v\n%+v", first, second)
	}
	if second.Syntax[0].Code != diag.SynExpectSemicolon || second.Syntax[0].Pos != first.Syntax[0].Pos {
		t.Fatalf("cached diagnostic differs: %+v", second.Syntax[0])
	}
	if second.Verify == nil || second.Verify.OK != first.Verify.OK {
		t.Fatalf("verify report lost: %+v", second.Verify)
	}

	// другие опции - другой ключ
	third, err := Analyze(context.Background(), "a.java", src, Options{Cache: cache, StrictLoops: true})
	if err != nil {
		t.Fatal(err)
	}
	if third.Cached {
		t.Fatal("options must be part of the cache key")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	again, err := Analyze(context.Background(), "a.java", src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if again.Cached {
		t.Fatal("DropAll must invalidate entries")
	}
}

func writeSource(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyzeDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, "b.java"), "int x = 1;\n")
	writeSource(t, filepath.Join(dir, "sub", "a.jv"), "boolean ok = true;\n@ \n")
	writeSource(t, filepath.Join(dir, "notes.txt"), "int y = 2;\n")
	writeSource(t, filepath.Join(dir, ".hidden", "c.java"), "int z = 3;\n")

	var sink buildpipeline.CollectSink
	timer := observ.NewTimer()
	res, err := AnalyzeDir(context.Background(), dir, Options{Jobs: 2, Progress: &sink, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(res.Files))
	}
	if res.Files[0].Path != "b.java" || res.Files[1].Path != "sub/a.jv" {
		t.Fatalf("unexpected order: %q, %q", res.Files[0].Path, res.Files[1].Path)
	}
	if res.Files[0].Output != "x = 1\n" || res.Files[1].Output != "ok = True\n" {
		t.Fatalf("unexpected outputs %q %q", res.Files[0].Output, res.Files[1].Output)
	}
	if !res.HasErrors() || len(res.Files[1].Lexical) != 1 {
		t.Fatalf("expected one lexical error in sub/a.jv: %+v", res.Files[1].Lexical)
	}

	queued, terminal := 0, map[string]buildpipeline.Status{}
	for _, ev := range sink.Events() {
		if ev.Status == buildpipeline.StatusQueued {
			queued++
		}
		if ev.Terminal() {
			terminal[ev.File] = ev.Status
		}
	}
	if queued != 2 || terminal["b.java"] != buildpipeline.StatusDone || terminal["sub/a.jv"] != buildpipeline.StatusError {
		t.Fatalf("unexpected progress: queued=%d terminal=%v", queued, terminal)
	}
	if !strings.Contains(timer.Summary(), "translate") {
		t.Fatalf("timer missing translate phase:\n%s", timer.Summary())
	}
}

func TestAnalyzeDirCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, filepath.Join(dir, "a.src"), "int x = 1;\n")
	writeSource(t, filepath.Join(dir, "b.java"), "int y = 1;\n")
	res, err := AnalyzeDir(context.Background(), dir, Options{Extensions: []string{".src"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Files) != 1 || res.Files[0].Path != "a.src" {
		t.Fatalf("unexpected files %+v", res.Files)
	}
}

func TestAnalyzeDirEmpty(t *testing.T) {
	res, err := AnalyzeDir(context.Background(), t.TempDir(), Options{})
	if err != nil || len(res.Files) != 0 || res.HasErrors() {
		t.Fatalf("empty dir: %+v, %v", res, err)
	}
}
