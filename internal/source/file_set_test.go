package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("Main.java", []byte("int x = 1;"), 0)
	id2 := fs.Add("Main.java", []byte("int y = 2;"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", id1, id2)
	}

	// индекс всегда указывает на последнюю версию
	f, ok := fs.GetByPath("Main.java")
	if !ok {
		t.Fatal("expected file to be indexed by path")
	}
	if f.ID != id2 {
		t.Errorf("expected latest id %d, got %d", id2, f.ID)
	}
	if string(fs.Get(id1).Content) != "int x = 1;" {
		t.Errorf("first version must stay reachable")
	}
	if fs.Len() != 2 {
		t.Errorf("expected 2 files, got %d", fs.Len())
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.java", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestAddVirtualNormalizes(t *testing.T) {
	fs := NewFileSet()
	input := []byte("\xEF\xBB\xBFint x = 1;\r\nint y = 2;\r\n")
	file := fs.Get(fs.AddVirtual("crlf.java", input))

	if want := "int x = 1;\nint y = 2;\n"; string(file.Content) != want {
		t.Fatalf("content = %q, want %q", file.Content, want)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestNormalizeComposesNFC(t *testing.T) {
	// "n" + COMBINING TILDE -> "ñ"
	content, flags := Normalize([]byte("an\u0303o"))
	if string(content) != "a\u00f1o" {
		t.Fatalf("expected NFC composed text, got %q", content)
	}
	if flags&FileNormalizedNFC == 0 {
		t.Error("expected FileNormalizedNFC flag")
	}

	content, flags = Normalize([]byte("plain"))
	if string(content) != "plain" || flags != 0 {
		t.Errorf("ascii input must pass through untouched, got %q flags=%d", content, flags)
	}
}

func TestResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.java", []byte("int x;\n  año = 1;\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{4, LineCol{Line: 1, Col: 5}},
		{6, LineCol{Line: 1, Col: 7}}, // сам '\n' принадлежит первой строке
		{7, LineCol{Line: 2, Col: 1}},
		{9, LineCol{Line: 2, Col: 3}},
		// "año" занимает 4 байта, колонки считаются в рунах
		{14, LineCol{Line: 2, Col: 7}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestPositionClampsPastEnd(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.java", []byte("ab")))
	if got := f.Position(100); got != (LineCol{Line: 1, Col: 3}) {
		t.Errorf("got %+v", got)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("lines.java", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{
		0: "",
		1: "first",
		2: "second",
		3: "third",
		4: "",
	}
	for line, want := range cases {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Prog.java")
	if err := os.WriteFile(path, []byte("int a = 1;\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int a = 1;\n" {
		t.Errorf("unexpected content %q", f.Content)
	}
	if f.Flags&FileVirtual != 0 {
		t.Error("loaded file must not be virtual")
	}
	if got := f.FormatPath("relative", fs.BaseDir()); got != "Prog.java" {
		t.Errorf("relative path = %q", got)
	}
	if got := f.FormatPath("basename", ""); got != "Prog.java" {
		t.Errorf("basename = %q", got)
	}

	if _, err := fs.Load(filepath.Join(dir, "missing.java")); err == nil {
		t.Error("expected error for missing file")
	}
}
