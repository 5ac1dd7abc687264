package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), `
[translate]
strict_loops = true
jobs = 2
extensions = ["java", ".src"]

[output]
dir = "out"
color = "off"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Discover(nested)
	if err != nil || !ok {
		t.Fatalf("Discover: ok=%v err=%v", ok, err)
	}
	cfg := m.Config
	if !cfg.Translate.StrictLoops || cfg.Translate.Jobs != 2 || cfg.Output.Color != "off" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Translate.MaxDiagnostics != 1000 {
		t.Fatalf("defaults must survive partial files, got %d", cfg.Translate.MaxDiagnostics)
	}
	if !slices.Equal(cfg.Translate.Extensions, []string{".java", ".src"}) {
		t.Fatalf("extensions not normalized: %v", cfg.Translate.Extensions)
	}
	if got := m.ResolveOutputDir(); got != filepath.Join(root, "out") {
		t.Fatalf("ResolveOutputDir = %q", got)
	}
}

func TestDiscoverWithoutManifest(t *testing.T) {
	m, ok, err := Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// a javapy.toml above the temp dir would be picked up; only check defaults when absent
	if !ok && m.Config.Translate.MaxDiagnostics != 1000 {
		t.Fatalf("expected defaults, got %+v", m.Config)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	writeFile(t, path, "[translate]\nstrict = true\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "translate.strict") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"color": "[output]\ncolor = \"sometimes\"\n",
		"jobs":  "[translate]\njobs = -1\n",
		"exts":  "[translate]\nextensions = []\n",
		"toml":  "[translate\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			writeFile(t, path, body)
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDefault(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := WriteDefault(dir, false); err == nil {
		t.Fatal("second WriteDefault must refuse to overwrite")
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	if m.Config.Translate.MaxDiagnostics != want.Translate.MaxDiagnostics ||
		!slices.Equal(m.Config.Translate.Extensions, want.Translate.Extensions) ||
		m.Config.Output.Color != want.Output.Color {
		t.Fatalf("round trip mismatch: %+v", m.Config)
	}
}
