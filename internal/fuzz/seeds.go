package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addReadmeSeeds(f)
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
}

// inlineSeeds cover recovery paths the golden files do not reach.
var inlineSeeds = []string{
	"",
	"int x = 5;\n",
	"int x = 5\nint y = 6;\n",
	"for (int i = 0; i < 5; i++ +) {}",
	"for (",
	"if (a > 1 {\n",
	"if (x) { } else if (y) { } else",
	"while (",
	"System.out.println(\"a\" + (b + \"c\"",
	"System.out",
	"String s = 'unterminated",
	"/* open comment",
	"x += ; y -- ; z *= (1 + ;",
	"}}}}{{{{",
	"\uFEFFint\r\nx = 1;\r\n",
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "translator", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.java файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".java" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addReadmeSeeds adds every ```java block of the repository README.
func addReadmeSeeds(f *testing.F) {
	// #nosec G304 -- path is a fixed repository location
	data, err := os.ReadFile(filepath.Join("..", "..", "README.md"))
	if err != nil {
		return
	}
	var block [][]byte
	inBlock := false
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		trimmed := strings.TrimSpace(string(line))
		if strings.HasPrefix(trimmed, "```java") {
			inBlock = true
			block = block[:0]
			continue
		}
		if strings.HasPrefix(trimmed, "```") {
			if inBlock {
				if snippet := clampSeed(bytes.Join(block, []byte{'\n'})); len(snippet) > 0 {
					f.Add(snippet)
				}
			}
			inBlock = false
			continue
		}
		if inBlock {
			block = append(block, line)
		}
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
