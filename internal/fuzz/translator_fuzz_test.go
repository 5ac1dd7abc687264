package fuzztests

import (
	"context"
	"testing"
	"time"

	"javapy/internal/diag"
	"javapy/internal/lexer"
	"javapy/internal/source"
	"javapy/internal/testkit"
	"javapy/internal/translator"
)

// translateTimeout bounds one pass; exceeding it means the cursor stopped
// advancing somewhere.
const translateTimeout = 5 * time.Second

func FuzzTranslatorNoHang(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan translator.Result, 1)
		go func() {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.java", input))
			toks := lexer.Scan(file, lexer.Options{})
			for _, strict := range []bool{false, true} {
				res := translator.New(translator.Options{StrictLoops: strict, MaxDiagnostics: 128}).
					Translate(context.Background(), toks)
				if strict {
					done <- res
				}
			}
		}()

		var res translator.Result
		select {
		case res = <-done:
		case <-time.After(translateTimeout):
			t.Fatalf("translator hang detected after %v\ninput (%d bytes): %q",
				translateTimeout, len(input), truncateForLog(input, 200))
		}

		if err := testkit.CheckOutputShape(res.Output); err != nil {
			t.Fatalf("%v\noutput:\n%s", err, res.Output)
		}
		for _, d := range res.Diagnostics {
			if d.Category() != diag.CategorySyntactic || d.Pos.Line == 0 {
				t.Fatalf("bad diagnostic %+v", d)
			}
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
