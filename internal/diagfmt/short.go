package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"javapy/internal/diag"
	"javapy/internal/source"
)

// Short writes one line per diagnostic in emission order:
// "error SYN2012 demo.java:3:1 expected ';' ...". IO failures have no
// position and print their path instead.
func Short(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet) error {
	var sb strings.Builder
	located := make([]diag.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d.Category() == diag.CategoryIO {
			fmt.Fprintf(&sb, "error %s %s %s\n", d.Code.ID(), d.Lexeme, d.Message)
			continue
		}
		located = append(located, d)
	}
	if out := diag.FormatShortDiagnostics(located, fs, false); out != "" {
		sb.WriteString(out)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
