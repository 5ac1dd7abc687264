// Package testkit holds structural checks shared by unit and fuzz tests.
package testkit

import (
	"fmt"
	"strings"

	"javapy/internal/source"
	"javapy/internal/token"
)

// IndentUnit is the Python indentation width produced by the translator.
const IndentUnit = 4

// CheckTokenInvariants runs the invariants of a scanned token stream:
// 1) the stream is non-empty and ends with exactly one EOF
// 2) every span belongs to sf, lies within its content and is non-empty
// except for EOF
// 3) spans are ordered and never overlap
// 4) Pos is the resolved start of the span
// 5) Text is contained in the span's source text
func CheckTokenInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(toks) == 0 {
		return fmt.Errorf("empty token stream")
	}
	if last := toks[len(toks)-1]; last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %v, want EOF", last.Kind)
	}

	size := sf.Len()
	var prevEnd uint32
	for i, tok := range toks {
		sp := tok.Span
		if tok.Kind == token.EOF && i != len(toks)-1 {
			return fmt.Errorf("EOF at index %d before the end", i)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > size {
			return fmt.Errorf("token %d span %v outside content of %d bytes", i, sp, size)
		}
		if tok.Kind != token.EOF && sp.End == sp.Start {
			return fmt.Errorf("token %d (%v) has empty span", i, tok.Kind)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if want := sf.Position(sp.Start); tok.Pos != want {
			return fmt.Errorf("token %d pos %+v, want %+v", i, tok.Pos, want)
		}
		if raw := string(sf.Content[sp.Start:sp.End]); !strings.Contains(raw, tok.Text) {
			return fmt.Errorf("token %d text %q not within source %q", i, tok.Text, raw)
		}
	}
	return nil
}

// CheckOutputShape verifies generated Python text:
// 1) non-empty output ends with a newline and has no blank lines
// 2) indentation is spaces only, in whole units
// 3) a line is at most one unit deeper than the previous one, and only
// right after a header line ending with ':'
func CheckOutputShape(out string) error {
	if out == "" {
		return nil
	}
	if !strings.HasSuffix(out, "\n") {
		return fmt.Errorf("output does not end with a newline")
	}
	prevIndent := 0
	prevHeader := false
	for n, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		body := strings.TrimLeft(line, " ")
		if body == "" {
			return fmt.Errorf("line %d is blank", n+1)
		}
		if strings.HasPrefix(body, "\t") {
			return fmt.Errorf("line %d is indented with a tab", n+1)
		}
		indent := len(line) - len(body)
		if indent%IndentUnit != 0 {
			return fmt.Errorf("line %d: indentation %d is not a multiple of %d", n+1, indent, IndentUnit)
		}
		if indent > prevIndent && (!prevHeader || indent != prevIndent+IndentUnit) {
			return fmt.Errorf("line %d: unexpected indent %d after %d", n+1, indent, prevIndent)
		}
		prevIndent = indent
		prevHeader = strings.HasSuffix(body, ":")
	}
	return nil
}
