package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"javapy/internal/diag"
	"javapy/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, note, code, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Bold),
		path:   color.New(color.FgWhite, color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее). Для каждой печатает
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	var sb strings.Builder
	for i, d := range bag.Items() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeDiagnostic(&sb, d, fs, opts, pal)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDiagnostic(sb *strings.Builder, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity).Sprint(d.Severity.String())
	code := pal.code.Sprint(d.Code.ID())

	file := fileOf(fs, d.Primary)
	if d.Category() == diag.CategoryIO || file == nil {
		// ошибки ввода-вывода не имеют позиции в исходнике
		loc := d.Lexeme
		if loc == "" {
			loc = "<input>"
		}
		fmt.Fprintf(sb, "%s: %s %s: %s\n", pal.path.Sprint(loc), sev, code, d.Message)
		return
	}

	start, end := fs.Resolve(d.Primary)
	path := displayPath(file, fs, opts.PathMode)
	fmt.Fprintf(sb, "%s: %s %s: %s\n", pal.path.Sprintf("%s:%d:%d", path, start.Line, start.Col), sev, code, d.Message)
	writeSnippet(sb, file, start, end, opts.Context, pal)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fileOf(fs, n.Span)
		if nf == nil {
			fmt.Fprintf(sb, "  %s: %s\n", pal.note.Sprint("note"), n.Msg)
			continue
		}
		ns, ne := fs.Resolve(n.Span)
		fmt.Fprintf(sb, "  %s: %s: %s\n", pal.note.Sprint("note"),
			pal.path.Sprintf("%s:%d:%d", displayPath(nf, fs, opts.PathMode), ns.Line, ns.Col), n.Msg)
		writeSnippet(sb, nf, ns, ne, 0, pal)
	}
}

// writeSnippet prints the line of start (plus context lines above) and an
// underline covering start..end, clipped to that line. Widths come from
// go-runewidth so wide characters keep the caret aligned.
func writeSnippet(sb *strings.Builder, f *source.File, start, end source.LineCol, context int, pal palette) {
	if start.Line == 0 {
		return
	}
	gutterWidth := len(fmt.Sprint(start.Line))
	first := max(int(start.Line)-max(context, 0), 1)
	for ln := first; ln <= int(start.Line); ln++ {
		lnU, err := safecast.Conv[uint32](ln)
		if err != nil {
			panic(fmt.Errorf("line number overflow: %w", err))
		}
		text := expandTabs(f.GetLine(lnU))
		fmt.Fprintf(sb, " %s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, ln), text)
	}

	line := []rune(f.GetLine(start.Line))
	col := min(int(start.Col)-1, len(line))
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(int(end.Col)-1, len(line))
	}
	pad := runewidth.StringWidth(expandTabs(string(line[:col])))
	width := 1
	if endCol > col {
		width = max(runewidth.StringWidth(expandTabs(string(line[col:endCol]))), 1)
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(sb, " %s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""), strings.Repeat(" ", pad), pal.caret.Sprint(underline))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
