package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"javapy/internal/source"
	"javapy/internal/token"
)

type TokenOutput struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Span   source.Span `json:"span"`
	Line   uint32      `json:"line"`
	Column uint32      `json:"column"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		line := fmt.Sprintf("%3d: %-12s", i+1, tok.Kind.String())
		if tok.Text != "" {
			line += fmt.Sprintf(" %q", tok.Text)
		}
		line += fmt.Sprintf(" at %d:%d-%d:%d\n", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате, EOF включительно.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Span:   tok.Span,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Col,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatTokensTable renders the token list as a bordered table with the
// columns of the web console view: index, type, lexeme, line,
// column. EOF is omitted.
func FormatTokensTable(w io.Writer, tokens []token.Token, colored bool) error {
	rows := make([][]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		rows = append(rows, []string{
			strconv.Itoa(len(rows)),
			tok.Kind.String(),
			tok.Text,
			strconv.FormatUint(uint64(tok.Pos.Line), 10),
			strconv.FormatUint(uint64(tok.Pos.Col), 10),
		})
	}
	border := lipgloss.NewStyle()
	if colored {
		border = border.Foreground(lipgloss.Color("8"))
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers("#", "type", "lexeme", "line", "column").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}
