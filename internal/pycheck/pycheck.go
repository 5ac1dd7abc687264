// Package pycheck verifies that generated text parses as Python.
package pycheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// Report is the outcome of one check.
type Report struct {
	OK bool
	// Statements is the number of top-level statements in the parsed module.
	Statements int
	// Line and Offset locate a syntax error, 0 when unknown.
	Line   int
	Offset int
	Err    error
}

// String renders the report in one line.
func (r Report) String() string {
	if r.OK {
		return fmt.Sprintf("ok (%d statements)", r.Statements)
	}
	if r.Line > 0 {
		return fmt.Sprintf("line %d: %v", r.Line, r.Err)
	}
	return r.Err.Error()
}

// ErrNotModule is returned when the parser yields something other than a module.
var ErrNotModule = errors.New("parsed result is not a module")

// Check parses output in exec mode. Empty output is valid.
func Check(output string) Report {
	if strings.TrimSpace(output) == "" {
		return Report{OK: true}
	}
	tree, err := parser.Parse(strings.NewReader(output), "<output>", py.ExecMode)
	if err != nil {
		r := Report{Err: err}
		r.Line, r.Offset = errorLocation(err)
		return r
	}
	mod, ok := tree.(*ast.Module)
	if !ok {
		return Report{Err: ErrNotModule}
	}
	return Report{OK: true, Statements: len(mod.Body)}
}

// errorLocation pulls lineno/offset out of a SyntaxError, if present.
func errorLocation(err error) (line, offset int) {
	var exc *py.Exception
	if !errors.As(err, &exc) || exc.Dict == nil {
		return 0, 0
	}
	if v, ok := exc.Dict["lineno"].(py.Int); ok {
		line = int(v)
	}
	if v, ok := exc.Dict["offset"].(py.Int); ok {
		offset = int(v)
	}
	return line, offset
}
