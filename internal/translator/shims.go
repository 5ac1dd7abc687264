package translator

import (
	"strings"

	"javapy/internal/token"
)

// Compensations for scanners that split two-character operators. The
// scanner in this module lexes '==' and '++' greedily, so on its output
// these only fire for literal '== =' and '+++' sequences.

// dropDuplicateAssign reports whether tok is a '=' that directly follows
// condition text already ending in '='.
func dropDuplicateAssign(parts []string, tok token.Token) bool {
	if tok.Kind != token.Assign || len(parts) == 0 {
		return false
	}
	return strings.HasSuffix(parts[len(parts)-1], "=")
}

// dropStrayPlus drops one '+' left after the loop increment.
func dropStrayPlus(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[0].Kind == token.Plus {
		return toks[1:]
	}
	return toks
}
