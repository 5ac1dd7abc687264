// Package token defines lexical token kinds for the javapy translator.
// Invariants:
//   - Token.Span covers the whole lexeme in the source, quotes included.
//   - Token.Text is the source slice, except for string and char literals
//     where it holds the content between the quotes with escapes kept verbatim.
//   - Token.Pos is the 1-based line/column of Span.Start (columns count runes).
//   - Type names (int, double, char, String, boolean) are keywords, not
//     identifiers: declarations dispatch on them directly.
//   - The scanner always terminates the stream with exactly one EOF token.
package token
