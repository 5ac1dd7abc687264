// Package diag defines the diagnostic model shared by the scanner and the
// translator.
//
// # Purpose
//
//   - Provide plain data records for lexical and syntactic findings.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not perform formatting beyond the one-line golden form,
// IO, or CLI integration. Rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – numeric identifier with a stable string form (LEX1001, SYN2012).
//   - Category – Lexical or Syntactic, derived from the code range.
//   - Lexeme – the offending token text, or "EOF" when input ran out.
//   - Primary/Pos – the byte span and its 1-based line/column.
//   - Notes – optional secondary spans.
//
// Diagnostics are emitted, never thrown: producers append to a Reporter and
// keep going. Bag preserves emission order until Sort is called.
package diag
