// Package translator turns the scanner's token stream into Python text in a
// single forward pass, without building a syntax tree.
//
// Each statement production (declaration, assignment, update, if/else,
// for, while, print) validates its shape and emits its output as it goes.
// Errors become syntactic diagnostics; the production either aborts where it
// stopped or, for a missing ';' or '}', keeps what it already emitted. The
// cursor moves forward by at least one token per statement, so a pass over
// any token sequence terminates.
//
// Blocks are indented by four spaces per level. An empty block emits `pass`
// so the output stays valid Python.
package translator
