// Package driver wires the scanner, translator and verifier into the
// request/response contract: one source text in, tokens, lexical and
// syntactic diagnostics and generated Python out. It also runs whole
// directories in parallel and caches results on disk.
package driver
