// Package diagfmt renders diagnostics and token streams: pretty (colored,
// with source snippet and caret underline), short one-liners, JSON, and a
// lipgloss token table.
package diagfmt
