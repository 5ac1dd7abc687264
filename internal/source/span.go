package source

import "fmt"

// Span is a half-open byte range [Start, End) in one file of a FileSet.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Len is the span width in bytes. Only EOF tokens have a zero width.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

// At returns the empty span right after s; diagnostics about a missing
// token point there.
func (s Span) At() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
