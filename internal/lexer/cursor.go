package lexer

import (
	"fmt"

	"javapy/internal/source"

	"fortio.org/safecast"
)

// Cursor is a byte offset into one file. Limit is exclusive and starts at
// the content length.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
}

// NewCursor places a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek возвращает текущий байт или 0 на EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 возвращает два байта вперёд; ok=false, если их меньше двух.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.Limit {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Rest is the unread content.
func (c *Cursor) Rest() []byte {
	if c.EOF() {
		return nil
	}
	return c.File.Content[c.Off:c.Limit]
}

// Bump съедает байт и возвращает его; на EOF - 0.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Mark is the start offset of the lexeme being scanned.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom is the span from m up to the cursor.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}
