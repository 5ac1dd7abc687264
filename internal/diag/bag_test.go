package diag

import (
	"testing"

	"javapy/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestBagRespectsLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 4; i++ {
		b.Add(NewError(SynInvalidStatement, span(uint32(i), uint32(i+1)), "x"))
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
	if b.Dropped() != 2 {
		t.Fatalf("dropped = %d, want 2", b.Dropped())
	}
}

func TestBagDefaultLimit(t *testing.T) {
	if got := NewBag(0).Cap(); got != DefaultMax {
		t.Fatalf("cap = %d, want %d", got, DefaultMax)
	}
}

func TestBagByCategoryAndSeverity(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(LexUnknownChar, span(0, 1), "lex"))
	b.Add(New(SevWarning, SynForBadHeader, span(1, 2), "syn"))

	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatalf("expected errors and warnings")
	}
	lex := b.ByCategory(CategoryLexical)
	if len(lex) != 1 || lex[0].Code != LexUnknownChar {
		t.Fatalf("unexpected lexical items: %+v", lex)
	}
	syn := b.ByCategory(CategorySyntactic)
	if len(syn) != 1 || syn[0].Code != SynForBadHeader {
		t.Fatalf("unexpected syntactic items: %+v", syn)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynExpectSemicolon, span(5, 6), "b"))
	b.Add(NewError(SynInvalidStatement, span(0, 1), "a"))
	b.Add(NewError(SynInvalidStatement, span(0, 1), "a again"))

	b.Sort()
	items := b.Items()
	if items[0].Primary.Start != 0 || items[2].Primary.Start != 5 {
		t.Fatalf("unexpected order: %+v", items)
	}

	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("len after dedup = %d, want 2", b.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, span(0, 1), "a"))
	other := NewBag(2)
	other.Add(NewError(SynInvalidStatement, span(1, 2), "b"))
	other.Add(NewError(SynInvalidStatement, span(2, 3), "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("len = %d, want 3", a.Len())
	}
	if a.Items()[0].Code != LexUnknownChar {
		t.Fatalf("merge must append after existing items")
	}
}

func TestBagFilter(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(LexUnknownChar, span(0, 1), "a"))
	b.Add(New(SevInfo, SynInfo, span(1, 2), "b"))
	b.Filter(func(d Diagnostic) bool { return d.Severity >= SevError })
	if b.Len() != 1 || b.Items()[0].Code != LexUnknownChar {
		t.Fatalf("unexpected items after filter: %+v", b.Items())
	}
}
