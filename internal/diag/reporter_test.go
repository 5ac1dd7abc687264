package diag

import (
	"testing"

	"javapy/internal/source"
)

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	rep := BagReporter{Bag: bag}

	b := ReportError(rep, SynExpectSemicolon, span(3, 4), "expected ';'").
		WithLexeme("EOF").
		At(source.LineCol{Line: 1, Col: 4}).
		WithNote(span(0, 3), "statement starts here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Lexeme != "EOF" || d.Pos.Col != 4 || len(d.Notes) != 1 {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if d.Category() != CategorySyntactic {
		t.Fatalf("category = %v, want Syntactic", d.Category())
	}
}

func TestNilBuilderIsSafe(t *testing.T) {
	var b *ReportBuilder
	b.WithLexeme("x").At(source.LineCol{}).Emit()
	if got := b.Diagnostic(); got.Code != UnknownCode {
		t.Fatalf("unexpected diagnostic from nil builder: %+v", got)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	rep := NewDedupReporter(BagReporter{Bag: bag})

	d := NewError(LexUnknownChar, span(0, 1), "unknown character '#'")
	rep.Report(d)
	rep.Report(d)
	rep.Report(NewError(LexUnknownChar, span(1, 2), "unknown character '#'"))

	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestNopReporter(t *testing.T) {
	NopReporter{}.Report(NewError(LexUnknownChar, span(0, 1), "ignored"))
}
