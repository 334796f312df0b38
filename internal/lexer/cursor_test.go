package lexer

import (
	"testing"

	"docstyle/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ml", []byte(content))
	return fs.Get(id)
}

func TestCursorBumpAndPeek(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek() = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatalf("expected EOF with zero bytes")
	}
}

func TestCursorPeekAt(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if cursor.PeekAt(2) != 'c' {
		t.Fatalf("PeekAt(2) = %q", cursor.PeekAt(2))
	}
	if cursor.PeekAt(3) != 0 {
		t.Fatalf("PeekAt past the end must be 0")
	}
}

func TestCursorPrefix(t *testing.T) {
	cursor := NewCursor(createFile("(* x *)"))
	if cursor.HasPrefix("*)") {
		t.Fatalf("unexpected prefix match")
	}
	if !cursor.EatPrefix("(*") || cursor.Peek() != ' ' {
		t.Fatalf("EatPrefix did not advance")
	}
	if cursor.EatPrefix(" x *) and more") {
		t.Fatalf("prefix longer than the input must not match")
	}
}

func TestCursorEatAndReset(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	mark := cursor.Mark()
	if cursor.Eat('x') {
		t.Fatalf("Eat('x') must fail on 'a'")
	}
	if !cursor.Eat('a') || !cursor.Eat('b') {
		t.Fatalf("Eat failed on matching input")
	}
	if cursor.Eat('b') {
		t.Fatalf("Eat at EOF must fail")
	}
	if got := cursor.TextFrom(mark); got != "ab" {
		t.Fatalf("TextFrom = %q", got)
	}
	cursor.Reset(mark)
	if cursor.Peek() != 'a' {
		t.Fatalf("Reset did not rewind")
	}
}

func TestCursorLocAndText(t *testing.T) {
	// α занимает 2 байта
	cursor := NewCursor(createFile("α\nβ"))
	cursor.Bump()
	cursor.Bump()
	cursor.Bump()
	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()

	if text := cursor.TextFrom(mark); text != "β" {
		t.Fatalf("text = %q", text)
	}
	loc := cursor.LocFrom(mark)
	if loc.File != "test.ml" {
		t.Fatalf("loc file = %q", loc.File)
	}
	if loc.Start != (source.Pos{Line: 2, BOL: 3, Offset: 3}) {
		t.Fatalf("loc start = %+v", loc.Start)
	}
	if loc.End.Line != 2 || loc.End.Col() != 2 {
		t.Fatalf("loc end = %+v", loc.End)
	}
}
