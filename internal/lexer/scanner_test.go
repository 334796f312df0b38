package lexer

import (
	"os"
	"strings"
	"path/filepath"
	"slices"
	"testing"

	"docstyle/internal/diag"
	"docstyle/internal/source"
)

func scan(t *testing.T, content string) ([]string, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	comments := New(createFile(content), Options{Reporter: diag.BagReporter{Bag: bag}}).Comments()
	texts := make([]string, 0, len(comments))
	for _, c := range comments {
		texts = append(texts, c.Text)
	}
	return texts, bag
}

func TestScanComments(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"plain", "let x = 1 (* one *)\n", []string{" one "}},
		{"doc", "(** Doc. *)\nval x : int", []string{"* Doc. "}},
		{"empty", "(**)", []string{""}},
		{"several", "(*a*) x (*b*)", []string{"a", "b"}},
		{"nested", "(* outer (* inner *) tail *)", []string{" outer (* inner *) tail "}},
		{"string", `let s = "(* not a comment *)" (* real *)`, []string{" real "}},
		{"escaped quote", `let s = "a\"(*" (* c *)`, []string{" c "}},
		{"string in comment", `(* "*)" still inside *)`, []string{` "*)" still inside `}},
		{"quoted string", "let s = {|(*|} and {id|x |} (*|id} (*c*)", []string{"c"}},
		{"char literal", "let c = '\"' (* q *)", []string{" q "}},
		{"escaped char", `let c = '\'' (* q *)`, []string{" q "}},
		{"type variable", "type 'a t = 'a list (* tv *)", []string{" tv "}},
		{"primed ident", "let x' = x (* p *)", []string{" p "}},
		{"brace", "let r = { a = 1 } (* r *)", []string{" r "}},
		{"apostrophe in comment", "(* don't *)", []string{" don't "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, bag := scan(t, tc.src)
			if !slices.Equal(got, tc.want) {
				t.Fatalf("comments = %q, want %q", got, tc.want)
			}
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %+v", bag.Items())
			}
		})
	}
}

func TestScanCommentLoc(t *testing.T) {
	comments := New(createFile("val x : int\n  (** Doc *)\n"), Options{}).Comments()
	if len(comments) != 1 {
		t.Fatalf("expected one comment, got %d", len(comments))
	}
	loc := comments[0].Loc
	if loc.Start != (source.Pos{Line: 2, BOL: 12, Offset: 14}) {
		t.Fatalf("start = %+v", loc.Start)
	}
	if loc.End.Line != 2 || loc.End.Col() != 12 {
		t.Fatalf("end = %+v", loc.End)
	}
}

func TestScanUnterminated(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"let x = 1 (* open", diag.LexUnterminatedComment},
		{`let s = "open`, diag.LexUnterminatedString},
		{"let s = {x|open", diag.LexUnterminatedString},
	}
	for _, tc := range cases {
		got, bag := scan(t, tc.src)
		if len(got) != 0 {
			t.Fatalf("%q: unexpected comments %q", tc.src, got)
		}
		if bag.Len() == 0 || bag.Items()[0].Code != tc.code {
			t.Fatalf("%q: expected %v, got %+v", tc.src, tc.code, bag.Items())
		}
	}
}

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.ml")
	if err := os.WriteFile(path, []byte("(* a *)\r\nlet x = 1\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	comments, err := ScanFile(source.NewFileSet(), path, Options{})
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != " a " {
		t.Fatalf("unexpected comments %+v", comments)
	}
	if _, err := ScanFile(source.NewFileSet(), filepath.Join(t.TempDir(), "missing.ml"), Options{}); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestScanReader(t *testing.T) {
	fs := source.NewFileSet()
	comments, err := ScanReader(fs, "<stdin>", strings.NewReader("val x : int\n(** doc *)\n"), Options{})
	if err != nil {
		t.Fatalf("ScanReader: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "* doc " || comments[0].Loc.File != "<stdin>" {
		t.Fatalf("unexpected comments %+v", comments)
	}
	if comments[0].Loc.Start.Line != 2 {
		t.Fatalf("unexpected loc %+v", comments[0].Loc)
	}
	f, ok := fs.GetByPath("<stdin>")
	if !ok || f.Flags&source.FileVirtual == 0 {
		t.Fatalf("expected a virtual file in the set")
	}
}
