package docmarkup

import (
	"testing"
)

func TestParseAccepts(t *testing.T) {
	cases := []string{
		"",
		" Plain text. ",
		" Returns [x + 1] for {e any} [x]. ",
		" Nested [code [with] brackets] ",
		" {b bold} {i italic} {C centered} {^ sup} {_ sub} ",
		" {2 Heading} {3:label Labelled} ",
		" {ul {- one} {- two}\n {li three}} ",
		" {ol\n  {- first}\n} ",
		" {{:https://example.com} a link} {{!Foo.bar} ref link} ",
		" See {!Foo.bar} and {!modules: A B}. ",
		" {v verbatim { } [ v} ",
		" {[ let x = [1] in x ]} ",
		" {%html: <b>x</b> %} {%latex: \\x %} ",
		" Escaped \\{ \\} \\[ and \\@ ",
		" An email a@b.c is not a tag. ",
		"\n @param x the x\n @raise Not_found when missing\n @return y ",
		"\n @see <https://example.com> docs\n @see 'file.ml' file\n @see \"Doc\" doc ",
		"\n @since 1.2\n @deprecated use [g]\n @custom anything ",
	}
	for _, text := range cases {
		if err := Parse(text); err != nil {
			t.Fatalf("Parse(%q) = %v, want ok", text, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		text       string
		msg        string
		start, end Position
	}{
		{" {foo bar} ", MsgUnknownTag, Position{1, 1}, Position{1, 5}},
		{" a } b ", MsgUnmatchedBrace, Position{1, 3}, Position{1, 4}},
		{" [code ", MsgUnterminatedCode, Position{1, 1}, Position{1, 7}},
		{" {v never closed", MsgUnterminatedVerbatim, Position{1, 1}, Position{1, 16}},
		{" {[ pre", MsgUnterminatedPreCode, Position{1, 1}, Position{1, 7}},
		{" {!Foo", MsgUnterminatedReference, Position{1, 1}, Position{1, 6}},
		{" {!} ", MsgEmptyReference, Position{1, 1}, Position{1, 4}},
		{" {%html: x", MsgUnterminatedTarget, Position{1, 1}, Position{1, 10}},
		{" {b bold", MsgUnterminatedStyle, Position{1, 1}, Position{1, 8}},
		{" {2 title", MsgUnterminatedHeading, Position{1, 1}, Position{1, 9}},
		{" {{:url} text", MsgUnterminatedLink, Position{1, 1}, Position{1, 13}},
		{" {{foo} x}", MsgUnknownTag, Position{1, 1}, Position{1, 3}},
		{" {- item} ", MsgMisplacedItem, Position{1, 1}, Position{1, 3}},
		{" {ul x} ", MsgExpectedItem, Position{1, 5}, Position{1, 6}},
		{" {ul {- a} ", MsgUnterminatedList, Position{1, 1}, Position{1, 11}},
		{"\n @param\n", MsgBadTag("param"), Position{2, 1}, Position{2, 7}},
		{"\n @see nowhere", MsgBadTag("see"), Position{2, 1}, Position{2, 6}},
	}
	for _, tc := range cases {
		err := Parse(tc.text)
		if err == nil {
			t.Fatalf("Parse(%q): expected %q, got nil", tc.text, tc.msg)
		}
		if err.Msg != tc.msg {
			t.Fatalf("Parse(%q): expected %q, got %q", tc.text, tc.msg, err.Msg)
		}
		if err.Start != tc.start || err.End != tc.end {
			t.Fatalf("Parse(%q): expected span %v-%v, got %v-%v", tc.text, tc.start, tc.end, err.Start, err.End)
		}
	}
}

func TestParseErrorOnLaterLine(t *testing.T) {
	err := Parse(" First line.\n\n   Third {unknown} line.\n")
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Start.Line != 3 || err.Start.Column != 9 {
		t.Fatalf("expected error at 3:9, got %v", err.Start)
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{Msg: MsgUnknownTag, Start: Position{1, 2}, End: Position{1, 5}}
	if got, want := err.Error(), "1:2-1:5: Unknown markup tag"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
