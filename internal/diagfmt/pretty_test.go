package diagfmt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docstyle/internal/diag"
	"docstyle/internal/source"
)

// violation на строке 2 исходника "let x = 1\nlet _ = f x\n"
func sampleBag(file string) *diag.Bag {
	bag := diag.NewBag(10)
	loc := source.Loc{
		File:  file,
		Start: source.Pos{Line: 2, BOL: 10, Offset: 18},
		End:   source.Pos{Line: 2, BOL: 10, Offset: 21},
	}
	d := diag.NewError(diag.StyMissingTypeAnnotation, loc, "Ignored expressions must come with a type annotation").
		WithNote(loc, "argument to ignore").
		WithHint("write (e : t) to make the ignored type explicit")
	bag.Add(d)
	return bag
}

func writeSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "src", "m.ml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("let x = 1\nlet _ = f x\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestPrettyExcerpt(t *testing.T) {
	path := writeSource(t)
	var buf bytes.Buffer
	Pretty(&buf, sampleBag(path), source.NewFileSet(), PrettyOpts{
		Context:   1,
		PathMode:  PathModeBasename,
		ShowNotes: true,
		ShowHints: true,
	})
	want := strings.Join([]string{
		"m.ml:2:9: ERROR STY5004: Ignored expressions must come with a type annotation",
		"1 | let x = 1",
		"2 | let _ = f x",
		"  |         ^~~",
		"  note: m.ml:2:9: argument to ignore",
		"  help: write (e : t) to make the ignored type explicit",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag("/nowhere/m.ml"), source.NewFileSet(), PrettyOpts{PathMode: PathModeBasename})
	out := buf.String()
	if !strings.HasPrefix(out, "m.ml:2:9: ERROR STY5004:") {
		t.Fatalf("unexpected header: %q", out)
	}
	if strings.Contains(out, "|") || strings.Contains(out, "note:") || strings.Contains(out, "help:") {
		t.Fatalf("expected header only, got:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, sampleBag("m.ml"), nil, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes, got %q", buf.String())
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	bag := sampleBag("/home/user/project/src/m.ml")

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/m.ml:2:9"},
		{PathModeRelative, "src/m.ml:2:9"},
		{PathModeBasename, "m.ml:2:9"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			if !strings.HasPrefix(buf.String(), tt.want+":") {
				t.Fatalf("expected prefix %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestShort(t *testing.T) {
	var buf bytes.Buffer
	if err := Short(&buf, sampleBag("lib/m.ml"), ShortOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("Short: %v", err)
	}
	want := "m.ml:2:9: ERROR STY5004: Ignored expressions must come with a type annotation\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestClip(t *testing.T) {
	if got := clip("abcdef", 4); got != "abc…" {
		t.Fatalf("clip = %q", got)
	}
	if got := clip("short", 0); got != "short" {
		t.Fatalf("clip without width = %q", got)
	}
}
