package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, dir := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	target := filepath.Join(otherDir, "file.ml")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.ml")

	got, err := RelativePath(target, tmp)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := "nested/file.ml"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestFormatPathModes(t *testing.T) {
	long := "/very/long/absolute/path/that/goes/on/and/on/src/foo_intf.ml"
	if got := FormatPath(long, "basename", ""); got != "foo_intf.ml" {
		t.Errorf("basename: %q", got)
	}
	if got := FormatPath(long, "auto", ""); got != "foo_intf.ml" {
		t.Errorf("auto on long absolute path: %q", got)
	}
	if got := FormatPath("src/a.ml", "auto", ""); got != "src/a.ml" {
		t.Errorf("auto on relative path: %q", got)
	}
}

func TestLocRendering(t *testing.T) {
	loc := Loc{
		File:  "a.ml",
		Start: Pos{Line: 3, BOL: 20, Offset: 24},
		End:   Pos{Line: 3, BOL: 20, Offset: 30},
	}
	if got := loc.String(); got != "a.ml:3:5" {
		t.Errorf("String() = %q", got)
	}
	if got := loc.Range(); got != "a.ml:3:5-11" {
		t.Errorf("Range() = %q", got)
	}
	if (Pos{Line: 2, BOL: 0, Offset: 7}).Col() != 7 {
		t.Errorf("column of a remapped interior position must equal its offset")
	}
	if !NoLoc.IsZero() || loc.IsZero() {
		t.Errorf("IsZero mismatch")
	}
	if got := (Loc{}).WithFile("b.ml").File; got != "b.ml" {
		t.Errorf("WithFile: %q", got)
	}
}
