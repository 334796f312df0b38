package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("lib/foo.ml", []byte("let x = 1"), 0)
	id2 := fs.Add("lib/foo.ml", []byte("let x = 2"), 0)
	if id1 == id2 {
		t.Fatalf("expected a fresh FileID for the second Add")
	}

	f, ok := fs.GetByPath("lib/foo.ml")
	if !ok {
		t.Fatalf("expected file to be found by path")
	}
	if f.ID != id2 {
		t.Errorf("expected latest id %d, got %d", id2, f.ID)
	}
	if string(fs.Get(id1).Content) != "let x = 1" {
		t.Errorf("old version must stay reachable by id")
	}
}

// TestAddVirtualLineIdx проверяет правильность построения LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.ml", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], val)
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	normalized, changed := normalizeCRLF([]byte("a\r\nb\r\nc\r"))
	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if string(normalized) != "a\nb\nc\r" {
		t.Errorf("unexpected normalized content %q", normalized)
	}
}

func TestBOMRemoval(t *testing.T) {
	withoutBOM, hadBOM := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !hadBOM {
		t.Error("expected BOM to be detected")
	}
	if string(withoutBOM) != "x\n" {
		t.Errorf("unexpected content %q", withoutBOM)
	}
}

func TestLoadSetsFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.ml")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFlet x = 1\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("expected BOM and CRLF flags, got %b", f.Flags)
	}
	if string(f.Content) != "let x = 1\n" {
		t.Errorf("unexpected content %q", f.Content)
	}
	again, err := fs.LoadOnce(path)
	if err != nil {
		t.Fatalf("LoadOnce: %v", err)
	}
	if again.ID != id {
		t.Errorf("LoadOnce must reuse the loaded file")
	}
}

func TestPosMultiline(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("m.ml", []byte("ab\ncd\n\nef")))

	tests := []struct {
		off  uint32
		want Pos
	}{
		{0, Pos{Line: 1, BOL: 0, Offset: 0}},
		{2, Pos{Line: 1, BOL: 0, Offset: 2}}, // '\n' closes line 1
		{3, Pos{Line: 2, BOL: 3, Offset: 3}},
		{6, Pos{Line: 3, BOL: 6, Offset: 6}},
		{8, Pos{Line: 4, BOL: 7, Offset: 8}},
	}
	for _, tt := range tests {
		if got := f.Pos(tt.off); got != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestPosUTF8(t *testing.T) {
	fs := NewFileSet()
	// α занимает 2 байта, колонки байтовые
	f := fs.Get(fs.AddVirtual("u.ml", []byte("α\nx")))
	if p := f.Pos(2); p.Line != 1 || p.Col() != 2 {
		t.Errorf("unexpected pos %+v", p)
	}
	if p := f.Pos(3); p != (Pos{Line: 2, BOL: 3, Offset: 3}) {
		t.Errorf("unexpected pos %+v", p)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("l.ml", []byte("one\ntwo\nthree")))
	for line, want := range map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""} {
		if got := f.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}
