package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

var sourceSeeds = []string{
	"",
	"let x = 1\n",
	"(** doc *)\nval x : int\n",
	"(* plain *) (** {b bold} [code] *)",
	"(** {v verbatim v} {[ let x = 1 ]} @param x the value *)",
	"(* \"string with *) inside\" *)",
	"let s = {|quoted (* |}\n(* after *)",
	"(* (* nested *) *)",
	"(** unterminated",
	"let c = '\"' (* c *)",
}

var markupSeeds = []string{
	"",
	"plain text",
	"{b bold} {i italic} {e emph}",
	"{1 Heading} {ul {- a} {- b}}",
	"{!Module.value} {{!ref} text}",
	"{{:http://example.com} link}",
	"[code] {[ block ]} {v verb v}",
	"@param x value\n@raise Not_found never\n@see <url> target",
	"{b unterminated",
	"@since 4.08 @deprecated use y",
}

var dumpSeeds = []string{
	`{"file": "m.ml", "items": []}`,
	`{"file": "m.ml", "items": [{"kind": "value", "bindings": [
  {"pat": {"kind": "var", "name": "x"}, "expr": {"kind": "constant", "const": "int", "text": "1"}}]}]}`,
	`{"file": "m.ml", "items": [{"kind": "value", "bindings": [
  {"pat": {"kind": "any"}, "expr": {"kind": "apply", "fn": {"kind": "ident", "name": "f"},
   "args": [{"expr": {"kind": "ident", "name": "x"}}]}}]}]}`,
	`{"file": "m.mli", "kind": "intf", "items": [{"kind": "val", "name": "x", "type": "int"}]}`,
	`{"file": "m.ml", "items": [{"kind": "unknown"}]}`,
	`{`,
}

// addSourceSeeds adds the built-in seeds plus any .ml/.mli file under testdata.
func addSourceSeeds(f *testing.F) {
	for _, s := range sourceSeeds {
		f.Add([]byte(s))
	}
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".ml" && ext != ".mli" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src))
		return nil
	})
}

func clamp(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
