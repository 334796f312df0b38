package project

import (
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Excluded reports whether rel, a slash-separated path relative to the
// project root, matches one of the exclude patterns. A pattern matches the
// path itself or any of its parent directories; a trailing "/**" matches
// everything below a directory. Patterns without a slash also match the
// base name. Both sides are compared in NFC, since some file systems return
// decomposed names.
func (p PathsConfig) Excluded(rel string) bool {
	rel = norm.NFC.String(strings.TrimPrefix(path.Clean("/"+rel), "/"))
	for _, pattern := range p.Exclude {
		pattern = norm.NFC.String(strings.TrimSuffix(pattern, "/**"))
		if !strings.Contains(pattern, "/") {
			if ok, _ := path.Match(pattern, path.Base(rel)); ok {
				return true
			}
		}
		for cur := rel; cur != "." && cur != ""; cur = path.Dir(cur) {
			if ok, _ := path.Match(pattern, cur); ok {
				return true
			}
		}
	}
	return false
}
