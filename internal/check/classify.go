package check

import (
	"path/filepath"
	"strings"
)

// Callers skip empty comment texts; none of these functions is meaningful for them.

// IsDocumentation reports a `(** ... *)` comment.
func IsDocumentation(text string) bool {
	return strings.HasPrefix(text, "*")
}

// IsSuppressed reports a `(*_ ... *)` comment.
func IsSuppressed(text string) bool {
	return strings.HasPrefix(text, "_")
}

var actionItemPrefixes = []string{"CR", "XX", "XCR", "JS-only"}

// IsActionItem reports a code-review comment such as `(* CR user: ... *)`.
func IsActionItem(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, p := range actionItemPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// AllowedInInterface: комментарии, допустимые в интерфейсе.
func AllowedInInterface(text string) bool {
	return IsDocumentation(text) || IsSuppressed(text) || IsActionItem(text)
}

// IsInterfaceFile reports whether name follows the `foo_intf.ml` convention
// of implementation files that only hold interfaces.
func IsInterfaceFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(strings.TrimSuffix(base, filepath.Ext(base)), "_intf")
}
