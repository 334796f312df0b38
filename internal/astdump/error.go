package astdump

import (
	"fmt"

	"docstyle/internal/diag"
)

// Error is a dump that cannot be decoded or turned into a module tree.
type Error struct {
	Code diag.Code
	// Path is the JSON path of the offending node, "$" is the root.
	Path string
	Msg  string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func malformed(path, format string, args ...any) *Error {
	return &Error{Code: diag.DumpMalformed, Path: path, Msg: fmt.Sprintf(format, args...)}
}

func missing(path, field string) *Error {
	return malformed(path, "missing %q", field)
}

func unknownKind(path, node, kind string) *Error {
	return &Error{Code: diag.DumpUnknownNode, Path: path, Msg: fmt.Sprintf("unknown %s kind %q", node, kind)}
}

func index(path, field string, i int) string {
	return fmt.Sprintf("%s.%s[%d]", path, field, i)
}
