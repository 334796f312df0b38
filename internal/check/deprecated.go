package check

import (
	"docstyle/internal/ast"
)

func isDeprecatedName(name string) bool {
	return name == "deprecated" || name == "ocaml.deprecated"
}

// checkDeprecated validates `[@deprecated "[since YYYY-MM] ..."]`.
func (r *run) checkDeprecated(id ast.AttrID) error {
	attr := r.b.Attrs.Get(id)
	if attr == nil || !isDeprecatedName(attr.Name) {
		return nil
	}
	text, ok := r.b.StringPayload(attr.Payload)
	if !ok {
		return r.e.fail(Violation{Kind: DeprecationNotAString, Loc: attr.Loc})
	}
	_, month, ok := scanSince(text)
	if !ok {
		return r.e.fail(Violation{Kind: DeprecationMissingDate, Loc: attr.Loc})
	}
	if month < 1 || month > 12 {
		return r.e.fail(Violation{Kind: DeprecationInvalidMonth, Loc: attr.Loc})
	}
	return nil
}

// scanSince matches the prefix "[since" spaces* uint "-" uint "]". Text after
// the closing bracket is ignored.
func scanSince(s string) (year, month uint64, ok bool) {
	const lead = "[since"
	if len(s) < len(lead) || s[:len(lead)] != lead {
		return 0, 0, false
	}
	i := len(lead)
	for i < len(s) && isBlank(s[i]) {
		i++
	}
	if year, i, ok = scanUint(s, i); !ok {
		return 0, 0, false
	}
	if i >= len(s) || s[i] != '-' {
		return 0, 0, false
	}
	if month, i, ok = scanUint(s, i+1); !ok {
		return 0, 0, false
	}
	if i >= len(s) || s[i] != ']' {
		return 0, 0, false
	}
	return year, month, true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// scanUint reads decimal digits at s[i:]; overflow fails the match.
func scanUint(s string, i int) (uint64, int, bool) {
	start := i
	var n uint64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := uint64(s[i] - '0')
		if n > (^uint64(0)-d)/10 {
			return 0, i, false
		}
		n = n*10 + d
		i++
	}
	return n, i, i > start
}
