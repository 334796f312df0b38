package astdump

import (
	"docstyle/internal/ast"
)

var (
	itemKinds  = make(map[string]ast.ItemKind)
	exprKinds  = make(map[string]ast.ExprKind)
	patKinds   = make(map[string]ast.PatKind)
	constKinds = make(map[string]ast.ConstKind)
)

func init() {
	for k := ast.ItemValue; k <= ast.ItemInclude; k++ {
		itemKinds[k.String()] = k
	}
	for k := ast.ExprIdent; k <= ast.ExprExtension; k++ {
		exprKinds[k.String()] = k
	}
	for k := ast.PatAny; k <= ast.PatRecord; k++ {
		patKinds[k.String()] = k
	}
	for k := ast.ConstInt; k <= ast.ConstFloat; k++ {
		constKinds[k.String()] = k
	}
}

var argLabels = map[string]ast.ArgLabel{
	"":         ast.ArgNolabel,
	"nolabel":  ast.ArgNolabel,
	"labelled": ast.ArgLabelled,
	"optional": ast.ArgOptional,
}

func labelName(l ast.ArgLabel) string {
	switch l {
	case ast.ArgLabelled:
		return "labelled"
	case ast.ArgOptional:
		return "optional"
	default:
		return ""
	}
}

// payloadKind maps "" to a structure, the shape of `[@foo]`.
func payloadKind(name string) (ast.PayloadKind, bool) {
	switch name {
	case "", "structure":
		return ast.PayloadStructure, true
	case "signature":
		return ast.PayloadSignature, true
	case "type":
		return ast.PayloadType, true
	case "pattern":
		return ast.PayloadPattern, true
	}
	return 0, false
}
