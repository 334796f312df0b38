package check

import (
	"docstyle/internal/ast"
)

// pseudoBindingMarkers are extensions whose `let _ = ...` items are test or
// benchmark declarations, not discarded values.
var pseudoBindingMarkers = map[string]struct{}{
	"test":         {},
	"test_unit":    {},
	"test_module":  {},
	"bench":        {},
	"bench_fun":    {},
	"bench_module": {},
	"expect_test":  {},
}

// IsPseudoBindingMarker reports whether name is one of the test/benchmark extensions.
func IsPseudoBindingMarker(name string) bool {
	_, ok := pseudoBindingMarkers[name]
	return ok
}

// isSelfDescribing lists the shapes whose type is evident without an annotation.
func isSelfDescribing(kind ast.ExprKind) bool {
	switch kind {
	case ast.ExprConstraint, ast.ExprCoerce, ast.ExprConstruct, ast.ExprIdent, ast.ExprFun, ast.ExprFunction:
		return true
	default:
		return false
	}
}

// checkIgnored reports a discarded expression that lacks a type annotation.
func (r *run) checkIgnored(id ast.ExprID, reason IgnoredReason) error {
	expr := r.b.Exprs.Get(id)
	if expr == nil || isSelfDescribing(expr.Kind) {
		return nil
	}
	return r.e.fail(Violation{Kind: MissingTypeAnnotation, Reason: reason, Loc: expr.Loc})
}

// onBinding: `let _ = e`.
func (r *run) onBinding(id ast.BindingID) error {
	if !r.e.cfg.AnnotatedIgnores {
		return nil
	}
	b := r.b.Bindings.Get(id)
	if !r.b.Pats.IsWildcard(b.Pat) || r.isMarkerExpr(b.Expr) {
		return nil
	}
	return r.checkIgnored(b.Expr, UnderscoreBinding)
}

// isMarkerExpr: `let _ = [%test ...]` declares a test; onExtension walks
// the payload.
func (r *run) isMarkerExpr(id ast.ExprID) bool {
	data, ok := r.b.Exprs.Extension(id)
	if !ok {
		return false
	}
	return r.isMarker(data.Ext)
}

// isMarker reports a test/benchmark extension with a structure payload.
func (r *run) isMarker(id ast.ExtensionID) bool {
	ext := r.b.Attrs.Extension(id)
	if ext == nil || !IsPseudoBindingMarker(ext.Name) {
		return false
	}
	payload := r.b.Attrs.Payload(ext.Payload)
	return payload != nil && payload.Kind == ast.PayloadStructure
}

// onExpr: `ignore e` with exactly one unlabelled argument.
func (r *run) onExpr(id ast.ExprID) error {
	if !r.e.cfg.AnnotatedIgnores {
		return nil
	}
	app, ok := r.b.Exprs.Apply(id)
	if !ok || len(app.Args) != 1 || app.Args[0].Label != ast.ArgNolabel {
		return nil
	}
	fn, ok := r.b.Exprs.Ident(app.Fn)
	if !ok || fn.Name != r.e.cfg.discard() {
		return nil
	}
	return r.checkIgnored(app.Args[0].Expr, ArgumentToDiscard)
}

// onExtension walks the payload of a test/benchmark marker without treating
// its own top-level bindings as discards; everything nested is checked.
func (r *run) onExtension(id ast.ExtensionID) (bool, error) {
	if !r.isMarker(id) {
		return false, nil
	}
	payload := r.b.Attrs.Payload(r.b.Attrs.Extension(id).Payload)
	for _, itemID := range payload.Items {
		item := r.b.Items.Get(itemID)
		if item == nil || item.Kind != ast.ItemValue {
			if err := r.w.Item(itemID); err != nil {
				return true, err
			}
			continue
		}
		for _, b := range item.Bindings {
			if err := r.w.BindingChildren(b); err != nil {
				return true, err
			}
		}
		if err := r.w.Attrs(item.Attrs); err != nil {
			return true, err
		}
	}
	return true, nil
}
