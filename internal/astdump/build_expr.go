package astdump

import (
	"docstyle/internal/ast"
)

// expr converts e; a nil e is an absent optional child.
func (c *converter) expr(path string, e *Expr) (ast.ExprID, error) {
	if e == nil {
		return ast.NoExprID, nil
	}
	kind, ok := exprKinds[e.Kind]
	if !ok {
		return ast.NoExprID, unknownKind(path+".kind", "expression", e.Kind)
	}
	id, err := c.exprNode(path, kind, e)
	if err != nil {
		return ast.NoExprID, err
	}
	attrs, err := c.attrs(path, e.Attrs)
	if err != nil {
		return ast.NoExprID, err
	}
	if len(attrs) > 0 {
		c.b.AttachExpr(id, attrs...)
	}
	return id, nil
}

func (c *converter) exprs(path, field string, in []Expr) ([]ast.ExprID, error) {
	out := make([]ast.ExprID, 0, len(in))
	for i := range in {
		id, err := c.expr(index(path, field, i), &in[i])
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

//nolint:gocyclo // один case на вид выражения
func (c *converter) exprNode(path string, kind ast.ExprKind, e *Expr) (ast.ExprID, error) {
	ex := c.b.Exprs
	loc := c.loc(e.Loc)

	switch kind {
	case ast.ExprIdent:
		if e.Name == "" {
			return ast.NoExprID, missing(path, "name")
		}
		return ex.NewIdent(loc, e.Name), nil

	case ast.ExprConstant:
		ck, ok := constKinds[e.Const]
		if !ok {
			return ast.NoExprID, unknownKind(path+".const", "constant", e.Const)
		}
		if ck == ast.ConstString && e.Delim != "" {
			return ex.NewQuotedString(loc, e.Delim, e.Text), nil
		}
		return ex.NewConstant(loc, ck, e.Text), nil

	case ast.ExprApply:
		fn, err := c.required(path, "fn", e.Fn)
		if err != nil {
			return ast.NoExprID, err
		}
		args := make([]ast.Arg, 0, len(e.Args))
		for i := range e.Args {
			p := index(path, "args", i)
			label, ok := argLabels[e.Args[i].Label]
			if !ok {
				return ast.NoExprID, unknownKind(p+".label", "argument label", e.Args[i].Label)
			}
			arg, err := c.required(p, "expr", e.Args[i].Expr)
			if err != nil {
				return ast.NoExprID, err
			}
			args = append(args, ast.Arg{Label: label, Name: e.Args[i].Name, Expr: arg})
		}
		return ex.NewApply(loc, fn, args), nil

	case ast.ExprLet:
		bindings, err := c.bindings(path, e.Bindings)
		if err != nil {
			return ast.NoExprID, err
		}
		body, err := c.required(path, "body", e.Body)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewLet(loc, e.Rec, bindings, body), nil

	case ast.ExprFun:
		params := make([]ast.Param, 0, len(e.Params))
		for i := range e.Params {
			p := index(path, "params", i)
			prm := &e.Params[i]
			label, ok := argLabels[prm.Label]
			if !ok {
				return ast.NoExprID, unknownKind(p+".label", "parameter label", prm.Label)
			}
			if prm.Pat == nil {
				return ast.NoExprID, missing(p, "pat")
			}
			pat, err := c.pat(p+".pat", prm.Pat)
			if err != nil {
				return ast.NoExprID, err
			}
			def, err := c.optional(p, "default", prm.Default)
			if err != nil {
				return ast.NoExprID, err
			}
			params = append(params, ast.Param{Label: label, Name: prm.Name, Default: def, Pat: pat})
		}
		body, err := c.required(path, "body", e.Body)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewFun(loc, params, body), nil

	case ast.ExprFunction, ast.ExprMatch, ast.ExprTry:
		var subject ast.ExprID
		var err error
		if kind == ast.ExprFunction {
			subject, err = c.optional(path, "subject", e.Subject)
		} else {
			subject, err = c.required(path, "subject", e.Subject)
		}
		if err != nil {
			return ast.NoExprID, err
		}
		cases := make([]ast.Case, 0, len(e.Cases))
		for i := range e.Cases {
			p := index(path, "cases", i)
			cs := &e.Cases[i]
			if cs.Pat == nil {
				return ast.NoExprID, missing(p, "pat")
			}
			pat, err := c.pat(p+".pat", cs.Pat)
			if err != nil {
				return ast.NoExprID, err
			}
			guard, err := c.optional(p, "guard", cs.Guard)
			if err != nil {
				return ast.NoExprID, err
			}
			body, err := c.required(p, "body", cs.Body)
			if err != nil {
				return ast.NoExprID, err
			}
			cases = append(cases, ast.Case{Pat: pat, Guard: guard, Body: body})
		}
		return ex.NewCases(kind, loc, subject, cases), nil

	case ast.ExprTuple, ast.ExprArray, ast.ExprSequence:
		elems, err := c.exprs(path, "elems", e.Elems)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewList(kind, loc, elems), nil

	case ast.ExprConstruct, ast.ExprVariant:
		if e.Name == "" {
			return ast.NoExprID, missing(path, "name")
		}
		arg, err := c.optional(path, "arg", e.Arg)
		if err != nil {
			return ast.NoExprID, err
		}
		if kind == ast.ExprVariant {
			return ex.NewVariant(loc, e.Name, arg), nil
		}
		return ex.NewConstruct(loc, e.Name, arg), nil

	case ast.ExprRecord:
		fields := make([]ast.RecordField, 0, len(e.Fields))
		for i := range e.Fields {
			p := index(path, "fields", i)
			v, err := c.required(p, "value", e.Fields[i].Value)
			if err != nil {
				return ast.NoExprID, err
			}
			fields = append(fields, ast.RecordField{Name: e.Fields[i].Name, Value: v})
		}
		base, err := c.optional(path, "base", e.Base)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewRecord(loc, fields, base), nil

	case ast.ExprField, ast.ExprSetField:
		target, err := c.required(path, "target", e.Target)
		if err != nil {
			return ast.NoExprID, err
		}
		if kind == ast.ExprField {
			return ex.NewField(loc, target, e.Name), nil
		}
		value, err := c.required(path, "value", e.Value)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewSetField(loc, target, e.Name, value), nil

	case ast.ExprIf:
		cond, err := c.required(path, "cond", e.Cond)
		if err != nil {
			return ast.NoExprID, err
		}
		then, err := c.required(path, "then", e.Then)
		if err != nil {
			return ast.NoExprID, err
		}
		els, err := c.optional(path, "else", e.Else)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewIf(loc, cond, then, els), nil

	case ast.ExprWhile:
		cond, err := c.required(path, "cond", e.Cond)
		if err != nil {
			return ast.NoExprID, err
		}
		body, err := c.required(path, "body", e.Body)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewWhile(loc, cond, body), nil

	case ast.ExprFor:
		if e.Var == nil {
			return ast.NoExprID, missing(path, "var")
		}
		v, err := c.pat(path+".var", e.Var)
		if err != nil {
			return ast.NoExprID, err
		}
		from, err := c.required(path, "from", e.From)
		if err != nil {
			return ast.NoExprID, err
		}
		to, err := c.required(path, "to", e.To)
		if err != nil {
			return ast.NoExprID, err
		}
		body, err := c.required(path, "body", e.Body)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewFor(loc, v, from, to, e.Down, body), nil

	case ast.ExprConstraint, ast.ExprCoerce:
		inner, err := c.required(path, "expr", e.Inner)
		if err != nil {
			return ast.NoExprID, err
		}
		if kind == ast.ExprCoerce {
			return ex.NewCoerce(loc, inner, e.FromType, e.Type), nil
		}
		return ex.NewConstraint(loc, inner, e.Type), nil

	case ast.ExprAssert, ast.ExprLazy:
		inner, err := c.required(path, "expr", e.Inner)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewWrap(kind, loc, inner), nil

	case ast.ExprExtension:
		if e.Ext == nil {
			return ast.NoExprID, missing(path, "ext")
		}
		ext, err := c.extension(path+".ext", e.Ext)
		if err != nil {
			return ast.NoExprID, err
		}
		return ex.NewExtension(loc, ext), nil
	}
	return ast.NoExprID, unknownKind(path+".kind", "expression", e.Kind)
}
