package astdump

import (
	"docstyle/internal/ast"
)

// FromAST dumps a module held in b. It is the inverse of Build: building the
// result again yields an equivalent tree.
func FromAST(b *ast.Builder, file ast.FileID) *Dump {
	f := b.Files.Get(file)
	if f == nil {
		return nil
	}
	x := exporter{b: b}
	d := &Dump{
		Version: SchemaVersion,
		File:    f.Name,
		Kind:    f.Kind.String(),
		Loc:     f.Loc,
		Items:   x.items(f.Items),
	}
	for _, c := range f.Comments {
		d.Comments = append(d.Comments, Comment{Text: c.Text, Loc: c.Loc})
	}
	for _, w := range f.Warnings {
		d.Warnings = append(d.Warnings, Warning{Number: w.Number, Message: w.Message, Loc: w.Loc})
	}
	return d
}

type exporter struct {
	b *ast.Builder
}

func (x exporter) items(ids []ast.ItemID) []Item {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Item, 0, len(ids))
	for _, id := range ids {
		out = append(out, x.item(id))
	}
	return out
}

func (x exporter) item(id ast.ItemID) Item {
	it := x.b.Items.Get(id)
	out := Item{
		Kind:  it.Kind.String(),
		Loc:   it.Loc,
		Attrs: x.attrs(it.Attrs),
		Name:  it.Name,
		Rec:   it.Rec,
		Items: x.items(it.Items),
		Type:  it.Type,
		Prims: it.Prims,
	}
	for _, bid := range it.Bindings {
		out.Bindings = append(out.Bindings, x.binding(bid))
	}
	out.Expr = x.expr(it.Expr)
	if it.Attr.IsValid() {
		a := x.attr(it.Attr)
		out.Attr = &a
	}
	if it.Ext.IsValid() {
		out.Ext = x.extension(it.Ext)
	}
	for _, m := range it.Members {
		out.Members = append(out.Members, Member{Name: m.Name, Loc: m.Loc, Attrs: x.attrs(m.Attrs)})
	}
	return out
}

func (x exporter) binding(id ast.BindingID) Binding {
	bn := x.b.Bindings.Get(id)
	return Binding{
		Loc:   bn.Loc,
		Pat:   x.pat(bn.Pat),
		Expr:  x.expr(bn.Expr),
		Attrs: x.attrs(bn.Attrs),
	}
}

func (x exporter) attrs(ids []ast.AttrID) []Attr {
	var out []Attr
	for _, id := range ids {
		out = append(out, x.attr(id))
	}
	return out
}

func (x exporter) attr(id ast.AttrID) Attr {
	a := x.b.Attrs.Get(id)
	return Attr{Name: a.Name, Loc: a.Loc, Payload: x.payload(a.Payload)}
}

func (x exporter) extension(id ast.ExtensionID) *Attr {
	e := x.b.Attrs.Extension(id)
	return &Attr{Name: e.Name, Loc: e.Loc, Payload: x.payload(e.Payload)}
}

// payload omits empty structures, the common `[@foo]` case.
func (x exporter) payload(id ast.PayloadID) *Payload {
	p := x.b.Attrs.Payload(id)
	if p == nil || p.Kind == ast.PayloadStructure && len(p.Items) == 0 {
		return nil
	}
	out := &Payload{
		Kind:  p.Kind.String(),
		Items: x.items(p.Items),
		Type:  p.Type,
		Pat:   x.pat(p.Pat),
		Guard: x.expr(p.Guard),
	}
	return out
}

func (x exporter) pat(id ast.PatID) *Pat {
	p := x.b.Pats.Get(id)
	if p == nil {
		return nil
	}
	out := &Pat{
		Kind:  p.Kind.String(),
		Loc:   p.Loc,
		Attrs: x.attrs(p.Attrs),
		Name:  p.Name,
		Type:  p.Type,
	}
	for _, e := range p.Elems {
		out.Elems = append(out.Elems, *x.pat(e))
	}
	for _, f := range p.Fields {
		out.Fields = append(out.Fields, PatField{Name: f.Name, Pat: *x.pat(f.Pat)})
	}
	return out
}

func (x exporter) expr(id ast.ExprID) *Expr {
	e := x.b.Exprs.Get(id)
	if e == nil {
		return nil
	}
	out := &Expr{Kind: e.Kind.String(), Loc: e.Loc, Attrs: x.attrs(e.Attrs)}
	ex := x.b.Exprs

	switch e.Kind {
	case ast.ExprIdent:
		d, _ := ex.Ident(id)
		out.Name = d.Name
	case ast.ExprConstant:
		d, _ := ex.Constant(id)
		out.Const, out.Text, out.Delim = d.Kind.String(), d.Value, d.Delim
	case ast.ExprApply:
		d, _ := ex.Apply(id)
		out.Fn = x.expr(d.Fn)
		for _, a := range d.Args {
			out.Args = append(out.Args, Arg{Label: labelName(a.Label), Name: a.Name, Expr: x.expr(a.Expr)})
		}
	case ast.ExprLet:
		d, _ := ex.Let(id)
		out.Rec = d.Rec
		for _, bid := range d.Bindings {
			out.Bindings = append(out.Bindings, x.binding(bid))
		}
		out.Body = x.expr(d.Body)
	case ast.ExprFun:
		d, _ := ex.Fun(id)
		for _, p := range d.Params {
			out.Params = append(out.Params, Param{
				Label:   labelName(p.Label),
				Name:    p.Name,
				Default: x.expr(p.Default),
				Pat:     x.pat(p.Pat),
			})
		}
		out.Body = x.expr(d.Body)
	case ast.ExprFunction, ast.ExprMatch, ast.ExprTry:
		d, _ := ex.CasesOf(id)
		out.Subject = x.expr(d.Subject)
		for _, c := range d.Cases {
			out.Cases = append(out.Cases, Case{Pat: x.pat(c.Pat), Guard: x.expr(c.Guard), Body: x.expr(c.Body)})
		}
	case ast.ExprTuple, ast.ExprArray, ast.ExprSequence:
		d, _ := ex.List(id)
		for _, el := range d.Elems {
			out.Elems = append(out.Elems, *x.expr(el))
		}
	case ast.ExprConstruct, ast.ExprVariant:
		d, _ := ex.Construct(id)
		out.Name, out.Arg = d.Name, x.expr(d.Arg)
	case ast.ExprRecord:
		d, _ := ex.Record(id)
		for _, f := range d.Fields {
			out.Fields = append(out.Fields, Field{Name: f.Name, Value: x.expr(f.Value)})
		}
		out.Base = x.expr(d.Base)
	case ast.ExprField, ast.ExprSetField:
		d, _ := ex.Field(id)
		out.Target, out.Name, out.Value = x.expr(d.Target), d.Name, x.expr(d.Value)
	case ast.ExprIf:
		d, _ := ex.If(id)
		out.Cond, out.Then, out.Else = x.expr(d.Cond), x.expr(d.Then), x.expr(d.Else)
	case ast.ExprWhile, ast.ExprFor:
		d, _ := ex.Loop(id)
		out.Cond, out.Var, out.Body = x.expr(d.Cond), x.pat(d.Var), x.expr(d.Body)
		out.From, out.To, out.Down = x.expr(d.From), x.expr(d.To), d.Down
	case ast.ExprConstraint, ast.ExprCoerce:
		d, _ := ex.Typed(id)
		out.Inner, out.Type, out.FromType = x.expr(d.Expr), d.Type, d.From
	case ast.ExprAssert, ast.ExprLazy:
		d, _ := ex.Wrap(id)
		out.Inner = x.expr(d.Expr)
	case ast.ExprExtension:
		d, _ := ex.Extension(id)
		out.Ext = x.extension(d.Ext)
	}
	return out
}
