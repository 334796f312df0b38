package ast

import (
	"docstyle/internal/source"
)

type Hints struct{ Files, Items, Bindings, Exprs, Pats, Attrs uint }

// Builder owns every arena of one module tree.
type Builder struct {
	Files    *Files
	Items    *Items
	Bindings *Bindings
	Exprs    *Exprs
	Pats     *Pats
	Attrs    *Attrs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Items == 0 {
		hints.Items = 1 << 7
	}
	if hints.Bindings == 0 {
		hints.Bindings = 1 << 7
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Pats == 0 {
		hints.Pats = 1 << 7
	}
	if hints.Attrs == 0 {
		hints.Attrs = 1 << 5
	}
	return &Builder{
		Files:    NewFiles(hints.Files),
		Items:    NewItems(hints.Items),
		Bindings: NewBindings(hints.Bindings),
		Exprs:    NewExprs(hints.Exprs),
		Pats:     NewPats(hints.Pats),
		Attrs:    NewAttrs(hints.Attrs),
	}
}

func (b *Builder) NewFile(name string, kind FileKind, loc source.Loc) FileID {
	return b.Files.New(name, kind, loc)
}

func (b *Builder) PushItem(file FileID, item ItemID) {
	f := b.Files.Get(file)
	f.Items = append(f.Items, item)
}

func (b *Builder) PushComment(file FileID, c Comment) {
	f := b.Files.Get(file)
	f.Comments = append(f.Comments, c)
}

// NewBinding creates a binding of pat to expr.
func (b *Builder) NewBinding(loc source.Loc, pat PatID, expr ExprID) BindingID {
	return b.Bindings.New(loc, pat, expr)
}

// NewAttr creates an attribute whose payload is the given structure items.
func (b *Builder) NewAttr(loc source.Loc, name string, items ...ItemID) AttrID {
	payload := b.Attrs.NewPayload(Payload{Kind: PayloadStructure, Items: items})
	return b.Attrs.New(loc, name, payload)
}

// NewStringAttr creates `[@name "value"]`.
func (b *Builder) NewStringAttr(loc source.Loc, name, value string) AttrID {
	str := b.Exprs.NewConstant(loc, ConstString, value)
	return b.NewAttr(loc, name, b.Items.NewEval(loc, str))
}

// NewExtension creates an extension whose payload is the given structure items.
func (b *Builder) NewExtension(loc source.Loc, name string, items ...ItemID) ExtensionID {
	payload := b.Attrs.NewPayload(Payload{Kind: PayloadStructure, Items: items})
	return b.Attrs.NewExtension(loc, name, payload)
}

func (b *Builder) AttachExpr(id ExprID, attrs ...AttrID) {
	e := b.Exprs.Get(id)
	e.Attrs = append(e.Attrs, attrs...)
}

func (b *Builder) AttachItem(id ItemID, attrs ...AttrID) {
	it := b.Items.Get(id)
	it.Attrs = append(it.Attrs, attrs...)
}

func (b *Builder) AttachBinding(id BindingID, attrs ...AttrID) {
	bn := b.Bindings.Get(id)
	bn.Attrs = append(bn.Attrs, attrs...)
}

func (b *Builder) AttachPat(id PatID, attrs ...AttrID) {
	p := b.Pats.Get(id)
	p.Attrs = append(p.Attrs, attrs...)
}

// StringPayload returns the string literal of a `[@name "text"]` payload:
// a structure with exactly one expression item that is a string constant.
// Attributes on that item do not matter.
func (b *Builder) StringPayload(id PayloadID) (string, bool) {
	p := b.Attrs.Payload(id)
	if p == nil || p.Kind != PayloadStructure || len(p.Items) != 1 {
		return "", false
	}
	item := b.Items.Get(p.Items[0])
	if item == nil || item.Kind != ItemEval {
		return "", false
	}
	c, ok := b.Exprs.Constant(item.Expr)
	if !ok || c.Kind != ConstString {
		return "", false
	}
	return c.Value, true
}
