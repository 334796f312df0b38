package astdump

import (
	"path/filepath"

	"docstyle/internal/ast"
	"docstyle/internal/source"
)

// Build adds the dumped module to b. Locations without a file name are
// attributed to the dumped file.
func (d *Dump) Build(b *ast.Builder) (ast.FileID, error) {
	kind, err := fileKind(d)
	if err != nil {
		return ast.NoFileID, err
	}
	c := &converter{b: b, file: d.File}
	file := b.NewFile(d.File, kind, c.loc(d.Loc))

	items, err := c.items("$", "items", d.Items)
	if err != nil {
		return ast.NoFileID, err
	}
	for _, it := range items {
		b.PushItem(file, it)
	}
	for _, cm := range d.Comments {
		b.PushComment(file, ast.Comment{Text: cm.Text, Loc: c.loc(cm.Loc)})
	}
	f := b.Files.Get(file)
	for _, w := range d.Warnings {
		f.Warnings = append(f.Warnings, ast.HostWarning{Number: w.Number, Message: w.Message, Loc: c.loc(w.Loc)})
	}
	return file, nil
}

// fileKind uses the explicit kind, then the .mli extension.
func fileKind(d *Dump) (ast.FileKind, error) {
	switch d.Kind {
	case "structure":
		return ast.FileStructure, nil
	case "signature":
		return ast.FileSignature, nil
	case "":
		if filepath.Ext(d.File) == ".mli" {
			return ast.FileSignature, nil
		}
		return ast.FileStructure, nil
	}
	return 0, unknownKind("$.kind", "file", d.Kind)
}

type converter struct {
	b    *ast.Builder
	file string
}

func (c *converter) loc(l source.Loc) source.Loc {
	return l.WithFile(c.file)
}

func (c *converter) items(path, field string, in []Item) ([]ast.ItemID, error) {
	out := make([]ast.ItemID, 0, len(in))
	for i := range in {
		id, err := c.item(index(path, field, i), &in[i])
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (c *converter) item(path string, it *Item) (ast.ItemID, error) {
	kind, ok := itemKinds[it.Kind]
	if !ok {
		return ast.NoItemID, unknownKind(path+".kind", "item", it.Kind)
	}
	loc := c.loc(it.Loc)
	items := c.b.Items

	var id ast.ItemID
	switch kind {
	case ast.ItemValue:
		bindings, err := c.bindings(path, it.Bindings)
		if err != nil {
			return ast.NoItemID, err
		}
		id = items.NewValue(loc, it.Rec, bindings...)
	case ast.ItemEval:
		expr, err := c.required(path, "expr", it.Expr)
		if err != nil {
			return ast.NoItemID, err
		}
		id = items.NewEval(loc, expr)
	case ast.ItemModule, ast.ItemModuleType, ast.ItemInclude:
		body, err := c.items(path, "items", it.Items)
		if err != nil {
			return ast.NoItemID, err
		}
		switch kind {
		case ast.ItemModule:
			id = items.NewModule(loc, it.Name, body...)
		case ast.ItemModuleType:
			id = items.NewModuleType(loc, it.Name, body...)
		default:
			id = items.NewInclude(loc, it.Name, body...)
		}
	case ast.ItemAttribute:
		if it.Attr == nil {
			return ast.NoItemID, missing(path, "attr")
		}
		attr, err := c.attr(path+".attr", it.Attr)
		if err != nil {
			return ast.NoItemID, err
		}
		id = items.NewAttribute(loc, attr)
	case ast.ItemExtension:
		if it.Ext == nil {
			return ast.NoItemID, missing(path, "ext")
		}
		ext, err := c.extension(path+".ext", it.Ext)
		if err != nil {
			return ast.NoItemID, err
		}
		id = items.NewExtension(loc, ext)
	case ast.ItemType, ast.ItemException:
		members, err := c.members(path, it.Members)
		if err != nil {
			return ast.NoItemID, err
		}
		if kind == ast.ItemType {
			id = items.NewType(loc, it.Name, members...)
		} else {
			id = items.NewException(loc, it.Name)
			items.Get(id).Members = members
		}
	case ast.ItemVal:
		id = items.NewVal(loc, it.Name, it.Type, it.Prims...)
	case ast.ItemOpen:
		id = items.NewOpen(loc, it.Name)
	}

	attrs, err := c.attrs(path, it.Attrs)
	if err != nil {
		return ast.NoItemID, err
	}
	if len(attrs) > 0 {
		c.b.AttachItem(id, attrs...)
	}
	return id, nil
}

func (c *converter) members(path string, in []Member) ([]ast.TypeMember, error) {
	out := make([]ast.TypeMember, 0, len(in))
	for i := range in {
		attrs, err := c.attrs(index(path, "members", i), in[i].Attrs)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.TypeMember{Name: in[i].Name, Loc: c.loc(in[i].Loc), Attrs: attrs})
	}
	return out, nil
}

func (c *converter) bindings(path string, in []Binding) ([]ast.BindingID, error) {
	out := make([]ast.BindingID, 0, len(in))
	for i := range in {
		p := index(path, "bindings", i)
		bn := &in[i]
		if bn.Pat == nil {
			return nil, missing(p, "pat")
		}
		pat, err := c.pat(p+".pat", bn.Pat)
		if err != nil {
			return nil, err
		}
		expr, err := c.required(p, "expr", bn.Expr)
		if err != nil {
			return nil, err
		}
		id := c.b.NewBinding(c.loc(bn.Loc), pat, expr)
		attrs, err := c.attrs(p, bn.Attrs)
		if err != nil {
			return nil, err
		}
		if len(attrs) > 0 {
			c.b.AttachBinding(id, attrs...)
		}
		out = append(out, id)
	}
	return out, nil
}

func (c *converter) attrs(path string, in []Attr) ([]ast.AttrID, error) {
	var out []ast.AttrID
	for i := range in {
		id, err := c.attr(index(path, "attrs", i), &in[i])
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (c *converter) attr(path string, a *Attr) (ast.AttrID, error) {
	payload, err := c.payload(path+".payload", a.Payload)
	if err != nil {
		return ast.NoAttrID, err
	}
	return c.b.Attrs.New(c.loc(a.Loc), a.Name, payload), nil
}

func (c *converter) extension(path string, a *Attr) (ast.ExtensionID, error) {
	payload, err := c.payload(path+".payload", a.Payload)
	if err != nil {
		return ast.NoExtensionID, err
	}
	return c.b.Attrs.NewExtension(c.loc(a.Loc), a.Name, payload), nil
}

func (c *converter) payload(path string, p *Payload) (ast.PayloadID, error) {
	if p == nil {
		return c.b.Attrs.NewPayload(ast.Payload{Kind: ast.PayloadStructure}), nil
	}
	kind, ok := payloadKind(p.Kind)
	if !ok {
		return ast.NoPayloadID, unknownKind(path+".kind", "payload", p.Kind)
	}
	out := ast.Payload{Kind: kind, Type: p.Type}
	var err error
	if out.Items, err = c.items(path, "items", p.Items); err != nil {
		return ast.NoPayloadID, err
	}
	if kind == ast.PayloadPattern {
		if p.Pat == nil {
			return ast.NoPayloadID, missing(path, "pat")
		}
		if out.Pat, err = c.pat(path+".pat", p.Pat); err != nil {
			return ast.NoPayloadID, err
		}
		if out.Guard, err = c.expr(path+".guard", p.Guard); err != nil {
			return ast.NoPayloadID, err
		}
	}
	return c.b.Attrs.NewPayload(out), nil
}

func (c *converter) pat(path string, p *Pat) (ast.PatID, error) {
	kind, ok := patKinds[p.Kind]
	if !ok {
		return ast.NoPatID, unknownKind(path+".kind", "pattern", p.Kind)
	}
	out := ast.Pat{Kind: kind, Loc: c.loc(p.Loc), Name: p.Name, Type: p.Type}
	for i := range p.Elems {
		id, err := c.pat(index(path, "elems", i), &p.Elems[i])
		if err != nil {
			return ast.NoPatID, err
		}
		out.Elems = append(out.Elems, id)
	}
	for i := range p.Fields {
		id, err := c.pat(index(path, "fields", i)+".pat", &p.Fields[i].Pat)
		if err != nil {
			return ast.NoPatID, err
		}
		out.Fields = append(out.Fields, ast.PatField{Name: p.Fields[i].Name, Pat: id})
	}
	var err error
	if out.Attrs, err = c.attrs(path, p.Attrs); err != nil {
		return ast.NoPatID, err
	}
	return c.b.Pats.New(out), nil
}

// required converts a child expression that the node kind cannot do without.
func (c *converter) required(path, field string, e *Expr) (ast.ExprID, error) {
	if e == nil {
		return ast.NoExprID, missing(path, field)
	}
	return c.expr(path+"."+field, e)
}

func (c *converter) optional(path, field string, e *Expr) (ast.ExprID, error) {
	return c.expr(path+"."+field, e)
}
