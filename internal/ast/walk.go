package ast

// Hooks are called by Walker before it descends into the node. A nil hook is
// skipped. The first non-nil error stops the walk and is returned unchanged.
type Hooks struct {
	Attr    func(AttrID) error
	Binding func(BindingID) error
	Expr    func(ExprID) error
	// Extension returns handled=true when it walked (or deliberately skipped)
	// the payload itself; otherwise the walker descends into the payload.
	Extension func(ExtensionID) (handled bool, err error)
}

// Walker visits every node of a module tree once, in source order: the
// children of a node first, then its attributes.
type Walker struct {
	B     *Builder
	Hooks Hooks
}

func NewWalker(b *Builder, hooks Hooks) *Walker {
	return &Walker{B: b, Hooks: hooks}
}

// File walks all items of a file. Comments are not part of the tree.
func (w *Walker) File(id FileID) error {
	f := w.B.Files.Get(id)
	if f == nil {
		return nil
	}
	return w.Items(f.Items)
}

func (w *Walker) Items(ids []ItemID) error {
	for _, id := range ids {
		if err := w.Item(id); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) Item(id ItemID) error {
	item := w.B.Items.Get(id)
	if item == nil {
		return nil
	}
	switch item.Kind {
	case ItemValue:
		for _, b := range item.Bindings {
			if err := w.Binding(b); err != nil {
				return err
			}
		}
	case ItemEval:
		if err := w.Expr(item.Expr); err != nil {
			return err
		}
	case ItemModule, ItemModuleType, ItemInclude:
		if err := w.Items(item.Items); err != nil {
			return err
		}
	case ItemAttribute:
		if err := w.Attr(item.Attr); err != nil {
			return err
		}
	case ItemExtension:
		if err := w.Extension(item.Ext); err != nil {
			return err
		}
	case ItemType, ItemException:
		for _, m := range item.Members {
			if err := w.Attrs(m.Attrs); err != nil {
				return err
			}
		}
	case ItemVal, ItemOpen:
		// листья: ни выражений, ни вложенных элементов
	}
	return w.Attrs(item.Attrs)
}

// Binding calls the Binding hook and then walks the binding's children.
func (w *Walker) Binding(id BindingID) error {
	if w.B.Bindings.Get(id) == nil {
		return nil
	}
	if w.Hooks.Binding != nil {
		if err := w.Hooks.Binding(id); err != nil {
			return err
		}
	}
	return w.BindingChildren(id)
}

// BindingChildren walks pattern, expression and attributes of a binding
// without calling the Binding hook for the binding itself.
func (w *Walker) BindingChildren(id BindingID) error {
	b := w.B.Bindings.Get(id)
	if b == nil {
		return nil
	}
	if err := w.Pat(b.Pat); err != nil {
		return err
	}
	if err := w.Expr(b.Expr); err != nil {
		return err
	}
	return w.Attrs(b.Attrs)
}

func (w *Walker) exprs(ids ...ExprID) error {
	for _, id := range ids {
		if err := w.Expr(id); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) cases(cases []Case) error {
	for _, c := range cases {
		if err := w.Pat(c.Pat); err != nil {
			return err
		}
		if err := w.exprs(c.Guard, c.Body); err != nil {
			return err
		}
	}
	return nil
}

// Expr calls the Expr hook, walks the children and then the attributes.
func (w *Walker) Expr(id ExprID) error {
	expr := w.B.Exprs.Get(id)
	if expr == nil {
		return nil
	}
	if w.Hooks.Expr != nil {
		if err := w.Hooks.Expr(id); err != nil {
			return err
		}
	}
	if err := w.exprChildren(id, expr.Kind); err != nil {
		return err
	}
	return w.Attrs(expr.Attrs)
}

func (w *Walker) exprChildren(id ExprID, kind ExprKind) error {
	ex := w.B.Exprs
	switch kind {
	case ExprIdent, ExprConstant:
		return nil
	case ExprApply:
		data, _ := ex.Apply(id)
		if err := w.Expr(data.Fn); err != nil {
			return err
		}
		for _, a := range data.Args {
			if err := w.Expr(a.Expr); err != nil {
				return err
			}
		}
	case ExprLet:
		data, _ := ex.Let(id)
		for _, b := range data.Bindings {
			if err := w.Binding(b); err != nil {
				return err
			}
		}
		return w.Expr(data.Body)
	case ExprFun:
		data, _ := ex.Fun(id)
		for _, p := range data.Params {
			if err := w.Expr(p.Default); err != nil {
				return err
			}
			if err := w.Pat(p.Pat); err != nil {
				return err
			}
		}
		return w.Expr(data.Body)
	case ExprFunction, ExprMatch, ExprTry:
		data, _ := ex.CasesOf(id)
		if err := w.Expr(data.Subject); err != nil {
			return err
		}
		return w.cases(data.Cases)
	case ExprTuple, ExprArray, ExprSequence:
		data, _ := ex.List(id)
		return w.exprs(data.Elems...)
	case ExprConstruct, ExprVariant:
		data, _ := ex.Construct(id)
		return w.Expr(data.Arg)
	case ExprRecord:
		data, _ := ex.Record(id)
		for _, f := range data.Fields {
			if err := w.Expr(f.Value); err != nil {
				return err
			}
		}
		return w.Expr(data.Base)
	case ExprField, ExprSetField:
		data, _ := ex.Field(id)
		return w.exprs(data.Target, data.Value)
	case ExprIf:
		data, _ := ex.If(id)
		return w.exprs(data.Cond, data.Then, data.Else)
	case ExprWhile:
		data, _ := ex.Loop(id)
		return w.exprs(data.Cond, data.Body)
	case ExprFor:
		data, _ := ex.Loop(id)
		if err := w.Pat(data.Var); err != nil {
			return err
		}
		return w.exprs(data.From, data.To, data.Body)
	case ExprConstraint, ExprCoerce:
		data, _ := ex.Typed(id)
		return w.Expr(data.Expr)
	case ExprAssert, ExprLazy:
		data, _ := ex.Wrap(id)
		return w.Expr(data.Expr)
	case ExprExtension:
		data, _ := ex.Extension(id)
		return w.Extension(data.Ext)
	}
	return nil
}

// Pat walks sub-patterns and then the pattern's attributes.
func (w *Walker) Pat(id PatID) error {
	p := w.B.Pats.Get(id)
	if p == nil {
		return nil
	}
	for _, sub := range p.Elems {
		if err := w.Pat(sub); err != nil {
			return err
		}
	}
	for _, f := range p.Fields {
		if err := w.Pat(f.Pat); err != nil {
			return err
		}
	}
	return w.Attrs(p.Attrs)
}

func (w *Walker) Attrs(ids []AttrID) error {
	for _, id := range ids {
		if err := w.Attr(id); err != nil {
			return err
		}
	}
	return nil
}

// Attr calls the Attr hook and then walks the payload.
func (w *Walker) Attr(id AttrID) error {
	a := w.B.Attrs.Get(id)
	if a == nil {
		return nil
	}
	if w.Hooks.Attr != nil {
		if err := w.Hooks.Attr(id); err != nil {
			return err
		}
	}
	return w.Payload(a.Payload)
}

// Extension lets the Extension hook claim the node; unclaimed extensions
// have their payload walked.
func (w *Walker) Extension(id ExtensionID) error {
	ext := w.B.Attrs.Extension(id)
	if ext == nil {
		return nil
	}
	if w.Hooks.Extension != nil {
		handled, err := w.Hooks.Extension(id)
		if err != nil || handled {
			return err
		}
	}
	return w.Payload(ext.Payload)
}

func (w *Walker) Payload(id PayloadID) error {
	p := w.B.Attrs.Payload(id)
	if p == nil {
		return nil
	}
	switch p.Kind {
	case PayloadStructure, PayloadSignature:
		return w.Items(p.Items)
	case PayloadPattern:
		if err := w.Pat(p.Pat); err != nil {
			return err
		}
		return w.Expr(p.Guard)
	}
	return nil
}
