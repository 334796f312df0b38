package ast

import (
	"docstyle/internal/source"
)

// Binding is one `pat = expr` of a let.
type Binding struct {
	Pat   PatID
	Expr  ExprID
	Attrs []AttrID
	Loc   source.Loc
}

type Bindings struct {
	Arena *Arena[Binding]
}

func NewBindings(capHint uint) *Bindings {
	return &Bindings{
		Arena: NewArena[Binding](capHint),
	}
}

// New creates a binding of pat to expr.
func (b *Bindings) New(loc source.Loc, pat PatID, expr ExprID) BindingID {
	return BindingID(b.Arena.Allocate(Binding{Pat: pat, Expr: expr, Loc: loc}))
}

// Get returns the binding with the given ID.
func (b *Bindings) Get(id BindingID) *Binding {
	return b.Arena.Get(uint32(id))
}

// Case is one arm of a match, function or try: `pat when guard -> body`.
type Case struct {
	Pat   PatID
	Guard ExprID // NoExprID without guard
	Body  ExprID
}

// ArgLabel distinguishes positional, labelled (~x) and optional (?x) arguments.
type ArgLabel uint8

const (
	ArgNolabel ArgLabel = iota
	ArgLabelled
	ArgOptional
)

// Arg is an argument of an application.
type Arg struct {
	Label ArgLabel
	Name  string // label name for ArgLabelled / ArgOptional
	Expr  ExprID
}

// Param is a parameter of a fun: `~label:(pat = default)`.
type Param struct {
	Label   ArgLabel
	Name    string
	Default ExprID
	Pat     PatID
}

// RecordField is `name = value` inside a record expression.
type RecordField struct {
	Name  string
	Value ExprID
}
