package ast

import (
	"docstyle/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent is a value path: `x`, `List.map`.
	ExprIdent ExprKind = iota
	// ExprConstant is a literal: integer, char, string or float.
	ExprConstant
	// ExprApply is a function application with (possibly labelled) arguments.
	ExprApply
	// ExprLet is `let [rec] bindings in body`.
	ExprLet
	// ExprFun is `fun params -> body`.
	ExprFun
	// ExprFunction is `function cases`.
	ExprFunction
	ExprMatch
	ExprTry
	ExprTuple
	ExprArray
	// ExprSequence is `e1; e2; ...`.
	ExprSequence
	// ExprConstruct is a data constructor, with or without argument: `None`, `Some x`, `()`.
	ExprConstruct
	// ExprVariant is a polymorphic variant: `` `A x ``.
	ExprVariant
	ExprRecord
	ExprField
	ExprSetField
	ExprIf
	ExprWhile
	ExprFor
	// ExprConstraint is `(e : t)`.
	ExprConstraint
	// ExprCoerce is `(e :> t)` or `(e : t1 :> t2)`.
	ExprCoerce
	ExprAssert
	ExprLazy
	// ExprExtension is `[%name payload]`.
	ExprExtension
)

var exprKindNames = [...]string{
	ExprIdent:      "ident",
	ExprConstant:   "constant",
	ExprApply:      "apply",
	ExprLet:        "let",
	ExprFun:        "fun",
	ExprFunction:   "function",
	ExprMatch:      "match",
	ExprTry:        "try",
	ExprTuple:      "tuple",
	ExprArray:      "array",
	ExprSequence:   "sequence",
	ExprConstruct:  "construct",
	ExprVariant:    "variant",
	ExprRecord:     "record",
	ExprField:      "field",
	ExprSetField:   "setfield",
	ExprIf:         "if",
	ExprWhile:      "while",
	ExprFor:        "for",
	ExprConstraint: "constraint",
	ExprCoerce:     "coerce",
	ExprAssert:     "assert",
	ExprLazy:       "lazy",
	ExprExtension:  "extension",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "unknown"
}

// ConstKind enumerates literal kinds.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstChar
	ConstString
	ConstFloat
)

func (k ConstKind) String() string {
	switch k {
	case ConstInt:
		return "int"
	case ConstChar:
		return "char"
	case ConstString:
		return "string"
	case ConstFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Expr represents an expression node. Payload indexes the per-kind arena
// selected by Kind.
type Expr struct {
	Kind    ExprKind
	Loc     source.Loc
	Payload PayloadID
	Attrs   []AttrID
}

type ExprIdentData struct {
	Name string
}

type ExprConstantData struct {
	Kind  ConstKind
	Value string
	// Delim is the quoted-string delimiter of `{id|...|id}`, empty otherwise.
	Delim string
}

type ExprApplyData struct {
	Fn   ExprID
	Args []Arg
}

type ExprLetData struct {
	Rec      bool
	Bindings []BindingID
	Body     ExprID
}

type ExprFunData struct {
	Params []Param
	Body   ExprID
}

// ExprCasesData serves function, match and try. Subject is NoExprID for function.
type ExprCasesData struct {
	Subject ExprID
	Cases   []Case
}

// ExprListData serves tuple, array and sequence.
type ExprListData struct {
	Elems []ExprID
}

// ExprConstructData serves constructors and polymorphic variants.
type ExprConstructData struct {
	Name string
	Arg  ExprID
}

type ExprRecordData struct {
	Fields []RecordField
	Base   ExprID // `{ base with ... }`
}

// ExprFieldData serves `e.f` and `e.f <- v`.
type ExprFieldData struct {
	Target ExprID
	Name   string
	Value  ExprID
}

type ExprIfData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// ExprLoopData serves while (Cond, Body) and for (Var, From, To, Down, Body).
type ExprLoopData struct {
	Cond ExprID
	Var  PatID
	From ExprID
	To   ExprID
	Down bool
	Body ExprID
}

// ExprTypedData serves constraint and coercion. From is the optional source
// type of `(e : t1 :> t2)`.
type ExprTypedData struct {
	Expr ExprID
	Type string
	From string
}

// ExprWrapData serves assert and lazy.
type ExprWrapData struct {
	Expr ExprID
}

type ExprExtensionData struct {
	Ext ExtensionID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena      *Arena[Expr]
	Idents     *Arena[ExprIdentData]
	Constants  *Arena[ExprConstantData]
	Applies    *Arena[ExprApplyData]
	Lets       *Arena[ExprLetData]
	Funs       *Arena[ExprFunData]
	Cases      *Arena[ExprCasesData]
	Lists      *Arena[ExprListData]
	Constructs *Arena[ExprConstructData]
	Records    *Arena[ExprRecordData]
	Fields     *Arena[ExprFieldData]
	Ifs        *Arena[ExprIfData]
	Loops      *Arena[ExprLoopData]
	Annots     *Arena[ExprTypedData]
	Wraps      *Arena[ExprWrapData]
	Extensions *Arena[ExprExtensionData]
}

// NewExprs creates expression arenas preallocated with capHint (1<<8 when 0).
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:      NewArena[Expr](capHint),
		Idents:     NewArena[ExprIdentData](capHint),
		Constants:  NewArena[ExprConstantData](capHint),
		Applies:    NewArena[ExprApplyData](capHint),
		Lets:       NewArena[ExprLetData](small),
		Funs:       NewArena[ExprFunData](small),
		Cases:      NewArena[ExprCasesData](small),
		Lists:      NewArena[ExprListData](small),
		Constructs: NewArena[ExprConstructData](small),
		Records:    NewArena[ExprRecordData](small),
		Fields:     NewArena[ExprFieldData](small),
		Ifs:        NewArena[ExprIfData](small),
		Loops:      NewArena[ExprLoopData](small),
		Annots:     NewArena[ExprTypedData](small),
		Wraps:      NewArena[ExprWrapData](small),
		Extensions: NewArena[ExprExtensionData](small),
	}
}

func (e *Exprs) new(kind ExprKind, loc source.Loc, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Loc:     loc,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kinds ...ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil {
		return 0, false
	}
	for _, k := range kinds {
		if expr.Kind == k {
			return uint32(expr.Payload), true
		}
	}
	return 0, false
}

func (e *Exprs) NewIdent(loc source.Loc, name string) ExprID {
	return e.new(ExprIdent, loc, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewConstant(loc source.Loc, kind ConstKind, value string) ExprID {
	return e.new(ExprConstant, loc, e.Constants.Allocate(ExprConstantData{Kind: kind, Value: value}))
}

// NewQuotedString creates a `{delim|value|delim}` string constant.
func (e *Exprs) NewQuotedString(loc source.Loc, delim, value string) ExprID {
	return e.new(ExprConstant, loc, e.Constants.Allocate(ExprConstantData{Kind: ConstString, Value: value, Delim: delim}))
}

func (e *Exprs) Constant(id ExprID) (*ExprConstantData, bool) {
	p, ok := e.payload(id, ExprConstant)
	if !ok {
		return nil, false
	}
	return e.Constants.Get(p), true
}

// NewApply creates an application of fn to args.
func (e *Exprs) NewApply(loc source.Loc, fn ExprID, args []Arg) ExprID {
	payload := e.Applies.Allocate(ExprApplyData{Fn: fn, Args: append([]Arg(nil), args...)})
	return e.new(ExprApply, loc, payload)
}

func (e *Exprs) Apply(id ExprID) (*ExprApplyData, bool) {
	p, ok := e.payload(id, ExprApply)
	if !ok {
		return nil, false
	}
	return e.Applies.Get(p), true
}

func (e *Exprs) NewLet(loc source.Loc, rec bool, bindings []BindingID, body ExprID) ExprID {
	payload := e.Lets.Allocate(ExprLetData{Rec: rec, Bindings: append([]BindingID(nil), bindings...), Body: body})
	return e.new(ExprLet, loc, payload)
}

func (e *Exprs) Let(id ExprID) (*ExprLetData, bool) {
	p, ok := e.payload(id, ExprLet)
	if !ok {
		return nil, false
	}
	return e.Lets.Get(p), true
}

func (e *Exprs) NewFun(loc source.Loc, params []Param, body ExprID) ExprID {
	payload := e.Funs.Allocate(ExprFunData{Params: append([]Param(nil), params...), Body: body})
	return e.new(ExprFun, loc, payload)
}

func (e *Exprs) Fun(id ExprID) (*ExprFunData, bool) {
	p, ok := e.payload(id, ExprFun)
	if !ok {
		return nil, false
	}
	return e.Funs.Get(p), true
}

// NewCases creates a function, match or try expression. subject is ignored for function.
func (e *Exprs) NewCases(kind ExprKind, loc source.Loc, subject ExprID, cases []Case) ExprID {
	if kind == ExprFunction {
		subject = NoExprID
	}
	payload := e.Cases.Allocate(ExprCasesData{Subject: subject, Cases: append([]Case(nil), cases...)})
	return e.new(kind, loc, payload)
}

func (e *Exprs) CasesOf(id ExprID) (*ExprCasesData, bool) {
	p, ok := e.payload(id, ExprFunction, ExprMatch, ExprTry)
	if !ok {
		return nil, false
	}
	return e.Cases.Get(p), true
}

// NewList creates a tuple, array or sequence expression.
func (e *Exprs) NewList(kind ExprKind, loc source.Loc, elems []ExprID) ExprID {
	payload := e.Lists.Allocate(ExprListData{Elems: append([]ExprID(nil), elems...)})
	return e.new(kind, loc, payload)
}

func (e *Exprs) List(id ExprID) (*ExprListData, bool) {
	p, ok := e.payload(id, ExprTuple, ExprArray, ExprSequence)
	if !ok {
		return nil, false
	}
	return e.Lists.Get(p), true
}

func (e *Exprs) NewConstruct(loc source.Loc, name string, arg ExprID) ExprID {
	return e.new(ExprConstruct, loc, e.Constructs.Allocate(ExprConstructData{Name: name, Arg: arg}))
}

func (e *Exprs) NewVariant(loc source.Loc, name string, arg ExprID) ExprID {
	return e.new(ExprVariant, loc, e.Constructs.Allocate(ExprConstructData{Name: name, Arg: arg}))
}

func (e *Exprs) Construct(id ExprID) (*ExprConstructData, bool) {
	p, ok := e.payload(id, ExprConstruct, ExprVariant)
	if !ok {
		return nil, false
	}
	return e.Constructs.Get(p), true
}

func (e *Exprs) NewRecord(loc source.Loc, fields []RecordField, base ExprID) ExprID {
	payload := e.Records.Allocate(ExprRecordData{Fields: append([]RecordField(nil), fields...), Base: base})
	return e.new(ExprRecord, loc, payload)
}

func (e *Exprs) Record(id ExprID) (*ExprRecordData, bool) {
	p, ok := e.payload(id, ExprRecord)
	if !ok {
		return nil, false
	}
	return e.Records.Get(p), true
}

func (e *Exprs) NewField(loc source.Loc, target ExprID, name string) ExprID {
	return e.new(ExprField, loc, e.Fields.Allocate(ExprFieldData{Target: target, Name: name}))
}

func (e *Exprs) NewSetField(loc source.Loc, target ExprID, name string, value ExprID) ExprID {
	return e.new(ExprSetField, loc, e.Fields.Allocate(ExprFieldData{Target: target, Name: name, Value: value}))
}

func (e *Exprs) Field(id ExprID) (*ExprFieldData, bool) {
	p, ok := e.payload(id, ExprField, ExprSetField)
	if !ok {
		return nil, false
	}
	return e.Fields.Get(p), true
}

func (e *Exprs) NewIf(loc source.Loc, cond, then, els ExprID) ExprID {
	return e.new(ExprIf, loc, e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els}))
}

func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	p, ok := e.payload(id, ExprIf)
	if !ok {
		return nil, false
	}
	return e.Ifs.Get(p), true
}

func (e *Exprs) NewWhile(loc source.Loc, cond, body ExprID) ExprID {
	return e.new(ExprWhile, loc, e.Loops.Allocate(ExprLoopData{Cond: cond, Body: body}))
}

func (e *Exprs) NewFor(loc source.Loc, v PatID, from, to ExprID, down bool, body ExprID) ExprID {
	payload := e.Loops.Allocate(ExprLoopData{Var: v, From: from, To: to, Down: down, Body: body})
	return e.new(ExprFor, loc, payload)
}

func (e *Exprs) Loop(id ExprID) (*ExprLoopData, bool) {
	p, ok := e.payload(id, ExprWhile, ExprFor)
	if !ok {
		return nil, false
	}
	return e.Loops.Get(p), true
}

// NewConstraint creates `(inner : typ)`.
func (e *Exprs) NewConstraint(loc source.Loc, inner ExprID, typ string) ExprID {
	return e.new(ExprConstraint, loc, e.Annots.Allocate(ExprTypedData{Expr: inner, Type: typ}))
}

// NewCoerce creates `(inner : from :> typ)`; from may be empty.
func (e *Exprs) NewCoerce(loc source.Loc, inner ExprID, from, typ string) ExprID {
	return e.new(ExprCoerce, loc, e.Annots.Allocate(ExprTypedData{Expr: inner, Type: typ, From: from}))
}

func (e *Exprs) Typed(id ExprID) (*ExprTypedData, bool) {
	p, ok := e.payload(id, ExprConstraint, ExprCoerce)
	if !ok {
		return nil, false
	}
	return e.Annots.Get(p), true
}

// NewWrap creates an assert or lazy expression.
func (e *Exprs) NewWrap(kind ExprKind, loc source.Loc, inner ExprID) ExprID {
	return e.new(kind, loc, e.Wraps.Allocate(ExprWrapData{Expr: inner}))
}

func (e *Exprs) Wrap(id ExprID) (*ExprWrapData, bool) {
	p, ok := e.payload(id, ExprAssert, ExprLazy)
	if !ok {
		return nil, false
	}
	return e.Wraps.Get(p), true
}

func (e *Exprs) NewExtension(loc source.Loc, ext ExtensionID) ExprID {
	return e.new(ExprExtension, loc, e.Extensions.Allocate(ExprExtensionData{Ext: ext}))
}

func (e *Exprs) Extension(id ExprID) (*ExprExtensionData, bool) {
	p, ok := e.payload(id, ExprExtension)
	if !ok {
		return nil, false
	}
	return e.Extensions.Get(p), true
}
