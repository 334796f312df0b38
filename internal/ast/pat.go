package ast

import (
	"docstyle/internal/source"
)

type PatKind uint8

const (
	// PatAny is the wildcard `_`.
	PatAny PatKind = iota
	PatVar
	PatConstant
	PatTuple
	PatConstruct
	// PatConstraint is `(p : t)`.
	PatConstraint
	// PatAlias is `p as x`.
	PatAlias
	PatOr
	PatRecord
)

var patKindNames = [...]string{
	PatAny:        "any",
	PatVar:        "var",
	PatConstant:   "constant",
	PatTuple:      "tuple",
	PatConstruct:  "construct",
	PatConstraint: "constraint",
	PatAlias:      "alias",
	PatOr:         "or",
	PatRecord:     "record",
}

func (k PatKind) String() string {
	if int(k) < len(patKindNames) {
		return patKindNames[k]
	}
	return "unknown"
}

type PatField struct {
	Name string
	Pat  PatID
}

// Pat is a pattern. Patterns never carry expressions, so the node stays flat:
//   - Name: variable, constructor, alias or constant text
//   - Type: PatConstraint
//   - Elems: tuple components, or-alternatives (left, right), the single
//     argument of a constructor, the inner pattern of constraint / alias
type Pat struct {
	Kind   PatKind
	Loc    source.Loc
	Attrs  []AttrID
	Name   string
	Type   string
	Elems  []PatID
	Fields []PatField
}

type Pats struct {
	Arena *Arena[Pat]
}

func NewPats(capHint uint) *Pats {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Pats{
		Arena: NewArena[Pat](capHint),
	}
}

func (p *Pats) new(pat Pat) PatID {
	return PatID(p.Arena.Allocate(pat))
}

// Get returns the pattern with the given ID.
func (p *Pats) Get(id PatID) *Pat {
	return p.Arena.Get(uint32(id))
}

// New creates a pattern from a raw node; used by decoders.
func (p *Pats) New(pat Pat) PatID {
	return p.new(pat)
}

func (p *Pats) NewAny(loc source.Loc) PatID {
	return p.new(Pat{Kind: PatAny, Loc: loc})
}

func (p *Pats) NewVar(loc source.Loc, name string) PatID {
	return p.new(Pat{Kind: PatVar, Loc: loc, Name: name})
}

func (p *Pats) NewConstraint(loc source.Loc, inner PatID, typ string) PatID {
	return p.new(Pat{Kind: PatConstraint, Loc: loc, Type: typ, Elems: []PatID{inner}})
}

func (p *Pats) NewTuple(loc source.Loc, elems ...PatID) PatID {
	return p.new(Pat{Kind: PatTuple, Loc: loc, Elems: elems})
}

// NewConstruct creates `Name` or `Name arg`; arg may be NoPatID.
func (p *Pats) NewConstruct(loc source.Loc, name string, arg PatID) PatID {
	pat := Pat{Kind: PatConstruct, Loc: loc, Name: name}
	if arg.IsValid() {
		pat.Elems = []PatID{arg}
	}
	return p.new(pat)
}

// IsWildcard reports whether id is exactly `_`; a constrained or aliased
// wildcard is not.
func (p *Pats) IsWildcard(id PatID) bool {
	pat := p.Get(id)
	return pat != nil && pat.Kind == PatAny
}
