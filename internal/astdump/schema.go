// Package astdump reads and writes module dumps: the parsed module tree a host
// parser hands over, serialized as JSON, MessagePack or YAML. Nodes are tagged
// objects; the "kind" field selects which of the other fields are meaningful.
package astdump

import (
	"docstyle/internal/source"
)

// SchemaVersion is the newest dump layout this package understands.
// Dumps without a version are treated as version 1.
const SchemaVersion = 1

// Dump is the root of a module dump.
type Dump struct {
	Version  int        `json:"version,omitempty" yaml:"version,omitempty"`
	File     string     `json:"file" yaml:"file"`
	Kind     string     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Loc      source.Loc `json:"loc" yaml:"loc"`
	Items    []Item     `json:"items" yaml:"items"`
	Comments []Comment  `json:"comments,omitempty" yaml:"comments,omitempty"`
	Warnings []Warning  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type Comment struct {
	Text string     `json:"text" yaml:"text"`
	Loc  source.Loc `json:"loc" yaml:"loc"`
}

// Warning is a host parser warning identified by its host number.
type Warning struct {
	Number  int        `json:"number" yaml:"number"`
	Message string     `json:"message" yaml:"message"`
	Loc     source.Loc `json:"loc" yaml:"loc"`
}

type Item struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Loc      source.Loc `json:"loc" yaml:"loc"`
	Attrs    []Attr     `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Name     string     `json:"name,omitempty" yaml:"name,omitempty"`
	Rec      bool       `json:"rec,omitempty" yaml:"rec,omitempty"`
	Bindings []Binding  `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Expr     *Expr      `json:"expr,omitempty" yaml:"expr,omitempty"`
	Items    []Item     `json:"items,omitempty" yaml:"items,omitempty"`
	Attr     *Attr      `json:"attr,omitempty" yaml:"attr,omitempty"`
	Ext      *Attr      `json:"ext,omitempty" yaml:"ext,omitempty"`
	Members  []Member   `json:"members,omitempty" yaml:"members,omitempty"`
	Type     string     `json:"type,omitempty" yaml:"type,omitempty"`
	Prims    []string   `json:"prims,omitempty" yaml:"prims,omitempty"`
}

// Member is a constructor or record field of a type declaration.
type Member struct {
	Name  string     `json:"name" yaml:"name"`
	Loc   source.Loc `json:"loc" yaml:"loc"`
	Attrs []Attr     `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Attr describes both attributes and extensions: a name and a payload.
// A missing payload is an empty structure.
type Attr struct {
	Name    string     `json:"name" yaml:"name"`
	Loc     source.Loc `json:"loc" yaml:"loc"`
	Payload *Payload   `json:"payload,omitempty" yaml:"payload,omitempty"`
}

type Payload struct {
	Kind  string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
	Pat   *Pat   `json:"pat,omitempty" yaml:"pat,omitempty"`
	Guard *Expr  `json:"guard,omitempty" yaml:"guard,omitempty"`
}

type Binding struct {
	Loc   source.Loc `json:"loc" yaml:"loc"`
	Pat   *Pat       `json:"pat" yaml:"pat"`
	Expr  *Expr      `json:"expr" yaml:"expr"`
	Attrs []Attr     `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

type Pat struct {
	Kind   string     `json:"kind" yaml:"kind"`
	Loc    source.Loc `json:"loc" yaml:"loc"`
	Attrs  []Attr     `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Name   string     `json:"name,omitempty" yaml:"name,omitempty"`
	Type   string     `json:"type,omitempty" yaml:"type,omitempty"`
	Elems  []Pat      `json:"elems,omitempty" yaml:"elems,omitempty"`
	Fields []PatField `json:"fields,omitempty" yaml:"fields,omitempty"`
}

type PatField struct {
	Name string `json:"name" yaml:"name"`
	Pat  Pat    `json:"pat" yaml:"pat"`
}

// Expr is an expression node. Field use by kind:
//
//	ident                 name
//	constant              const, text, delim
//	apply                 fn, args
//	let                   rec, bindings, body
//	fun                   params, body
//	function match try    subject, cases
//	tuple array sequence  elems
//	construct variant     name, arg
//	record                fields, base
//	field setfield        target, name, value
//	if                    cond, then, else
//	while for             cond | var from to down, body
//	constraint coerce     expr, type, from_type
//	assert lazy           expr
//	extension             ext
type Expr struct {
	Kind  string     `json:"kind" yaml:"kind"`
	Loc   source.Loc `json:"loc" yaml:"loc"`
	Attrs []Attr     `json:"attrs,omitempty" yaml:"attrs,omitempty"`

	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Const    string    `json:"const,omitempty" yaml:"const,omitempty"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Delim    string    `json:"delim,omitempty" yaml:"delim,omitempty"`
	Fn       *Expr     `json:"fn,omitempty" yaml:"fn,omitempty"`
	Args     []Arg     `json:"args,omitempty" yaml:"args,omitempty"`
	Rec      bool      `json:"rec,omitempty" yaml:"rec,omitempty"`
	Bindings []Binding `json:"bindings,omitempty" yaml:"bindings,omitempty"`
	Params   []Param   `json:"params,omitempty" yaml:"params,omitempty"`
	Body     *Expr     `json:"body,omitempty" yaml:"body,omitempty"`
	Subject  *Expr     `json:"subject,omitempty" yaml:"subject,omitempty"`
	Cases    []Case    `json:"cases,omitempty" yaml:"cases,omitempty"`
	Elems    []Expr    `json:"elems,omitempty" yaml:"elems,omitempty"`
	Arg      *Expr     `json:"arg,omitempty" yaml:"arg,omitempty"`
	Fields   []Field   `json:"fields,omitempty" yaml:"fields,omitempty"`
	Base     *Expr     `json:"base,omitempty" yaml:"base,omitempty"`
	Target   *Expr     `json:"target,omitempty" yaml:"target,omitempty"`
	Value    *Expr     `json:"value,omitempty" yaml:"value,omitempty"`
	Cond     *Expr     `json:"cond,omitempty" yaml:"cond,omitempty"`
	Then     *Expr     `json:"then,omitempty" yaml:"then,omitempty"`
	Else     *Expr     `json:"else,omitempty" yaml:"else,omitempty"`
	Var      *Pat      `json:"var,omitempty" yaml:"var,omitempty"`
	From     *Expr     `json:"from,omitempty" yaml:"from,omitempty"`
	To       *Expr     `json:"to,omitempty" yaml:"to,omitempty"`
	Down     bool      `json:"down,omitempty" yaml:"down,omitempty"`
	Inner    *Expr     `json:"expr,omitempty" yaml:"expr,omitempty"`
	Type     string    `json:"type,omitempty" yaml:"type,omitempty"`
	FromType string    `json:"from_type,omitempty" yaml:"from_type,omitempty"`
	Ext      *Attr     `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// Arg label is "" for positional arguments, "labelled" or "optional".
type Arg struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Expr  *Expr  `json:"expr" yaml:"expr"`
}

type Param struct {
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Default *Expr  `json:"default,omitempty" yaml:"default,omitempty"`
	Pat     *Pat   `json:"pat" yaml:"pat"`
}

type Case struct {
	Pat   *Pat  `json:"pat" yaml:"pat"`
	Guard *Expr `json:"guard,omitempty" yaml:"guard,omitempty"`
	Body  *Expr `json:"body" yaml:"body"`
}

type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value *Expr  `json:"value" yaml:"value"`
}
