package ast

import (
	"docstyle/internal/source"
)

// PayloadKind enumerates the shapes of an attribute or extension payload.
type PayloadKind uint8

const (
	// PayloadStructure is `[@foo item; item]`; an empty payload is an empty structure.
	PayloadStructure PayloadKind = iota
	// PayloadSignature is `[@foo: sig-item]`.
	PayloadSignature
	// PayloadType is `[@foo: type]`.
	PayloadType
	// PayloadPattern is `[@foo? pat when guard]`.
	PayloadPattern
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadStructure:
		return "structure"
	case PayloadSignature:
		return "signature"
	case PayloadType:
		return "type"
	case PayloadPattern:
		return "pattern"
	default:
		return "unknown"
	}
}

type Payload struct {
	Kind  PayloadKind
	Items []ItemID // PayloadStructure, PayloadSignature
	Type  string   // PayloadType
	Pat   PatID    // PayloadPattern
	Guard ExprID   // PayloadPattern, optional
}

// Attr is `[@name payload]`, `[@@name payload]` or `[@@@name payload]`.
type Attr struct {
	Name    string
	Payload PayloadID
	Loc     source.Loc
}

// Extension is `[%name payload]` or `[%%name payload]`.
type Extension struct {
	Name    string
	Payload PayloadID
	Loc     source.Loc
}

// Attrs manages attributes, extensions and their payloads.
type Attrs struct {
	Arena      *Arena[Attr]
	Extensions *Arena[Extension]
	Payloads   *Arena[Payload]
}

func NewAttrs(capHint uint) *Attrs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Attrs{
		Arena:      NewArena[Attr](capHint),
		Extensions: NewArena[Extension](capHint),
		Payloads:   NewArena[Payload](capHint * 2),
	}
}

func (a *Attrs) New(loc source.Loc, name string, payload PayloadID) AttrID {
	return AttrID(a.Arena.Allocate(Attr{Name: name, Payload: payload, Loc: loc}))
}

func (a *Attrs) Get(id AttrID) *Attr {
	return a.Arena.Get(uint32(id))
}

func (a *Attrs) NewExtension(loc source.Loc, name string, payload PayloadID) ExtensionID {
	return ExtensionID(a.Extensions.Allocate(Extension{Name: name, Payload: payload, Loc: loc}))
}

func (a *Attrs) Extension(id ExtensionID) *Extension {
	return a.Extensions.Get(uint32(id))
}

func (a *Attrs) NewPayload(p Payload) PayloadID {
	return PayloadID(a.Payloads.Allocate(p))
}

// Payload returns the payload with the given ID; NoPayloadID yields nil.
func (a *Attrs) Payload(id PayloadID) *Payload {
	return a.Payloads.Get(uint32(id))
}
