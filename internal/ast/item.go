package ast

import (
	"docstyle/internal/source"
)

// ItemKind enumerates structure and signature items.
type ItemKind uint8

const (
	// ItemValue is `let [rec] p1 = e1 and p2 = e2`.
	ItemValue ItemKind = iota
	// ItemEval is a toplevel expression.
	ItemEval
	// ItemModule is `module M = struct ... end` or `module M : sig ... end`.
	ItemModule
	// ItemModuleType is `module type S = sig ... end`.
	ItemModuleType
	// ItemAttribute is a floating attribute `[@@@name payload]`.
	ItemAttribute
	// ItemExtension is an item extension `[%%name payload]`.
	ItemExtension
	// ItemType is a type declaration with its constructors or fields.
	ItemType
	// ItemException declares an exception constructor.
	ItemException
	// ItemVal is `val x : t` in a signature or `external x : t = "prim"`.
	ItemVal
	ItemOpen
	ItemInclude
)

func (k ItemKind) String() string {
	switch k {
	case ItemValue:
		return "value"
	case ItemEval:
		return "eval"
	case ItemModule:
		return "module"
	case ItemModuleType:
		return "module_type"
	case ItemAttribute:
		return "attribute"
	case ItemExtension:
		return "extension"
	case ItemType:
		return "type"
	case ItemException:
		return "exception"
	case ItemVal:
		return "val"
	case ItemOpen:
		return "open"
	case ItemInclude:
		return "include"
	default:
		return "unknown"
	}
}

// TypeMember is a constructor or a record field of a type declaration.
// Members carry their own attributes (`| A [@deprecated "..."]`).
type TypeMember struct {
	Name  string
	Loc   source.Loc
	Attrs []AttrID
}

// Item is a structure or signature item. Items are few per module, so the
// per-kind data lives inline instead of in separate payload arenas; only the
// fields relevant to Kind are set.
type Item struct {
	Kind  ItemKind
	Loc   source.Loc
	Attrs []AttrID

	Name     string      // module, module type, type, exception, val, open
	Rec      bool        // ItemValue
	Bindings []BindingID // ItemValue
	Expr     ExprID      // ItemEval
	Items    []ItemID    // ItemModule, ItemModuleType, ItemInclude
	Attr     AttrID      // ItemAttribute
	Ext      ExtensionID // ItemExtension
	Members  []TypeMember
	Type     string   // ItemVal: the type as written
	Prims    []string // ItemVal: primitive names of an external
}

type Items struct {
	Arena *Arena[Item]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Items{
		Arena: NewArena[Item](capHint),
	}
}

func (i *Items) new(item Item) ItemID {
	return ItemID(i.Arena.Allocate(item))
}

// Get returns the item with the given ID.
func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

// NewValue creates `let [rec] bindings`.
func (i *Items) NewValue(loc source.Loc, rec bool, bindings ...BindingID) ItemID {
	return i.new(Item{Kind: ItemValue, Loc: loc, Rec: rec, Bindings: bindings})
}

// NewEval creates a toplevel expression item.
func (i *Items) NewEval(loc source.Loc, expr ExprID) ItemID {
	return i.new(Item{Kind: ItemEval, Loc: loc, Expr: expr})
}

// NewModule creates a module whose body is the given items.
func (i *Items) NewModule(loc source.Loc, name string, body ...ItemID) ItemID {
	return i.new(Item{Kind: ItemModule, Loc: loc, Name: name, Items: body})
}

// NewModuleType creates a module type whose body is the given signature items.
func (i *Items) NewModuleType(loc source.Loc, name string, body ...ItemID) ItemID {
	return i.new(Item{Kind: ItemModuleType, Loc: loc, Name: name, Items: body})
}

// NewAttribute creates a floating attribute item.
func (i *Items) NewAttribute(loc source.Loc, attr AttrID) ItemID {
	return i.new(Item{Kind: ItemAttribute, Loc: loc, Attr: attr})
}

// NewExtension creates an item extension.
func (i *Items) NewExtension(loc source.Loc, ext ExtensionID) ItemID {
	return i.new(Item{Kind: ItemExtension, Loc: loc, Ext: ext})
}

// NewType creates a type declaration.
func (i *Items) NewType(loc source.Loc, name string, members ...TypeMember) ItemID {
	return i.new(Item{Kind: ItemType, Loc: loc, Name: name, Members: members})
}

// NewException creates an exception declaration.
func (i *Items) NewException(loc source.Loc, name string) ItemID {
	return i.new(Item{Kind: ItemException, Loc: loc, Name: name})
}

// NewVal creates `val name : typ`, or an external when prims are given.
func (i *Items) NewVal(loc source.Loc, name, typ string, prims ...string) ItemID {
	return i.new(Item{Kind: ItemVal, Loc: loc, Name: name, Type: typ, Prims: prims})
}

// NewOpen creates `open Name`.
func (i *Items) NewOpen(loc source.Loc, name string) ItemID {
	return i.new(Item{Kind: ItemOpen, Loc: loc, Name: name})
}

// NewInclude creates an include of an inline body; name is kept for
// `include M` where the body is not available.
func (i *Items) NewInclude(loc source.Loc, name string, body ...ItemID) ItemID {
	return i.new(Item{Kind: ItemInclude, Loc: loc, Name: name, Items: body})
}
