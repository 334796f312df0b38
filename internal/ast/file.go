package ast

import (
	"docstyle/internal/source"
)

// FileKind distinguishes implementation files from interface files.
type FileKind uint8

const (
	// FileStructure is an implementation (.ml): a list of structure items.
	FileStructure FileKind = iota
	// FileSignature is an interface (.mli): a list of signature items.
	FileSignature
)

func (k FileKind) String() string {
	switch k {
	case FileStructure:
		return "structure"
	case FileSignature:
		return "signature"
	default:
		return "unknown"
	}
}

// Comment is a raw comment as collected by the host lexer.
// Text excludes the comment delimiters and may be empty.
type Comment struct {
	Text string
	Loc  source.Loc
}

// HostWarning is a diagnostic the host parser produced for this file,
// identified by the host's own warning number.
type HostWarning struct {
	Number  int
	Message string
	Loc     source.Loc
}

// File is the parsed module handed over by the host.
type File struct {
	Name     string
	Kind     FileKind
	Loc      source.Loc
	Items    []ItemID
	Comments []Comment
	Warnings []HostWarning
}

type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(name string, kind FileKind, loc source.Loc) FileID {
	return FileID(f.Arena.Allocate(File{
		Name:  name,
		Kind:  kind,
		Loc:   loc,
		Items: make([]ItemID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
