package source

import (
	"fmt"
)

// Pos is a position as the host parser reports it: a 1-based line number,
// the absolute byte offset of the beginning of that line and the absolute
// byte offset of the position itself.
//
// The column is derived, never stored: Offset - BOL.
type Pos struct {
	Line   uint32 `json:"line" yaml:"line"`
	BOL    uint32 `json:"bol" yaml:"bol"`
	Offset uint32 `json:"offset" yaml:"offset"`
}

// Col returns the 0-based byte column of the position.
// A position whose BOL lies past its offset has no meaningful column and reports 0.
func (p Pos) Col() uint32 {
	if p.Offset < p.BOL {
		return 0
	}
	return p.Offset - p.BOL
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col())
}

// Loc is a half-open location [Start, End) inside the file named File.
// Values are immutable; functions that need a different location build a new one.
type Loc struct {
	File  string `json:"file,omitempty" yaml:"file,omitempty"`
	Start Pos    `json:"start" yaml:"start"`
	End   Pos    `json:"end" yaml:"end"`
	// Ghost marks locations synthesized by the host rather than read from source.
	Ghost bool `json:"ghost,omitempty" yaml:"ghost,omitempty"`
}

// NoLoc is the zero location.
var NoLoc = Loc{}

// IsZero reports whether l carries no position information at all.
func (l Loc) IsZero() bool {
	return l.File == "" && l.Start == (Pos{}) && l.End == (Pos{})
}

// WithFile returns a copy of l that names file, unless l already names one.
func (l Loc) WithFile(file string) Loc {
	if l.File != "" {
		return l
	}
	l.File = file
	return l
}

// String renders "file:line:col", with 1-based columns like the compiler does.
func (l Loc) String() string {
	file := l.File
	if file == "" {
		file = "_none_"
	}
	return fmt.Sprintf("%s:%d:%d", file, l.Start.Line, l.Start.Col()+1)
}

// Range renders the full location: "file:line:col-line:col".
func (l Loc) Range() string {
	if l.Start.Line == l.End.Line {
		return fmt.Sprintf("%s-%d", l.String(), l.End.Col()+1)
	}
	return fmt.Sprintf("%s-%d:%d", l.String(), l.End.Line, l.End.Col()+1)
}
