package docmarkup

import "fmt"

// Position is relative to the parsed text: Line is 1-based, Column is the
// 0-based byte offset from the start of that line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error describes why a documentation text does not parse.
type Error struct {
	Msg   string
	Start Position
	End   Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s-%s: %s", e.Start, e.End, e.Msg)
}

// Сообщения парсера; тесты и вызывающий код сравнивают их по значению.
const (
	MsgUnterminatedVerbatim  = "Unterminated verbatim"
	MsgUnterminatedCode      = "Unterminated code"
	MsgUnterminatedPreCode   = "Unterminated pre-code"
	MsgUnterminatedReference = "Unterminated reference"
	MsgUnterminatedTarget    = "Unterminated target"
	MsgUnterminatedStyle     = "Unterminated style"
	MsgUnterminatedHeading   = "Unterminated heading"
	MsgUnterminatedLink      = "Unterminated link"
	MsgUnterminatedList      = "Unterminated list"
	MsgUnknownTag            = "Unknown markup tag"
	MsgUnmatchedBrace        = "Unmatched closing brace"
	MsgMisplacedItem         = "Misplaced list item"
	MsgExpectedItem          = "Expected list item"
	MsgEmptyReference        = "Empty reference"
)

// MsgBadTag is reported for block tags missing their mandatory argument.
func MsgBadTag(tag string) string {
	return "Bad @" + tag + " tag"
}
