// Package docmarkup validates documentation comment text written in the
// ocamldoc markup. It does not build a document; it only reports the first
// syntax error with a position relative to the text.
package docmarkup

import (
	"strings"
)

// Parser checks documentation text. A nil result means the text is well formed.
type Parser interface {
	Parse(text string) *Error
}

// Ocamldoc is the default Parser.
type Ocamldoc struct{}

// Default is the parser used when the caller does not supply one.
var Default Parser = Ocamldoc{}

// Parse validates text with the default parser.
func Parse(text string) *Error {
	return Default.Parse(text)
}

func (Ocamldoc) Parse(text string) *Error {
	p := &parser{text: text, line: 1, bol: true}
	return p.body(0, Position{}, "")
}

type parser struct {
	text string
	off  int
	line int
	col  int
	// bol: с начала строки были только пробелы
	bol bool
}

func (p *parser) eof() bool { return p.off >= len(p.text) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.text[p.off]
}

func (p *parser) peekAt(n int) byte {
	if p.off+n >= len(p.text) {
		return 0
	}
	return p.text[p.off+n]
}

func (p *parser) bump() byte {
	if p.eof() {
		return 0
	}
	c := p.text[p.off]
	p.off++
	switch c {
	case '\n':
		p.line++
		p.col = 0
		p.bol = true
	case ' ', '\t', '\r':
		p.col++
	default:
		p.col++
		p.bol = false
	}
	return c
}

func (p *parser) pos() Position {
	return Position{Line: p.line, Column: p.col}
}

func (p *parser) errFrom(start Position, msg string) *Error {
	return &Error{Msg: msg, Start: start, End: p.pos()}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// body parses inline text up to stop ('}' or 0 for end of text). For nested
// constructs open and unterminated describe the error reported at end of text.
func (p *parser) body(stop byte, open Position, unterminated string) *Error {
	for {
		if p.eof() {
			if stop == 0 {
				return nil
			}
			return p.errFrom(open, unterminated)
		}
		switch c := p.peek(); {
		case c == '\\':
			p.bump()
			switch p.peek() {
			case '{', '}', '[', ']', '@', '\\':
				p.bump()
			}
		case c == '}':
			if stop == '}' {
				p.bump()
				return nil
			}
			start := p.pos()
			p.bump()
			return p.errFrom(start, MsgUnmatchedBrace)
		case c == '{':
			if err := p.markup(); err != nil {
				return err
			}
		case c == '[':
			if err := p.code(); err != nil {
				return err
			}
		case c == '@' && p.bol:
			if err := p.blockTag(); err != nil {
				return err
			}
		default:
			p.bump()
		}
	}
}

// markup parses a construct starting at '{'.
func (p *parser) markup() *Error {
	open := p.pos()
	p.bump() // {

	switch p.peek() {
	case '[':
		p.bump()
		return p.until("]}", open, MsgUnterminatedPreCode)
	case '%':
		p.bump()
		return p.until("%}", open, MsgUnterminatedTarget)
	case '!':
		p.bump()
		return p.reference(open)
	case '{':
		return p.link(open)
	case '-':
		p.bump()
		return p.errFrom(open, MsgMisplacedItem)
	case '^', '_':
		p.bump()
		return p.body('}', open, MsgUnterminatedStyle)
	}

	tag := p.word()
	switch {
	case tag == "v" && (p.eof() || isSpace(p.peek())):
		return p.until("v}", open, MsgUnterminatedVerbatim)
	case tag == "b" || tag == "i" || tag == "e" || tag == "C" || tag == "L" || tag == "R":
		return p.body('}', open, MsgUnterminatedStyle)
	case tag == "ul" || tag == "ol":
		return p.list(open)
	case tag == "li":
		return p.errFrom(open, MsgMisplacedItem)
	case isHeading(tag):
		return p.body('}', open, MsgUnterminatedHeading)
	default:
		return p.errFrom(open, MsgUnknownTag)
	}
}

// word consumes a tag name: everything up to whitespace or a brace.
func (p *parser) word() string {
	start := p.off
	for !p.eof() {
		c := p.peek()
		if isSpace(c) || c == '{' || c == '}' {
			break
		}
		p.bump()
	}
	return p.text[start:p.off]
}

// isHeading matches "0".."9" with an optional ":label".
func isHeading(tag string) bool {
	if tag == "" || tag[0] < '0' || tag[0] > '9' {
		return false
	}
	rest := tag[1:]
	if rest == "" {
		return true
	}
	if rest[0] != ':' || len(rest) == 1 {
		return false
	}
	for i := 1; i < len(rest); i++ {
		c := rest[i]
		if !(c == '_' || c == '-' || c == '.' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// until skips raw text up to and including the closing delimiter.
func (p *parser) until(closing string, open Position, unterminated string) *Error {
	for !p.eof() {
		if strings.HasPrefix(p.text[p.off:], closing) {
			for range closing {
				p.bump()
			}
			return nil
		}
		p.bump()
	}
	return p.errFrom(open, unterminated)
}

func (p *parser) reference(open Position) *Error {
	start := p.off
	for !p.eof() && p.peek() != '}' {
		p.bump()
	}
	if p.eof() {
		return p.errFrom(open, MsgUnterminatedReference)
	}
	empty := strings.TrimSpace(p.text[start:p.off]) == ""
	p.bump()
	if empty {
		return p.errFrom(open, MsgEmptyReference)
	}
	return nil
}

// link parses `{{:url} text}` and `{{!ref} text}`; p is at the second '{'.
func (p *parser) link(open Position) *Error {
	if k := p.peekAt(1); k != ':' && k != '!' {
		p.bump()
		return p.errFrom(open, MsgUnknownTag)
	}
	p.bump()
	p.bump()
	for !p.eof() && p.peek() != '}' {
		p.bump()
	}
	if p.eof() {
		return p.errFrom(open, MsgUnterminatedLink)
	}
	p.bump()
	return p.body('}', open, MsgUnterminatedLink)
}

// list parses the items of {ul ...} / {ol ...}: only whitespace and items
// are allowed between the tag and the closing brace.
func (p *parser) list(open Position) *Error {
	for {
		for !p.eof() && isSpace(p.peek()) {
			p.bump()
		}
		if p.eof() {
			return p.errFrom(open, MsgUnterminatedList)
		}
		if p.peek() == '}' {
			p.bump()
			return nil
		}
		itemOpen := p.pos()
		if p.peek() != '{' {
			p.bump()
			return p.errFrom(itemOpen, MsgExpectedItem)
		}
		p.bump()
		if p.peek() == '-' {
			p.bump()
		} else if tag := p.word(); tag != "li" {
			return p.errFrom(itemOpen, MsgExpectedItem)
		}
		if err := p.body('}', itemOpen, MsgUnterminatedList); err != nil {
			return err
		}
	}
}

// code parses `[ ... ]` with balanced brackets.
func (p *parser) code() *Error {
	open := p.pos()
	p.bump()
	depth := 1
	for !p.eof() {
		switch p.bump() {
		case '\\':
			p.bump()
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return nil
			}
		}
	}
	return p.errFrom(open, MsgUnterminatedCode)
}

// blockTag parses `@tag arg` at the start of a line.
func (p *parser) blockTag() *Error {
	open := p.pos()
	p.bump() // @
	start := p.off
	for !p.eof() {
		c := p.peek()
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			break
		}
		p.bump()
	}
	tag := p.text[start:p.off]
	if tag == "" {
		return nil
	}
	switch tag {
	case "param", "raise":
		if arg := p.argument(); arg == "" {
			return p.errFrom(open, MsgBadTag(tag))
		}
	case "see":
		if !p.seeTarget() {
			return p.errFrom(open, MsgBadTag(tag))
		}
	}
	return nil
}

// argument consumes horizontal space and one identifier-like word.
func (p *parser) argument() string {
	for p.peek() == ' ' || p.peek() == '\t' {
		p.bump()
	}
	start := p.off
	for !p.eof() && !isSpace(p.peek()) && p.peek() != '}' {
		p.bump()
	}
	return p.text[start:p.off]
}

// seeTarget consumes `<url>`, `'file'` or `"document"`.
func (p *parser) seeTarget() bool {
	for p.peek() == ' ' || p.peek() == '\t' {
		p.bump()
	}
	var closing byte
	switch p.peek() {
	case '<':
		closing = '>'
	case '\'':
		closing = '\''
	case '"':
		closing = '"'
	default:
		return false
	}
	p.bump()
	for !p.eof() {
		c := p.bump()
		if c == closing {
			return true
		}
		if c == '\n' {
			return false
		}
	}
	return false
}
