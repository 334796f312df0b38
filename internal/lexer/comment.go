package lexer

import (
	"docstyle/internal/ast"
	"docstyle/internal/diag"
)

// scanComment reads a comment starting at "(*". Its text is everything
// between the outer delimiters, so "(**)" yields an empty comment. An
// unterminated comment is reported and dropped.
func (s *Scanner) scanComment() (ast.Comment, bool) {
	start := s.cursor.Mark()
	s.cursor.EatPrefix("(*")
	body := s.cursor.Mark()
	depth := 1
	for !s.cursor.EOF() {
		c := s.cursor.Peek()
		switch {
		case c == '(' && s.cursor.PeekAt(1) == '*':
			s.cursor.EatPrefix("(*")
			depth++
		case c == '*' && s.cursor.PeekAt(1) == ')':
			end := s.cursor.Mark()
			s.cursor.EatPrefix("*)")
			depth--
			if depth == 0 {
				return ast.Comment{
					Text: string(s.file.Content[uint32(body):uint32(end)]),
					Loc:  s.cursor.LocFrom(start),
				}, true
			}
		case c == '"':
			s.skipString(true)
		case c == '{':
			if !s.skipQuotedString() {
				s.cursor.Bump()
			}
		case c == '\'':
			s.skipChar()
		default:
			s.cursor.Bump()
		}
	}
	s.report(diag.LexUnterminatedComment, s.cursor.LocFrom(start), "unterminated comment")
	return ast.Comment{}, false
}
