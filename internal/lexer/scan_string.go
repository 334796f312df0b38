package lexer

import (
	"docstyle/internal/diag"
)

// skipString skips "..." with backslash escapes. Newlines are allowed.
func (s *Scanner) skipString(inComment bool) {
	start := s.cursor.Mark()
	s.cursor.Bump() // opening '"'
	for !s.cursor.EOF() {
		switch s.cursor.Bump() {
		case '"':
			return
		case '\\':
			s.cursor.Bump()
		}
	}
	msg := "unterminated string literal"
	if inComment {
		msg = "this comment contains an unterminated string literal"
	}
	s.report(diag.LexUnterminatedString, s.cursor.LocFrom(start), msg)
}

// skipQuotedString skips {id|...|id} where id is [a-z_]*. It returns false,
// consuming nothing, when the input at '{' is not a quoted string opener.
func (s *Scanner) skipQuotedString() bool {
	start := s.cursor.Mark()
	s.cursor.Bump() // {
	idStart := s.cursor.Mark()
	for c := s.cursor.Peek(); c == '_' || c >= 'a' && c <= 'z'; c = s.cursor.Peek() {
		s.cursor.Bump()
	}
	id := s.cursor.TextFrom(idStart)
	if !s.cursor.Eat('|') {
		s.cursor.Reset(start)
		return false
	}
	closing := "|" + id + "}"
	for !s.cursor.EOF() {
		if s.cursor.EatPrefix(closing) {
			return true
		}
		s.cursor.Bump()
	}
	s.report(diag.LexUnterminatedString, s.cursor.LocFrom(start), "unterminated quoted string")
	return true
}

// skipChar skips a character literal ('x', '\n', '\123', '\xFF') or, when
// the quote starts a type variable like 'a, just the quote itself.
func (s *Scanner) skipChar() {
	switch {
	case s.cursor.PeekAt(1) == '\\':
		start := s.cursor.Mark()
		s.cursor.EatPrefix("'\\")
		s.cursor.Bump()
		for i := 0; i < 4 && !s.cursor.EOF(); i++ {
			if s.cursor.Eat('\'') {
				return
			}
			if s.cursor.Peek() == '\n' {
				break
			}
			s.cursor.Bump()
		}
		// не литерал: откатываемся, кавычка остаётся обычным символом
		s.cursor.Reset(start)
		s.cursor.Bump()
	case s.cursor.PeekAt(1) != '\n' && s.cursor.PeekAt(2) == '\'':
		s.cursor.Bump()
		s.cursor.Bump()
		s.cursor.Bump()
	default:
		s.cursor.Bump()
	}
}
