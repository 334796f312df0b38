// Package lexer collects the comments of an ML source file. It knows just
// enough of the lexical grammar to keep comment delimiters inside string and
// character literals from being taken for real ones.
package lexer

import (
	"io"

	"docstyle/internal/ast"
	"docstyle/internal/source"
)

type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Comments scans the whole file and returns its top-level comments in
// source order. Nested comments belong to the text of the enclosing one.
func (s *Scanner) Comments() []ast.Comment {
	out := make([]ast.Comment, 0)
	for !s.cursor.EOF() {
		c := s.cursor.Peek()
		switch {
		case c == '(' && s.cursor.PeekAt(1) == '*':
			if cm, ok := s.scanComment(); ok {
				out = append(out, cm)
			}
		case c == '"':
			s.skipString(false)
		case c == '{':
			if !s.skipQuotedString() {
				s.cursor.Bump()
			}
		case c == '\'':
			s.skipChar()
		case isIdentChar(c):
			s.skipIdent()
		default:
			s.cursor.Bump()
		}
	}
	return out
}

// ScanFile loads path into fs and returns its comments.
func ScanFile(fs *source.FileSet, path string, opts Options) ([]ast.Comment, error) {
	f, err := fs.LoadOnce(path)
	if err != nil {
		return nil, err
	}
	return New(f, opts).Comments(), nil
}

// ScanReader reads a source that is not on disk (stdin) into fs as a
// virtual file named name and returns its comments.
func ScanReader(fs *source.FileSet, name string, r io.Reader, opts Options) ([]ast.Comment, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(fs.Get(fs.AddVirtual(name, content)), opts).Comments(), nil
}

func isIdentChar(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// идентификаторы могут содержать апостроф: x', a'b
func (s *Scanner) skipIdent() {
	for !s.cursor.EOF() {
		c := s.cursor.Peek()
		if !isIdentChar(c) && c != '\'' {
			return
		}
		s.cursor.Bump()
	}
}
