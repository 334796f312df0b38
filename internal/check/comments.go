package check

import (
	"docstyle/internal/ast"
)

// CheckComments applies the comment policy to every non-empty comment in
// order: plain comments are rejected in interface context, documentation
// comments must parse.
func (e *Engine) CheckComments(comments []ast.Comment, intf bool) error {
	for _, c := range comments {
		if c.Text == "" {
			continue
		}
		if intf && !AllowedInInterface(c.Text) {
			if err := e.fail(Violation{Kind: CommentNotAllowedInInterface, Loc: c.Loc}); err != nil {
				return err
			}
		}
		if IsDocumentation(c.Text) {
			if err := e.CheckDocSyntax(c.Text, c.Loc); err != nil {
				return err
			}
		}
	}
	return nil
}
