package check

import (
	"fortio.org/safecast"

	"docstyle/internal/docmarkup"
	"docstyle/internal/source"
)

// CheckDocSyntax parses the body of a documentation comment (its text without
// the leading '*') and reports a parse error at its absolute location.
// Columns are reported from the start of the comment text, '*' included.
func (e *Engine) CheckDocSyntax(text string, loc source.Loc) error {
	body := text
	var lead uint32
	if IsDocumentation(body) {
		body = body[1:]
		lead = 1
	}
	perr := e.parser.Parse(body)
	if perr == nil {
		return nil
	}
	return e.fail(Violation{
		Kind: DocumentationSyntaxError,
		Msg:  perr.Msg,
		Loc: source.Loc{
			File:  loc.File,
			Start: remap(loc.Start, perr.Start, lead),
			End:   remap(loc.Start, perr.End, lead),
		},
	})
}

// remap moves a position relative to the comment text into the file.
// On the first line the column, shifted by the stripped lead bytes, is added
// to the comment's own offset. On later lines the true line start is
// unknown: BOL is 0 and the offset is the bare column.
func remap(start source.Pos, rel docmarkup.Position, lead uint32) source.Pos {
	col := toU32(rel.Column)
	if rel.Line <= 1 {
		return source.Pos{
			Line:   start.Line,
			BOL:    start.BOL,
			Offset: start.Offset + lead + col,
		}
	}
	return source.Pos{
		Line:   start.Line + toU32(rel.Line-1),
		BOL:    0,
		Offset: col,
	}
}

func toU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return 0
	}
	return v
}
