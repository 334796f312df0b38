package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"docstyle/internal/diag"
	"docstyle/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note, hint *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
		hint:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note, p.hint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Loc, затем Notes и подсказку.
// Исходник читается через fs; если файл недоступен, контекст пропускается.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	baseDir := ""
	if fs != nil {
		baseDir = fs.BaseDir()
	}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		loc := d.Primary
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(loc.File, opts.PathMode, baseDir),
			loc.Start.Line,
			loc.Start.Col()+1,
			p.severity(d.Severity).Sprint(d.Severity),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		)
		excerpt(w, fs, loc, opts, p)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
					p.note.Sprint("note:"),
					formatPath(n.Loc.File, opts.PathMode, baseDir),
					n.Loc.Start.Line,
					n.Loc.Start.Col()+1,
					n.Msg,
				)
			}
		}
		if opts.ShowHints && d.Hint != "" {
			fmt.Fprintf(w, "  %s %s\n", p.hint.Sprint("help:"), d.Hint)
		}
	}
}

// excerpt prints the context lines and the underlined primary line.
func excerpt(w io.Writer, fs *source.FileSet, loc source.Loc, opts PrettyOpts, p palette) {
	if fs == nil || loc.File == "" || loc.Start.Line == 0 || loc.Ghost {
		return
	}
	f, err := fs.LoadOnce(loc.File)
	if err != nil {
		return
	}
	line := loc.Start.Line
	text := f.GetLine(line)
	if text == "" && line > 1 {
		return
	}

	first := line
	if opts.Context > 0 {
		ctx := uint32(opts.Context)
		if first > ctx {
			first -= ctx
		} else {
			first = 1
		}
	}
	width := len(fmt.Sprint(line))
	for n := first; n <= line; n++ {
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width, n), clip(f.GetLine(n), opts.Width))
	}

	startCol := int(loc.Start.Col())
	startCol = min(startCol, len(text))
	endCol := len(text)
	if loc.End.Line == loc.Start.Line {
		endCol = min(max(int(loc.End.Col()), startCol), len(text))
	}
	pad := runewidth.StringWidth(text[:startCol])
	span := max(runewidth.StringWidth(text[startCol:endCol]), 1)
	marker := "^" + strings.Repeat("~", span-1)
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
}

func clip(s string, width uint8) string {
	if width == 0 || runewidth.StringWidth(s) <= int(width) {
		return s
	}
	return runewidth.Truncate(s, int(width), "…")
}
