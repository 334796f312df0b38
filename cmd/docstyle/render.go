package main

import (
	"fmt"
	"io"

	"docstyle/internal/diag"
	"docstyle/internal/diagfmt"
	"docstyle/internal/source"
)

type renderOptions struct {
	format   string
	color    bool
	fullPath bool
	notes    bool
	baseDir  string
}

// render prints bag in the selected format. An empty bag prints nothing
// except for json, which always emits a document.
func render(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts renderOptions) error {
	pathMode := diagfmt.PathModeAuto
	if opts.fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	switch opts.format {
	case "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     opts.color,
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: opts.notes,
			ShowHints: true,
		})
		return nil
	case "short":
		return diagfmt.Short(w, bag, diagfmt.ShortOpts{PathMode: pathMode, BaseDir: opts.baseDir})
	case "json":
		return diagfmt.JSON(w, bag, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			BaseDir:          opts.baseDir,
			IncludeNotes:     opts.notes,
		})
	default:
		return fmt.Errorf("unknown format: %s", opts.format)
	}
}
