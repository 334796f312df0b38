// Package check implements the style rules: deprecation attributes, annotated
// discards, the interface comment policy and documentation syntax.
//
// An Engine walks a module tree once and reports the first violation through
// its FailFunc. The tree is never modified.
package check

import (
	"docstyle/internal/ast"
	"docstyle/internal/docmarkup"
)

// Engine runs the style rules with one Config over any number of modules.
type Engine struct {
	cfg    Config
	parser docmarkup.Parser
	fail   FailFunc
}

// New creates an engine. A nil parser selects docmarkup.Default, a nil fail
// selects Report.
func New(cfg Config, parser docmarkup.Parser, fail FailFunc) *Engine {
	if parser == nil {
		parser = docmarkup.Default
	}
	if fail == nil {
		fail = Report
	}
	return &Engine{cfg: cfg, parser: parser, fail: fail}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// run is the state of one check call.
type run struct {
	e *Engine
	b *ast.Builder
	w *ast.Walker
}

func (e *Engine) newRun(b *ast.Builder) *run {
	r := &run{e: e, b: b}
	r.w = ast.NewWalker(b, ast.Hooks{
		Attr:      r.checkDeprecated,
		Binding:   r.onBinding,
		Expr:      r.onExpr,
		Extension: r.onExtension,
	})
	return r
}

// CheckStructure walks an implementation and returns file unchanged.
func (e *Engine) CheckStructure(b *ast.Builder, file ast.FileID) (ast.FileID, error) {
	if err := e.newRun(b).w.File(file); err != nil {
		return file, err
	}
	return file, nil
}

// CheckSignature walks an interface and returns file unchanged.
func (e *Engine) CheckSignature(b *ast.Builder, file ast.FileID) (ast.FileID, error) {
	if err := e.newRun(b).w.File(file); err != nil {
		return file, err
	}
	return file, nil
}

// Intf is the interface-file entry point: the tree walk, then, with comment
// checking on, the comment pass in interface context.
func (e *Engine) Intf(b *ast.Builder, file ast.FileID) (ast.FileID, error) {
	if _, err := e.CheckSignature(b, file); err != nil {
		return file, err
	}
	if !e.cfg.CheckComments {
		return file, nil
	}
	return file, e.CheckComments(b.Files.Get(file).Comments, true)
}

// Impl is the implementation-file entry point. Interface context applies when
// intf is set or the file is named like foo_intf.ml.
func (e *Engine) Impl(b *ast.Builder, file ast.FileID, intf bool) (ast.FileID, error) {
	if _, err := e.CheckStructure(b, file); err != nil {
		return file, err
	}
	if !e.cfg.CheckComments {
		return file, nil
	}
	f := b.Files.Get(file)
	return file, e.CheckComments(f.Comments, intf || IsInterfaceFile(f.Name))
}
