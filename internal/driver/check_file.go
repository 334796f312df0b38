package driver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"docstyle/internal/ast"
	"docstyle/internal/astdump"
	"docstyle/internal/check"
	"docstyle/internal/diag"
	"docstyle/internal/lexer"
	"docstyle/internal/observ"
	"docstyle/internal/project"
	"docstyle/internal/source"
)

// Result is the outcome of checking one dump.
type Result struct {
	// Path of the dump, Module the name of the module it describes.
	Path   string
	Module string
	Kind   ast.FileKind

	Bag     *diag.Bag
	Failed  bool
	Cached  bool
	Timings observ.Report
}

// CheckFile checks a single dump. Violations, malformed dumps and I/O errors
// end up in the result's bag; the error is reserved for cancellation.
func (d *Driver) CheckFile(ctx context.Context, path string) (res Result, err error) {
	res = Result{Path: path, Bag: diag.NewBag(d.opts.MaxDiagnostics)}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	timer := observ.NewTimer()
	defer func() {
		if d.opts.Timings {
			res.Timings = timer.Report()
		}
	}()

	done := timer.Track("read")
	// #nosec G304 -- path comes from the command line or a directory walk
	data, readErr := os.ReadFile(path)
	done("")
	if readErr != nil {
		d.hostError(&res, diag.IOLoadFileError, errors.Wrap(readErr, "read dump"))
		return res, nil
	}

	done = timer.Track("decode")
	dump, decodeErr := astdump.Read(path, data)
	done("")
	if decodeErr != nil {
		d.hostError(&res, dumpCode(decodeErr), decodeErr)
		return res, nil
	}
	res.Module = dump.File
	// предупреждения хоста идут после нарушения, чтобы лимит Bag не вытеснил его
	defer d.hostWarnings(&res, dump)

	var src *source.File
	var srcDigest []project.Digest
	if d.opts.Check.CheckComments && len(dump.Comments) == 0 {
		src = d.loadSource(dump.File)
		if src != nil {
			srcDigest = append(srcDigest, project.Digest(src.Hash))
		}
	}
	key := cacheKey(data, d.settings, srcDigest...)
	if d.opts.Cache.Clean(key) {
		res.Cached = true
		d.log.Debugw("cache hit", "dump", path, "module", dump.File)
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	b := ast.NewBuilder(ast.Hints{})
	done = timer.Track("build")
	file, buildErr := dump.Build(b)
	done("")
	if buildErr != nil {
		d.hostError(&res, dumpCode(buildErr), errors.Wrapf(buildErr, "dump %s", path))
		return res, nil
	}
	res.Kind = b.Files.Get(file).Kind

	if src != nil {
		done = timer.Track("scan")
		comments := lexer.New(src, lexer.Options{Reporter: diag.BagReporter{Bag: res.Bag}}).Comments()
		done(fmt.Sprintf("%d comments", len(comments)))
		b.Files.Get(file).Comments = comments
		if res.Bag.HasErrors() {
			res.Failed = true
			return res, nil
		}
	}

	done = timer.Track("check")
	_, checkErr := d.registry.Apply(b, file)
	done(res.Kind.String())
	if checkErr != nil {
		var ce *check.Error
		if errors.As(checkErr, &ce) {
			res.Bag.Add(ce.Violation.Diagnostic())
			res.Failed = true
		} else {
			d.hostError(&res, diag.UnknownCode, checkErr)
		}
		return res, nil
	}

	payload := DiskPayload{Path: path, Module: dump.File, Kind: uint8(res.Kind)}
	if err := d.opts.Cache.MarkClean(key, payload); err != nil {
		d.log.Warnw("cache write failed", "dump", path, "error", err)
	}
	return res, nil
}

// loadSource reads the module source for comment scanning. A missing source
// is not an error: the module is then checked without comments.
func (d *Driver) loadSource(path string) *source.File {
	f, err := d.files.LoadOnce(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.log.Debugw("no source for comments", "module", path)
		} else {
			d.log.Warnw("cannot read source", "module", path, "error", err)
		}
		return nil
	}
	return f
}

// hostError records a failure that is not a style violation.
func (d *Driver) hostError(res *Result, code diag.Code, err error) {
	b := diag.ReportError(diag.BagReporter{Bag: res.Bag}, code, source.Loc{File: res.Path}, err.Error())
	if hints := errors.GetAllHints(err); len(hints) > 0 {
		b.WithHint(strings.Join(hints, "; "))
	}
	b.Emit()
	res.Failed = true
	d.log.Debugw("module failed", "dump", res.Path, "code", code.ID(), "error", err)
}

// hostWarnings passes through the host warnings the warning set enables.
func (d *Driver) hostWarnings(res *Result, dump *astdump.Dump) {
	r := diag.BagReporter{Bag: res.Bag}
	for _, w := range dump.Warnings {
		if !d.warnings.Enabled(w.Number) {
			continue
		}
		msg := fmt.Sprintf("Warning %d: %s", w.Number, w.Message)
		diag.ReportWarning(r, diag.HostWarning, w.Loc.WithFile(dump.File), msg).Emit()
	}
}

func dumpCode(err error) diag.Code {
	var de *astdump.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return diag.DumpMalformed
}
