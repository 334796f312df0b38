// Package driver runs the style checker over module dumps: it decodes each
// dump, builds the module tree, applies the registered transforms and turns
// violations and host warnings into diagnostics. Directories are checked in
// parallel; clean modules are remembered in a content-addressed cache.
package driver

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"docstyle/internal/check"
	"docstyle/internal/diag"
	"docstyle/internal/logx"
	"docstyle/internal/project"
	"docstyle/internal/source"
)

// Options configure a Driver. The zero value checks with every toggle off,
// no cache and one worker per CPU.
type Options struct {
	Check check.Config
	// Warnings is a host warning specification, e.g. "+50-3".
	Warnings string
	// Intf applies the interface comment policy to implementation files.
	Intf bool

	Jobs           int
	FailFast       bool
	MaxDiagnostics int

	// Root is the directory Exclude patterns are relative to.
	Root    string
	Exclude project.PathsConfig

	Cache    *Cache
	Logger   *zap.SugaredLogger
	Progress ProgressSink
	Timings  bool
}

// Driver is safe for concurrent use by CheckFile callers.
type Driver struct {
	opts     Options
	registry *Registry
	warnings *diag.WarningSet
	settings project.Digest
	files    *source.FileSet
	log      *zap.SugaredLogger
}

// New validates opts and registers the style checker.
func New(opts Options) (*Driver, error) {
	ws, err := diag.ParseWarnings(opts.Warnings)
	if err != nil {
		return nil, errors.WithHint(errors.Wrap(err, "warnings"), `use a sequence like "+50", "-3" or "+1..10"`)
	}
	if opts.Check.CheckComments {
		ws.Enable(diag.WarningUnexpectedDocstring)
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		log = logx.Nop()
	}

	d := &Driver{
		opts:     opts,
		registry: NewRegistry(),
		warnings: ws,
		settings: settingsDigest(opts.Check, opts.Warnings, opts.Intf),
		files:    source.NewFileSetWithBase(opts.Root),
		log:      log,
	}
	engine := check.New(opts.Check, nil, d.fail)
	if err := RegisterChecker(d.registry, engine, opts.Intf); err != nil {
		return nil, err
	}
	return d, nil
}

// fail logs the violation and keeps it fatal.
func (d *Driver) fail(v check.Violation) error {
	d.log.Debugw("violation", "kind", v.Kind.String(), "loc", v.Loc.String())
	return check.Report(v)
}

// WithProgress returns a driver sharing d's state that reports to sink.
func (d *Driver) WithProgress(sink ProgressSink) *Driver {
	c := *d
	c.opts.Progress = sink
	return &c
}

func (d *Driver) Registry() *Registry { return d.registry }

// Files holds every source file the driver read; renderers use it for excerpts.
func (d *Driver) Files() *source.FileSet { return d.files }

// Warnings returns the host warnings passed through to the user.
func (d *Driver) Warnings() *diag.WarningSet { return d.warnings }
