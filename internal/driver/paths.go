package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"docstyle/internal/astdump"
	"docstyle/internal/diag"
	"docstyle/internal/observ"
)

var errStopped = errors.New("stopped after first failing module")

// Summary is the outcome of a directory run. Results follow the order of
// the collected dumps; modules skipped by --fail-fast are not listed.
type Summary struct {
	Results []Result
	Failed  int
	Cached  int
	Skipped int
	Timings observ.Report
}

// Bag merges all diagnostics in a stable order.
func (s *Summary) Bag() *diag.Bag {
	out := diag.NewBag(0)
	for i := range s.Results {
		out.Merge(s.Results[i].Bag)
	}
	out.Sort()
	return out
}

// CollectDumps expands paths into a sorted, duplicate-free list of dumps.
// Directories are walked recursively with the exclude patterns applied and
// yield only dumps named after a module (foo.ml.json, bar.mli.mp); files
// named explicitly need just a dump extension.
func (d *Driver) CollectDumps(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", p)
		}
		if !st.IsDir() {
			if !astdump.IsDump(p) {
				return nil, errors.WithHint(errors.Newf("%s is not a module dump", p), "dumps end in .json, .msgpack, .mp, .yaml or .yml")
			}
			add(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != p && d.excluded(path) {
				if entry.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !entry.IsDir() && isModuleDump(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func isModuleDump(path string) bool {
	if !astdump.IsDump(path) {
		return false
	}
	switch filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))) {
	case ".ml", ".mli":
		return true
	}
	return false
}

func (d *Driver) excluded(path string) bool {
	root := d.opts.Root
	if root == "" {
		root = "."
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return d.opts.Exclude.Excluded(filepath.ToSlash(rel))
}

// CheckPaths checks every dump under paths with up to Options.Jobs workers.
// With FailFast the first failing module cancels the remaining ones.
func (d *Driver) CheckPaths(ctx context.Context, paths []string) (*Summary, error) {
	files, err := d.CollectDumps(paths)
	if err != nil {
		return nil, err
	}
	return d.CheckDumps(ctx, files)
}

// CheckDumps checks an explicit list of dumps.
func (d *Driver) CheckDumps(ctx context.Context, files []string) (*Summary, error) {
	summary := &Summary{}
	if len(files) == 0 {
		return summary, nil
	}
	for _, f := range files {
		emit(d.opts.Progress, Event{File: f, Stage: StageLoad, Status: StatusQueued})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]Result, len(files))
	checked := make([]bool, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(d.opts.Jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			emit(d.opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})
			res, err := d.CheckFile(gctx, path)
			if err != nil {
				return err
			}
			results[i], checked[i] = res, true

			status := StatusDone
			switch {
			case res.Failed:
				status = StatusFailed
			case res.Cached:
				status = StatusCached
			}
			emit(d.opts.Progress, Event{File: path, Stage: StageCheck, Status: status, Elapsed: time.Since(start)})
			if res.Failed && d.opts.FailFast {
				return errStopped
			}
			return nil
		})
	}
	waitErr := g.Wait()
	if waitErr != nil && !errors.Is(waitErr, errStopped) {
		return nil, waitErr
	}

	reports := make([]observ.Report, 0, len(files))
	for i := range files {
		if !checked[i] {
			summary.Skipped++
			emit(d.opts.Progress, Event{File: files[i], Stage: StageCheck, Status: StatusSkipped})
			continue
		}
		res := results[i]
		summary.Results = append(summary.Results, res)
		if res.Failed {
			summary.Failed++
		}
		if res.Cached {
			summary.Cached++
		}
		reports = append(reports, res.Timings)
	}
	if d.opts.Timings {
		summary.Timings = observ.Aggregate(reports)
	}
	hits, misses := d.opts.Cache.Stats()
	d.log.Infow("run finished",
		"modules", len(files),
		"failed", summary.Failed,
		"skipped", summary.Skipped,
		"cache_hits", hits,
		"cache_misses", misses,
	)
	return summary, nil
}
