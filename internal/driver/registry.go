package driver

import (
	"sync"

	"github.com/cockroachdb/errors"

	"docstyle/internal/ast"
	"docstyle/internal/check"
)

// CheckerName is the name the style checker registers under.
const CheckerName = "docstyle"

// Pass transforms one module and returns the (possibly new) file id.
type Pass func(b *ast.Builder, file ast.FileID) (ast.FileID, error)

// Transform is a named pair of passes: Intf runs on interface files, Impl on
// implementation files. A nil pass leaves that kind of file alone.
type Transform struct {
	Name string
	Intf Pass
	Impl Pass
}

// Registry keeps transforms in registration order.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Transform
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Transform)}
}

// Register adds t. Names are unique.
func (r *Registry) Register(t Transform) error {
	if t.Name == "" {
		return errors.New("transform without a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[t.Name]; dup {
		return errors.Newf("transform %q already registered", t.Name)
	}
	r.byName[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

func (r *Registry) Lookup(name string) (Transform, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

// Names lists registered transforms in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Apply runs every transform over file, picking the pass by the file kind.
// The output of one transform feeds the next; the first error stops the chain.
func (r *Registry) Apply(b *ast.Builder, file ast.FileID) (ast.FileID, error) {
	f := b.Files.Get(file)
	if f == nil {
		return file, errors.Newf("unknown file id %d", file)
	}
	kind := f.Kind

	r.mu.RLock()
	chain := make([]Transform, 0, len(r.order))
	for _, name := range r.order {
		chain = append(chain, r.byName[name])
	}
	r.mu.RUnlock()

	for _, t := range chain {
		pass := t.Impl
		if kind == ast.FileSignature {
			pass = t.Intf
		}
		if pass == nil {
			continue
		}
		out, err := pass(b, file)
		if err != nil {
			return file, err
		}
		file = out
	}
	return file, nil
}

// RegisterChecker registers e as the "docstyle" transform. intf forces the
// interface comment policy on implementation files too.
func RegisterChecker(r *Registry, e *check.Engine, intf bool) error {
	return r.Register(Transform{
		Name: CheckerName,
		Intf: e.Intf,
		Impl: func(b *ast.Builder, file ast.FileID) (ast.FileID, error) {
			return e.Impl(b, file, intf)
		},
	})
}
