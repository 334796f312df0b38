package diag

import (
	"fmt"
	"slices"
	"strconv"
)

const (
	// MaxWarning is the highest host warning number ParseWarnings accepts.
	MaxWarning = 80
	// WarningUnexpectedDocstring is the host category for misplaced
	// documentation comments; enabled together with comment checking.
	WarningUnexpectedDocstring = 50
)

// WarningSet is the set of host warning numbers that are passed through to
// the user. The zero value has nothing enabled.
type WarningSet struct {
	enabled map[int]struct{}
}

func NewWarningSet(nums ...int) *WarningSet {
	w := &WarningSet{enabled: make(map[int]struct{}, len(nums))}
	for _, n := range nums {
		w.Enable(n)
	}
	return w
}

func (w *WarningSet) Enable(n int) {
	if w.enabled == nil {
		w.enabled = make(map[int]struct{})
	}
	w.enabled[n] = struct{}{}
}

func (w *WarningSet) Disable(n int) {
	delete(w.enabled, n)
}

func (w *WarningSet) Enabled(n int) bool {
	if w == nil {
		return false
	}
	_, ok := w.enabled[n]
	return ok
}

// Numbers returns the enabled warnings in ascending order.
func (w *WarningSet) Numbers() []int {
	if w == nil {
		return nil
	}
	out := make([]int, 0, len(w.enabled))
	for n := range w.enabled {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// ParseWarnings reads a compiler-style warning specification: a sequence of
// "+N", "-N", "+N..M", "-N..M", "+a" and "-a" applied left to right to an
// empty set. A bare number counts as "+N".
func ParseWarnings(spec string) (*WarningSet, error) {
	w := NewWarningSet()
	i := 0
	for i < len(spec) {
		enable := true
		switch spec[i] {
		case '+':
			i++
		case '-':
			enable = false
			i++
		}
		if i < len(spec) && spec[i] == 'a' {
			i++
			for n := 1; n <= MaxWarning; n++ {
				apply(w, n, enable)
			}
			continue
		}
		lo, next, err := readNumber(spec, i)
		if err != nil {
			return nil, err
		}
		hi := lo
		i = next
		if i+1 < len(spec) && spec[i] == '.' && spec[i+1] == '.' {
			hi, i, err = readNumber(spec, i+2)
			if err != nil {
				return nil, err
			}
		}
		if lo < 1 || hi > MaxWarning || lo > hi {
			return nil, fmt.Errorf("warning range %d..%d out of bounds 1..%d", lo, hi, MaxWarning)
		}
		for n := lo; n <= hi; n++ {
			apply(w, n, enable)
		}
	}
	return w, nil
}

func apply(w *WarningSet, n int, enable bool) {
	if enable {
		w.Enable(n)
	} else {
		w.Disable(n)
	}
}

func readNumber(spec string, i int) (n, next int, err error) {
	start := i
	for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
		i++
	}
	if start == i {
		return 0, i, fmt.Errorf("expected warning number at offset %d in %q", start, spec)
	}
	n, err = strconv.Atoi(spec[start:i])
	if err != nil {
		return 0, i, fmt.Errorf("bad warning number %q: %w", spec[start:i], err)
	}
	return n, i, nil
}
