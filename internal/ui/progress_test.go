package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"docstyle/internal/driver"
)

func update(t *testing.T, m tea.Model, msg tea.Msg) *progressModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(*progressModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return pm
}

func TestProgressCounts(t *testing.T) {
	files := []string{"a.ml.json", "b.ml.json", "c.ml.json"}
	m := NewProgressModel("checking", files, nil).(*progressModel)

	m = update(t, m, eventMsg{File: "a.ml.json", Status: driver.StatusWorking})
	m = update(t, m, eventMsg{File: "a.ml.json", Status: driver.StatusFailed})
	m = update(t, m, eventMsg{File: "b.ml.json", Status: driver.StatusCached})
	// повторное финальное событие не считается дважды
	m = update(t, m, eventMsg{File: "b.ml.json", Status: driver.StatusCached})
	m = update(t, m, eventMsg{File: "unknown.ml.json", Status: driver.StatusDone})

	if m.finished != 2 || m.failed != 1 || m.cached != 1 {
		t.Fatalf("unexpected counters: finished=%d failed=%d cached=%d", m.finished, m.failed, m.cached)
	}
	view := m.View()
	for _, want := range []string{"checking 2/3", "1 failed", "1 cached", "a.ml.json", "queued"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}

	m = update(t, m, doneMsg{})
	if !m.done || !strings.Contains(m.View(), "done: checking") {
		t.Fatalf("expected finished view, got:\n%s", m.View())
	}
}

func TestVisibleRows(t *testing.T) {
	var files []string
	for i := 0; i < maxRows+5; i++ {
		files = append(files, fmt.Sprintf("m%02d.ml.json", i))
	}
	m := NewProgressModel("checking", files, nil).(*progressModel)
	last := files[len(files)-1]
	m = update(t, m, eventMsg{File: last, Status: driver.StatusFailed})

	rows := m.visible()
	if len(rows) != maxRows {
		t.Fatalf("expected %d rows, got %d", maxRows, len(rows))
	}
	if rows[0].path != last {
		t.Fatalf("failures must be listed first, got %q", rows[0].path)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
