package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"docstyle/internal/driver"
)

// RunFunc performs the run, reporting progress to sink.
type RunFunc func(ctx context.Context, sink driver.ProgressSink) (*driver.Summary, error)

type outcome struct {
	summary *driver.Summary
	err     error
}

// Run executes run in the background while the progress view is drawn to
// out. The run's own error takes precedence over a UI failure.
func Run(ctx context.Context, out io.Writer, title string, files []string, run RunFunc) (*driver.Summary, error) {
	events := make(chan driver.Event, 256)
	done := make(chan outcome, 1)
	go func() {
		summary, err := run(ctx, driver.ChannelSink{Ch: events})
		close(events)
		done <- outcome{summary: summary, err: err}
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI мог выйти раньше (Ctrl+C): дочитываем события, иначе воркеры
	// заблокируются на полном канале
	go func() {
		for range events {
		}
	}()
	res := <-done
	if res.err != nil {
		return res.summary, res.err
	}
	return res.summary, uiErr
}
