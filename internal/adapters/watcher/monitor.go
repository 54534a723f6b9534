package watcher

import (
	"context"
	"os"
	"time"

	"go.trai.ch/forge/internal/core/ports"
)

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

var _ ports.FileMonitor = (*Monitor)(nil)

// Monitor forwards debounced modifications of regular files to a callback.
type Monitor struct {
	open      func() (ports.Watcher, error)
	logger    ports.Logger
	window    time.Duration
	watcher   ports.Watcher
	debouncer *Debouncer
	done      chan struct{}
}

// NewMonitor creates a monitor that opens its watcher with open on Start.
func NewMonitor(open func() (ports.Watcher, error), logger ports.Logger, window time.Duration) *Monitor {
	return &Monitor{
		open:   open,
		logger: logger,
		window: window,
	}
}

// Start watches root and forwards events until ctx is canceled or Stop is called.
func (m *Monitor) Start(ctx context.Context, root string, onModified func(paths []string)) error {
	w, err := m.open()
	if err != nil {
		return err
	}
	if err := w.Start(ctx, root); err != nil {
		_ = w.Stop()
		return err
	}
	m.watcher = w
	m.debouncer = NewDebouncer(m.window, onModified)
	m.done = make(chan struct{})
	m.logger.Debug("watching raw resources", "root", root)

	go func() {
		defer close(m.done)
		for event := range w.Events() {
			if !event.IsModification() {
				continue
			}
			if info, err := os.Stat(event.Path); err != nil || info.IsDir() {
				continue
			}
			m.debouncer.Add(event.Path)
		}
	}()
	return nil
}

// Stop closes the watcher and delivers any pending modifications.
// It does nothing when the monitor was never started.
func (m *Monitor) Stop() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Stop()
	<-m.done
	m.debouncer.Flush()
	m.watcher = nil
	return err
}
