package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the absolute path of the file or directory that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// IsModification reports whether the event may have changed file content.
func (e WatchEvent) IsModification() bool {
	return e.Operation == OpWrite || e.Operation == OpCreate
}

// Watcher defines the interface for watching file system changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}

// FileMonitor reports batches of modified source files. The underlying watcher is
// only opened by Start.
type FileMonitor interface {
	// Start watches root and calls onModified from a background goroutine.
	Start(ctx context.Context, root string, onModified func(paths []string)) error
	// Stop releases the watcher and delivers pending modifications.
	Stop() error
}
