// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/forge/internal/core/domain"

// CompilerProcess launches external compiler processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CompilerProcess interface {
	// Submit starts the compiler for job and returns immediately.
	Submit(job domain.CompileJob) (ProcessHandle, error)
}

// ProcessHandle tracks one running compiler process.
type ProcessHandle interface {
	// Poll reports whether the process has exited. It never blocks.
	Poll() bool

	// Collect returns the result of an exited process.
	Collect() domain.CompileResult

	// Wait blocks until the process exits.
	Wait()
}
