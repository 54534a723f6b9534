package domain

import (
	"fmt"
	"time"
)

// RequestOrigin describes who asked for a compilation.
type RequestOrigin uint8

const (
	// OriginExternal is a request from a connected network client.
	OriginExternal RequestOrigin = iota
	// OriginManualCompile is a forced recompile that skips the up-to-date check.
	OriginManualCompile
	// OriginFileWatcher is a recompile triggered by a source file modification.
	OriginFileWatcher
	// OriginPackage is a request issued while building a package.
	OriginPackage
)

func (o RequestOrigin) String() string {
	switch o {
	case OriginExternal:
		return "External"
	case OriginManualCompile:
		return "ManualCompile"
	case OriginFileWatcher:
		return "FileWatcher"
	case OriginPackage:
		return "Package"
	default:
		return fmt.Sprintf("RequestOrigin(%d)", uint8(o))
	}
}

// IsInternal reports whether the request was created by the server itself.
func (o RequestOrigin) IsInternal() bool {
	return o != OriginExternal
}

// RequestStatus is the lifecycle state of a compilation request.
type RequestStatus uint8

const (
	// StatusPending indicates the request waits for a worker.
	StatusPending RequestStatus = iota
	// StatusCompiling indicates a worker is running the compiler for the request.
	StatusCompiling
	// StatusSucceeded indicates the compiler produced the resource.
	StatusSucceeded
	// StatusFailed indicates the request could not be fulfilled.
	StatusFailed
	// StatusUpToDate indicates the compiled resource already matched its sources.
	StatusUpToDate
)

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompiling:
		return "Compiling"
	case StatusSucceeded:
		return "Succeeded"
	case StatusFailed:
		return "Failed"
	case StatusUpToDate:
		return "UpToDate"
	default:
		return fmt.Sprintf("RequestStatus(%d)", uint8(s))
	}
}

// RequestHandle references a request stored in the server's request arena.
// The generation guards against use of a handle after its slot was recycled.
type RequestHandle struct {
	Index      uint32
	Generation uint32
}

// CompilationRequest is one compile or up-to-date job.
type CompilationRequest struct {
	ResourceID      ResourceID
	Origin          RequestOrigin
	ClientID        uint32
	SourceFile      string
	DestinationFile string
	CompilerArgs    string
	Fingerprint     Fingerprint
	Status          RequestStatus
	Log             string

	UpToDateCheckStarted  time.Time
	UpToDateCheckFinished time.Time
	CompilationStarted    time.Time
	CompilationFinished   time.Time
	CompletedAt           time.Time
}

// IsPending reports whether the request still waits for a worker.
func (r *CompilationRequest) IsPending() bool {
	return r.Status == StatusPending
}

// IsCompiling reports whether a worker is bound to the request.
func (r *CompilationRequest) IsCompiling() bool {
	return r.Status == StatusCompiling
}

// IsComplete reports whether the request reached a terminal status.
func (r *CompilationRequest) IsComplete() bool {
	return r.Status == StatusSucceeded || r.Status == StatusFailed || r.Status == StatusUpToDate
}

// HasSucceeded reports whether the compiled resource is available.
func (r *CompilationRequest) HasSucceeded() bool {
	return r.Status == StatusSucceeded || r.Status == StatusUpToDate
}

// HasFailed reports whether the request failed.
func (r *CompilationRequest) HasFailed() bool {
	return r.Status == StatusFailed
}

// IsInternal reports whether the request was created by the server itself.
func (r *CompilationRequest) IsInternal() bool {
	return r.Origin.IsInternal()
}

// Fail marks the request as failed and records the reason.
func (r *CompilationRequest) Fail(format string, args ...any) {
	r.appendLog(fmt.Sprintf(format, args...))
	r.Status = StatusFailed
}

// Succeed marks the request as succeeded and records the reason.
func (r *CompilationRequest) Succeed(format string, args ...any) {
	r.appendLog(fmt.Sprintf(format, args...))
	r.Status = StatusSucceeded
}

func (r *CompilationRequest) appendLog(line string) {
	if r.Log != "" && r.Log[len(r.Log)-1] != '\n' {
		r.Log += "\n"
	}
	r.Log += line
}

// UpToDateCheckDuration returns how long the up-to-date check took.
func (r *CompilationRequest) UpToDateCheckDuration() time.Duration {
	if r.UpToDateCheckFinished.IsZero() {
		return 0
	}
	return r.UpToDateCheckFinished.Sub(r.UpToDateCheckStarted)
}

// CompilationDuration returns how long the compiler process ran.
func (r *CompilationRequest) CompilationDuration() time.Duration {
	if r.CompilationFinished.IsZero() {
		return 0
	}
	return r.CompilationFinished.Sub(r.CompilationStarted)
}
