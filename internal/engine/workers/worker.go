// Package workers binds compilation requests to external compiler processes.
package workers

import (
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// Worker runs one compiler process at a time.
//
//	Idle --Compile--> Busy --process exits--> Complete --AcceptResult--> Idle
type Worker struct {
	process ports.CompilerProcess

	state   domain.WorkerState
	request domain.RequestHandle
	handle  ports.ProcessHandle
	result  domain.CompileResult
}

// NewWorker creates an idle worker launching jobs through process.
func NewWorker(process ports.CompilerProcess) *Worker {
	return &Worker{process: process}
}

// State returns the current state of the worker.
func (w *Worker) State() domain.WorkerState {
	return w.state
}

// IsIdle reports whether the worker can accept a job.
func (w *Worker) IsIdle() bool {
	return w.state == domain.WorkerIdle
}

// IsComplete reports whether a result waits for AcceptResult.
func (w *Worker) IsComplete() bool {
	return w.state == domain.WorkerComplete
}

// Request returns the handle of the bound request.
func (w *Worker) Request() domain.RequestHandle {
	return w.request
}

// Compile starts the compiler for job. It panics when the worker is not idle.
// A process that cannot be started completes immediately with a failed result.
func (w *Worker) Compile(job domain.CompileJob) {
	if w.state != domain.WorkerIdle {
		panic(fmt.Sprintf("compile %s on %s worker", job.ResourceID, w.state))
	}

	w.request = job.Request
	h, err := w.process.Submit(job)
	if err != nil {
		w.state = domain.WorkerComplete
		w.result = domain.CompileResult{ExitCode: -1, Output: err.Error()}
		return
	}

	w.handle = h
	w.state = domain.WorkerBusy
}

// poll moves a busy worker to Complete once its process exited.
func (w *Worker) poll() bool {
	if w.state != domain.WorkerBusy {
		return false
	}
	if !w.handle.Poll() {
		return false
	}
	w.result = w.handle.Collect()
	w.handle = nil
	w.state = domain.WorkerComplete
	return true
}

// AcceptResult returns the bound request and its result and makes the worker idle.
// It panics when the worker is not complete.
func (w *Worker) AcceptResult() (domain.RequestHandle, domain.CompileResult) {
	if w.state != domain.WorkerComplete {
		panic(fmt.Sprintf("accept result on %s worker", w.state))
	}

	req, result := w.request, w.result
	w.request = domain.RequestHandle{}
	w.result = domain.CompileResult{}
	w.state = domain.WorkerIdle
	return req, result
}

func (w *Worker) wait() {
	if w.state == domain.WorkerBusy {
		w.handle.Wait()
	}
}
