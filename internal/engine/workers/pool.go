package workers

import (
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Completion is a worker whose process exited and whose result awaits collection.
type Completion struct {
	Worker  int
	Request domain.RequestHandle
	Result  domain.CompileResult
}

// Pool is a fixed set of workers sharing one compiler executable.
type Pool struct {
	workers    []*Worker
	executable string
}

// NewPool creates n idle workers. n is at least one.
func NewPool(n int, process ports.CompilerProcess, executable string) *Pool {
	n = max(n, 1)
	p := &Pool{
		workers:    make([]*Worker, n),
		executable: executable,
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(process)
	}
	return p
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Worker returns the worker at index i.
func (p *Pool) Worker(i int) *Worker {
	return p.workers[i]
}

// Busy returns the number of workers that are not idle.
func (p *Pool) Busy() int {
	n := 0
	for _, w := range p.workers {
		if !w.IsIdle() {
			n++
		}
	}
	return n
}

// Dispatch binds job to the first idle worker and returns its index.
// It returns false when every worker is busy.
func (p *Pool) Dispatch(job domain.CompileJob) (int, bool) {
	for i, w := range p.workers {
		if w.IsIdle() {
			job.Executable = p.executable
			w.Compile(job)
			return i, true
		}
	}
	return -1, false
}

// PollCompleted moves workers whose process exited to Complete and returns every
// complete worker, in worker order. The workers stay complete until AcceptResult.
func (p *Pool) PollCompleted() []Completion {
	var out []Completion
	for i, w := range p.workers {
		w.poll()
		if w.IsComplete() {
			out = append(out, Completion{Worker: i, Request: w.request, Result: w.result})
		}
	}
	return out
}

// Drain blocks until every running process exited.
func (p *Pool) Drain() {
	var g errgroup.Group
	for _, w := range p.workers {
		g.Go(func() error {
			w.wait()
			return nil
		})
	}
	_ = g.Wait()
}
