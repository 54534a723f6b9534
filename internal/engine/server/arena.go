package server

import (
	"fmt"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

// invariant panics when a logic invariant of the scheduler does not hold.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic("invariant violated: " + fmt.Sprintf(format, args...))
	}
}

type slot struct {
	generation uint32
	live       bool
	request    *domain.CompilationRequest
	span       ports.Span
}

// requestArena owns every request. The pending, active and completed lists hold handles.
type requestArena struct {
	slots []slot
	free  []uint32
}

func (a *requestArena) alloc(req *domain.CompilationRequest, span ports.Span) domain.RequestHandle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		idx = uint32(len(a.slots) - 1) //nolint:gosec // bounded by memory
	}

	s := &a.slots[idx]
	s.generation++
	s.live = true
	s.request = req
	s.span = span
	return domain.RequestHandle{Index: idx, Generation: s.generation}
}

func (a *requestArena) lookup(h domain.RequestHandle) (*slot, bool) {
	if int(h.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.Index]
	if !s.live || s.generation != h.Generation {
		return nil, false
	}
	return s, true
}

func (a *requestArena) get(h domain.RequestHandle) *domain.CompilationRequest {
	s, ok := a.lookup(h)
	invariant(ok, "stale request handle %d/%d", h.Index, h.Generation)
	return s.request
}

func (a *requestArena) span(h domain.RequestHandle) ports.Span {
	s, ok := a.lookup(h)
	invariant(ok, "stale request handle %d/%d", h.Index, h.Generation)
	return s.span
}

func (a *requestArena) release(h domain.RequestHandle) {
	s, ok := a.lookup(h)
	invariant(ok, "release of stale request handle %d/%d", h.Index, h.Generation)
	s.live = false
	s.request = nil
	s.span = nil
	a.free = append(a.free, h.Index)
}

func (a *requestArena) len() int {
	return len(a.slots) - len(a.free)
}
