package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/core/domain"
)

func TestRequestArena_RecyclesSlots(t *testing.T) {
	var a requestArena

	r1 := &domain.CompilationRequest{ResourceID: domain.NewResourceID("data://a.tex")}
	r2 := &domain.CompilationRequest{ResourceID: domain.NewResourceID("data://b.tex")}

	h1 := a.alloc(r1, nil)
	h2 := a.alloc(r2, nil)
	assert.NotEqual(t, h1.Index, h2.Index)
	assert.Equal(t, 2, a.len())
	assert.Same(t, r1, a.get(h1))

	a.release(h1)
	assert.Equal(t, 1, a.len())
	_, ok := a.lookup(h1)
	assert.False(t, ok)

	r3 := &domain.CompilationRequest{ResourceID: domain.NewResourceID("data://c.tex")}
	h3 := a.alloc(r3, nil)
	require.Equal(t, h1.Index, h3.Index)
	assert.NotEqual(t, h1.Generation, h3.Generation)
	assert.Same(t, r3, a.get(h3))

	assert.Panics(t, func() { a.get(h1) })
	assert.Panics(t, func() { a.release(h1) })
}

func TestInvariant(t *testing.T) {
	assert.NotPanics(t, func() { invariant(true, "fine") })
	assert.PanicsWithValue(t, "invariant violated: 2 active requests", func() {
		invariant(false, "%d active requests", 2)
	})
}
