package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/domain"
)

// NodeID is the unique identifier for the compiler registry factory Graft node.
const NodeID graft.ID = "adapter.registry"

// Factory builds registries once the settings are loaded.
type Factory func(compilers []domain.Compiler) (*Registry, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return New, nil
		},
	})
}
