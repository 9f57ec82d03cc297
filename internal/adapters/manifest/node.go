package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/importcache/internal/core/ports"
)

// NodeID is the unique identifier for the runtime loader Graft node.
const NodeID graft.ID = "adapter.runtime_loader"

func init() {
	graft.Register(graft.Node[ports.RuntimeLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuntimeLoader, error) {
			return NewLoader(), nil
		},
	})
}
