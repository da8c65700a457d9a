package coerce

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/core/ports"
)

// NodeID is the unique identifier for the coercer Graft node.
const NodeID graft.ID = "adapter.coerce"

func init() {
	graft.Register(graft.Node[ports.Coercer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Coercer, error) {
			return New(), nil
		},
	})
}
