package memdoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/core/ports"
)

// NodeID is the unique identifier for the document store Graft node.
const NodeID graft.ID = "adapter.memdoc"

func init() {
	graft.Register(graft.Node[ports.SceneStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SceneStore, error) {
			store, err := NewStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
