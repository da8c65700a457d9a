package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/adapters/logger"
	"go.trai.ch/xform/internal/core/ports"
)

// NodeID is the unique identifier for the scene loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.DocumentLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DocumentLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
