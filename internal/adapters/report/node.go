package report

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/xform/internal/adapters/memdoc"
	"go.trai.ch/xform/internal/core/ports"
)

// NodeID is the unique identifier for the report printer Graft node.
const NodeID graft.ID = "adapter.report"

func init() {
	graft.Register(graft.Node[*Printer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{memdoc.NodeID},
		Run: func(ctx context.Context) (*Printer, error) {
			store, err := graft.Dep[ports.SceneStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewPrinter(os.Stdout, store), nil
		},
	})
}
