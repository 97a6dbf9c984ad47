package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/internal/adapters/telemetry/progrock"
	"go.trai.ch/packlink/internal/core/ports"
)

// NodeID is the unique identifier for the Telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			rec, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracing("packlink", rec), nil
		},
	})
}
