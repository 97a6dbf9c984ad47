package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/internal/adapters/logger"
	"go.trai.ch/packlink/internal/core/ports"
)

// NodeID is the unique identifier for the progrock recorder node.
const NodeID graft.ID = "adapter.telemetry.progrock"

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Recorder, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRecorder(NewStepLog(log)), nil
		},
	})
}
