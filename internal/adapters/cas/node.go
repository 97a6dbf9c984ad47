package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
)

// NodeID is the unique identifier for the link store Graft node.
const NodeID graft.ID = "adapter.link_store"

func init() {
	graft.Register(graft.Node[ports.LinkStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LinkStore, error) {
			return NewStore(domain.DefaultStorePath())
		},
	})
}
