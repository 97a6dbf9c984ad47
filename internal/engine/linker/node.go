package linker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packlink/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packlink/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packlink/internal/adapters/npm"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packlink/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/packlink/internal/core/ports"
)

// NodeID is the unique identifier for the linker Graft node.
const NodeID graft.ID = "engine.linker"

func init() {
	graft.Register(graft.Node[*Linker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			npm.ManagerNodeID,
			npm.ManifestNodeID,
			fs.ArchivesNodeID,
			cas.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Linker, error) {
			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			manifests, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}

			archives, err := graft.Dep[ports.ArchiveManager](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LinkStore](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewLinker(pm, manifests, archives, store, tel, log), nil
		},
	})
}
