package npm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/internal/adapters/shell"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
)

// ManifestNodeID is the unique identifier for the manifest reader Graft node.
const ManifestNodeID graft.ID = "adapter.manifest_reader"

func init() {
	graft.Register(graft.Node[ports.ManifestReader]{
		ID:        ManifestNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestReader, error) {
			return NewManifestReader(), nil
		},
	})
}

// ManagerNodeID is the unique identifier for the package manager Graft node.
const ManagerNodeID graft.ID = "adapter.package_manager"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(executor, domain.DefaultPackageManager), nil
		},
	})
}
