package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/packlink/internal/core/ports"
)

// ArchivesNodeID is the unique identifier for the archive manager Graft node.
const ArchivesNodeID graft.ID = "adapter.fs.archives"

func init() {
	graft.Register(graft.Node[ports.ArchiveManager]{
		ID:        ArchivesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveManager, error) {
			return NewArchives(), nil
		},
	})
}
