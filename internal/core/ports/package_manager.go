package ports

import (
	"context"

	"go.trai.ch/packlink/internal/core/domain"
)

//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks

// PackageManager packs source projects into archives and installs archives into projects.
type PackageManager interface {
	// Pack packs the project at source, writing the archive into dir.
	Pack(ctx context.Context, dir, source string) (string, error)

	// Install installs archive into the project at target without recording it
	// as a dependency of target.
	Install(ctx context.Context, target, archive string) (string, error)

	// Using returns a PackageManager that invokes bin instead. An empty bin
	// returns the receiver.
	Using(bin string) PackageManager
}

// ManifestReader reads package manifests.
type ManifestReader interface {
	// Read reads the manifest of the project in dir.
	Read(dir string) (*domain.Manifest, error)
}
