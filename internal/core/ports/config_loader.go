package ports

import "go.trai.ch/packlink/internal/core/domain"

// ConfigLoader defines the interface for loading link files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the link file at path.
	Load(path string) (*domain.LinkConfig, error)
}
