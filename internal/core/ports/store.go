package ports

import "go.trai.ch/packlink/internal/core/domain"

// LinkStore defines the interface for persisting link records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LinkStore interface {
	// Get retrieves the link record for a source path.
	// Returns nil, nil if not found.
	Get(source string) (*domain.LinkRecord, error)

	// Put stores the link record, replacing any record for the same source.
	Put(record domain.LinkRecord) error

	// List returns all link records ordered by source path.
	List() ([]domain.LinkRecord, error)
}
