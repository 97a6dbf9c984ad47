package ports

// ArchiveManager handles packed archive files.
//
//go:generate mockgen -source=archives.go -destination=mocks/mock_archives.go -package=mocks
type ArchiveManager interface {
	// Hash returns a content hash of the archive at path.
	Hash(path string) (string, error)

	// Remove deletes the archive at path.
	Remove(path string) error
}
