package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestReadFailed is returned when a package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read package manifest")

	// ErrManifestParseFailed is returned when a package manifest is not well-formed JSON.
	ErrManifestParseFailed = zerr.New("failed to parse package manifest")

	// ErrManifestInvalid is returned when a package manifest lacks a usable name or version.
	ErrManifestInvalid = zerr.New("invalid package manifest")

	// ErrCommandFailed is returned when an external command cannot be started or exits abnormally.
	ErrCommandFailed = zerr.New("command failed")

	// ErrArchiveHashFailed is returned when the packed archive cannot be read for hashing.
	ErrArchiveHashFailed = zerr.New("failed to hash archive")

	// ErrArchiveRemoveFailed is returned when the packed archive cannot be deleted.
	ErrArchiveRemoveFailed = zerr.New("failed to remove archive")

	// ErrLinkFailed is returned when linking a source into its targets fails.
	ErrLinkFailed = zerr.New("link failed")

	// ErrNoLinks is returned when there is nothing to link.
	ErrNoLinks = zerr.New("no links specified")

	// ErrInvalidCleanupPolicy is returned when a cleanup policy is not recognized.
	ErrInvalidCleanupPolicy = zerr.New("invalid cleanup policy, expected 'on-success' or 'always'")

	// ErrConfigReadFailed is returned when the link file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read link file")

	// ErrConfigParseFailed is returned when the link file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse link file")

	// ErrStoreReadFailed is returned when the link ledger cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read link ledger")

	// ErrStoreWriteFailed is returned when the link ledger cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write link ledger")

	// ErrTraceExportFailed is returned when spans cannot be exported.
	ErrTraceExportFailed = zerr.New("failed to export traces")
)
