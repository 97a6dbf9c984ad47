package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// CleanupPolicy controls when a packed archive is removed.
type CleanupPolicy string

const (
	// CleanupOnSuccess removes the archive only after every install succeeded.
	// A failed install batch leaves the archive in place.
	CleanupOnSuccess CleanupPolicy = "on-success"
	// CleanupAlways removes the archive after the install batch regardless of its outcome.
	CleanupAlways CleanupPolicy = "always"
)

// ParseCleanupPolicy converts a string to a CleanupPolicy.
// An empty string selects CleanupOnSuccess.
func ParseCleanupPolicy(s string) (CleanupPolicy, error) {
	switch CleanupPolicy(s) {
	case "", CleanupOnSuccess:
		return CleanupOnSuccess, nil
	case CleanupAlways:
		return CleanupAlways, nil
	default:
		return "", errors.Join(ErrInvalidCleanupPolicy, zerr.With(zerr.New("unknown cleanup policy"), "cleanup", s))
	}
}

// DefaultPackageManager is the binary used for pack and install when none is configured.
const DefaultPackageManager = "npm"

// LinkConfig is the parsed content of a link file.
type LinkConfig struct {
	// BaseDir is the directory relative paths in Links are resolved against.
	BaseDir string
	// Links maps target project paths to the source project paths linked into them.
	Links *Links
	// PackageManager is the binary used for pack and install.
	PackageManager string
	// Cleanup is the archive cleanup policy.
	Cleanup CleanupPolicy
}
