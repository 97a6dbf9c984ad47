// Package fs implements filesystem adapters for packed archives.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArchiveManager = (*Archives)(nil)

// Archives hashes and removes packed archives.
type Archives struct{}

// NewArchives creates a new Archives.
func NewArchives() *Archives {
	return &Archives{}
}

// Hash computes the XXHash of the archive's content as 16 hex digits.
func (a *Archives) Hash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is derived from the package manifest
	if err != nil {
		return "", errors.Join(domain.ErrArchiveHashFailed, zerr.With(zerr.Wrap(err, "failed to open archive"), "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", errors.Join(domain.ErrArchiveHashFailed, zerr.With(zerr.Wrap(err, "failed to read archive"), "path", path))
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// Remove deletes the archive.
func (a *Archives) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return errors.Join(domain.ErrArchiveRemoveFailed, zerr.With(zerr.Wrap(err, "failed to delete archive"), "path", path))
	}
	return nil
}
