// Package linker packs local source packages and installs them into the projects that use them.
package linker

import (
	"path/filepath"

	"go.trai.ch/packlink/internal/core/domain"
)

// MapBySource inverts a target→sources mapping into a source→targets mapping.
//
// Every path is resolved against baseDir. Sources appear in the order they are
// first seen while walking targets in key order. Each source lists its targets
// in first-seen order without duplicates.
func MapBySource(baseDir string, byTarget *domain.Links) *domain.Links {
	bySource := domain.NewLinks()
	if byTarget == nil {
		return bySource
	}

	for target, sources := range byTarget.All() {
		resolvedTarget := ResolvePath(baseDir, target)
		for _, source := range sources {
			bySource.AddUnique(ResolvePath(baseDir, source), resolvedTarget)
		}
	}

	return bySource
}

// ResolvePath returns p as a clean absolute path, joining relative paths onto baseDir.
func ResolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
