package linker

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options tune a single Link call.
type Options struct {
	// Cleanup selects when archives are removed. Empty means on-success.
	Cleanup domain.CleanupPolicy
	// PackageManager overrides the package manager binary. Empty keeps the default.
	PackageManager string
}

// Linker links every source of a target→sources mapping into its targets.
type Linker struct {
	pm        ports.PackageManager
	manifests ports.ManifestReader
	archives  ports.ArchiveManager
	store     ports.LinkStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewLinker creates a new Linker.
func NewLinker(
	pm ports.PackageManager,
	manifests ports.ManifestReader,
	archives ports.ArchiveManager,
	store ports.LinkStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Linker {
	return &Linker{
		pm:        pm,
		manifests: manifests,
		archives:  archives,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Link installs each source into its targets and returns the derived
// source→targets mapping.
//
// Relative paths in byTarget are resolved against baseDir, and an empty baseDir
// means the process working directory. Sources are linked concurrently and a
// failing source does not stop the others. Each successful link is recorded in
// the store. The first error encountered is returned.
func (l *Linker) Link(ctx context.Context, baseDir string, byTarget *domain.Links, opts Options) (*domain.Links, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve base directory"), "dir", baseDir)
	}

	bySource := MapBySource(absBase, byTarget)

	pm := l.pm
	if opts.PackageManager != "" {
		pm = pm.Using(opts.PackageManager)
	}
	installer := NewInstaller(pm, l.manifests, l.archives, l.telemetry, l.logger, opts.Cleanup)

	var g errgroup.Group
	for source, targets := range bySource.All() {
		g.Go(func() error {
			record, err := installer.Install(ctx, absBase, source, targets)
			if err != nil {
				return errors.Join(domain.ErrLinkFailed, zerr.With(zerr.Wrap(err, "failed to link package"), "source", source))
			}
			return l.store.Put(record)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return bySource, nil
}
