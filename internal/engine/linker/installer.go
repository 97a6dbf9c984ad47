package linker

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Installer packs one source project and installs the archive into its targets.
type Installer struct {
	pm        ports.PackageManager
	manifests ports.ManifestReader
	archives  ports.ArchiveManager
	telemetry ports.Telemetry
	logger    ports.Logger
	cleanup   domain.CleanupPolicy
}

// NewInstaller creates a new Installer. An empty cleanup policy means on-success.
func NewInstaller(
	pm ports.PackageManager,
	manifests ports.ManifestReader,
	archives ports.ArchiveManager,
	telemetry ports.Telemetry,
	logger ports.Logger,
	cleanup domain.CleanupPolicy,
) *Installer {
	if cleanup == "" {
		cleanup = domain.CleanupOnSuccess
	}
	return &Installer{
		pm:        pm,
		manifests: manifests,
		archives:  archives,
		telemetry: telemetry,
		logger:    logger,
		cleanup:   cleanup,
	}
}

// Install packs source with baseDir as the working directory and installs the
// resulting archive into every target concurrently.
//
// The manifest read and the pack run concurrently and both must succeed before
// any install starts. The archive is removed once every install has succeeded.
// When an install fails the archive is kept, unless the cleanup policy is
// CleanupAlways. The first error encountered is returned.
func (i *Installer) Install(ctx context.Context, baseDir, source string, targets []string) (domain.LinkRecord, error) {
	var (
		prepare  errgroup.Group
		manifest *domain.Manifest
	)

	prepare.Go(func() error {
		m, err := i.manifests.Read(source)
		if err != nil {
			return err
		}
		manifest = m
		return nil
	})
	prepare.Go(func() error {
		return i.step(ctx, "pack "+source, func(ctx context.Context) error {
			_, err := i.pm.Pack(ctx, baseDir, source)
			return err
		})
	})

	if err := prepare.Wait(); err != nil {
		return domain.LinkRecord{}, err
	}

	archive := filepath.Join(baseDir, manifest.ArchiveName())

	hash, err := i.archives.Hash(archive)
	if err != nil {
		return domain.LinkRecord{}, err
	}

	var installs errgroup.Group
	for _, target := range targets {
		installs.Go(func() error {
			return i.step(ctx, "install "+manifest.Name+" into "+target, func(ctx context.Context) error {
				_, err := i.pm.Install(ctx, target, archive)
				return err
			})
		})
	}

	if err := installs.Wait(); err != nil {
		if i.cleanup != domain.CleanupAlways {
			i.logger.Warn("keeping " + archive + " after failed install")
			return domain.LinkRecord{}, err
		}
		if rmErr := i.archives.Remove(archive); rmErr != nil {
			return domain.LinkRecord{}, errors.Join(err, rmErr)
		}
		return domain.LinkRecord{}, err
	}

	if err := i.archives.Remove(archive); err != nil {
		return domain.LinkRecord{}, err
	}

	return domain.LinkRecord{
		Source:      source,
		Name:        manifest.Name,
		Version:     manifest.Version,
		ArchiveHash: hash,
		Targets:     targets,
		Timestamp:   time.Now().UTC(),
	}, nil
}

// step runs fn inside a telemetry vertex named name.
func (i *Installer) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := i.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
