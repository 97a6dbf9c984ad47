// Package app implements the application layer for packlink.
package app

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/packlink/internal/engine/linker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	linker       *linker.Linker
	store        ports.LinkStore
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, lnk *linker.Linker, store ports.LinkStore, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		linker:       lnk,
		store:        store,
		logger:       logger,
	}
}

// RunOptions configures a single Run.
type RunOptions struct {
	// ConfigPath is the link file read when no Targets are given.
	// Empty means packlink.yaml in BaseDir.
	ConfigPath string
	// BaseDir is the directory relative CLI paths are resolved against.
	// Empty means the working directory.
	BaseDir string
	// Targets are projects to install Sources into. When empty the link file is used.
	Targets []string
	// Sources are the projects linked into every target.
	Sources []string
	// Cleanup overrides the cleanup policy.
	Cleanup string
	// PackageManager overrides the package manager binary.
	PackageManager string
}

// Run links the requested sources into their targets and returns the
// source→targets mapping that was installed.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Links, error) {
	cfg, err := a.resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	bySource, err := a.linker.Link(ctx, cfg.BaseDir, cfg.Links, linker.Options{
		Cleanup:        cfg.Cleanup,
		PackageManager: cfg.PackageManager,
	})
	if err != nil {
		return nil, err
	}

	for source, targets := range bySource.All() {
		a.logger.Info(a.summary(source, targets))
	}

	return bySource, nil
}

// Status returns every recorded link ordered by source path.
func (a *App) Status(_ context.Context) ([]domain.LinkRecord, error) {
	records, err := a.store.List()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list links")
	}
	return records, nil
}

// resolveConfig builds the link configuration from CLI arguments or the link file,
// then applies overrides.
func (a *App) resolveConfig(opts RunOptions) (*domain.LinkConfig, error) {
	var cfg *domain.LinkConfig

	switch {
	case len(opts.Targets) > 0:
		if len(opts.Sources) == 0 {
			return nil, zerr.Wrap(domain.ErrNoLinks, "no sources given, use --from")
		}
		links := domain.NewLinks()
		for _, target := range opts.Targets {
			links.Add(target, opts.Sources...)
		}
		cfg = &domain.LinkConfig{
			BaseDir:        opts.BaseDir,
			Links:          links,
			PackageManager: domain.DefaultPackageManager,
			Cleanup:        domain.CleanupOnSuccess,
		}
	case len(opts.Sources) > 0:
		return nil, zerr.Wrap(domain.ErrNoLinks, "no targets given for --from")
	default:
		loaded, err := a.configLoader.Load(configPath(opts))
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load link file")
		}
		cfg = loaded
	}

	if opts.Cleanup != "" {
		cleanup, err := domain.ParseCleanupPolicy(opts.Cleanup)
		if err != nil {
			return nil, err
		}
		cfg.Cleanup = cleanup
	}
	if opts.PackageManager != "" {
		cfg.PackageManager = opts.PackageManager
	}

	return cfg, nil
}

func configPath(opts RunOptions) string {
	path := opts.ConfigPath
	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) && opts.BaseDir != "" {
		path = filepath.Join(opts.BaseDir, path)
	}
	return path
}

func (a *App) summary(source string, targets []string) string {
	name := filepath.Base(source)
	if record, err := a.store.Get(source); err == nil && record != nil {
		name = record.Name + "@" + record.Version
	}
	return "linked " + name + " into " + strings.Join(targets, ", ")
}
