// Package npm implements the package manager and manifest adapters for npm-compatible tooling.
package npm

import (
	"context"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
)

var _ ports.PackageManager = (*Manager)(nil)

// Manager drives an npm-compatible binary through the executor.
type Manager struct {
	executor ports.Executor
	bin      string
}

// NewManager creates a Manager invoking bin. An empty bin means npm.
func NewManager(executor ports.Executor, bin string) *Manager {
	if bin == "" {
		bin = domain.DefaultPackageManager
	}
	return &Manager{
		executor: executor,
		bin:      bin,
	}
}

// Using returns a Manager for bin sharing the same executor.
func (m *Manager) Using(bin string) ports.PackageManager {
	if bin == "" || bin == m.bin {
		return m
	}
	return NewManager(m.executor, bin)
}

// Pack runs "<bin> pack <source>" in dir. The archive is written to dir.
func (m *Manager) Pack(ctx context.Context, dir, source string) (string, error) {
	return m.executor.Run(ctx, dir, []string{m.bin, "pack", source})
}

// Install runs "<bin> install --no-save <archive>" in target.
func (m *Manager) Install(ctx context.Context, target, archive string) (string, error) {
	return m.executor.Run(ctx, target, []string{m.bin, "install", "--no-save", archive})
}
