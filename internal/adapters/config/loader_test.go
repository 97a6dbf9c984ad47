package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlink/internal/adapters/config"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeLinkfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "packlink.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func TestLoader_Load(t *testing.T) {
	path := writeLinkfile(t, `
packageManager: pnpm
cleanup: always
targets:
  ./app-b:
    - ../lib-x
    - ../lib-y
  ./app-a: [../lib-x]
  ./app-c: ../lib-z
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), cfg.BaseDir)
	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.Equal(t, domain.CleanupAlways, cfg.Cleanup)

	// Keys keep the order written in the file.
	assert.Equal(t, []string{"./app-b", "./app-a", "./app-c"}, cfg.Links.Keys())
	assert.Equal(t, []string{"../lib-x", "../lib-y"}, cfg.Links.Get("./app-b"))
	assert.Equal(t, []string{"../lib-x"}, cfg.Links.Get("./app-a"))
	assert.Equal(t, []string{"../lib-z"}, cfg.Links.Get("./app-c"))
}

func TestLoader_Load_Defaults(t *testing.T) {
	path := writeLinkfile(t, `
targets:
  app: [lib]
`)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultPackageManager, cfg.PackageManager)
	assert.Equal(t, domain.CleanupOnSuccess, cfg.Cleanup)
}

func TestLoader_Load_RelativePath(t *testing.T) {
	path := writeLinkfile(t, "targets:\n  app: [lib]\n")
	t.Chdir(filepath.Dir(path))

	cfg, err := newLoader(t).Load("packlink.yaml")
	require.NoError(t, err)

	want, err := filepath.Abs(".")
	require.NoError(t, err)
	assert.Equal(t, want, cfg.BaseDir)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "targets: [unclosed",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "unknown field",
			content: "target:\n  app: [lib]\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "targets not a mapping",
			content: "targets: [app, lib]\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "invalid cleanup",
			content: "cleanup: never\ntargets:\n  app: [lib]\n",
			wantErr: domain.ErrInvalidCleanupPolicy,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: domain.ErrNoLinks,
		},
		{
			name:    "no targets",
			content: "packageManager: npm\n",
			wantErr: domain.ErrNoLinks,
		},
		{
			name:    "null targets",
			content: "targets:\n",
			wantErr: domain.ErrNoLinks,
		},
		{
			name:    "empty targets",
			content: "targets: {}\n",
			wantErr: domain.ErrNoLinks,
		},
		{
			name:    "target without sources",
			content: "targets:\n  app: []\n",
			wantErr: domain.ErrNoLinks,
		},
		{
			name:    "target with null sources",
			content: "targets:\n  app:\n",
			wantErr: domain.ErrNoLinks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLinkfile(t, tt.content)

			cfg, err := newLoader(t).Load(path)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoader_Load_Missing(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "packlink.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
