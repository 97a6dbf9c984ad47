package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/packlink/internal/core/domain"
)

func TestManifest_ArchiveName(t *testing.T) {
	tests := []struct {
		name     string
		manifest domain.Manifest
		want     string
	}{
		{
			name:     "plain name",
			manifest: domain.Manifest{Name: "libx", Version: "1.2.3"},
			want:     "libx-1.2.3.tgz",
		},
		{
			name:     "scoped name",
			manifest: domain.Manifest{Name: "@acme/widgets", Version: "2.0.0"},
			want:     "acme-widgets-2.0.0.tgz",
		},
		{
			name:     "prerelease version",
			manifest: domain.Manifest{Name: "libx", Version: "1.0.0-beta.1"},
			want:     "libx-1.0.0-beta.1.tgz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.manifest.ArchiveName())
		})
	}
}
