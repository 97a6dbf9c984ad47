package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding packlink state.
	StateDirName = ".packlink"

	// LinksFileName is the name of the link ledger file.
	LinksFileName = "links.json"

	// ConfigFileName is the default name of the link file.
	ConfigFileName = "packlink.yaml"

	// ManifestFileName is the name of the package descriptor in a project directory.
	ManifestFileName = "package.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path of the link ledger.
func DefaultStorePath() string {
	return filepath.Join(StateDirName, LinksFileName)
}
