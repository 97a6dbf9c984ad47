package domain

import "strings"

// ArchiveExt is the extension of archives produced by the package manager.
const ArchiveExt = ".tgz"

// Manifest holds the package descriptor fields needed to predict the archive name.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ArchiveName returns the file name the package manager gives the packed archive.
// Scoped names drop the leading "@" and replace the scope separator with "-",
// so "@acme/widgets" at 1.0.0 packs to "acme-widgets-1.0.0.tgz".
func (m Manifest) ArchiveName() string {
	name := strings.TrimPrefix(m.Name, "@")
	name = strings.Replace(name, "/", "-", 1)
	return name + "-" + m.Version + ArchiveExt
}
