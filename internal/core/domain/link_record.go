package domain

import "time"

// LinkRecord describes the last successful link of a source package.
type LinkRecord struct {
	Source      string    `json:"source,omitzero"`
	Name        string    `json:"name,omitzero"`
	Version     string    `json:"version,omitzero"`
	ArchiveHash string    `json:"archive_hash,omitzero"`
	Targets     []string  `json:"targets,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
