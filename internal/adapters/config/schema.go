package config

import "gopkg.in/yaml.v3"

// Linkfile represents the structure of the packlink.yaml link file.
type Linkfile struct {
	PackageManager string `yaml:"packageManager"`
	Cleanup        string `yaml:"cleanup"`
	// Targets maps target paths to source paths. It is kept as a node so that
	// the key order written in the file is preserved.
	Targets yaml.Node `yaml:"targets"`
}
