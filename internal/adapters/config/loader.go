// Package config provides the link file loader for packlink.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for packlink.yaml files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the link file at path. Relative paths in the file stay as written
// and are resolved against the directory containing the file.
func (l *Loader) Load(path string) (*domain.LinkConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to resolve link file path"), "path", path))
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read link file"), "path", absPath))
	}

	var file Linkfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "failed to parse link file"), "path", absPath))
	}

	cleanup, err := domain.ParseCleanupPolicy(file.Cleanup)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid link file"), "path", absPath)
	}

	links, err := l.decodeTargets(&file.Targets)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid link file"), "path", absPath)
	}

	pm := file.PackageManager
	if pm == "" {
		pm = domain.DefaultPackageManager
	}

	return &domain.LinkConfig{
		BaseDir:        filepath.Dir(absPath),
		Links:          links,
		PackageManager: pm,
		Cleanup:        cleanup,
	}, nil
}

// decodeTargets walks the targets mapping in document order. A target may list
// its sources as a sequence or as a single scalar.
func (l *Loader) decodeTargets(node *yaml.Node) (*domain.Links, error) {
	links := domain.NewLinks()

	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, zerr.Wrap(domain.ErrNoLinks, "link file has no targets")
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.New("targets must be a mapping"), "line", node.Line))
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var target string
		if err := keyNode.Decode(&target); err != nil || target == "" {
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.New("target must be a non-empty string"), "line", keyNode.Line))
		}

		var sources []string
		switch valueNode.Kind {
		case yaml.SequenceNode:
			if err := valueNode.Decode(&sources); err != nil {
				return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "sources must be strings"), "target", target))
			}
		case yaml.ScalarNode:
			if valueNode.Tag != "!!null" && valueNode.Value != "" {
				sources = []string{valueNode.Value}
			}
		default:
			return nil, errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.New("sources must be a list"), "target", target))
		}

		if len(sources) == 0 {
			return nil, errors.Join(domain.ErrNoLinks, zerr.With(zerr.New("target has no sources"), "target", target))
		}

		if links.Has(target) {
			l.Logger.Warn("target " + target + " is listed more than once, merging its sources")
		}
		links.Add(target, sources...)
	}

	if links.Len() == 0 {
		return nil, zerr.Wrap(domain.ErrNoLinks, "link file has no targets")
	}

	return links, nil
}
