package npm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/package.schema.json
var schemaBytes []byte

const schemaURL = "package.schema.json"

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

var _ ports.ManifestReader = (*ManifestReader)(nil)

// ManifestReader reads package.json files.
type ManifestReader struct{}

// NewManifestReader creates a new ManifestReader.
func NewManifestReader() *ManifestReader {
	return &ManifestReader{}
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to unmarshal manifest schema")
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = zerr.Wrap(err, "failed to add manifest schema")
			return
		}
		compiledSchema, err = c.Compile(schemaURL)
		if err != nil {
			compileErr = zerr.Wrap(err, "failed to compile manifest schema")
		}
	})
	return compiledSchema, compileErr
}

// Read reads and validates the manifest of the project in dir.
// The returned version is normalized to strict semantic version form.
func (r *ManifestReader) Read(dir string) (*domain.Manifest, error) {
	path := filepath.Join(dir, domain.ManifestFileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest
	if err != nil {
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(zerr.Wrap(err, "could not open manifest"), "path", path))
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(zerr.Wrap(err, "manifest is not valid JSON"), "path", path))
	}

	schema, err := getSchema()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(inst); err != nil {
		wrapped := zerr.With(zerr.New("manifest does not match schema"), "path", path)
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			wrapped = zerr.With(wrapped, "issues", strings.Join(validationIssues(ve), "; "))
		}
		return nil, errors.Join(domain.ErrManifestInvalid, wrapped)
	}

	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(zerr.Wrap(err, "manifest is not valid JSON"), "path", path))
	}

	version, err := normalizeVersion(manifest.Version)
	if err != nil {
		return nil, errors.Join(domain.ErrManifestInvalid, zerr.With(
			zerr.With(zerr.Wrap(err, "version is not a semantic version"), "path", path),
			"version", manifest.Version,
		))
	}
	manifest.Version = version

	return &manifest, nil
}

// normalizeVersion strips the prefixes npm tolerates and returns the version npm
// names its archive after: build metadata is dropped, prerelease is kept.
func normalizeVersion(raw string) (string, error) {
	v := strings.TrimLeft(strings.TrimSpace(raw), "=v")
	parsed, err := semver.StrictNewVersion(v)
	if err != nil {
		return "", err
	}
	clean, err := parsed.SetMetadata("")
	if err != nil {
		return "", err
	}
	return clean.String(), nil
}

// validationIssues returns "location: message" for every leaf of the validation error tree.
func validationIssues(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := "/" + strings.Join(ve.InstanceLocation, "/")
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		return []string{loc + ": " + msg}
	}

	var issues []string
	for _, cause := range ve.Causes {
		issues = append(issues, validationIssues(cause)...)
	}
	return issues
}
