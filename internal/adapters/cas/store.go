// Package cas implements the on-disk ledger of link records.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/packlink/internal/core/domain"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LinkStore = (*Store)(nil)

// Store implements ports.LinkStore using a flat JSON file keyed by source path.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.LinkRecord
}

// NewStore creates a new Store backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.LinkRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to read link store"), "path", s.path))
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrStoreReadFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal link store"), "path", s.path))
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.Wrap(err, "failed to marshal link store"))
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to create directory for link store"), "path", s.path))
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, zerr.With(zerr.Wrap(err, "failed to write link store"), "path", s.path))
	}

	return nil
}

// Get retrieves the link record for a source path.
func (s *Store) Get(source string) (*domain.LinkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[source]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the link record.
func (s *Store) Put(record domain.LinkRecord) error {
	s.mu.Lock()
	s.cache[record.Source] = record
	s.mu.Unlock()

	return s.save()
}

// List returns all link records ordered by source path.
func (s *Store) List() ([]domain.LinkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.LinkRecord, 0, len(s.cache))
	for _, record := range s.cache {
		records = append(records, record)
	}
	slices.SortFunc(records, func(a, b domain.LinkRecord) int {
		return strings.Compare(a.Source, b.Source)
	})
	return records, nil
}
