package cas_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlink/internal/adapters/cas"
	"go.trai.ch/packlink/internal/core/domain"
)

func newRecord(source string) domain.LinkRecord {
	return domain.LinkRecord{
		Source:      source,
		Name:        filepath.Base(source),
		Version:     "1.0.0",
		ArchiveHash: "0123456789abcdef",
		Targets:     []string{"/work/app"},
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".packlink", "links.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	record := newRecord("/work/lib-x")
	require.NoError(t, store.Put(record))

	got, err := store.Get("/work/lib-x")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record, *got)
}

func TestStore_Get_Missing(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	got, err := store.Get("/work/unknown")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), ".packlink", "links.json")

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)
	require.NoError(t, store.Put(newRecord("/work/lib-x")))

	reopened, err := cas.NewStore(storePath)
	require.NoError(t, err)

	got, err := reopened.Get("/work/lib-x")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "lib-x", got.Name)
	assert.Equal(t, storePath, reopened.Path())
}

func TestStore_Put_Replaces(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	first := newRecord("/work/lib-x")
	second := newRecord("/work/lib-x")
	second.Version = "2.0.0"

	require.NoError(t, store.Put(first))
	require.NoError(t, store.Put(second))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2.0.0", records[0].Version)
}

func TestStore_List_SortedBySource(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	for _, source := range []string{"/work/lib-z", "/work/lib-a", "/work/lib-m"} {
		require.NoError(t, store.Put(newRecord(source)))
	}

	records, err := store.List()
	require.NoError(t, err)

	sources := make([]string, 0, len(records))
	for _, r := range records {
		sources = append(sources, r.Source)
	}
	assert.Equal(t, []string{"/work/lib-a", "/work/lib-m", "/work/lib-z"}, sources)
}

func TestStore_List_Empty(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_ConcurrentPut(t *testing.T) {
	store, err := cas.NewStore(filepath.Join(t.TempDir(), "links.json"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, source := range []string{"/a", "/b", "/c", "/d", "/e"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Put(newRecord(source)))
		}()
	}
	wg.Wait()

	records, err := store.List()
	require.NoError(t, err)
	assert.Len(t, records, 5)
}

func TestNewStore_CorruptFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(storePath, []byte("{not json"), 0o600))

	_, err := cas.NewStore(storePath)
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestNewStore_EmptyFile(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "links.json")
	require.NoError(t, os.WriteFile(storePath, nil, 0o600))

	store, err := cas.NewStore(storePath)
	require.NoError(t, err)

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Put_WriteFailure(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), ".packlink")

	store, err := cas.NewStore(filepath.Join(blocker, "links.json"))
	require.NoError(t, err)

	// A file where the state directory should be makes the write fail.
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o600))

	err = store.Put(newRecord("/work/lib-x"))
	require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
}
