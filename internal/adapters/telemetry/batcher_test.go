package telemetry_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlink/internal/adapters/telemetry"
)

type flushSink struct {
	mu      sync.Mutex
	batches []string
}

func (s *flushSink) flush(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, string(data))
}

func (s *flushSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.batches...)
}

func TestBatchProcessor_SizeLimit(t *testing.T) {
	sink := &flushSink{}
	bp := telemetry.NewBatchProcessor(4, time.Hour, sink.flush)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Empty(t, sink.snapshot())

	_, err = bp.Write([]byte("cd"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd"}, sink.snapshot())
}

func TestBatchProcessor_TimeLimit(t *testing.T) {
	sink := &flushSink{}
	bp := telemetry.NewBatchProcessor(1024, 10*time.Millisecond, sink.flush)
	defer func() { _ = bp.Close() }()

	_, err := bp.Write([]byte("tick"))
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(sink.snapshot()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"tick"}, sink.snapshot())
}

func TestBatchProcessor_CloseFlushes(t *testing.T) {
	sink := &flushSink{}
	bp := telemetry.NewBatchProcessor(1024, time.Hour, sink.flush)

	_, err := bp.Write([]byte("tail"))
	require.NoError(t, err)
	require.NoError(t, bp.Close())
	require.NoError(t, bp.Close())

	assert.Equal(t, []string{"tail"}, sink.snapshot())

	_, err = bp.Write([]byte("late"))
	assert.Error(t, err)
}

func TestBatchProcessor_FlushEmpty(t *testing.T) {
	sink := &flushSink{}
	bp := telemetry.NewBatchProcessor(0, 0, sink.flush)
	defer func() { _ = bp.Close() }()

	bp.Flush()
	assert.Empty(t, sink.snapshot())
}
