package progrock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/packlink/internal/adapters/telemetry/progrock"
	"go.trai.ch/packlink/internal/core/ports"
	"go.trai.ch/packlink/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRecorder_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Step("pack /work/lib-x", gomock.Any(), nil).Times(1)

	recorder := progrock.NewRecorder(progrock.NewStepLog(log))

	ctx, vertex := recorder.Record(context.Background(), "pack /work/lib-x")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	_, err := vertex.Stdout().Write([]byte("lib-x-1.0.0.tgz\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("npm notice\n"))
	require.NoError(t, err)

	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestRecorder_RecordFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Step("install /work/lib-x into /work/app", gomock.Any(), gomock.Any()).
		Do(func(_ string, _ time.Duration, err error) {
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exit status 1")
		}).Times(1)

	recorder := progrock.NewRecorder(progrock.NewStepLog(log))

	_, vertex := recorder.Record(context.Background(), "install /work/lib-x into /work/app")
	vertex.Complete(errors.New("exit status 1"))

	assert.NoError(t, recorder.Close())
}
