package photo_test

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository/mocks"
	"github.com/forest-management-gis/internal/pkg/filestore"
	"github.com/forest-management-gis/internal/worker/photo"
)

const testGroup = "forest-photo-cleanup"

func newStore(t *testing.T) *filestore.Store {
	t.Helper()
	files, err := filestore.New(afero.NewMemMapFs(), "uploads", zap.NewNop())
	require.NoError(t, err)
	return files
}

func message(t *testing.T, id string, event domain.ForestEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestCleanupWorker_Name(t *testing.T) {
	w := photo.NewCleanupWorker(&mocks.StreamRepository{}, newStore(t), testGroup, 3, zap.NewNop())
	assert.Equal(t, "photo-cleanup", w.Name())
	assert.Equal(t, testGroup, w.ConsumerGroup())
}

func TestCleanupWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("removes photos of deleted tree", func(t *testing.T) {
		files := newStore(t)
		pathA, err := files.Save("t1_a.jpg", []byte("a"))
		require.NoError(t, err)
		pathB, err := files.Save("t1_b.jpg", []byte("b"))
		require.NoError(t, err)
		keep, err := files.Save("t2_c.jpg", []byte("c"))
		require.NoError(t, err)

		streamRepo := &mocks.StreamRepository{}
		w := photo.NewCleanupWorker(streamRepo, files, testGroup, 3, zap.NewNop())

		streamRepo.On("ConsumeBatch", ctx, domain.StreamForestEvents, testGroup, mock.Anything, 20).
			Return([]domain.StreamMessage{
				message(t, "1-0", domain.ForestEvent{
					Type:     domain.EventTreeDeleted,
					EntityID: "t1",
					Payload:  domain.EventPayload{PhotoPaths: []string{pathA, pathB, "uploads/already_gone.jpg"}},
				}),
				message(t, "2-0", domain.ForestEvent{Type: domain.EventTreeCreated, EntityID: "t2"}),
			}, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamForestEvents, testGroup, []string{"1-0", "2-0"}).Return(nil)

		processed, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, processed)

		for _, name := range []string{"t1_a.jpg", "t1_b.jpg"} {
			exists, err := files.Exists(name)
			require.NoError(t, err)
			assert.False(t, exists, name)
		}
		exists, err := files.Exists("t2_c.jpg")
		require.NoError(t, err)
		assert.True(t, exists, keep)

		streamRepo.AssertExpectations(t)
	})

	t.Run("malformed message is acked", func(t *testing.T) {
		streamRepo := &mocks.StreamRepository{}
		w := photo.NewCleanupWorker(streamRepo, newStore(t), testGroup, 3, zap.NewNop())

		streamRepo.On("ConsumeBatch", ctx, domain.StreamForestEvents, testGroup, mock.Anything, 20).
			Return([]domain.StreamMessage{{ID: "3-0", Data: "{not json"}}, nil)
		streamRepo.On("AckMessages", ctx, domain.StreamForestEvents, testGroup, []string{"3-0"}).Return(nil)

		processed, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, processed)
		streamRepo.AssertExpectations(t)
	})

	t.Run("empty queue", func(t *testing.T) {
		streamRepo := &mocks.StreamRepository{}
		w := photo.NewCleanupWorker(streamRepo, newStore(t), testGroup, 3, zap.NewNop())

		streamRepo.On("ConsumeBatch", ctx, domain.StreamForestEvents, testGroup, mock.Anything, 20).Return(nil, nil)

		processed, err := w.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Zero(t, processed)
		streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("consume error", func(t *testing.T) {
		streamRepo := &mocks.StreamRepository{}
		w := photo.NewCleanupWorker(streamRepo, newStore(t), testGroup, 3, zap.NewNop())

		streamRepo.On("ConsumeBatch", ctx, domain.StreamForestEvents, testGroup, mock.Anything, 20).
			Return(nil, assert.AnError)

		_, err := w.ProcessBatch(ctx)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCleanupWorker_RecoverPending(t *testing.T) {
	ctx := context.Background()
	files := newStore(t)
	path, err := files.Save("t9_a.jpg", []byte("a"))
	require.NoError(t, err)

	streamRepo := &mocks.StreamRepository{}
	w := photo.NewCleanupWorker(streamRepo, files, testGroup, 1, zap.NewNop())

	streamRepo.On("ClaimStale", ctx, domain.StreamForestEvents, testGroup, mock.Anything, time.Minute, 20).
		Return([]domain.StreamMessage{
			message(t, "7-0", domain.ForestEvent{
				Type:     domain.EventTreeDeleted,
				EntityID: "t9",
				Payload:  domain.EventPayload{PhotoPaths: []string{path}},
			}),
		}, nil)
	streamRepo.On("AckMessages", ctx, domain.StreamForestEvents, testGroup, []string{"7-0"}).Return(nil)

	recovered, err := w.RecoverPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, recovered)
	exists, err := files.Exists("t9_a.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
	streamRepo.AssertExpectations(t)
}

func TestCleanupWorker_StartStop(t *testing.T) {
	streamRepo := &mocks.StreamRepository{}
	w := photo.NewCleanupWorker(streamRepo, newStore(t), testGroup, 1, zap.NewNop())

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamForestEvents, testGroup).Return(nil)
	streamRepo.On("ClaimStale", mock.Anything, domain.StreamForestEvents, testGroup, mock.Anything, time.Minute, 20).Return(nil, nil)
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamForestEvents, testGroup, mock.Anything, 20).Return(nil, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
}

func TestCleanupWorker_ConsumerGroupError(t *testing.T) {
	streamRepo := &mocks.StreamRepository{}
	w := photo.NewCleanupWorker(streamRepo, newStore(t), testGroup, 1, zap.NewNop())

	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamForestEvents, testGroup).Return(assert.AnError)

	err := w.Start(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
