package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryHistoryRepo is an in-memory domain.Repository for handler tests.
type memoryHistoryRepo struct {
	mu        sync.Mutex
	histories map[uuid.UUID]*domain.History
	saveErr   error
}

func newMemoryHistoryRepo() *memoryHistoryRepo {
	return &memoryHistoryRepo{histories: make(map[uuid.UUID]*domain.History)}
}

func (r *memoryHistoryRepo) Save(ctx context.Context, history *domain.History) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histories[history.UserID()] = history
	return nil
}

func (r *memoryHistoryRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.History, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.histories[userID], nil
}

// recordingPublisher captures published routing keys.
type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *recordingPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, routingKey)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestToggleTaskHandler_CreatesHistoryOnFirstToggle(t *testing.T) {
	repo := newMemoryHistoryRepo()
	pub := &recordingPublisher{}
	handler := NewToggleTaskHandler(repo, pub)
	userID := uuid.New()

	result, err := handler.Handle(context.Background(), ToggleTaskCommand{
		UserID: userID,
		Date:   domain.DateKey("2024-03-15"),
		Task:   domain.TaskMorning,
	})

	require.NoError(t, err)
	assert.True(t, result.Done)
	assert.Equal(t, 1, result.DoneCount)
	assert.False(t, result.IsComplete)
	assert.False(t, result.RecoveryConsumed)
	assert.Equal(t, []string{"habits.day.task_toggled"}, pub.published())

	saved, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 1, saved.Len())
	assert.Empty(t, saved.DomainEvents(), "events must be cleared after publishing")
}

func TestToggleTaskHandler_CompletingDayPublishesCompletion(t *testing.T) {
	repo := newMemoryHistoryRepo()
	pub := &recordingPublisher{}
	handler := NewToggleTaskHandler(repo, pub)
	userID := uuid.New()
	key := domain.DateKey("2024-03-15")

	var result *ToggleTaskResult
	var err error
	for _, task := range domain.TaskNames() {
		result, err = handler.Handle(context.Background(), ToggleTaskCommand{
			UserID: userID, Date: key, Task: task,
		})
		require.NoError(t, err)
	}

	assert.True(t, result.IsComplete)
	assert.Equal(t, 1, result.Streaks.Current)
	assert.Contains(t, pub.published(), "habits.day.completed")
}

func TestToggleTaskHandler_ReopeningDayPublishesReopened(t *testing.T) {
	repo := newMemoryHistoryRepo()
	pub := &recordingPublisher{}
	handler := NewToggleTaskHandler(repo, pub)
	userID := uuid.New()
	key := domain.DateKey("2024-03-15")

	for _, task := range domain.TaskNames() {
		_, err := handler.Handle(context.Background(), ToggleTaskCommand{
			UserID: userID, Date: key, Task: task,
		})
		require.NoError(t, err)
	}

	result, err := handler.Handle(context.Background(), ToggleTaskCommand{
		UserID: userID, Date: key, Task: domain.TaskNight,
	})

	require.NoError(t, err)
	assert.False(t, result.IsComplete)
	assert.Contains(t, pub.published(), "habits.day.reopened")
}

func TestToggleTaskHandler_RecoveryConsumed(t *testing.T) {
	repo := newMemoryHistoryRepo()
	pub := &recordingPublisher{}
	now := time.Date(2024, 3, 16, 21, 0, 0, 0, time.Local)
	handler := NewToggleTaskHandler(repo, pub).WithClock(fixedClock(now))
	userID := uuid.New()

	// Yesterday exists but was missed.
	_, err := handler.Handle(context.Background(), ToggleTaskCommand{
		UserID: userID, Date: domain.DateKey("2024-03-15"), Task: domain.TaskMorning,
	})
	require.NoError(t, err)

	var result *ToggleTaskResult
	for _, task := range domain.TaskNames() {
		result, err = handler.Handle(context.Background(), ToggleTaskCommand{
			UserID: userID, Date: domain.DateKey("2024-03-16"), Task: task,
		})
		require.NoError(t, err)
	}

	assert.True(t, result.RecoveryConsumed)
	assert.Equal(t, 2, result.Streaks.Current, "forgiven yesterday extends the streak")
	assert.Contains(t, pub.published(), "habits.recovery.consumed")
}

func TestToggleTaskHandler_InvalidTask(t *testing.T) {
	repo := newMemoryHistoryRepo()
	handler := NewToggleTaskHandler(repo, &recordingPublisher{})

	_, err := handler.Handle(context.Background(), ToggleTaskCommand{
		UserID: uuid.New(),
		Date:   domain.DateKey("2024-03-15"),
		Task:   domain.TaskName("nap"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTask)
}

func TestToggleTaskHandler_SaveFailure(t *testing.T) {
	repo := newMemoryHistoryRepo()
	repo.saveErr = errors.New("disk full")
	pub := &recordingPublisher{}
	handler := NewToggleTaskHandler(repo, pub)

	_, err := handler.Handle(context.Background(), ToggleTaskCommand{
		UserID: uuid.New(),
		Date:   domain.DateKey("2024-03-15"),
		Task:   domain.TaskMorning,
	})

	require.Error(t, err)
	assert.Empty(t, pub.published(), "nothing published when persistence fails")
}
