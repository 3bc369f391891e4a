package commands

import (
	"context"
	"testing"

	"github.com/brushtrack/brushtrack/internal/habits/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetReflectionHandler_TrimsAndPersists(t *testing.T) {
	repo := newMemoryHistoryRepo()
	handler := NewSetReflectionHandler(repo)
	userID := uuid.New()
	key := domain.DateKey("2024-03-15")

	err := handler.Handle(context.Background(), SetReflectionCommand{
		UserID: userID,
		Date:   key,
		Text:   "  too tired after the trip  ",
	})
	require.NoError(t, err)

	history, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, history)

	rec, ok := history.Record(key)
	require.True(t, ok)
	assert.Equal(t, "too tired after the trip", rec.Reflection())
	assert.False(t, rec.IsComplete())
}

func TestSetReflectionHandler_OverwritesExistingNote(t *testing.T) {
	repo := newMemoryHistoryRepo()
	handler := NewSetReflectionHandler(repo)
	userID := uuid.New()
	key := domain.DateKey("2024-03-15")

	require.NoError(t, handler.Handle(context.Background(), SetReflectionCommand{
		UserID: userID, Date: key, Text: "first",
	}))
	require.NoError(t, handler.Handle(context.Background(), SetReflectionCommand{
		UserID: userID, Date: key, Text: "second",
	}))

	history, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	rec, _ := history.Record(key)
	assert.Equal(t, "second", rec.Reflection())
}

func TestSetReflectionHandler_KeepsTaskState(t *testing.T) {
	repo := newMemoryHistoryRepo()
	toggle := NewToggleTaskHandler(repo, &recordingPublisher{})
	reflect := NewSetReflectionHandler(repo)
	userID := uuid.New()
	key := domain.DateKey("2024-03-15")

	_, err := toggle.Handle(context.Background(), ToggleTaskCommand{
		UserID: userID, Date: key, Task: domain.TaskFloss,
	})
	require.NoError(t, err)

	require.NoError(t, reflect.Handle(context.Background(), SetReflectionCommand{
		UserID: userID, Date: key, Text: "flossed at least",
	}))

	history, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	rec, _ := history.Record(key)
	assert.True(t, rec.Floss())
	assert.Equal(t, "flossed at least", rec.Reflection())
}
