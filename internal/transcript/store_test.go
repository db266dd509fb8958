package transcript

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "transcript.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	session := NewSessionID()

	require.NoError(t, s.Append(ctx, Turn{SessionID: session, Input: "hi", Reply: "Hey!", Intents: []string{"GREETING"}}))
	require.NoError(t, s.Append(ctx, Turn{SessionID: session, Input: "hi. bye", Reply: "Hi! Goodbye!", Intents: []string{"GREETING", "FAREWELL"}}))
	require.NoError(t, s.Append(ctx, Turn{SessionID: NewSessionID(), Input: "yo", Reply: "Hi!"}))

	turns, err := s.Recent(ctx, session, 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)

	assert.Equal(t, "hi", turns[0].Input)
	assert.Equal(t, []string{"GREETING"}, turns[0].Intents)
	assert.Equal(t, "Hi! Goodbye!", turns[1].Reply)
	assert.Equal(t, []string{"GREETING", "FAREWELL"}, turns[1].Intents)
	assert.WithinDuration(t, time.Now(), turns[1].CreatedAt, time.Minute)

	latest, err := s.Recent(ctx, session, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, "hi. bye", latest[0].Input)
}

func TestAppendRequiresSession(t *testing.T) {
	s := openTestStore(t)
	err := s.Append(context.Background(), Turn{Input: "hi"})
	assert.Error(t, err)
}

func TestSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, second := NewSessionID(), NewSessionID()
	require.NoError(t, s.Append(ctx, Turn{SessionID: first, Input: "hi", Reply: "Hi!"}))
	require.NoError(t, s.Append(ctx, Turn{SessionID: first, Input: "bye", Reply: "Bye!"}))
	require.NoError(t, s.Append(ctx, Turn{SessionID: second, Input: "yo", Reply: "Hey!"}))

	sessions, err := s.Sessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, second, sessions[0].ID)
	assert.Equal(t, 1, sessions[0].Turns)
	assert.Equal(t, first, sessions[1].ID)
	assert.Equal(t, 2, sessions[1].Turns)
}

func TestNewSessionID(t *testing.T) {
	id := NewSessionID()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}
