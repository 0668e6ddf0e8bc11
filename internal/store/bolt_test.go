package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, maxTurns int) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "skill.db"), maxTurns)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndGetHistory(t *testing.T) {
	s := openStore(t, 0)

	saved, err := s.AppendTurn("u1", Turn{Utterance: "안녕", Response: json.RawMessage(`{"version":"2.0","template":{}}`)})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.At.IsZero())

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	_, err = s.AppendTurn("u1", Turn{ID: "fixed", Utterance: "메뉴", At: at, Response: json.RawMessage(`{}`)})
	require.NoError(t, err)

	turns, err := s.GetHistory("u1")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "안녕", turns[0].Utterance)
	assert.JSONEq(t, `{"version":"2.0","template":{}}`, string(turns[0].Response))
	assert.Equal(t, "fixed", turns[1].ID)
	assert.True(t, at.Equal(turns[1].At))

	other, err := s.GetHistory("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestAppendTrimsToMaxTurns(t *testing.T) {
	s := openStore(t, 3)
	for i := range 5 {
		_, err := s.AppendTurn("u", Turn{Utterance: fmt.Sprintf("m%d", i), Response: json.RawMessage(`{}`)})
		require.NoError(t, err)
	}

	turns, err := s.GetHistory("u")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "m2", turns[0].Utterance)
	assert.Equal(t, "m4", turns[2].Utterance)
}

func TestAppendRejectsEmptyUser(t *testing.T) {
	s := openStore(t, 0)
	_, err := s.AppendTurn("", Turn{})
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestClearHistory(t *testing.T) {
	s := openStore(t, 0)
	_, err := s.AppendTurn("u", Turn{Utterance: "x", Response: json.RawMessage(`{}`)})
	require.NoError(t, err)

	require.NoError(t, s.ClearHistory("u"))
	turns, err := s.GetHistory("u")
	require.NoError(t, err)
	assert.Empty(t, turns)
	require.NoError(t, s.ClearHistory("missing"))
}
