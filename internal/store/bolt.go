package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var historyBucket = []byte("history")

// DefaultMaxTurns bounds the history kept per user when none is configured.
const DefaultMaxTurns = 50

var ErrEmptyUserID = errors.New("store: empty user id")

// Turn is one skill request and the response body sent back for it.
type Turn struct {
	ID        string          `json:"id"`
	BlockID   string          `json:"block_id,omitempty"`
	Action    string          `json:"action,omitempty"`
	Utterance string          `json:"utterance"`
	Response  json.RawMessage `json:"response"`
	At        time.Time       `json:"at"`
}

type Store interface {
	AppendTurn(userID string, t Turn) (Turn, error)
	GetHistory(userID string) ([]Turn, error)
	ClearHistory(userID string) error
	Close() error
}

type BoltStore struct {
	db       *bolt.DB
	maxTurns int
}

func NewBoltStore(path string, maxTurns int) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history bucket: %w", err)
	}

	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &BoltStore{db: db, maxTurns: maxTurns}, nil
}

// AppendTurn stores t at the end of the user's history, dropping the oldest
// turns beyond the limit. A missing ID or timestamp is filled in.
func (s *BoltStore) AppendTurn(userID string, t Turn) (Turn, error) {
	if userID == "" {
		return t, ErrEmptyUserID
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.At.IsZero() {
		t.At = time.Now().UTC()
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(historyBucket)

		var turns []Turn
		if v := b.Get([]byte(userID)); v != nil {
			if err := json.Unmarshal(v, &turns); err != nil {
				return err
			}
		}

		turns = append(turns, t)
		if len(turns) > s.maxTurns {
			turns = turns[len(turns)-s.maxTurns:]
		}

		data, err := json.Marshal(turns)
		if err != nil {
			return err
		}
		return b.Put([]byte(userID), data)
	})
	if err != nil {
		return t, fmt.Errorf("appending turn for %s: %w", userID, err)
	}
	return t, nil
}

func (s *BoltStore) GetHistory(userID string) ([]Turn, error) {
	var turns []Turn
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(historyBucket).Get([]byte(userID))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &turns)
	})
	return turns, err
}

func (s *BoltStore) ClearHistory(userID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(historyBucket).Delete([]byte(userID))
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
