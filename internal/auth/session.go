package auth

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Session carries the per-browser authenticated flag. There is no logout:
// once set, the flag stays until the session is evicted.
type Session struct {
	ID        string
	CreatedAt time.Time

	authenticated atomic.Bool
}

func (s *Session) Authenticated() bool { return s.authenticated.Load() }

// Store keeps the most recently used sessions in memory.
type Store struct {
	lru *lru.Cache[string, *Session]
}

func NewStore(size int) (*Store, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[string, *Session](size)
	if err != nil {
		return nil, err
	}
	return &Store{lru: c}, nil
}

func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	return s.lru.Get(id)
}

// New creates and stores a fresh unauthenticated session.
func (s *Store) New() *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
	s.lru.Add(sess.ID, sess)
	return sess
}

func (s *Store) Len() int { return s.lru.Len() }
