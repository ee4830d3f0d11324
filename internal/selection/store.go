package selection

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zedkhan/OSRSOrderBot_Go/internal/domain"
)

// Session is the unit of state stored per user and flow. Exactly one of
// Single or Multi is set, depending on the flow that opened it.
type Session struct {
	Single    *SingleChoice
	Multi     *MultiChoice
	RSN       string
	CreatedAt time.Time
}

// Store keeps in-flight sessions keyed by user and flow, with LRU
// eviction and time-based expiry so abandoned panels cannot pile up.
type Store struct {
	lru *expirable.LRU[string, *Session]
}

// NewStore creates a session store holding at most size sessions, each
// expiring ttl after its last write.
func NewStore(size int, ttl time.Duration) *Store {
	return &Store{
		lru: expirable.NewLRU[string, *Session](size, nil, ttl),
	}
}

func sessionKey(userID string, flow domain.CatalogKind) string {
	return userID + ":" + string(flow)
}

// Put stores a session for the user's flow, replacing any existing one.
func (s *Store) Put(userID string, flow domain.CatalogKind, session *Session) {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	s.lru.Add(sessionKey(userID, flow), session)
}

// Get retrieves the user's session for flow without consuming it.
func (s *Store) Get(userID string, flow domain.CatalogKind) (*Session, bool) {
	return s.lru.Get(sessionKey(userID, flow))
}

// Take retrieves and removes the user's session for flow. A session can
// be taken at most once; a second Take reports not found.
func (s *Store) Take(userID string, flow domain.CatalogKind) (*Session, bool) {
	key := sessionKey(userID, flow)
	session, ok := s.lru.Get(key)
	if !ok {
		return nil, false
	}
	s.lru.Remove(key)
	return session, true
}

// Drop discards the user's session for flow, if any.
func (s *Store) Drop(userID string, flow domain.CatalogKind) {
	s.lru.Remove(sessionKey(userID, flow))
}
