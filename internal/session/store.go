package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sewakita/rentweb/internal/models"
)

// Flash is a one-shot notification shown on the next rendered page. It is
// the server-side equivalent of the admin UI toasts.
type Flash struct {
	Kind    string `json:"kind"` // "success" | "error"
	Message string `json:"message"`
}

// Data is what a browser session persists: the backend bearer token, the
// user profile object, and pending flashes. There is no expiry bookkeeping
// for the token itself; staleness surfaces as a 401/403 on a later call.
type Data struct {
	Token   string       `json:"token"`
	Profile *models.User `json:"profile,omitempty"`
	Flashes []Flash      `json:"flashes,omitempty"`
}

// Store persists session records keyed by session id.
type Store interface {
	Get(ctx context.Context, id string) (*Data, error)
	Put(ctx context.Context, id string, d *Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// memoryStore is the fallback Store when Redis is not configured. Expiry is
// checked lazily on access.
type memoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore() Store {
	return &memoryStore{records: make(map[string]memoryRecord)}
}

func (s *memoryStore) Get(_ context.Context, id string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	if time.Now().After(rec.expiresAt) {
		delete(s.records, id)
		return nil, nil
	}
	var d Data
	if err := json.Unmarshal(rec.payload, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *memoryStore) Put(_ context.Context, id string, d *Data, ttl time.Duration) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[id] = memoryRecord{payload: payload, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
	return nil
}
