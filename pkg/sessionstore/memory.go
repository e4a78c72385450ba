package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/musemart/musemart-backend/pkg/domain"
)

// MemoryStore is an in-process session record, used by tests and by
// runs that do not want a file on disk. It still round-trips through
// JSON so serialization bugs surface the same way as in the durable
// backends.
type MemoryStore struct {
	mu      sync.Mutex
	payload *string
}

// NewMemoryStore returns an empty in-process record.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(_ context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing session record: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	value := string(payload)
	s.payload = &value
	return nil
}

func (s *MemoryStore) Load(_ context.Context) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return nil, nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(*s.payload), &user); err != nil {
		return nil, fmt.Errorf("parsing session record: %w", err)
	}
	return &user, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = nil
	return nil
}

// Corrupt overwrites the stored payload with garbage. Test hook for the
// unparseable-record path.
func (s *MemoryStore) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	value := "{not-json"
	s.payload = &value
}
