package analytics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const visitorPrefix = "visitor_"

// VisitorStore persists the anonymous visitor identifier across sessions in a
// single file, the durable-storage analog of the browser original. The zero
// path disables persistence; ids are then regenerated per process.
type VisitorStore struct {
	mu   sync.Mutex
	path string
}

// NewVisitorStore creates a store backed by the given file path.
func NewVisitorStore(path string) *VisitorStore {
	return &VisitorStore{path: strings.TrimSpace(path)}
}

// Load returns the persisted visitor id, generating and persisting a fresh
// one on first use.
func (s *VisitorStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path != "" {
		if data, err := os.ReadFile(s.path); err == nil {
			if id := strings.TrimSpace(string(data)); strings.HasPrefix(id, visitorPrefix) {
				return id, nil
			}
		}
	}

	id := NewVisitorID()
	if err := s.persist(id); err != nil {
		return id, err
	}
	return id, nil
}

// Reset discards the persisted id and seeds a new one.
func (s *VisitorStore) Reset() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return "", fmt.Errorf("analytics: reset visitor id: %w", err)
		}
	}

	id := NewVisitorID()
	if err := s.persist(id); err != nil {
		return id, err
	}
	return id, nil
}

func (s *VisitorStore) persist(id string) error {
	if s.path == "" {
		return nil
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("analytics: create visitor state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(id+"\n"), 0o644); err != nil {
		return fmt.Errorf("analytics: persist visitor id: %w", err)
	}
	return nil
}

// NewVisitorID generates a fresh anonymous identifier.
func NewVisitorID() string {
	return visitorPrefix + uuid.NewString()
}
