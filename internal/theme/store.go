package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store is a small keyed slot store, the desktop stand-in for browser
// local storage. Values are raw JSON documents.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// FileStore keeps every slot in one JSON object on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStatePath is the state file under the user's config directory,
// or under dir when it is set.
func DefaultStatePath(dir string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("locate config dir: %w", err)
		}
		dir = filepath.Join(base, "portfolio")
	}
	return filepath.Join(dir, "state.json"), nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		return nil, false
	}
	v, ok := slots[key]
	return v, ok
}

func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots, err := s.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking every write.
		slots = map[string]json.RawMessage{}
	}
	slots[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}

func (s *FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	slots := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return slots, nil
}

// MemStore is an in-memory Store for headless runs and tests.
type MemStore struct {
	slots map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{slots: map[string][]byte{}}
}

func (m *MemStore) Get(key string) ([]byte, bool) {
	v, ok := m.slots[key]
	return v, ok
}

func (m *MemStore) Set(key string, value []byte) error {
	m.slots[key] = append([]byte(nil), value...)
	return nil
}
