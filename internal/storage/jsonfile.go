package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONFiles persists each collection as <dir>/<collection>.json. A mutex
// keeps individual reads and writes from tearing each other; the wider
// read-modify-write cycle assumes a single low-traffic admin writer.
type JSONFiles struct {
	dir string
	mu  sync.Mutex
}

func NewJSONFiles(dir string) *JSONFiles {
	return &JSONFiles{dir: dir}
}

func (s *JSONFiles) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *JSONFiles) Load(_ context.Context, collection string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return []byte("[]"), nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *JSONFiles) Save(_ context.Context, collection string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path(collection), append(data, '\n'), 0o644)
}
