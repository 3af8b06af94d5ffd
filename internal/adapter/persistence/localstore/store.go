// Package localstore is a file-backed estimate store used when DynamoDB is
// unreachable. Writes land in a local directory so a store clerk never loses
// an estimate mid-consultation; the usecase layer merges the two stores on
// read and re-saves through DynamoDB once it recovers.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"
)

const defaultDir = "./.estimates_fallback"

// Store keeps one JSON file per estimate number under a single directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

var _ interfaces.IEstimateRepository = (*Store)(nil)

// New uses the ESTIMATES_FALLBACK_DIR env var, or a directory next to the
// binary when unset. The directory is created lazily on the first write.
func New() *Store {
	dir := os.Getenv("ESTIMATES_FALLBACK_DIR")
	if dir == "" {
		dir = defaultDir
	}
	return NewAt(dir)
}

func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Put(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return entities.Estimate{}, err
	}
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return entities.Estimate{}, err
	}

	path := s.pathFor(e.Number)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return entities.Estimate{}, err
	}
	if err := os.Rename(tmp, path); err != nil {
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][localstore] saved %s to %s", e.Number, path)
	return e, nil
}

func (s *Store) GetByNumber(_ context.Context, number string) (entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.pathFor(number))
	if errors.Is(err, fs.ErrNotExist) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, err
	}

	var e entities.Estimate
	if err := json.Unmarshal(b, &e); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (s *Store) List(_ context.Context) ([]entities.Estimate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirEntries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var all []entities.Estimate
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		var e entities.Estimate
		if err := json.Unmarshal(b, &e); err != nil {
			log.Printf("[estimate][localstore] skipping unreadable file %s: %v", entry.Name(), err)
			continue
		}
		all = append(all, e)
	}
	return all, nil
}

func (s *Store) Delete(_ context.Context, number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.pathFor(number))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) pathFor(number string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.json", number))
}
