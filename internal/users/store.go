package users

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"janoubco-monitor/internal/models"
)

// Store persists user records in a flat JSON file keyed by username. Every
// mutation rewrites the whole file, and all mutations run under one mutex so
// the read-modify-write cycle stays a single-writer point. The file is only
// rewritten after the full record set has been prepared in memory.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create users dir: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) read() (map[string]models.UserRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]models.UserRecord{}, nil
		}
		return nil, fmt.Errorf("read users file: %w", err)
	}

	users := map[string]models.UserRecord{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	return users, nil
}

func (s *Store) write(users map[string]models.UserRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}

// Load returns a copy of the full record set.
func (s *Store) Load() (map[string]models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Update runs fn on the current record set and persists the result. If fn
// returns an error nothing is written and the error is passed through.
func (s *Store) Update(fn func(users map[string]models.UserRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(users); err != nil {
		return err
	}
	return s.write(users)
}
