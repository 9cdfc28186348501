// Package filestore persists the whole site dataset as a single JSON
// document on disk. Every mutation is a load-mutate-save cycle guarded by
// one mutex, so concurrent request handlers cannot corrupt the file; two
// racing mutations still resolve as last-write-wins, which is the accepted
// behavior for this store.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"church-backend/internal/models"
)

// document mirrors the on-disk layout. The shape is a compatibility
// contract with existing data files, do not reorder or rename fields.
type document struct {
	Messages    []models.Message `json:"messages"`
	Videos      []models.Video   `json:"videos"`
	Photos      []models.Photo   `json:"photos"`
	LastUpdated string           `json:"lastUpdated"`
}

// Store owns the data file. Share one Store between all repositories so
// they serialise on the same lock.
type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

// load reads the document, treating a missing file as an empty dataset.
func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &document{
				Messages: []models.Message{},
				Videos:   []models.Video{},
				Photos:   []models.Photo{},
			}, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if doc.Messages == nil {
		doc.Messages = []models.Message{}
	}
	if doc.Videos == nil {
		doc.Videos = []models.Video{}
	}
	if doc.Photos == nil {
		doc.Photos = []models.Photo{}
	}
	return &doc, nil
}

func (s *Store) save(doc *document) error {
	doc.LastUpdated = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	return nil
}

// update runs fn inside the single-writer critical section and persists the
// document only when fn succeeds.
func (s *Store) update(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

// view runs fn against a freshly loaded document without writing back.
func (s *Store) view(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}
