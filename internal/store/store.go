// Package store persists the whole arena document as a single JSON file.
// Every write goes through one serialized path and replaces the file
// atomically (write temp, fsync, rename), so a crash mid-write leaves the
// previous document intact and concurrent handlers never clobber each
// other's read-modify-write cycles.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/arenabets/arenabot/internal/domain"
)

// Store is the JSON document store. It keeps the current document cached
// in memory; reads serve the cache, writes clone-mutate-persist-swap.
type Store struct {
	path string

	// mu is the serialized write queue: one mutation at a time, readers
	// blocked only for the in-memory swap.
	mu  sync.RWMutex
	doc *domain.Document
}

// Open loads the document at path, creating an empty one when the file
// does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.doc = domain.NewDocument()
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrPersistence, path, err)
	}

	doc := domain.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrPersistence, path, err)
	}
	if doc.Players == nil {
		doc.Players = make(map[string]*domain.Player)
	}
	// The map key is the identity; backfill it on the records.
	for id, p := range doc.Players {
		p.ID = id
	}
	s.doc = doc
	return s, nil
}

// View calls fn with the cached document. The document must not be
// mutated or retained; values needed later should be copied out.
func (s *Store) View(ctx context.Context, fn func(*domain.Document) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.doc)
}

// Update applies fn to a deep copy of the document, persists the copy
// atomically, then swaps it in. When fn fails or the write fails, the
// in-memory document is untouched and nothing is persisted.
func (s *Store) Update(ctx context.Context, fn func(*domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.doc = next
	return nil
}

// save writes doc to a temp file in the target directory and renames it
// over the real path.
func (s *Store) save(doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", domain.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", domain.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync temp file: %v", domain.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %v", domain.ErrPersistence, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %v", domain.ErrPersistence, s.path, err)
	}
	return nil
}
