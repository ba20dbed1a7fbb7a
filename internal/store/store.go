// Package store persists the pet collection as a single JSON document.
//
// Every mutation reloads the whole file, applies the change in memory and
// overwrites the file in place. There is no rename-on-write and no locking, so
// the store assumes a single writer; a crash during a write can leave a
// truncated document behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultPath mirrors the location used by earlier releases.
const DefaultPath = "./data/db.json"

// Store reads and rewrites the backing file.
type Store struct {
	path string
	gen  *Generator
}

// Option customises a Store.
type Option func(*Store)

// WithGenerator replaces the random pet generator.
func WithGenerator(gen *Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.gen = gen
		}
	}
}

// New returns a store backed by path.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, gen: NewGenerator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path reports the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Ensure creates an empty collection when the backing file is missing.
func (s *Store) Ensure() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
	return s.write([]Pet{})
}

// LoadAll returns the full collection in file order.
func (s *Store) LoadAll() ([]Pet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	var pets []Pet
	if err := json.Unmarshal(data, &pets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return pets, nil
}

// AppendGenerated adds one random pet and returns the updated collection.
func (s *Store) AppendGenerated() ([]Pet, error) {
	pets, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	pets = append(pets, s.gen.Pet())
	if err := s.write(pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// DeleteAt removes the pet at index, shifting later pets left.
func (s *Store) DeleteAt(index int) error {
	pets, err := s.LoadAll()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(pets) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndex, index, len(pets))
	}
	pets = append(pets[:index], pets[index+1:]...)
	return s.write(pets)
}

func (s *Store) write(pets []Pet) error {
	if pets == nil {
		pets = []Pet{}
	}
	data, err := json.Marshal(pets)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	return nil
}
