package state

import "github.com/atomicstack/pet-dashboard/internal/store"

// PetStore holds the most recent snapshot of the pet collection for
// rendering. Values are copied in both directions so the snapshot is never
// aliased by callers.
type PetStore interface {
	Entries() []store.Pet
	SetEntries([]store.Pet)
}

type petStore struct {
	entries []store.Pet
}

func NewPetStore() PetStore {
	return &petStore{}
}

func (s *petStore) Entries() []store.Pet {
	return store.ClonePets(s.entries)
}

func (s *petStore) SetEntries(entries []store.Pet) {
	s.entries = store.ClonePets(entries)
}
