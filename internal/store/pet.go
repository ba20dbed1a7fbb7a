package store

import "time"

// Pet is a single persisted record.
type Pet struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Age       uint64    `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

// ClonePets produces a copy of the provided collection.
func ClonePets(pets []Pet) []Pet {
	if len(pets) == 0 {
		return nil
	}
	dup := make([]Pet, len(pets))
	copy(dup, pets)
	return dup
}
