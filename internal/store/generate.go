package store

import (
	"math/rand/v2"
	"time"
)

const (
	maxGeneratedID = 999999
	nameLength     = 10
	minAge         = 1
	maxAge         = 15 // exclusive
	nameAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Categories lists the values a generated pet may be assigned.
var Categories = []string{"cats", "dogs"}

// Generator synthesizes random pets.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator returns a generator seeded from the runtime source.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now: time.Now,
	}
}

// NewSeededGenerator returns a deterministic generator; now may be nil.
func NewSeededGenerator(seed uint64, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		now: now,
	}
}

// Pet returns a new random pet stamped with the generator clock.
func (g *Generator) Pet() Pet {
	name := make([]byte, nameLength)
	for i := range name {
		name[i] = nameAlphabet[g.rng.IntN(len(nameAlphabet))]
	}
	return Pet{
		ID:        g.rng.Uint64N(maxGeneratedID),
		Name:      string(name),
		Category:  Categories[g.rng.IntN(len(Categories))],
		Age:       minAge + g.rng.Uint64N(maxAge-minAge),
		CreatedAt: g.now().UTC(),
	}
}
