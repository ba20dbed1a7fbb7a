package store

import (
	"testing"
	"time"
	"unicode"
)

func TestGeneratorRanges(t *testing.T) {
	now := time.Date(2023, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 3600))
	gen := NewSeededGenerator(7, func() time.Time { return now })
	seenCategories := map[string]bool{}
	for i := 0; i < 500; i++ {
		p := gen.Pet()
		if p.ID >= maxGeneratedID {
			t.Fatalf("id %d outside [0,%d)", p.ID, maxGeneratedID)
		}
		if len(p.Name) != nameLength {
			t.Fatalf("expected %d char name, got %q", nameLength, p.Name)
		}
		for _, r := range p.Name {
			if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
				t.Fatalf("expected alphanumeric name, got %q", p.Name)
			}
		}
		if p.Age < minAge || p.Age >= maxAge {
			t.Fatalf("age %d outside [%d,%d)", p.Age, minAge, maxAge)
		}
		if !p.CreatedAt.Equal(now) || p.CreatedAt.Location() != time.UTC {
			t.Fatalf("expected UTC timestamp equal to clock, got %v", p.CreatedAt)
		}
		seenCategories[p.Category] = true
	}
	if len(seenCategories) != 2 || !seenCategories["cats"] || !seenCategories["dogs"] {
		t.Fatalf("expected both categories to appear, got %v", seenCategories)
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeededGenerator(99, nil)
	b := NewSeededGenerator(99, nil)
	for i := 0; i < 10; i++ {
		pa, pb := a.Pet(), b.Pet()
		if pa.ID != pb.ID || pa.Name != pb.Name || pa.Category != pb.Category || pa.Age != pb.Age {
			t.Fatalf("expected identical pets, got %#v and %#v", pa, pb)
		}
	}
}
