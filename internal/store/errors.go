package store

import "errors"

var (
	// ErrRead reports that the backing file could not be read or written.
	ErrRead = errors.New("error reading the pet database")
	// ErrParse reports that the backing file is not a JSON array of pets.
	ErrParse = errors.New("error parsing the pet database")
	// ErrIndex reports an index outside the current collection.
	ErrIndex = errors.New("pet index out of range")
)
