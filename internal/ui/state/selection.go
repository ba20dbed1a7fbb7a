package state

// Selection is an optional index into the pet list.
type Selection struct {
	index int
	set   bool
}

// Select returns a selection on index. Negative indexes select nothing.
func Select(index int) Selection {
	if index < 0 {
		return Selection{}
	}
	return Selection{index: index, set: true}
}

// None returns the empty selection.
func None() Selection {
	return Selection{}
}

// Index returns the selected index and whether anything is selected.
func (s Selection) Index() (int, bool) {
	return s.index, s.set
}

// IsSet reports whether a row is selected.
func (s Selection) IsSet() bool {
	return s.set
}

// ValidFor reports whether the selection points into a list of n rows.
func (s Selection) ValidFor(n int) bool {
	return s.set && s.index >= 0 && s.index < n
}
