package state

// Next moves the cursor forward, wrapping from the last row to the first. An
// empty list or an unset selection is left alone.
func (s Selection) Next(n int) Selection {
	if n <= 0 || !s.set {
		return s
	}
	if s.index >= n-1 {
		return Select(0)
	}
	return Select(s.index + 1)
}

// Prev moves the cursor backward, wrapping from the first row to the last. A
// cursor left past the end by an external edit lands on the last row.
func (s Selection) Prev(n int) Selection {
	if n <= 0 || !s.set {
		return s
	}
	if s.index <= 0 || s.index > n-1 {
		return Select(n - 1)
	}
	return Select(s.index - 1)
}

// Retreat steps the cursor back one row after the selected row was removed.
// It saturates at zero instead of going negative.
func (s Selection) Retreat() Selection {
	if !s.set {
		return s
	}
	if s.index <= 0 {
		return Select(0)
	}
	return Select(s.index - 1)
}

// Clamp pulls a cursor that points past the end of an n-row list back onto
// the last row. Empty lists keep the cursor so it is ready for the next insert.
func (s Selection) Clamp(n int) Selection {
	if !s.set || n <= 0 {
		return s
	}
	if s.index >= n {
		return Select(n - 1)
	}
	return s
}
