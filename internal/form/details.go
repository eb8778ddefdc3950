package form

// DetailVisibility tracks which recommendation detail panels are expanded,
// keyed by position in the current recommendation list. Unset indices are hidden.
// Indices are not bounds-checked; one without a recommendation never renders.
type DetailVisibility struct {
	shown map[int]bool
}

// Toggle flips the panel at index and returns its new state
func (d *DetailVisibility) Toggle(index int) bool {
	if d.shown == nil {
		d.shown = make(map[int]bool)
	}
	d.shown[index] = !d.shown[index]
	return d.shown[index]
}

// Visible reports whether the panel at index is expanded
func (d *DetailVisibility) Visible(index int) bool {
	return d.shown[index]
}

// Reset hides every panel
func (d *DetailVisibility) Reset() {
	d.shown = nil
}

// Len returns how many indices have been toggled since the last reset
func (d *DetailVisibility) Len() int {
	return len(d.shown)
}
