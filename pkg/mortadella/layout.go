package mortadella

// ActionRow is one horizontal row of keys, ordered left to right.
type ActionRow []Action

// ActionRows is an ordered stack of rows, top to bottom.
type ActionRows []ActionRow

// KeyboardLayout is the finished grid of actions, ready for a renderer to
// map 1:1 onto keys. It is immutable once constructed; recompute on any
// context change rather than mutating.
type KeyboardLayout struct {
	rows ActionRows
}

// NewKeyboardLayout wraps rows in a layout. The rows are adopted, not
// copied; callers hand over ownership.
func NewKeyboardLayout(rows ActionRows) KeyboardLayout {
	return KeyboardLayout{rows: rows}
}

// Rows returns the layout's rows. Callers must treat them as read-only.
func (l KeyboardLayout) Rows() ActionRows {
	return l.rows
}

// RowCount returns the number of rows.
func (l KeyboardLayout) RowCount() int {
	return len(l.rows)
}

// Row returns the row at index i, or nil when out of range.
func (l KeyboardLayout) Row(i int) ActionRow {
	if i < 0 || i >= len(l.rows) {
		return nil
	}
	return l.rows[i]
}

// Equal reports structural equality: same row count, same actions in the
// same order.
func (l KeyboardLayout) Equal(other KeyboardLayout) bool {
	if len(l.rows) != len(other.rows) {
		return false
	}
	for i, row := range l.rows {
		if len(row) != len(other.rows[i]) {
			return false
		}
		for j, a := range row {
			if a != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}
