package catalog

import "fmt"

// PositionUpdate is one row of a bulk position write.
type PositionUpdate struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

// Move relocates the element at from to index to, shifting everything in
// between, matching drag-and-drop semantics. The slice is modified in place.
func Move[T any](items []T, from, to int) error {
	n := len(items)
	if from < 0 || from >= n {
		return fmt.Errorf("from index %d out of range [0,%d)", from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("to index %d out of range [0,%d)", to, n)
	}
	if from == to {
		return nil
	}
	item := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = item
	return nil
}

// MoveRow moves one visual row of columns items up or down by one row,
// splicing whole chunks. The column count is a parameter: the grid decides
// how wide a row is, not this function. A partial trailing row moves as a
// smaller chunk.
func MoveRow[T any](items []T, rowIndex, columns int, up bool) error {
	if columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", columns)
	}
	n := len(items)
	rows := (n + columns - 1) / columns
	if rowIndex < 0 || rowIndex >= rows {
		return fmt.Errorf("row index %d out of range [0,%d)", rowIndex, rows)
	}
	target := rowIndex - 1
	if !up {
		target = rowIndex + 1
	}
	if target < 0 || target >= rows {
		return fmt.Errorf("cannot move row %d further %s", rowIndex, direction(up))
	}

	first, second := target, rowIndex
	if !up {
		first, second = rowIndex, target
	}
	aStart := first * columns
	aEnd := min(aStart+columns, n)
	bStart := second * columns
	bEnd := min(bStart+columns, n)

	swapped := make([]T, 0, bEnd-aStart)
	swapped = append(swapped, items[bStart:bEnd]...)
	swapped = append(swapped, items[aStart:aEnd]...)
	copy(items[aStart:bEnd], swapped)
	return nil
}

func direction(up bool) string {
	if up {
		return "up"
	}
	return "down"
}

// Renumber assigns every id its array index as position, the canonical
// renumbering applied after any reorder. Applying it twice to the same order
// yields identical results.
func Renumber(orderedIDs []int64) []PositionUpdate {
	updates := make([]PositionUpdate, len(orderedIDs))
	for i, id := range orderedIDs {
		updates[i] = PositionUpdate{ID: id, Position: i}
	}
	return updates
}

// PositionDiff renumbers orderedIDs by index and returns only the updates
// whose position differs from the stored one in current. Ids absent from
// current are always included. The bulk position write persists exactly this
// set and nothing more.
func PositionDiff(orderedIDs []int64, current map[int64]int) []PositionUpdate {
	var changed []PositionUpdate
	for i, id := range orderedIDs {
		if pos, ok := current[id]; ok && pos == i {
			continue
		}
		changed = append(changed, PositionUpdate{ID: id, Position: i})
	}
	return changed
}
