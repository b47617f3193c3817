package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveForward(t *testing.T) {
	items := []int64{10, 20, 30, 40, 50}
	require.NoError(t, Move(items, 1, 3))
	assert.Equal(t, []int64{10, 30, 40, 20, 50}, items)
}

func TestMoveBackward(t *testing.T) {
	items := []int64{10, 20, 30, 40, 50}
	require.NoError(t, Move(items, 4, 0))
	assert.Equal(t, []int64{50, 10, 20, 30, 40}, items)
}

func TestMoveSameIndexIsNoop(t *testing.T) {
	items := []int64{10, 20, 30}
	require.NoError(t, Move(items, 1, 1))
	assert.Equal(t, []int64{10, 20, 30}, items)
}

func TestMoveOutOfRange(t *testing.T) {
	items := []int64{10, 20}
	assert.Error(t, Move(items, -1, 0))
	assert.Error(t, Move(items, 0, 2))
}

func TestMoveRowUp(t *testing.T) {
	items := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	require.NoError(t, MoveRow(items, 1, 4, true))
	assert.Equal(t, []int64{5, 6, 7, 8, 1, 2, 3, 4}, items)
}

func TestMoveRowDownWithPartialLastRow(t *testing.T) {
	// Ten items in a 4-wide grid: the last row has two items only.
	items := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.NoError(t, MoveRow(items, 1, 4, false))
	assert.Equal(t, []int64{1, 2, 3, 4, 9, 10, 5, 6, 7, 8}, items)
}

func TestMoveRowParameterizedColumns(t *testing.T) {
	// Same data, 2-wide grid. Offsets must follow the column count rather
	// than a hardcoded width.
	items := []int64{1, 2, 3, 4, 5, 6}
	require.NoError(t, MoveRow(items, 2, 2, true))
	assert.Equal(t, []int64{1, 2, 5, 6, 3, 4}, items)
}

func TestMoveRowBounds(t *testing.T) {
	items := []int64{1, 2, 3, 4}
	assert.Error(t, MoveRow(items, 0, 4, true), "first row cannot move up")
	assert.Error(t, MoveRow(items, 0, 4, false), "single row cannot move down")
	assert.Error(t, MoveRow(items, 0, 0, true), "columns must be positive")
}

func TestRenumberAssignsArrayIndexes(t *testing.T) {
	updates := Renumber([]int64{30, 10, 20})
	require.Len(t, updates, 3)
	assert.Equal(t, PositionUpdate{ID: 30, Position: 0}, updates[0])
	assert.Equal(t, PositionUpdate{ID: 10, Position: 1}, updates[1])
	assert.Equal(t, PositionUpdate{ID: 20, Position: 2}, updates[2])
}

func TestRenumberIdempotent(t *testing.T) {
	order := []int64{4, 2, 9, 1}
	first := Renumber(order)
	second := Renumber(order)
	assert.Equal(t, first, second)
}

func TestPositionDiffOnlyChangedRows(t *testing.T) {
	// Stored pivot positions: 10 and 20 already match their index, 30 does
	// not and 40 is new.
	current := map[int64]int{10: 0, 20: 1, 30: 5}
	changed := PositionDiff([]int64{10, 20, 30, 40}, current)

	require.Len(t, changed, 2)
	assert.Equal(t, PositionUpdate{ID: 30, Position: 2}, changed[0])
	assert.Equal(t, PositionUpdate{ID: 40, Position: 3}, changed[1])
}

func TestPositionDiffNoChangesYieldsEmpty(t *testing.T) {
	current := map[int64]int{10: 0, 20: 1}
	assert.Empty(t, PositionDiff([]int64{10, 20}, current))
}

func TestPositionDiffAfterRenumberIsEmpty(t *testing.T) {
	order := []int64{7, 3, 5}
	applied := make(map[int64]int)
	for _, u := range Renumber(order) {
		applied[u.ID] = u.Position
	}
	assert.Empty(t, PositionDiff(order, applied))
}
