// Package board implements the fixed 19-cell hexagonal plot grid.
// Cells are addressed by axial coordinates (q, r); the implicit third cube
// coordinate is s = -q - r.
package board

import (
	"github.com/hexplot/mergefarm/internal/domain"
)

const (
	// Radius is the hex radius of the board; radius 2 yields 19 cells.
	Radius = 2

	// CellCount is the total number of cells on the board.
	CellCount = 19
)

// Rand is the random source the board needs for its randomized mutations.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Cell is one hex plot. At most one crop occupies a cell; locked cells
// never hold a crop. The fertile flag is independent of occupancy and
// survives crop turnover.
type Cell struct {
	Index   int
	Q       int
	R       int
	Item    *domain.Crop
	Locked  bool
	Fertile bool
}

// Board is the fixed set of 19 cells generated once at session start.
type Board struct {
	cells []Cell
}

// hexDistance returns the axial distance from the origin.
func hexDistance(q, r int) int {
	return (abs(q) + abs(r) + abs(q+r)) / 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// New builds the 19-cell board covering a hex of radius 2. The outer ring
// (axial distance 2 from center, 12 cells) starts locked; the inner 7
// cells start unlocked.
func New() *Board {
	cells := make([]Cell, 0, CellCount)
	for q := -Radius; q <= Radius; q++ {
		for r := -Radius; r <= Radius; r++ {
			if q+r < -Radius || q+r > Radius {
				continue
			}
			cells = append(cells, Cell{
				Index:  len(cells),
				Q:      q,
				R:      r,
				Locked: hexDistance(q, r) == Radius,
			})
		}
	}
	return &Board{cells: cells}
}

// Cells returns a read-only view of every cell. Crops are copied by value
// so the views stay stable once the caller releases its lock; merges mutate
// crop levels in place.
func (b *Board) Cells() []domain.CellView {
	views := make([]domain.CellView, len(b.cells))
	for i, c := range b.cells {
		views[i] = domain.CellView{
			Index:   c.Index,
			Q:       c.Q,
			R:       c.R,
			Locked:  c.Locked,
			Fertile: c.Fertile,
		}
		if c.Item != nil {
			item := *c.Item
			views[i].Item = &item
		}
	}
	return views
}

// Cell returns the cell at the given index, or nil if out of range.
func (b *Board) Cell(index int) *Cell {
	if index < 0 || index >= len(b.cells) {
		return nil
	}
	return &b.cells[index]
}

// PlaceItem puts a crop onto the target cell. It is a silent no-op if the
// cell is out of range, locked, or occupied; callers pre-filter candidate
// cells, and the board is the final authority.
func (b *Board) PlaceItem(index int, item *domain.Crop) bool {
	cell := b.Cell(index)
	if cell == nil || cell.Locked || cell.Item != nil {
		return false
	}
	cell.Item = item
	return true
}

// MergeResult describes what AttemptMerge actually did.
type MergeResult struct {
	Kind        string // domain.MergeKindMerged, MergeKindRelocated, or MergeKindNoop
	ResultLevel int    // set for merges
}

// AttemptMerge resolves a drag from source onto target.
//
// If the target holds a crop of equal level the crops merge: the target's
// level becomes source level + levelIncrease and the source cell empties.
// levelIncrease is resolved by the caller (the lucky-merge roll happens
// exactly once, upstream) so the animation and the board mutation can never
// diverge. If the target is empty and unlocked the crop relocates. Anything
// else is a no-op that leaves the board untouched.
func (b *Board) AttemptMerge(sourceIndex, targetIndex, levelIncrease int) MergeResult {
	noop := MergeResult{Kind: domain.MergeKindNoop}
	source := b.Cell(sourceIndex)
	target := b.Cell(targetIndex)
	if source == nil || target == nil || sourceIndex == targetIndex {
		return noop
	}
	if source.Item == nil {
		return noop
	}
	if target.Item != nil {
		if target.Item.Level != source.Item.Level {
			return noop
		}
		target.Item.Level = source.Item.Level + levelIncrease
		source.Item = nil
		return MergeResult{Kind: domain.MergeKindMerged, ResultLevel: target.Item.Level}
	}
	if target.Locked {
		return noop
	}
	target.Item = source.Item
	source.Item = nil
	return MergeResult{Kind: domain.MergeKindRelocated}
}

// UnlockRandomLockedCell unlocks one locked cell chosen uniformly at
// random. Returns the cell index, or -1 if no locked cells remain.
func (b *Board) UnlockRandomLockedCell(rng Rand) int {
	locked := b.indicesWhere(func(c *Cell) bool { return c.Locked })
	if len(locked) == 0 {
		return -1
	}
	idx := locked[rng.Intn(len(locked))]
	b.cells[idx].Locked = false
	return idx
}

// FertilizeRandomCell marks one unlocked, non-fertile cell fertile. Empty
// eligible cells are preferred; occupied ones are the fallback pool.
// Returns the cell index, or -1 if every unlocked cell is already fertile.
func (b *Board) FertilizeRandomCell(rng Rand) int {
	eligible := func(c *Cell) bool { return !c.Locked && !c.Fertile }
	pool := b.indicesWhere(func(c *Cell) bool { return eligible(c) && c.Item == nil })
	if len(pool) == 0 {
		pool = b.indicesWhere(eligible)
	}
	if len(pool) == 0 {
		return -1
	}
	idx := pool[rng.Intn(len(pool))]
	b.cells[idx].Fertile = true
	return idx
}

// RandomEmptyCell returns the index of a uniformly random empty, unlocked
// cell, or -1 if the board is full.
func (b *Board) RandomEmptyCell(rng Rand) int {
	pool := b.indicesWhere(func(c *Cell) bool {
		return !c.Locked && c.Item == nil
	})
	if len(pool) == 0 {
		return -1
	}
	return pool[rng.Intn(len(pool))]
}

// axialNeighborOffsets are the six neighbor offsets in axial coordinates.
var axialNeighborOffsets = [6][2]int{
	{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// AdjacentIndices returns the indices of the up-to-six axial neighbors
// that exist on the board.
func (b *Board) AdjacentIndices(index int) []int {
	cell := b.Cell(index)
	if cell == nil {
		return nil
	}
	neighbors := make([]int, 0, 6)
	for _, off := range axialNeighborOffsets {
		q, r := cell.Q+off[0], cell.R+off[1]
		for i := range b.cells {
			if b.cells[i].Q == q && b.cells[i].R == r {
				neighbors = append(neighbors, i)
				break
			}
		}
	}
	return neighbors
}

// HasAdjacentSameLevel reports whether any neighbor holds a crop of the
// same level as this cell's crop. Used for the crop-synergy bonus.
func (b *Board) HasAdjacentSameLevel(index int) bool {
	cell := b.Cell(index)
	if cell == nil || cell.Item == nil {
		return false
	}
	for _, n := range b.AdjacentIndices(index) {
		if item := b.cells[n].Item; item != nil && item.Level == cell.Item.Level {
			return true
		}
	}
	return false
}

// IsFull reports whether every unlocked cell holds a crop. Locked cells
// are ignored for fullness.
func (b *Board) IsFull() bool {
	for i := range b.cells {
		if !b.cells[i].Locked && b.cells[i].Item == nil {
			return false
		}
	}
	return true
}

// LockedCount returns the number of cells still locked.
func (b *Board) LockedCount() int {
	return len(b.indicesWhere(func(c *Cell) bool { return c.Locked }))
}

// FertilizableCount returns the number of unlocked cells not yet fertile.
func (b *Board) FertilizableCount() int {
	return len(b.indicesWhere(func(c *Cell) bool { return !c.Locked && !c.Fertile }))
}

// CropCount returns the number of occupied cells.
func (b *Board) CropCount() int {
	return len(b.indicesWhere(func(c *Cell) bool { return c.Item != nil }))
}

// OccupiedIndices returns the indices of every cell holding a crop.
func (b *Board) OccupiedIndices() []int {
	return b.indicesWhere(func(c *Cell) bool { return c.Item != nil })
}

func (b *Board) indicesWhere(pred func(*Cell) bool) []int {
	var out []int
	for i := range b.cells {
		if pred(&b.cells[i]) {
			out = append(out, i)
		}
	}
	return out
}
