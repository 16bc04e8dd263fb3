package grid

import (
	"slices"
	"sort"
)

// Reorder moves the identified item to the slot implied by a drop point
// and repacks the whole sequence.
//
// The drop point is projected onto its grid cell with the same pitch
// arithmetic the packer uses (clamped into the grid, so points outside
// the content bounds remain valid), and both the drop cell and the
// item's current cell are collapsed into sort keys. Equal keys mean the
// item was dropped back onto its own slot: the input slice is returned
// untouched so callers keying off identity can skip all downstream work.
//
// Otherwise the item is removed and reinserted at a position found by a
// direction-aware binary search over the remaining items' keys. Dragging
// toward later slots inserts after the last item at or before the drop
// slot; dragging toward earlier slots inserts before the first item at
// or after it. Dropping onto another item therefore lands after it when
// moving down and before it when moving up, matching drag intuition.
//
// An unknown ID is not an error: the triggering gesture may have
// outlived the item, so the input is returned unchanged.
func (e Engine) Reorder(items []*Item, id string, dropX, dropY float64) []*Item {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	it := items[idx]

	originKey := e.cfg.SortKey(e.itemCell(it))
	targetKey := e.cfg.SortKey(e.cfg.CellAt(dropX, dropY))
	if targetKey == originKey {
		return items
	}

	rest := slices.Delete(slices.Clone(items), idx, idx+1)

	var insert int
	if targetKey > originKey {
		// Moving toward later positions: upper bound.
		insert = sort.Search(len(rest), func(i int) bool {
			return e.cfg.SortKey(e.itemCell(rest[i])) > targetKey
		})
	} else {
		// Moving toward earlier positions: lower bound.
		insert = sort.Search(len(rest), func(i int) bool {
			return e.cfg.SortKey(e.itemCell(rest[i])) >= targetKey
		})
	}

	return e.Pack(slices.Insert(rest, insert, it))
}

// itemCell returns the item's cell coordinate, trusting the cached
// row/col only while it still agrees with the pixel position. A stale or
// never-written cache is recomputed from X and Y with the packer's own
// cell arithmetic.
func (e Engine) itemCell(it *Item) (row, col int) {
	x, y := e.cfg.CellOrigin(it.GridRow, it.GridCol)
	if x == it.X && y == it.Y {
		return it.GridRow, it.GridCol
	}
	return e.cfg.CellAt(it.X, it.Y)
}
