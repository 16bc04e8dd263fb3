package grid

import "slices"

// Append adds an item to the end of the sequence and repacks. The new
// item's pre-pack position is a placeholder; its size decides the span
// it packs into. The input slice is not modified.
func (e Engine) Append(items []*Item, it *Item) []*Item {
	next := make([]*Item, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, it)
	return e.Pack(next)
}

// Remove filters the identified item out of the sequence and repacks the
// remainder so the freed cells are reclaimed. An unknown ID returns the
// input unchanged.
func (e Engine) Remove(items []*Item, id string) []*Item {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	return e.Pack(slices.Delete(slices.Clone(items), idx, idx+1))
}

// Resize replaces the identified item's raw pixel size and repacks the
// entire sequence. The new size is snapped to a span multiple by the
// pack; the repack is always global because a changed span can move
// every item that logically follows. An unknown ID returns the input
// unchanged.
func (e Engine) Resize(items []*Item, id string, width, height float64) []*Item {
	idx := indexOf(items, id)
	if idx < 0 {
		return items
	}
	resized := *items[idx]
	resized.Width, resized.Height = width, height

	next := slices.Clone(items)
	next[idx] = &resized
	return e.Pack(next)
}

// BringToFront sets the identified item's z-index to the front constant.
// Stacking is independent of layout, so no repack happens and sequence
// order is preserved. An unknown ID, or an item already at the front,
// returns the input unchanged.
func (e Engine) BringToFront(items []*Item, id string) []*Item {
	idx := indexOf(items, id)
	if idx < 0 || items[idx].ZIndex == ZFront {
		return items
	}
	fronted := *items[idx]
	fronted.ZIndex = ZFront

	next := slices.Clone(items)
	next[idx] = &fronted
	return next
}

// ContentHeight returns the total scrollable height of a packed
// sequence: the bottom edge of the lowest item plus the margin and the
// configured bottom padding. An empty sequence has height 0.
//
// Because packed sequences are sorted by ascending (y, x), the lowest
// bottom edge is necessarily among the trailing Columns+2 entries (at
// most Columns items can share the last row, plus slack for row-spanning
// items starting one row earlier). Only that window is scanned; this
// bound is part of the performance contract, not an optimization detail.
func (e Engine) ContentHeight(items []*Item) float64 {
	if len(items) == 0 {
		return 0
	}
	start := len(items) - (e.cfg.Columns + 2)
	if start < 0 {
		start = 0
	}
	var max float64
	for _, it := range items[start:] {
		if bottom := it.Y + it.Height; bottom > max {
			max = bottom
		}
	}
	return max + e.cfg.Margin + e.cfg.BottomPadding
}
