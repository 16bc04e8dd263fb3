package grid

import (
	"math"
	"slices"
)

// Engine packs item sequences against a fixed set of grid metrics. It is
// a stateless value: all board state lives with the caller, and every
// method is a pure function of its inputs. Engine is safe to copy and to
// share, but callers committing mutations against a shared sequence must
// serialize those commits externally.
type Engine struct {
	cfg Config
}

// New creates an engine for the given metrics. The metrics are not
// validated here; call [Config.Validate] when accepting untrusted
// configuration.
func New(cfg Config) Engine {
	return Engine{cfg: cfg}
}

// Config returns the metrics the engine was created with.
func (e Engine) Config() Config { return e.cfg }

// NewItem creates an item with the default single-cell size, the default
// z-index, and a placeholder position at the first cell origin. The
// position is cosmetic: the next pack overwrites it.
func (e Engine) NewItem(id, content string) *Item {
	x, y := e.cfg.CellOrigin(0, 0)
	return &Item{
		ID:      id,
		Content: content,
		X:       x,
		Y:       y,
		Width:   e.cfg.CellWidth,
		Height:  e.cfg.CellHeight,
		ZIndex:  ZDefault,
	}
}

// Pack lays the sequence out on the grid and returns it in visual
// reading order (ascending y, then x).
//
// Items are placed in input sequence order. For each item the span is
// resolved from its current pixel size, every feasible starting column
// is scored by the highest horizon it would have to clear, and the item
// is placed at the leftmost column with the lowest such row. Pixel
// position and snapped size are derived from the chosen cell.
//
// Items whose derived position, size, and cell all equal their current
// values are returned as the same pointer; everything else is a fresh
// copy. An empty input is returned as-is with no horizon allocation.
//
// A span wider than the column count is a caller error (the engine
// supports spans of at most 2); the span is clamped so placement stays
// in bounds, but the resulting layout is unspecified.
func (e Engine) Pack(items []*Item) []*Item {
	if len(items) == 0 {
		return items
	}

	horizon := make([]int, e.cfg.Columns)
	out := make([]*Item, len(items))

	for i, it := range items {
		colSpan := e.cfg.ColSpan(it.Width)
		if colSpan > e.cfg.Columns {
			colSpan = e.cfg.Columns
		}
		rowSpan := e.cfg.RowSpan(it.Height)

		bestCol, bestRow := 0, math.MaxInt
		for col := 0; col+colSpan <= e.cfg.Columns; col++ {
			row := horizon[col]
			for k := 1; k < colSpan; k++ {
				if horizon[col+k] > row {
					row = horizon[col+k]
				}
			}
			if row < bestRow {
				bestRow, bestCol = row, col
			}
		}

		for k := 0; k < colSpan; k++ {
			horizon[bestCol+k] = bestRow + rowSpan
		}

		x, y := e.cfg.CellOrigin(bestRow, bestCol)
		w, h := e.cfg.SpanWidth(colSpan), e.cfg.SpanHeight(rowSpan)

		if it.X == x && it.Y == y && it.Width == w && it.Height == h &&
			it.GridRow == bestRow && it.GridCol == bestCol {
			out[i] = it
			continue
		}
		packed := *it
		packed.X, packed.Y = x, y
		packed.Width, packed.Height = w, h
		packed.GridRow, packed.GridCol = bestRow, bestCol
		out[i] = &packed
	}

	slices.SortStableFunc(out, func(a, b *Item) int {
		if a.Y != b.Y {
			if a.Y < b.Y {
				return -1
			}
			return 1
		}
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		return 0
	})
	return out
}
