package grid

import (
	"errors"
	"math"
)

var (
	// ErrInvalidColumns is returned by [Config.Validate] when the column
	// count is less than one. The engine assumes a small fixed column
	// count; zero or negative columns make placement undefined.
	ErrInvalidColumns = errors.New("column count must be at least 1")

	// ErrInvalidCellSize is returned by [Config.Validate] when a cell
	// dimension or the margin is not positive. Cell pitch arithmetic
	// divides by these values when projecting points back to cells.
	ErrInvalidCellSize = errors.New("cell dimensions and margin must be positive")
)

// Config holds the fixed grid metrics the engine depends on. The values
// must stay constant for the lifetime of a given sequence: changing them
// invalidates every cached row/column assignment and requires a full
// repack of the sequence.
type Config struct {
	// Columns is the number of grid columns (typically 2).
	Columns int
	// CellWidth and CellHeight are the pixel dimensions of a single
	// grid cell, excluding margins.
	CellWidth  float64
	CellHeight float64
	// Margin is the gutter between cells and around the board edge.
	Margin float64
	// SpanThreshold is the slack added to a single-cell dimension when
	// deciding whether an item spans one cell or two: an item wider
	// than CellWidth+SpanThreshold resolves to a two-column span.
	SpanThreshold float64
	// BottomPadding is extra space added below the lowest item when
	// computing the total content height.
	BottomPadding float64
}

// DefaultConfig returns the canonical board metrics: two columns of
// 100x110 cells with a 15px gutter, a 20px span threshold, and 20px of
// bottom padding.
func DefaultConfig() Config {
	return Config{
		Columns:       2,
		CellWidth:     100,
		CellHeight:    110,
		Margin:        15,
		SpanThreshold: 20,
		BottomPadding: 20,
	}
}

// Validate checks that the metrics can drive placement and point
// projection. It returns ErrInvalidColumns or ErrInvalidCellSize on the
// first violation found.
func (c Config) Validate() error {
	if c.Columns < 1 {
		return ErrInvalidColumns
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 || c.Margin <= 0 {
		return ErrInvalidCellSize
	}
	return nil
}

// PitchX returns the horizontal cell pitch: the distance between the
// left edges of two adjacent columns.
func (c Config) PitchX() float64 { return c.CellWidth + c.Margin }

// PitchY returns the vertical cell pitch: the distance between the top
// edges of two adjacent rows.
func (c Config) PitchY() float64 { return c.CellHeight + c.Margin }

// ColSpan resolves the number of columns an item of the given pixel
// width occupies. Widths within SpanThreshold of a single cell resolve
// to 1; anything wider resolves to 2. Spans beyond 2 are not supported.
func (c Config) ColSpan(width float64) int {
	if width > c.CellWidth+c.SpanThreshold {
		return 2
	}
	return 1
}

// RowSpan resolves the number of rows an item of the given pixel height
// occupies, analogous to [Config.ColSpan].
func (c Config) RowSpan(height float64) int {
	if height > c.CellHeight+c.SpanThreshold {
		return 2
	}
	return 1
}

// SpanWidth returns the snapped pixel width of an item spanning the
// given number of columns, including the internal gutters it absorbs.
func (c Config) SpanWidth(span int) float64 {
	return float64(span)*c.CellWidth + float64(span-1)*c.Margin
}

// SpanHeight returns the snapped pixel height of an item spanning the
// given number of rows.
func (c Config) SpanHeight(span int) float64 {
	return float64(span)*c.CellHeight + float64(span-1)*c.Margin
}

// CellOrigin returns the absolute pixel position of the top-left corner
// of the cell at (row, col).
func (c Config) CellOrigin(row, col int) (x, y float64) {
	return c.Margin + float64(col)*c.PitchX(), c.Margin + float64(row)*c.PitchY()
}

// CellAt projects an absolute pixel point onto the grid cell containing
// it. The column is clamped into [0, Columns) and the row is clamped to
// be non-negative, so any point - including one outside the current
// content bounds - maps to a valid cell.
func (c Config) CellAt(x, y float64) (row, col int) {
	col = int(math.Floor((x - c.Margin) / c.PitchX()))
	if col < 0 {
		col = 0
	}
	if col > c.Columns-1 {
		col = c.Columns - 1
	}
	row = int(math.Floor((y - c.Margin) / c.PitchY()))
	if row < 0 {
		row = 0
	}
	return row, col
}

// SortKey collapses a cell coordinate into a single comparable key
// imposing reading order over the grid: row*Columns + col. Keys are
// compared during reorder resolution and never stored.
func (c Config) SortKey(row, col int) int {
	return row*c.Columns + col
}
