package grid

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "default is valid",
			cfg:  DefaultConfig(),
		},
		{
			name:    "zero columns",
			cfg:     Config{Columns: 0, CellWidth: 100, CellHeight: 110, Margin: 15},
			wantErr: ErrInvalidColumns,
		},
		{
			name:    "negative columns",
			cfg:     Config{Columns: -1, CellWidth: 100, CellHeight: 110, Margin: 15},
			wantErr: ErrInvalidColumns,
		},
		{
			name:    "zero cell width",
			cfg:     Config{Columns: 2, CellWidth: 0, CellHeight: 110, Margin: 15},
			wantErr: ErrInvalidCellSize,
		},
		{
			name:    "zero margin",
			cfg:     Config{Columns: 2, CellWidth: 100, CellHeight: 110, Margin: 0},
			wantErr: ErrInvalidCellSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSpans(t *testing.T) {
	cfg := DefaultConfig() // cell 100x110, threshold 20

	tests := []struct {
		name          string
		width, height float64
		wantCols      int
		wantRows      int
	}{
		{name: "single cell", width: 100, height: 110, wantCols: 1, wantRows: 1},
		{name: "within threshold", width: 120, height: 130, wantCols: 1, wantRows: 1},
		{name: "just past threshold", width: 121, height: 131, wantCols: 2, wantRows: 2},
		{name: "snapped double", width: 215, height: 235, wantCols: 2, wantRows: 2},
		{name: "wide only", width: 215, height: 110, wantCols: 2, wantRows: 1},
		{name: "tall only", width: 100, height: 235, wantCols: 1, wantRows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.ColSpan(tt.width); got != tt.wantCols {
				t.Errorf("ColSpan(%v) = %d, want %d", tt.width, got, tt.wantCols)
			}
			if got := cfg.RowSpan(tt.height); got != tt.wantRows {
				t.Errorf("RowSpan(%v) = %d, want %d", tt.height, got, tt.wantRows)
			}
		})
	}
}

func TestConfigSnappedSizes(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.SpanWidth(1); got != 100 {
		t.Errorf("SpanWidth(1) = %v, want 100", got)
	}
	if got := cfg.SpanWidth(2); got != 215 {
		t.Errorf("SpanWidth(2) = %v, want 215", got)
	}
	if got := cfg.SpanHeight(1); got != 110 {
		t.Errorf("SpanHeight(1) = %v, want 110", got)
	}
	if got := cfg.SpanHeight(2); got != 235 {
		t.Errorf("SpanHeight(2) = %v, want 235", got)
	}
}

func TestConfigCellOrigin(t *testing.T) {
	cfg := DefaultConfig() // pitch 115x125

	tests := []struct {
		name     string
		row, col int
		x, y     float64
	}{
		{name: "origin", row: 0, col: 0, x: 15, y: 15},
		{name: "second column", row: 0, col: 1, x: 130, y: 15},
		{name: "second row", row: 1, col: 0, x: 15, y: 140},
		{name: "deep cell", row: 3, col: 1, x: 130, y: 390},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := cfg.CellOrigin(tt.row, tt.col)
			if x != tt.x || y != tt.y {
				t.Errorf("CellOrigin(%d,%d) = (%v,%v), want (%v,%v)", tt.row, tt.col, x, y, tt.x, tt.y)
			}
		})
	}
}

func TestConfigCellAt(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		x, y     float64
		row, col int
	}{
		{name: "inside first cell", x: 60, y: 70, row: 0, col: 0},
		{name: "inside second column", x: 180, y: 70, row: 0, col: 1},
		{name: "inside second row", x: 60, y: 200, row: 1, col: 0},
		{name: "cell origin maps to itself", x: 130, y: 140, row: 1, col: 1},
		{name: "negative point clamps to origin", x: -50, y: -50, row: 0, col: 0},
		{name: "right of grid clamps to last column", x: 1000, y: 70, row: 0, col: 1},
		{name: "below content maps to deep row", x: 60, y: 1000, row: 7, col: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := cfg.CellAt(tt.x, tt.y)
			if row != tt.row || col != tt.col {
				t.Errorf("CellAt(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestConfigSortKey(t *testing.T) {
	cfg := DefaultConfig()

	// Reading order: keys strictly increase left-to-right, top-to-bottom.
	prev := -1
	for row := 0; row < 3; row++ {
		for col := 0; col < cfg.Columns; col++ {
			key := cfg.SortKey(row, col)
			if key <= prev {
				t.Fatalf("SortKey(%d,%d) = %d, not greater than previous %d", row, col, key, prev)
			}
			prev = key
		}
	}
}

func TestCellOriginCellAtRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	for row := 0; row < 5; row++ {
		for col := 0; col < cfg.Columns; col++ {
			x, y := cfg.CellOrigin(row, col)
			gotRow, gotCol := cfg.CellAt(x, y)
			if gotRow != row || gotCol != col {
				t.Errorf("CellAt(CellOrigin(%d,%d)) = (%d,%d)", row, col, gotRow, gotCol)
			}
		}
	}
}
