package grid

import (
	"testing"
)

// tile creates an unpacked item with the given pixel size.
func tile(id string, w, h float64) *Item {
	return &Item{ID: id, Width: w, Height: h, ZIndex: ZDefault}
}

// single creates an unpacked default-size item.
func single(id string) *Item { return tile(id, 100, 110) }

// checkInvariants verifies the packer's output invariants: every span in
// bounds, no two occupied cell rectangles overlapping, and the sequence
// sorted by ascending (y, x).
func checkInvariants(t *testing.T, cfg Config, items []*Item) {
	t.Helper()

	occupied := map[[2]int]string{}
	for _, it := range items {
		cols, rows := cfg.ColSpan(it.Width), cfg.RowSpan(it.Height)
		if it.GridCol < 0 || it.GridCol+cols > cfg.Columns {
			t.Errorf("item %s: columns [%d,%d) out of [0,%d)", it.ID, it.GridCol, it.GridCol+cols, cfg.Columns)
		}
		if it.GridRow < 0 {
			t.Errorf("item %s: negative row %d", it.ID, it.GridRow)
		}
		for r := it.GridRow; r < it.GridRow+rows; r++ {
			for c := it.GridCol; c < it.GridCol+cols; c++ {
				if other, taken := occupied[[2]int{r, c}]; taken {
					t.Errorf("cell (%d,%d) occupied by both %s and %s", r, c, other, it.ID)
				}
				occupied[[2]int{r, c}] = it.ID
			}
		}
	}

	for i := 1; i < len(items); i++ {
		prev, curr := items[i-1], items[i]
		if curr.Y < prev.Y || (curr.Y == prev.Y && curr.X < prev.X) {
			t.Errorf("sequence not in reading order at %d: %s (%g,%g) before %s (%g,%g)",
				i, prev.ID, prev.X, prev.Y, curr.ID, curr.X, curr.Y)
		}
	}
}

func TestPackEmpty(t *testing.T) {
	eng := New(DefaultConfig())
	if got := eng.Pack(nil); got != nil {
		t.Errorf("Pack(nil) = %v, want nil", got)
	}
	if got := eng.Pack([]*Item{}); len(got) != 0 {
		t.Errorf("Pack(empty) has %d items, want 0", len(got))
	}
}

func TestPackPlacement(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		items []*Item
		want  map[string][2]int // id -> (row, col)
	}{
		{
			name:  "singles fill rows left to right",
			cfg:   DefaultConfig(),
			items: []*Item{single("a"), single("b"), single("c"), single("d")},
			want:  map[string][2]int{"a": {0, 0}, "b": {0, 1}, "c": {1, 0}, "d": {1, 1}},
		},
		{
			name:  "wide item claims a full row",
			cfg:   DefaultConfig(),
			items: []*Item{tile("wide", 215, 110), single("a"), single("b")},
			want:  map[string][2]int{"wide": {0, 0}, "a": {1, 0}, "b": {1, 1}},
		},
		{
			name:  "tall item raises one column only",
			cfg:   DefaultConfig(),
			items: []*Item{tile("tall", 100, 235), single("a"), single("b")},
			want:  map[string][2]int{"tall": {0, 0}, "a": {0, 1}, "b": {1, 1}},
		},
		{
			name:  "wide after tall clears both columns",
			cfg:   DefaultConfig(),
			items: []*Item{tile("tall", 100, 235), tile("wide", 215, 110), single("a")},
			want:  map[string][2]int{"tall": {0, 0}, "wide": {2, 0}, "a": {3, 0}},
		},
		{
			name:  "double block occupies four cells",
			cfg:   DefaultConfig(),
			items: []*Item{tile("big", 215, 235), single("a")},
			want:  map[string][2]int{"big": {0, 0}, "a": {2, 0}},
		},
		{
			name:  "single column stacks everything",
			cfg:   Config{Columns: 1, CellWidth: 100, CellHeight: 110, Margin: 15, SpanThreshold: 20, BottomPadding: 20},
			items: []*Item{single("a"), single("b")},
			want:  map[string][2]int{"a": {0, 0}, "b": {1, 0}},
		},
		{
			name: "oversized span clamps to the column count",
			cfg:  Config{Columns: 1, CellWidth: 100, CellHeight: 110, Margin: 15, SpanThreshold: 20, BottomPadding: 20},
			// Wider than one column can hold: precondition violation,
			// but placement must stay in bounds.
			items: []*Item{tile("wide", 300, 110), single("a")},
			want:  map[string][2]int{"wide": {0, 0}, "a": {1, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := New(tt.cfg)
			packed := eng.Pack(tt.items)

			if len(packed) != len(tt.items) {
				t.Fatalf("Pack() returned %d items, want %d", len(packed), len(tt.items))
			}
			checkInvariants(t, tt.cfg, packed)

			for _, it := range packed {
				want, ok := tt.want[it.ID]
				if !ok {
					t.Fatalf("unexpected item %s", it.ID)
				}
				if it.GridRow != want[0] || it.GridCol != want[1] {
					t.Errorf("item %s at (%d,%d), want (%d,%d)", it.ID, it.GridRow, it.GridCol, want[0], want[1])
				}
				wantX, wantY := tt.cfg.CellOrigin(it.GridRow, it.GridCol)
				if it.X != wantX || it.Y != wantY {
					t.Errorf("item %s pixel (%g,%g), want (%g,%g)", it.ID, it.X, it.Y, wantX, wantY)
				}
			}
		})
	}
}

func TestPackSnapsSizes(t *testing.T) {
	eng := New(DefaultConfig())

	// Raw sizes within threshold snap down; past threshold snap to doubles.
	packed := eng.Pack([]*Item{tile("a", 118, 125), tile("b", 170, 200)})

	byID := map[string]*Item{}
	for _, it := range packed {
		byID[it.ID] = it
	}
	if a := byID["a"]; a.Width != 100 || a.Height != 110 {
		t.Errorf("a snapped to %gx%g, want 100x110", a.Width, a.Height)
	}
	if b := byID["b"]; b.Width != 215 || b.Height != 235 {
		t.Errorf("b snapped to %gx%g, want 215x235", b.Width, b.Height)
	}
}

func TestPackIdempotent(t *testing.T) {
	eng := New(DefaultConfig())
	packed := eng.Pack([]*Item{single("a"), tile("b", 215, 110), single("c"), tile("d", 100, 235)})

	repacked := eng.Pack(packed)
	if len(repacked) != len(packed) {
		t.Fatalf("repack changed cardinality: %d -> %d", len(packed), len(repacked))
	}
	for i := range packed {
		if repacked[i] != packed[i] {
			t.Errorf("repack replaced item %s at %d: pointers differ", packed[i].ID, i)
		}
	}
}

func TestPackIdentityPreservation(t *testing.T) {
	eng := New(DefaultConfig())
	a, b := single("a"), single("b")
	packed := eng.Pack([]*Item{a, b})

	// Fresh placements are copies, not the caller's values.
	for i, orig := range []*Item{a, b} {
		if packed[i] == orig {
			t.Errorf("item %s: packer returned the unpacked input pointer", orig.ID)
		}
	}

	// Removing b and repacking leaves a untouched: same pointer.
	repacked := eng.Pack([]*Item{packed[0]})
	if repacked[0] != packed[0] {
		t.Error("unchanged item was reallocated on repack")
	}
}

func TestPackPreservesPayload(t *testing.T) {
	eng := New(DefaultConfig())
	it := tile("a", 100, 110)
	it.Content = "widget://note/1"
	it.ZIndex = ZFront

	packed := eng.Pack([]*Item{it})
	if packed[0].Content != "widget://note/1" {
		t.Errorf("Content = %q, want %q", packed[0].Content, "widget://note/1")
	}
	if packed[0].ZIndex != ZFront {
		t.Errorf("ZIndex = %d, want %d", packed[0].ZIndex, ZFront)
	}
}

func TestPackInputOrderDecidesPriority(t *testing.T) {
	eng := New(DefaultConfig())

	// Same items, different insertion order: the earlier item always
	// claims the earlier slot.
	first := eng.Pack([]*Item{single("x"), single("y")})
	if first[0].ID != "x" {
		t.Errorf("first slot went to %s, want x", first[0].ID)
	}
	second := eng.Pack([]*Item{single("y"), single("x")})
	if second[0].ID != "y" {
		t.Errorf("first slot went to %s, want y", second[0].ID)
	}
}
