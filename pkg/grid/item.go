package grid

// Z-order constants for the ZIndex stacking hint.
const (
	// ZDefault is the z-index assigned to freshly created items.
	ZDefault = 1
	// ZFront is the z-index assigned by [Engine.BringToFront].
	ZFront = 99
)

// Item is the unit placed on the board. X, Y, Width and Height are
// absolute pixel values; all four are authoritative outputs of the
// packer. Callers set Width and Height directly when resizing, but the
// packer snaps them back to span multiples of the cell size on the next
// repack.
//
// GridRow and GridCol cache the cell the packer last assigned. They
// accelerate reorder comparisons, stay recomputable from X and Y, and
// are overwritten on every pack.
type Item struct {
	ID      string // Stable unique identifier
	Content string // Opaque payload (e.g. a content URI); never interpreted

	X, Y          float64
	Width, Height float64

	// ZIndex is a stacking hint for renderers. It is independent of
	// layout order and never read by the packer.
	ZIndex int

	GridRow, GridCol int
}

// HasItem reports whether the sequence contains an item with the given ID.
func HasItem(items []*Item, id string) bool {
	return indexOf(items, id) >= 0
}

// indexOf returns the position of the item with the given ID, or -1.
func indexOf(items []*Item, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
