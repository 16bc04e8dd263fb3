// Package grid implements the layout engine behind an interactive tile
// board: a deterministic skyline packer that maps an ordered sequence of
// rectangular items onto a fixed-column grid, plus the incremental
// operations (append, remove, resize, drag-reorder) that interactive
// callers commit at gesture end.
//
// # Model
//
// The engine is pure and stateless. Callers own the item sequence and
// thread it through each call; the returned sequence becomes the new
// authoritative state. Sequence order is semantically meaningful: it is
// the priority order the packer consumes when deciding who gets the next
// open slot. After every pack the output is re-sorted into visual reading
// order (ascending y, then x), which is derived from - and distinct
// from - the insertion order consumed as input.
//
// # Packing
//
// Pack walks the sequence in order and maintains a horizon array holding
// the next free row per column. Each item's column/row span is resolved
// from its pixel size, the item is placed at the leftmost column whose
// horizon is lowest, and the horizon is raised. The result is gap-free,
// deterministic, and O(N*C) for N items over C columns.
//
// # Identity preservation
//
// When a repack computes exactly the values an item already carries, the
// packer returns the same *Item pointer rather than a fresh copy. Callers
// can rely on pointer equality to skip redundant downstream work such as
// re-rendering an unchanged tile. Reorder extends the same contract to
// whole sequences: a drop that resolves to the item's current cell, or an
// unknown item ID, returns the input slice untouched.
//
// # Concurrency
//
// Every operation is a synchronous, non-blocking computation over
// in-memory data. The engine provides no internal locking; callers that
// accept concurrent gestures must serialize terminal commits themselves
// (see internal/server for the single-writer harness).
package grid
