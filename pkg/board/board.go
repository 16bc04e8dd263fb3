// Package board defines the serialization format for tile boards.
//
// A Board is the boundary representation the harnesses (CLI, HTTP
// server) exchange: grid metrics plus a flat tile list in sequence
// order. The engine itself (pkg/grid) never performs I/O; this package
// converts between files/wire payloads and engine sequences.
//
// The format is human-readable and designed for round-trip fidelity:
// read, repack, and write produces a board that re-reads identically.
// Both JSON and YAML encodings are supported; files are dispatched on
// extension.
package board

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
)

// Tile is the serialized form of a grid item. Position, size, and cell
// are packer outputs carried for readability and for renderers that
// consume board files directly; they are recomputed on every repack.
type Tile struct {
	ID      string  `json:"id" yaml:"id"`
	Content string  `json:"content,omitempty" yaml:"content,omitempty"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Z       int     `json:"z,omitempty" yaml:"z,omitempty"`
	Row     int     `json:"row" yaml:"row"`
	Col     int     `json:"col" yaml:"col"`
}

// Board is the canonical serialization format for a tile board: the
// grid metrics and the tiles in sequence order. Zero-valued metrics
// fall back to the engine defaults, so a minimal board file only needs
// tiles.
type Board struct {
	Columns       int     `json:"columns,omitempty" yaml:"columns,omitempty"`
	CellWidth     float64 `json:"cell_width,omitempty" yaml:"cell_width,omitempty"`
	CellHeight    float64 `json:"cell_height,omitempty" yaml:"cell_height,omitempty"`
	Margin        float64 `json:"margin,omitempty" yaml:"margin,omitempty"`
	SpanThreshold float64 `json:"span_threshold,omitempty" yaml:"span_threshold,omitempty"`
	BottomPadding float64 `json:"bottom_padding,omitempty" yaml:"bottom_padding,omitempty"`

	Tiles []Tile `json:"tiles" yaml:"tiles"`
}

// Config resolves the board's metrics into an engine configuration,
// substituting defaults for unset fields.
func (b Board) Config() grid.Config {
	cfg := grid.DefaultConfig()
	if b.Columns > 0 {
		cfg.Columns = b.Columns
	}
	if b.CellWidth > 0 {
		cfg.CellWidth = b.CellWidth
	}
	if b.CellHeight > 0 {
		cfg.CellHeight = b.CellHeight
	}
	if b.Margin > 0 {
		cfg.Margin = b.Margin
	}
	if b.SpanThreshold > 0 {
		cfg.SpanThreshold = b.SpanThreshold
	}
	if b.BottomPadding > 0 {
		cfg.BottomPadding = b.BottomPadding
	}
	return cfg
}

// Items converts the board's tiles into an engine sequence, preserving
// order.
func (b Board) Items() []*grid.Item {
	items := make([]*grid.Item, len(b.Tiles))
	for i, tl := range b.Tiles {
		items[i] = &grid.Item{
			ID:      tl.ID,
			Content: tl.Content,
			X:       tl.X,
			Y:       tl.Y,
			Width:   tl.Width,
			Height:  tl.Height,
			ZIndex:  tl.Z,
			GridRow: tl.Row,
			GridCol: tl.Col,
		}
	}
	return items
}

// FromItems builds a board from an engine sequence and the metrics it
// was packed with.
func FromItems(cfg grid.Config, items []*grid.Item) Board {
	b := Board{
		Columns:       cfg.Columns,
		CellWidth:     cfg.CellWidth,
		CellHeight:    cfg.CellHeight,
		Margin:        cfg.Margin,
		SpanThreshold: cfg.SpanThreshold,
		BottomPadding: cfg.BottomPadding,
		Tiles:         make([]Tile, len(items)),
	}
	for i, it := range items {
		b.Tiles[i] = Tile{
			ID:      it.ID,
			Content: it.Content,
			X:       it.X,
			Y:       it.Y,
			Width:   it.Width,
			Height:  it.Height,
			Z:       it.ZIndex,
			Row:     it.GridRow,
			Col:     it.GridCol,
		}
	}
	return b
}

// Validate checks that the board can drive the engine: valid metrics,
// non-empty unique tile IDs, and positive tile sizes. It returns a
// structured error for the first violation found.
func (b Board) Validate() error {
	if err := b.Config().Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "board metrics")
	}
	seen := make(map[string]struct{}, len(b.Tiles))
	for i, tl := range b.Tiles {
		if err := errors.ValidateItemID(tl.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBoard, err, "tile %d", i)
		}
		if _, dup := seen[tl.ID]; dup {
			return errors.New(errors.ErrCodeInvalidBoard, "duplicate tile id %q", tl.ID)
		}
		seen[tl.ID] = struct{}{}
		if err := errors.ValidateSize(tl.Width, tl.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBoard, err, "tile %q", tl.ID)
		}
	}
	return nil
}

// Marshal serializes a board to pretty-printed JSON bytes.
func Marshal(b Board) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// Unmarshal deserializes JSON bytes into a board and validates it.
func Unmarshal(data []byte) (Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return Board{}, errors.Wrap(errors.ErrCodeInvalidBoard, err, "unmarshal board")
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ReadFile reads a board from a JSON or YAML file, dispatching on the
// file extension (.yaml/.yml vs everything else).
func ReadFile(path string) (Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Board{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read board %s", path)
		}
		return Board{}, fmt.Errorf("read %s: %w", path, err)
	}

	if isYAML(path) {
		var b Board
		if err := yaml.Unmarshal(data, &b); err != nil {
			return Board{}, errors.Wrap(errors.ErrCodeInvalidBoard, err, "unmarshal board %s", path)
		}
		if err := b.Validate(); err != nil {
			return Board{}, err
		}
		return b, nil
	}
	return Unmarshal(data)
}

// WriteFile writes a board to a JSON or YAML file, dispatching on the
// file extension.
func WriteFile(b Board, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(b)
	} else {
		data, err = Marshal(b)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
