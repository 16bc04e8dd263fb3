package board

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridkit/pkg/errors"
	"github.com/matzehuels/gridkit/pkg/grid"
)

// fileConfig mirrors grid.Config for TOML decoding. A gridkit.toml file
// only needs the keys it wants to override:
//
//	columns = 2
//	cell_width = 100.0
//	cell_height = 110.0
//	margin = 15.0
//	span_threshold = 20.0
//	bottom_padding = 20.0
type fileConfig struct {
	Columns       int     `toml:"columns"`
	CellWidth     float64 `toml:"cell_width"`
	CellHeight    float64 `toml:"cell_height"`
	Margin        float64 `toml:"margin"`
	SpanThreshold float64 `toml:"span_threshold"`
	BottomPadding float64 `toml:"bottom_padding"`
}

// LoadConfig reads engine metrics from a TOML file, applying the engine
// defaults for any key the file omits. The metrics are fixed for the
// lifetime of a sequence: callers switching configuration must repack
// every board laid out under the old metrics.
func LoadConfig(path string) (grid.Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if os.IsNotExist(err) {
			return grid.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
		}
		return grid.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	cfg := grid.DefaultConfig()
	if fc.Columns != 0 {
		cfg.Columns = fc.Columns
	}
	if fc.CellWidth != 0 {
		cfg.CellWidth = fc.CellWidth
	}
	if fc.CellHeight != 0 {
		cfg.CellHeight = fc.CellHeight
	}
	if fc.Margin != 0 {
		cfg.Margin = fc.Margin
	}
	if fc.SpanThreshold != 0 {
		cfg.SpanThreshold = fc.SpanThreshold
	}
	if fc.BottomPadding != 0 {
		cfg.BottomPadding = fc.BottomPadding
	}

	if err := cfg.Validate(); err != nil {
		return grid.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}
