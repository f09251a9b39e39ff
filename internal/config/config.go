// Package config loads grid definitions from TOML or YAML files and turns
// them into configured grids.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	grid "github.com/grindlemire/go-grid"
)

// Format identifies the encoding of a grid definition.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Errorf("unsupported grid definition %q (expected .toml, .yaml or .yml)", path)
	}
}

// File is a grid definition.
type File struct {
	// Border names the glyph set: none, single, double, rounded or thick.
	Border  string      `toml:"border" yaml:"border"`
	Columns []Dimension `toml:"columns" yaml:"columns"`
	Rows    []Dimension `toml:"rows" yaml:"rows"`
	Widgets []Widget    `toml:"widgets" yaml:"widgets"`
}

// Dimension is one column or row.
type Dimension struct {
	Min    int `toml:"min" yaml:"min"`
	Weight int `toml:"weight" yaml:"weight"`
}

// Widget places a labelled widget over a span of grid cells.
type Widget struct {
	Label  string `toml:"label" yaml:"label"`
	X      int    `toml:"x" yaml:"x"`
	Y      int    `toml:"y" yaml:"y"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

// Span returns the widget's grid-cell rectangle.
func (w Widget) Span() grid.Rect {
	return grid.NewRect(w.X, w.Y, w.Width, w.Height)
}

// Load reads and validates the grid definition at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading grid definition %s", path)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return f, nil
}

// Parse decodes and validates a grid definition. Unknown keys are rejected.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	default:
		return nil, errors.Errorf("unknown format %q", format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every value lies in the grid's accepted range.
func (f *File) Validate() error {
	if _, err := grid.ParseBorderStyle(f.Border); err != nil {
		return errors.WithStack(err)
	}
	if err := validateDimensions("columns", f.Columns); err != nil {
		return err
	}
	if err := validateDimensions("rows", f.Rows); err != nil {
		return err
	}
	for i, w := range f.Widgets {
		switch {
		case w.X < 0 || w.Y < 0:
			return errors.Errorf("widgets[%d] %q: position (%d, %d) is negative", i, w.Label, w.X, w.Y)
		case w.Width < 1 || w.Height < 1:
			return errors.Errorf("widgets[%d] %q: span %dx%d must be at least 1x1", i, w.Label, w.Width, w.Height)
		case w.X+w.Width > grid.MaxCells || w.Y+w.Height > grid.MaxCells:
			return errors.Errorf("widgets[%d] %q: span exceeds %d cells", i, w.Label, grid.MaxCells)
		}
	}
	return nil
}

func validateDimensions(field string, dims []Dimension) error {
	for i, d := range dims {
		if d.Min < 0 || d.Min > grid.MaxCells {
			return errors.Errorf("%s[%d]: min %d out of range [0, %d]", field, i, d.Min, grid.MaxCells)
		}
		if d.Weight < 0 || d.Weight > grid.MaxCells {
			return errors.Errorf("%s[%d]: weight %d out of range [0, %d]", field, i, d.Weight, grid.MaxCells)
		}
	}
	return nil
}

// Dimensions converts dims to grid dimensions.
func Dimensions(dims []Dimension) []grid.Dimension {
	out := make([]grid.Dimension, len(dims))
	for i, d := range dims {
		out[i] = grid.NewDimension(d.Min, d.Weight)
	}
	return out
}

// Options returns the grid options described by f.
func (f *File) Options() ([]grid.Option, error) {
	border, err := grid.ParseBorderStyle(f.Border)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	spans := make([]grid.Rect, len(f.Widgets))
	for i, w := range f.Widgets {
		spans[i] = w.Span()
	}
	return []grid.Option{
		grid.WithBorder(border),
		grid.WithColumns(Dimensions(f.Columns)...),
		grid.WithRows(Dimensions(f.Rows)...),
		grid.WithWidgets(spans...),
	}, nil
}

// Build creates a grid from f. Extra options are applied last.
func (f *File) Build(extra ...grid.Option) (*grid.Grid, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	return grid.New(append(opts, extra...)...), nil
}
