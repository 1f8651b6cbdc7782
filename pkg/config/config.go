// Package config reads chart documents.
//
// A chart document is a TOML file describing one [widgets.Chart]:
//
//	background = "235"
//
//	[block]
//	title = "Signal"
//	borders = ["all"]
//	border_color = "240"
//
//	[x_axis]
//	title = "t"
//	bounds = [0.0, 10.0]
//	labels = ["0", "5", "10"]
//
//	[y_axis]
//	bounds = [-1.0, 1.0]
//	labels = ["-1", "0", "1"]
//
//	[[datasets]]
//	name = "sin"
//	color = "cyan"
//	data = [[0.0, 0.0], [1.0, 0.84]]
//
// [Load] and [Decode] validate the document and return errors from
// [github.com/matzehuels/cellchart/pkg/errors]; [Document.Chart] builds the
// immutable chart value.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cellchart/pkg/errors"
	"github.com/matzehuels/cellchart/pkg/widgets"
)

// Document is the decoded form of a chart file.
type Document struct {
	Background string      `toml:"background"`
	Block      *BlockDoc   `toml:"block"`
	XAxis      AxisDoc     `toml:"x_axis"`
	YAxis      AxisDoc     `toml:"y_axis"`
	Datasets   []SeriesDoc `toml:"datasets"`
}

// BlockDoc describes the frame around the chart.
type BlockDoc struct {
	Title       string   `toml:"title"`
	TitleColor  string   `toml:"title_color"`
	Borders     []string `toml:"borders"`
	BorderColor string   `toml:"border_color"`
	BorderStyle string   `toml:"border_style"`
}

// AxisDoc describes one axis.
type AxisDoc struct {
	Title       string    `toml:"title"`
	TitleColor  string    `toml:"title_color"`
	Bounds      []float64 `toml:"bounds"`
	Labels      []string  `toml:"labels"`
	LabelsColor string    `toml:"labels_color"`
	Color       string    `toml:"color"`
}

// SeriesDoc describes one dataset. Each entry of Data is an [x, y] pair.
type SeriesDoc struct {
	Name   string      `toml:"name"`
	Color  string      `toml:"color"`
	Marker string      `toml:"marker"`
	Data   [][]float64 `toml:"data"`
}

// Load reads and validates the chart document at path.
func Load(path string) (*Document, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
	}
	return doc, nil
}

// Decode reads and validates a chart document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode chart document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document without building a chart.
func (d *Document) Validate() error {
	_, err := d.Chart()
	return err
}

// Chart builds the chart the document describes.
func (d *Document) Chart() (widgets.Chart, error) {
	chart := widgets.NewChart()

	bg, err := ParseColor(d.Background)
	if err != nil {
		return chart, errors.Wrap(errors.ErrCodeInvalidColor, err, "background")
	}
	chart = chart.Background(bg)

	if d.Block != nil {
		block, err := d.Block.build(bg)
		if err != nil {
			return chart, err
		}
		chart = chart.Block(block)
	}

	x, err := d.XAxis.build("x_axis")
	if err != nil {
		return chart, err
	}
	y, err := d.YAxis.build("y_axis")
	if err != nil {
		return chart, err
	}
	chart = chart.XAxis(x).YAxis(y)

	datasets := make([]widgets.Dataset, 0, len(d.Datasets))
	for i, s := range d.Datasets {
		ds, err := s.build(i)
		if err != nil {
			return chart, err
		}
		datasets = append(datasets, ds)
	}
	return chart.Datasets(datasets...), nil
}

func (a AxisDoc) build(name string) (widgets.Axis, error) {
	axis := widgets.NewAxis().Title(a.Title).Labels(a.Labels...)
	if a.Bounds != nil {
		if err := errors.ValidateBounds(name, a.Bounds); err != nil {
			return axis, err
		}
		axis = axis.Bounds(a.Bounds[0], a.Bounds[1])
	}
	for _, l := range append([]string{a.Title}, a.Labels...) {
		if err := errors.ValidateLabel(name, l); err != nil {
			return axis, err
		}
	}

	colors := []struct {
		field string
		value string
		apply func(widgets.Axis, lipgloss.TerminalColor) widgets.Axis
	}{
		{"title_color", a.TitleColor, widgets.Axis.TitleColor},
		{"labels_color", a.LabelsColor, widgets.Axis.LabelsColor},
		{"color", a.Color, widgets.Axis.Color},
	}
	for _, c := range colors {
		color, err := ParseColor(c.value)
		if err != nil {
			return axis, errors.Wrap(errors.ErrCodeInvalidColor, err, "%s.%s", name, c.field)
		}
		axis = c.apply(axis, color)
	}
	return axis, nil
}

func (s SeriesDoc) build(i int) (widgets.Dataset, error) {
	ds := widgets.NewDataset().Name(s.Name).Marker(s.Marker)
	if widgets.Width(ds.GetMarker()) != 1 {
		return ds, errors.New(errors.ErrCodeInvalidData, "datasets[%d]: marker %q must be one column wide", i, s.Marker)
	}

	color, err := ParseColor(s.Color)
	if err != nil {
		return ds, errors.Wrap(errors.ErrCodeInvalidColor, err, "datasets[%d].color", i)
	}

	points := make([]widgets.Point, len(s.Data))
	for j, pair := range s.Data {
		if len(pair) != 2 {
			return ds, errors.New(errors.ErrCodeInvalidData, "datasets[%d].data[%d]: want [x, y], got %d values", i, j, len(pair))
		}
		points[j] = widgets.Point{X: pair[0], Y: pair[1]}
	}
	return ds.Color(color).Data(points...), nil
}

var borderStyles = map[string]func() lipgloss.Border{
	"":        lipgloss.NormalBorder,
	"normal":  lipgloss.NormalBorder,
	"rounded": lipgloss.RoundedBorder,
	"thick":   lipgloss.ThickBorder,
	"double":  lipgloss.DoubleBorder,
}

var borderSides = map[string]widgets.Borders{
	"none":   widgets.BorderNone,
	"all":    widgets.BorderAll,
	"top":    widgets.BorderTop,
	"right":  widgets.BorderRight,
	"bottom": widgets.BorderBottom,
	"left":   widgets.BorderLeft,
}

func (b BlockDoc) build(bg lipgloss.TerminalColor) (widgets.Block, error) {
	block := widgets.NewBlock().Title(b.Title).Background(bg)
	if err := errors.ValidateLabel("block.title", b.Title); err != nil {
		return block, err
	}

	sides := widgets.BorderNone
	if b.Borders == nil {
		sides = widgets.BorderAll
	}
	for _, name := range b.Borders {
		side, ok := borderSides[strings.ToLower(name)]
		if !ok {
			return block, errors.New(errors.ErrCodeInvalidInput, "block.borders: unknown side %q", name)
		}
		sides |= side
	}

	style, ok := borderStyles[strings.ToLower(b.BorderStyle)]
	if !ok {
		return block, errors.New(errors.ErrCodeInvalidInput, "block.border_style: unknown style %q", b.BorderStyle)
	}

	titleColor, err := ParseColor(b.TitleColor)
	if err != nil {
		return block, errors.Wrap(errors.ErrCodeInvalidColor, err, "block.title_color")
	}
	borderColor, err := ParseColor(b.BorderColor)
	if err != nil {
		return block, errors.Wrap(errors.ErrCodeInvalidColor, err, "block.border_color")
	}

	return block.
		Borders(sides).
		BorderStyle(style()).
		TitleColor(titleColor).
		BorderColor(borderColor), nil
}
