package render

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/CuteBeaeast/treeomics/src/table"
)

// Style collects the tunable layout constants of the table figures. All
// lengths are in table units; UnitSize converts a unit to canvas points.
type Style struct {
	CellWidth    float64 `yaml:"cell_width"`
	CellHeight   float64 `yaml:"cell_height"`
	YSpacing     float64 `yaml:"y_spacing"`
	MaxLabelLen  int     `yaml:"max_label_length"`
	UnitSize     float64 `yaml:"unit_size"`
	RowFontSize  float64 `yaml:"row_font_size"`
	ColFontSize  float64 `yaml:"column_font_size"`
	LabelMargin  float64 `yaml:"label_margin"`
	ColorbarArea float64 `yaml:"colorbar_area"`
	DPI          int     `yaml:"dpi"`
}

// DefaultStyle returns the standard figure layout constants
func DefaultStyle() Style {
	return Style{
		CellWidth:    2,
		CellHeight:   4,
		YSpacing:     1,
		MaxLabelLen:  12,
		UnitSize:     3,
		RowFontSize:  12,
		ColFontSize:  8,
		LabelMargin:  22,
		ColorbarArea: 30,
		DPI:          150,
	}
}

// LoadStyle reads style overrides from a YAML file on top of the defaults
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return style, err
	}
	if err := yaml.Unmarshal(b, &style); err != nil {
		return style, err
	}
	return style, nil
}

// Geometry converts the style to the composer's cell geometry
func (Style Style) Geometry() table.Geometry {
	return table.Geometry{
		CellWidth:   Style.CellWidth,
		CellHeight:  Style.CellHeight,
		YSpacing:    Style.YSpacing,
		MaxLabelLen: Style.MaxLabelLen,
	}
}

// DualGeometry widens the columns for the dual table variant, which draws a
// VAF and a coverage rectangle side by side plus a spacing third
func (Style Style) DualGeometry() table.Geometry {
	geo := Style.Geometry()
	geo.CellWidth = 3
	return geo
}
