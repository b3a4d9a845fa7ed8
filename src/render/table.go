package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg/draw"

	"github.com/CuteBeaeast/treeomics/src/cellcolor"
	"github.com/CuteBeaeast/treeomics/src/dendro"
	"github.com/CuteBeaeast/treeomics/src/table"
)

// edgeColor outlines the plain table cells
var edgeColor = color.Black

// Plain renders a composed mutation table with one class coloured rectangle
// per cell
func Plain(tab *table.Table, style Style, basename string) error {
	leftMargin, topMargin := margins(tab, style)
	ctx := NewContext(atLeast(leftMargin+tab.Width, 1), atLeast(tab.Height+topMargin, 1), style)
	return ctx.Save(basename, func(dc draw.Canvas) {
		drawPlainCells(ctx, dc, tab, leftMargin)
		drawLabels(ctx, dc, tab, style, leftMargin, 0)
	})
}

// Dual renders the dual intensity variant: each cell shows a VAF and a
// coverage rectangle inside a class coloured border, false positive and false
// negative overlays on top, with the two colorbar legends on the right
func Dual(tab *table.Table, style Style, basename string) error {
	leftMargin, topMargin := margins(tab, style)
	width := leftMargin + tab.Width + style.ColorbarArea
	ctx := NewContext(atLeast(width, 1), atLeast(tab.Height+topMargin, 1), style)
	return ctx.Save(basename, func(dc draw.Canvas) {
		drawDualCells(ctx, dc, tab, leftMargin)
		drawLabels(ctx, dc, tab, style, leftMargin, -tab.Geometry.CellWidth/6)
		drawColorbars(ctx, dc, tab, style, leftMargin+tab.Width)
	})
}

// Clustered renders the table together with the dendrogram of the supplied
// linkage, leaves aligned with the permuted sample rows
func Clustered(tab *table.Table, linkage dendro.Linkage, style Style, basename string) error {
	leftMargin, topMargin := margins(tab, style)
	dendroWidth := float64(len(tab.Order)) * style.CellWidth / 2.0
	brackets, err := linkage.Brackets(tab.Order, func(pos int) float64 {
		return tab.RowY(pos) + tab.Geometry.CellHeight/2
	}, dendroWidth)
	if err != nil {
		return err
	}
	width := leftMargin + tab.Width + dendroWidth
	ctx := NewContext(atLeast(width, 1), atLeast(tab.Height+topMargin, 1), style)
	return ctx.Save(basename, func(dc draw.Canvas) {
		drawPlainCells(ctx, dc, tab, leftMargin)
		drawLabels(ctx, dc, tab, style, leftMargin, 0)
		tableRight := leftMargin + tab.Width
		for _, seg := range brackets {
			ctx.strokeLine(dc, tableRight+seg.X0, seg.Y0, tableRight+seg.X1, seg.Y1, 1, color.Black)
		}
	})
}

// margins reserves label space only when the table carries labels
func margins(tab *table.Table, style Style) (float64, float64) {
	leftMargin, topMargin := 0.0, 0.0
	for _, row := range tab.Rows {
		if row.Label != "" {
			leftMargin = style.LabelMargin
			break
		}
	}
	for _, col := range tab.Columns {
		if col.Label != "" {
			topMargin = style.LabelMargin
			break
		}
	}
	return leftMargin, topMargin
}

func drawPlainCells(ctx *Context, dc draw.Canvas, tab *table.Table, offsetX float64) {
	geo := tab.Geometry
	for _, cell := range tab.Cells {
		ctx.fillRect(dc, offsetX+cell.X, cell.Y, geo.CellWidth, geo.CellHeight, cell.Encoding.Class)
		ctx.strokeRect(dc, offsetX+cell.X, cell.Y, geo.CellWidth, geo.CellHeight, 0.75, edgeColor)
	}
}

func drawDualCells(ctx *Context, dc draw.Canvas, tab *table.Table, offsetX float64) {
	geo := tab.Geometry
	subWidth := geo.CellWidth / 3.0
	for _, cell := range tab.Cells {
		x := offsetX + cell.X
		ctx.fillRect(dc, x, cell.Y, subWidth, geo.CellHeight, cell.Encoding.VAF)
		ctx.fillRect(dc, x+subWidth, cell.Y, subWidth, geo.CellHeight, cell.Encoding.Coverage)
		ctx.strokeRect(dc, x, cell.Y, 2*subWidth, geo.CellHeight, 2, cell.Encoding.Class)
		if cell.Encoding.HasOverlay {
			ctx.fillRect(dc, x, cell.Y, 2*subWidth, geo.CellHeight/2, cell.Encoding.Overlay)
		}
	}
}

// drawLabels places the row and column labels; columns reuse the exact
// placement the composer produced, so labels follow the sorted columns
func drawLabels(ctx *Context, dc draw.Canvas, tab *table.Table, style Style, leftMargin, colShift float64) {
	rowStyle, err := textStyle(style.RowFontSize, 0, draw.XRight, draw.YBottom)
	if err != nil {
		panic(err)
	}
	colStyle, err := textStyle(style.ColFontSize, math.Pi/2, draw.XLeft, draw.YCenter)
	if err != nil {
		panic(err)
	}
	for _, row := range tab.Rows {
		if row.Label == "" {
			continue
		}
		dc.FillText(rowStyle, ctx.pt(leftMargin-2, row.Y+1), row.Label)
	}
	for _, col := range tab.Columns {
		if col.Label == "" {
			continue
		}
		x := leftMargin + col.X + tab.Geometry.CellWidth/2 + colShift
		dc.FillText(colStyle, ctx.pt(x, tab.Height+1), col.Label)
	}
}

// colorbarTick is one labelled position on a colorbar, in ramp coordinates
type colorbarTick struct {
	at    float64
	label string
}

// drawColorbars draws the VAF [0,0.5] and log coverage [1,1000] legends
func drawColorbars(ctx *Context, dc draw.Canvas, tab *table.Table, style Style, areaX float64) {
	height := tab.Height * 0.9
	baseY := tab.Height * 0.05
	barWidth := style.ColorbarArea / 8.0
	drawColorbar(ctx, dc, areaX+style.ColorbarArea/4, baseY, barWidth, height, cellcolor.VAFRamp, "VAF",
		[]colorbarTick{{0, "0"}, {0.5, "0.25"}, {1, "0.5"}})
	drawColorbar(ctx, dc, areaX+style.ColorbarArea*5/8, baseY, barWidth, height, cellcolor.CoverageRamp, "Coverage",
		[]colorbarTick{{0, "1"}, {1.0 / 3.0, "10"}, {2.0 / 3.0, "100"}, {1, "1000"}})
}

func drawColorbar(ctx *Context, dc draw.Canvas, x, y, w, h float64, ramp *cellcolor.Ramp, title string, ticks []colorbarTick) {
	const steps = 50
	stepHeight := h / steps
	for i := 0; i < steps; i++ {
		ctx.fillRect(dc, x, y+float64(i)*stepHeight, w, stepHeight, ramp.At(float64(i)/(steps-1)))
	}
	ctx.strokeRect(dc, x, y, w, h, 0.5, color.Black)

	tickStyle, err := textStyle(6, 0, draw.XLeft, draw.YCenter)
	if err != nil {
		panic(err)
	}
	for _, tick := range ticks {
		dc.FillText(tickStyle, ctx.pt(x+w+0.5, y+tick.at*h), tick.label)
	}
	titleStyle, err := textStyle(7, 0, draw.XCenter, draw.YBottom)
	if err != nil {
		panic(err)
	}
	dc.FillText(titleStyle, ctx.pt(x+w/2, y+h+1), title)
}

// atLeast clamps a figure dimension so degenerate tables still produce a
// minimal valid canvas
func atLeast(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}
