/*
	the render package draws composed mutation tables with the gonum plot vg
	primitives and saves each figure as both a PNG and a PDF

	every render call builds and disposes its own canvases; no drawing state is
	shared between calls
*/
package render

import (
	"image/color"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Context is the per-call rendering context: the canvas dimensions and the
// unit scale of one figure
type Context struct {
	width  vg.Length
	height vg.Length
	unit   float64
	dpi    int
}

// NewContext sizes a rendering context for a figure of the given extent in
// table units
func NewContext(widthUnits, heightUnits float64, style Style) *Context {
	return &Context{
		width:  vg.Points(widthUnits * style.UnitSize),
		height: vg.Points(heightUnits * style.UnitSize),
		unit:   style.UnitSize,
		dpi:    style.DPI,
	}
}

// pt converts a point in table units to canvas coordinates
func (Context *Context) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Points(x * Context.unit), Y: vg.Points(y * Context.unit)}
}

// length converts a table unit length to canvas points
func (Context *Context) length(units float64) vg.Length {
	return vg.Points(units * Context.unit)
}

// Save draws the figure once per output format and writes basename.png and
// basename.pdf. Drawing happens in memory before either file is created, so
// a failed render never leaves a partial artifact behind.
func (Context *Context) Save(basename string, drawFn func(dc draw.Canvas)) error {
	img := vgimg.NewWith(vgimg.UseWH(Context.width, Context.height), vgimg.UseDPI(Context.dpi))
	drawFn(draw.New(img))
	pngFH, err := os.Create(basename + ".png")
	if err != nil {
		return err
	}
	defer pngFH.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(pngFH); err != nil {
		return err
	}

	pdf := vgpdf.New(Context.width, Context.height)
	drawFn(draw.New(pdf))
	pdfFH, err := os.Create(basename + ".pdf")
	if err != nil {
		return err
	}
	defer pdfFH.Close()
	if _, err := pdf.WriteTo(pdfFH); err != nil {
		return err
	}
	return nil
}

// fillRect fills an axis aligned rectangle
func (Context *Context) fillRect(dc draw.Canvas, x, y, w, h float64, col color.Color) {
	rect := vg.Rectangle{Min: Context.pt(x, y), Max: Context.pt(x+w, y+h)}
	dc.SetColor(col)
	dc.Fill(rect.Path())
}

// strokeRect outlines an axis aligned rectangle
func (Context *Context) strokeRect(dc draw.Canvas, x, y, w, h float64, lineWidth float64, col color.Color) {
	rect := vg.Rectangle{Min: Context.pt(x, y), Max: Context.pt(x+w, y+h)}
	dc.SetColor(col)
	dc.SetLineWidth(vg.Points(lineWidth))
	dc.Stroke(rect.Path())
}

// strokeLine draws a single line segment
func (Context *Context) strokeLine(dc draw.Canvas, x0, y0, x1, y1 float64, lineWidth float64, col color.Color) {
	var path vg.Path
	path.Move(Context.pt(x0, y0))
	path.Line(Context.pt(x1, y1))
	dc.SetColor(col)
	dc.SetLineWidth(vg.Points(lineWidth))
	dc.Stroke(path)
}

// textStyle builds the text style for a label
func textStyle(size float64, rotation float64, xAlign draw.XAlignment, yAlign draw.YAlignment) (draw.TextStyle, error) {
	font, err := vg.MakeFont("Helvetica", vg.Points(size))
	if err != nil {
		return draw.TextStyle{}, err
	}
	return draw.TextStyle{
		Color:    color.Black,
		Font:     font,
		Rotation: rotation,
		XAlign:   xAlign,
		YAlign:   yAlign,
	}, nil
}
