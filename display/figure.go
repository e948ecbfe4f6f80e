// Package display lays out image buffers in single-row grids and renders them.
//
// A Figure is an explicit canvas handle: callers create one, fill its axes
// (directly or through PlotImages / PlotImagesGreyScale) and hand it to a
// Renderer. Nothing is kept in package-level state.
package display

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Figure is a grid of Axes drawn onto one canvas.
type Figure struct {
	cfg        Config
	rows, cols int
	axes       []*Axes
	tight      bool
	canvas     gocv.Mat
	hasCanvas  bool
}

// NewFigure returns an empty figure. Call Close when done.
func NewFigure(cfg Config) *Figure {
	return &Figure{cfg: cfg}
}

// Config returns the figure configuration.
func (f *Figure) Config() Config { return f.cfg }

// Subplots replaces the figure contents with a rows x cols grid of axes and
// returns them in row-major order. The returned slice has one element even
// for a 1x1 grid.
//
// Arguments:
// - rows: Number of grid rows.
// - cols: Number of grid columns.
//
// Returns:
// - []*Axes: rows*cols axes.
// - error: Error if either dimension is not positive or the Config is invalid.
func (f *Figure) Subplots(rows, cols int) ([]*Axes, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Errorf("display: invalid subplot grid %dx%d", rows, cols)
	}
	if err := f.cfg.Validate(); err != nil {
		return nil, err
	}

	f.clear()
	f.rows, f.cols = rows, cols
	f.axes = make([]*Axes, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			f.axes = append(f.axes, &Axes{row: r, col: c})
		}
	}
	f.layout()

	return f.axes, nil
}

// Axes returns the axes created by the last Subplots call.
func (f *Figure) Axes() []*Axes { return f.axes }

// Size returns the canvas size in pixels: Width x Height*rows inches at DPI.
func (f *Figure) Size() image.Point {
	rows := f.rows
	if rows == 0 {
		rows = 1
	}
	return image.Pt(
		int(math.Round(f.cfg.Width*float64(f.cfg.DPI))),
		int(math.Round(f.cfg.Height*float64(rows*f.cfg.DPI))),
	)
}

// TightLayout shrinks the margins around every axes to Config.Padding.
func (f *Figure) TightLayout() {
	f.tight = true
	f.layout()
}

// layout assigns each axes its cell of the grid, inset by the margins.
func (f *Figure) layout() {
	if len(f.axes) == 0 {
		return
	}

	size := f.Size()
	cellW := size.X / f.cols
	cellH := size.Y / f.rows
	for _, ax := range f.axes {
		cell := image.Rect(ax.col*cellW, ax.row*cellH, (ax.col+1)*cellW, (ax.row+1)*cellH)
		ax.bounds = inset(cell, f.margin(cell))
	}
}

func (f *Figure) margin(cell image.Rectangle) int {
	if f.tight {
		return f.cfg.Padding
	}
	return min(cell.Dx(), cell.Dy()) / 10
}

func inset(r image.Rectangle, n int) image.Rectangle {
	if 2*n >= r.Dx() || 2*n >= r.Dy() {
		return r
	}
	return image.Rect(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
}

// Canvas composes the axes into an RGB-order CV8UC3 Mat owned by the figure.
// Each image is scaled to fit its axes with its aspect ratio kept and centered
// below the title band.
func (f *Figure) Canvas() (gocv.Mat, error) {
	if len(f.axes) == 0 {
		return gocv.NewMat(), errors.New("display: figure has no axes")
	}

	size := f.Size()
	bg := f.cfg.Background
	canvas := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(bg.R), float64(bg.G), float64(bg.B), 0),
		size.Y, size.X, gocv.MatTypeCV8UC3,
	)

	for i, ax := range f.axes {
		if err := f.drawAxes(&canvas, ax); err != nil {
			canvas.Close()
			return gocv.NewMat(), errors.Wrapf(err, "display: failed to draw axes %d", i)
		}
	}

	f.releaseCanvas()
	f.canvas = canvas
	f.hasCanvas = true
	return canvas, nil
}

func (f *Figure) drawAxes(canvas *gocv.Mat, ax *Axes) error {
	area := ax.bounds
	if ax.title != "" && area.Dy() > f.cfg.TitleHeight {
		f.drawTitle(canvas, ax.title, image.Rect(area.Min.X, area.Min.Y, area.Max.X, area.Min.Y+f.cfg.TitleHeight))
		area.Min.Y += f.cfg.TitleHeight
	}

	if !ax.hasData {
		return nil
	}

	tile, err := ax.rgbTile()
	if err != nil {
		return err
	}
	defer tile.Close()

	dst := fitRect(area, tile.Cols(), tile.Rows())
	if dst.Empty() {
		return nil
	}

	scaled := gocv.NewMat()
	defer scaled.Close()
	gocv.Resize(tile, &scaled, dst.Size(), 0, 0, f.cfg.Interpolation)

	roi := canvas.Region(dst)
	defer roi.Close()
	scaled.CopyTo(&roi)

	return nil
}

// drawTitle centers text horizontally in band with its baseline near the bottom.
func (f *Figure) drawTitle(canvas *gocv.Mat, text string, band image.Rectangle) {
	textSize := gocv.GetTextSize(text, gocv.FontHersheySimplex, f.cfg.FontScale, f.cfg.FontThickness)
	x := band.Min.X + (band.Dx()-textSize.X)/2
	if x < band.Min.X {
		x = band.Min.X
	}
	y := band.Max.Y - (band.Dy()-textSize.Y)/2

	gocv.PutText(canvas, text, image.Pt(x, y), gocv.FontHersheySimplex, f.cfg.FontScale,
		swapRB(f.cfg.TextColor), f.cfg.FontThickness)
}

// swapRB compensates for PutText writing colors in BGR order onto our RGB canvas.
func swapRB(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.B, G: c.G, B: c.R, A: c.A}
}

// fitRect returns the largest w:h rectangle centered inside area.
func fitRect(area image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || area.Empty() {
		return image.Rectangle{}
	}

	scale := math.Min(float64(area.Dx())/float64(w), float64(area.Dy())/float64(h))
	fw := max(1, int(math.Round(float64(w)*scale)))
	fh := max(1, int(math.Round(float64(h)*scale)))
	fw, fh = min(fw, area.Dx()), min(fh, area.Dy())

	x := area.Min.X + (area.Dx()-fw)/2
	y := area.Min.Y + (area.Dy()-fh)/2
	return image.Rect(x, y, x+fw, y+fh)
}

// Close releases the axes data and the canvas.
func (f *Figure) Close() error {
	f.clear()
	return nil
}

func (f *Figure) clear() {
	for _, ax := range f.axes {
		ax.release()
	}
	f.axes = nil
	f.rows, f.cols = 0, 0
	f.tight = false
	f.releaseCanvas()
}

func (f *Figure) releaseCanvas() {
	if f.hasCanvas {
		f.canvas.Close()
		f.hasCanvas = false
	}
}
