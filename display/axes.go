package display

import (
	"image"

	"gocv.io/x/gocv"
)

// Colormap selects how axes data is turned into display pixels.
type Colormap int

const (
	// ColormapNone draws three-channel data as RGB.
	ColormapNone Colormap = iota
	// ColormapGray maps single-channel data onto black..white scaled to the
	// data range. Three-channel data is drawn as-is.
	ColormapGray
)

// Axes is one subplot region of a Figure.
type Axes struct {
	row, col int
	data     gocv.Mat
	hasData  bool
	cmap     Colormap
	title    string
	bounds   image.Rectangle
}

// Imshow attaches a copy of mat to the axes, replacing any previous data.
// Three-channel data must already be in RGB order.
func (a *Axes) Imshow(mat gocv.Mat, cmap Colormap) {
	a.release()
	a.data = mat.Clone()
	a.hasData = true
	a.cmap = cmap
}

// SetTitle sets the label drawn above the axes.
func (a *Axes) SetTitle(title string) { a.title = title }

// Title returns the label, "" when none was set.
func (a *Axes) Title() string { return a.title }

// Data returns the buffer handed to the renderer and whether one was set.
// The Mat is owned by the axes.
func (a *Axes) Data() (gocv.Mat, bool) { return a.data, a.hasData }

// Colormap returns the colormap given to Imshow.
func (a *Axes) Colormap() Colormap { return a.cmap }

// Position returns the grid row and column of the axes.
func (a *Axes) Position() (row, col int) { return a.row, a.col }

// Bounds returns the pixel rectangle of the axes on the canvas, including the title band.
func (a *Axes) Bounds() image.Rectangle { return a.bounds }

func (a *Axes) release() {
	if a.hasData {
		a.data.Close()
		a.hasData = false
	}
}
