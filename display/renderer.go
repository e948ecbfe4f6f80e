package display

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Renderer presents a laid-out figure.
type Renderer interface {
	Show(fig *Figure) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(fig *Figure) error

// Show calls f(fig).
func (f RendererFunc) Show(fig *Figure) error { return f(fig) }

// WindowRenderer shows figures in an OpenCV highgui window.
type WindowRenderer struct {
	// Name is the window title.
	Name string
	// Delay is passed to WaitKey. 0 blocks until a key is pressed.
	Delay int
}

// NewWindowRenderer returns a renderer that blocks until a key is pressed.
func NewWindowRenderer(name string) *WindowRenderer {
	return &WindowRenderer{Name: name}
}

// Show opens a window, draws the figure and waits for a key, then closes the window.
func (w *WindowRenderer) Show(fig *Figure) error {
	bgr, err := canvasBGR(fig)
	if err != nil {
		return err
	}
	defer bgr.Close()

	window := gocv.NewWindow(w.Name)
	defer window.Close()

	window.IMShow(bgr)
	window.WaitKey(w.Delay)
	return nil
}

// FileRenderer writes figures to an image file. The format follows the extension of Path.
type FileRenderer struct {
	Path string
}

// Show encodes the canvas to Path.
func (fr *FileRenderer) Show(fig *Figure) error {
	bgr, err := canvasBGR(fig)
	if err != nil {
		return err
	}
	defer bgr.Close()

	if !gocv.IMWrite(fr.Path, bgr) {
		return errors.Errorf("display: failed to write figure to %q", fr.Path)
	}
	return nil
}

// canvasBGR returns the figure canvas in OpenCV channel order. The caller closes it.
func canvasBGR(fig *Figure) (gocv.Mat, error) {
	canvas, err := fig.Canvas()
	if err != nil {
		return gocv.NewMat(), err
	}

	bgr := gocv.NewMat()
	gocv.CvtColor(canvas, &bgr, gocv.ColorRGBToBGR)
	return bgr, nil
}
