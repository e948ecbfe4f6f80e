package display

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// ErrUndrawable is returned for buffers no colormap can turn into display pixels.
var ErrUndrawable = errors.New("display: buffer cannot be drawn")

// checkDrawable accepts 8-bit three or four channel data, and single-channel
// data of any depth under ColormapGray.
func checkDrawable(m gocv.Mat, cmap Colormap) error {
	switch c := m.Channels(); {
	case (c == 3 || c == 4) && depth(m) == gocv.MatTypeCV8U:
		return nil
	case c == 1 && cmap == ColormapGray:
		return nil
	default:
		return errors.Wrapf(ErrUndrawable, "%d-channel data of type %v with colormap %d", c, m.Type(), cmap)
	}
}

func depth(m gocv.Mat) gocv.MatType {
	return m.Type() & 7
}

// rgbTile returns a new CV8UC3 Mat ready to be placed on the canvas.
// Three and four channel data keep their channel order; alpha is dropped.
func (a *Axes) rgbTile() (gocv.Mat, error) {
	if err := checkDrawable(a.data, a.cmap); err != nil {
		return gocv.NewMat(), err
	}

	switch a.data.Channels() {
	case 4:
		dst := gocv.NewMat()
		gocv.CvtColor(a.data, &dst, gocv.ColorBGRAToBGR)
		return dst, nil
	case 3:
		return a.data.Clone(), nil
	default:
		return greyToRGB(a.data)
	}
}

// greyToRGB stretches the sample range of a single-channel Mat to 0..255 and
// replicates it into three 8-bit channels. A constant image maps to black.
func greyToRGB(src gocv.Mat) (gocv.Mat, error) {
	stretched := gocv.NewMat()
	defer stretched.Close()
	gocv.Normalize(src, &stretched, 0, 255, gocv.NormMinMax)

	grey := gocv.NewMat()
	defer grey.Close()
	stretched.ConvertTo(&grey, gocv.MatTypeCV8U)
	if grey.Empty() {
		return gocv.NewMat(), errors.Errorf("display: failed to scale grey data of type %v", src.Type())
	}

	rgb := gocv.NewMat()
	gocv.CvtColor(grey, &rgb, gocv.ColorGrayToBGR)
	return rgb, nil
}
