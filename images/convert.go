package images

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

var (
	// ErrAbsent is returned when an operation needs pixels but got the absent image.
	ErrAbsent = errors.New("images: absent image")
	// ErrChannels is returned when a buffer has the wrong number of channels.
	ErrChannels = errors.New("images: unexpected channel count")
)

// ToRGB converts a three-channel BGR image into a new Mat in RGB order.
//
// The caller owns the returned Mat.
func ToRGB(img Image) (gocv.Mat, error) {
	if img.IsAbsent() {
		return gocv.NewMat(), ErrAbsent
	}
	if c := img.Channels(); c != 3 {
		return gocv.NewMat(), errors.Wrapf(ErrChannels, "want 3 channels for BGR to RGB, got %d", c)
	}

	rgb := gocv.NewMat()
	gocv.CvtColor(img.mat, &rgb, gocv.ColorBGRToRGB)
	if rgb.Empty() {
		rgb.Close()
		return gocv.NewMat(), errors.New("images: BGR to RGB conversion produced no data")
	}

	return rgb, nil
}
