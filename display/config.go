package display

import (
	"image/color"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Config describes the geometry and styling of a Figure.
type Config struct {
	// Width is the figure width in inches.
	Width float64
	// Height is the height of one subplot row in inches.
	Height float64
	// DPI converts inches to pixels.
	DPI int
	// Padding is the gap in pixels around each axes after TightLayout.
	Padding int
	// TitleHeight is the band in pixels reserved above a titled axes.
	TitleHeight int
	// FontScale and FontThickness are passed to gocv.PutText.
	FontScale     float64
	FontThickness int
	Background    color.RGBA
	TextColor     color.RGBA
	// Interpolation is used when fitting an image into its axes.
	Interpolation gocv.InterpolationFlags
}

// DefaultConfig returns a 15x5 inch figure at 100 DPI.
func DefaultConfig() Config {
	return Config{
		Width:         15,
		Height:        5,
		DPI:           100,
		Padding:       8,
		TitleHeight:   32,
		FontScale:     0.8,
		FontThickness: 1,
		Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextColor:     color.RGBA{A: 255},
		Interpolation: gocv.InterpolationArea,
	}
}

// Validate rejects configurations that would produce an empty or negative canvas.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("display: figure size must be positive, got %gx%g inches", c.Width, c.Height)
	}
	if c.DPI <= 0 {
		return errors.Errorf("display: DPI must be positive, got %d", c.DPI)
	}
	if c.Padding < 0 || c.TitleHeight < 0 {
		return errors.Errorf("display: padding and title height must not be negative")
	}
	return nil
}
