package display

import (
	"github.com/nvr-ai/imgview/images"
	"github.com/pkg/errors"
)

// ErrNoImages is returned when a grid is requested for zero images.
var ErrNoImages = errors.New("display: no images to show")

// PlotImages lays out imgs left to right on fig, converting each from BGR to
// RGB. titles[i] labels imgs[i]; titles may be nil or shorter than imgs.
//
// Arguments:
// - fig: The figure to draw on. Its previous contents are discarded.
// - imgs: Three-channel BGR images.
// - titles: Optional labels, position-aligned with imgs.
//
// Returns:
// - error: ErrNoImages, images.ErrAbsent, images.ErrChannels for a buffer
// that is not three-channel, or ErrUndrawable for one that is not 8-bit.
func PlotImages(fig *Figure, imgs []images.Image, titles []string) error {
	return plotRow(fig, imgs, titles, func(ax *Axes, img images.Image) error {
		rgb, err := images.ToRGB(img)
		if err != nil {
			return err
		}
		defer rgb.Close()

		if err := checkDrawable(rgb, ColormapNone); err != nil {
			return err
		}
		ax.Imshow(rgb, ColormapNone)
		return nil
	})
}

// PlotImagesGreyScale lays out imgs like PlotImages but draws the buffers
// unconverted through ColormapGray. Single-channel data of any depth is
// stretched to its own range; alpha in four-channel data is ignored.
func PlotImagesGreyScale(fig *Figure, imgs []images.Image, titles []string) error {
	return plotRow(fig, imgs, titles, func(ax *Axes, img images.Image) error {
		if err := checkDrawable(img.Mat(), ColormapGray); err != nil {
			return err
		}
		ax.Imshow(img.Mat(), ColormapGray)
		return nil
	})
}

// ShowImages plots imgs with PlotImages and presents fig through r.
// With a WindowRenderer the call blocks until the window is dismissed.
func ShowImages(r Renderer, fig *Figure, imgs []images.Image, titles []string) error {
	if err := PlotImages(fig, imgs, titles); err != nil {
		return err
	}
	return r.Show(fig)
}

// ShowImagesGreyScale plots imgs with PlotImagesGreyScale and presents fig through r.
func ShowImagesGreyScale(r Renderer, fig *Figure, imgs []images.Image, titles []string) error {
	if err := PlotImagesGreyScale(fig, imgs, titles); err != nil {
		return err
	}
	return r.Show(fig)
}

// plotRow is shared by both grids so that one image and many images take the same path.
func plotRow(fig *Figure, imgs []images.Image, titles []string, draw func(*Axes, images.Image) error) error {
	if len(imgs) == 0 {
		return ErrNoImages
	}

	axes, err := fig.Subplots(1, len(imgs))
	if err != nil {
		return err
	}

	for i, img := range imgs {
		if img.IsAbsent() {
			return errors.Wrapf(images.ErrAbsent, "image %d", i)
		}
		if err := draw(axes[i], img); err != nil {
			return errors.Wrapf(err, "image %d", i)
		}
		if i < len(titles) {
			axes[i].SetTitle(titles[i])
		}
	}

	fig.TightLayout()
	return nil
}
