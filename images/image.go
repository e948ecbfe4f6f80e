// Package images - Image buffer definition shared by the loaders and the display grid.
package images

import (
	"gocv.io/x/gocv"
)

// Kind tags the variant held by an Image.
type Kind int

const (
	// KindAbsent means no image was loaded.
	KindAbsent Kind = iota
	// KindColor is a decoded multi-channel buffer in OpenCV (BGR) channel order.
	KindColor
	// KindGrey is a decoded single-channel buffer.
	KindGrey
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindGrey:
		return "grey"
	default:
		return "absent"
	}
}

// Image is a decoded raster or the absent value.
//
// The zero value is an absent image. A non-absent Image owns a native
// gocv.Mat and must be released with Close.
type Image struct {
	kind Kind
	mat  gocv.Mat
	// Path is the file the image was read from, if any.
	Path string `json:"path" yaml:"path"`
	// Format is the format sniffed from the file contents.
	Format ImageFormat `json:"format" yaml:"format"`
}

// Absent returns the explicit "no image" value.
func Absent() Image {
	return Image{kind: KindAbsent, Format: FormatUnknown}
}

// NewImage wraps a decoded Mat and classifies it by channel count.
//
// Arguments:
// - mat: The decoded Mat. Ownership moves to the returned Image.
//
// Returns:
// - An absent Image if the Mat is empty (the Mat is closed), a grey Image for
// one channel, otherwise a color Image.
func NewImage(mat gocv.Mat) Image {
	if mat.Empty() {
		mat.Close()
		return Absent()
	}

	kind := KindColor
	if mat.Channels() == 1 {
		kind = KindGrey
	}

	return Image{kind: kind, mat: mat, Format: FormatUnknown}
}

// Kind reports which variant the image holds.
func (i Image) Kind() Kind { return i.kind }

// IsAbsent reports whether no buffer is held.
func (i Image) IsAbsent() bool { return i.kind == KindAbsent }

// Mat returns the underlying buffer. For absent images it is a new empty Mat
// which the caller should Close.
func (i Image) Mat() gocv.Mat {
	if i.IsAbsent() {
		return gocv.NewMat()
	}
	return i.mat
}

// Width returns the number of columns, 0 when absent.
func (i Image) Width() int {
	if i.IsAbsent() {
		return 0
	}
	return i.mat.Cols()
}

// Height returns the number of rows, 0 when absent.
func (i Image) Height() int {
	if i.IsAbsent() {
		return 0
	}
	return i.mat.Rows()
}

// Channels returns the number of samples per pixel, 0 when absent.
func (i Image) Channels() int {
	if i.IsAbsent() {
		return 0
	}
	return i.mat.Channels()
}

// Close releases the native buffer. Closing an absent image is a no-op.
func (i *Image) Close() error {
	if i.IsAbsent() {
		return nil
	}
	err := i.mat.Close()
	i.kind = KindAbsent
	return err
}
