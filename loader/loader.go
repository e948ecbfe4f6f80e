// Package loader reads image files from disk into images.Image buffers.
package loader

import (
	"os"
	"path/filepath"

	"github.com/nvr-ai/imgview/images"
	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// Decoder turns the file at path into an image.
//
// Implementations return images.Absent() when the file cannot be decoded.
type Decoder interface {
	Decode(path string, flags gocv.IMReadFlag) images.Image
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string, flags gocv.IMReadFlag) images.Image

// Decode calls f(path, flags).
func (f DecoderFunc) Decode(path string, flags gocv.IMReadFlag) images.Image {
	return f(path, flags)
}

// IMReadDecoder decodes files with gocv.IMRead.
type IMReadDecoder struct{}

// Decode reads the file with OpenCV and records its path and sniffed format.
func (IMReadDecoder) Decode(path string, flags gocv.IMReadFlag) images.Image {
	img := images.NewImage(gocv.IMRead(path, flags))
	img.Path = path
	if img.IsAbsent() {
		return img
	}
	if format, err := images.DetectFormat(path); err == nil {
		img.Format = format
	}
	return img
}

// Loader reads images with a fixed decode flag and decoder.
type Loader struct {
	flags   gocv.IMReadFlag
	decoder Decoder
}

// Option configures a Loader.
type Option func(*Loader)

// WithReadFlag sets the decode mode passed to the decoder.
func WithReadFlag(flags gocv.IMReadFlag) Option {
	return func(l *Loader) {
		l.flags = flags
	}
}

// WithDecoder replaces the OpenCV decoder.
func WithDecoder(d Decoder) Option {
	return func(l *Loader) {
		if d != nil {
			l.decoder = d
		}
	}
}

// New constructs a Loader. By default it decodes in full color with gocv.IMRead.
func New(opts ...Option) *Loader {
	l := &Loader{
		flags:   gocv.IMReadColor,
		decoder: IMReadDecoder{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ReadImages decodes every ".jpg" and ".png" regular file in dir.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []images.Image: One entry per matching file, in directory-listing order.
// Files that fail to decode are kept as absent images so positions line up
// with the file list.
// - error: Error if the directory cannot be listed.
func (l *Loader) ReadImages(dir string) ([]images.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list image directory %q", dir)
	}

	out := []images.Image{}
	for _, entry := range entries {
		if entry.IsDir() || !images.HasImageExtension(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(path) {
			continue
		}

		out = append(out, l.decoder.Decode(path, l.flags))
	}

	return out, nil
}

// ReadImage decodes dir/filename.
//
// Arguments:
// - dir: Directory holding the file.
// - filename: Name of the file inside dir.
//
// Returns:
// - The decoded image. images.Absent() without calling the decoder when the
// path is not an existing regular file or the name lacks a ".jpg"/".png"
// extension; the decoder's absent image when decoding fails.
func (l *Loader) ReadImage(dir, filename string) images.Image {
	path := filepath.Join(dir, filename)
	if !isRegularFile(path) || !images.HasImageExtension(filename) {
		return images.Absent()
	}

	return l.decoder.Decode(path, l.flags)
}

// ReadImages is shorthand for New(opts...).ReadImages(dir).
func ReadImages(dir string, opts ...Option) ([]images.Image, error) {
	return New(opts...).ReadImages(dir)
}

// ReadImage is shorthand for New(opts...).ReadImage(dir, filename).
func ReadImage(dir, filename string, opts ...Option) images.Image {
	return New(opts...).ReadImage(dir, filename)
}

// isRegularFile follows symlinks.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
