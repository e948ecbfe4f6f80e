package images

import (
	"strings"

	filetype "gopkg.in/h2non/filetype.v1"
	"gopkg.in/h2non/filetype.v1/matchers"
)

// ImageFormat represents supported image formats
type ImageFormat string

const (
	FormatJPEG    ImageFormat = "jpeg"
	FormatPNG     ImageFormat = "png"
	FormatUnknown ImageFormat = "unknown"
)

// Extensions accepted by the loaders. Matching is case-sensitive.
var imageExtensions = []string{".jpg", ".png"}

// HasImageExtension reports whether name ends with ".jpg" or ".png".
// ".JPG", ".jpeg" and every other spelling are rejected.
func HasImageExtension(name string) bool {
	for _, ext := range imageExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// DetectFormat sniffs the magic bytes of the file at path.
//
// Arguments:
// - path: Path of the file to inspect.
//
// Returns:
// - The detected format, FormatUnknown when the header matches neither JPEG nor PNG.
// - error: Error if the file cannot be read.
func DetectFormat(path string) (ImageFormat, error) {
	t, err := filetype.MatchFile(path)
	if err != nil {
		return FormatUnknown, err
	}

	switch t {
	case matchers.TypeJpeg:
		return FormatJPEG, nil
	case matchers.TypePng:
		return FormatPNG, nil
	default:
		return FormatUnknown, nil
	}
}
