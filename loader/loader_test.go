package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/imgview/images"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// recordingDecoder returns a 1x1 color image per call and remembers the paths it saw.
type recordingDecoder struct {
	paths []string
	flags []gocv.IMReadFlag
}

func (d *recordingDecoder) Decode(path string, flags gocv.IMReadFlag) images.Image {
	d.paths = append(d.paths, path)
	d.flags = append(d.flags, flags)
	img := images.NewImage(gocv.NewMatWithSize(1, 1, gocv.MatTypeCV8UC3))
	img.Path = path
	return img
}

// failingDecoder fails the test if it is ever invoked.
func failingDecoder(t *testing.T) Decoder {
	return DecoderFunc(func(path string, _ gocv.IMReadFlag) images.Image {
		t.Fatalf("decoder must not be called, got %s", path)
		return images.Absent()
	})
}

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func writeImage(t *testing.T, dir, name string, rows, cols int) {
	t.Helper()
	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	defer mat.Close()
	require.True(t, gocv.IMWrite(filepath.Join(dir, name), mat))
}

func closeAll(imgs []images.Image) {
	for i := range imgs {
		imgs[i].Close()
	}
}

func TestReadImages_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg")
	writeFile(t, dir, "b.png")
	writeFile(t, dir, "c.txt")

	dec := &recordingDecoder{}
	imgs, err := ReadImages(dir, WithDecoder(dec))
	require.NoError(t, err)
	defer closeAll(imgs)

	require.Len(t, imgs, 2)
	assert.Equal(t, []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b.png")}, dec.paths)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), imgs[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.png"), imgs[1].Path)
}

func TestReadImages_SkipsNonMatching(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "upper.JPG")
	writeFile(t, dir, "long.jpeg")
	writeFile(t, dir, "bitmap.bmp")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0o755))

	imgs, err := ReadImages(dir, WithDecoder(failingDecoder(t)))
	require.NoError(t, err)
	assert.Empty(t, imgs)
}

func TestReadImages_EmptyDirectory(t *testing.T) {
	imgs, err := ReadImages(t.TempDir(), WithDecoder(failingDecoder(t)))
	require.NoError(t, err)
	assert.NotNil(t, imgs)
	assert.Empty(t, imgs)
}

func TestReadImages_MissingDirectory(t *testing.T) {
	imgs, err := ReadImages(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Nil(t, imgs)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadImages_PassesReadFlag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")

	dec := &recordingDecoder{}
	imgs, err := ReadImages(dir, WithDecoder(dec), WithReadFlag(gocv.IMReadGrayScale))
	require.NoError(t, err)
	defer closeAll(imgs)

	assert.Equal(t, []gocv.IMReadFlag{gocv.IMReadGrayScale}, dec.flags)
}

func TestReadImages_KeepsDecodeFailures(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "good.png", 3, 5)
	writeFile(t, dir, "junk.jpg")

	imgs, err := ReadImages(dir)
	require.NoError(t, err)
	defer closeAll(imgs)

	// os.ReadDir lists by name: good.png, junk.jpg.
	require.Len(t, imgs, 2)
	assert.Equal(t, images.KindColor, imgs[0].Kind())
	assert.Equal(t, images.FormatPNG, imgs[0].Format)
	assert.True(t, imgs[1].IsAbsent())
	assert.Equal(t, filepath.Join(dir, "junk.jpg"), imgs[1].Path)
}

func TestReadImage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "note.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "album.jpg"), 0o755))

	tests := []struct {
		name     string
		filename string
	}{
		{name: "Missing file", filename: "missing.jpg"},
		{name: "Wrong extension", filename: "note.txt"},
		{name: "Directory with image extension", filename: "album.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := ReadImage(dir, tt.filename, WithDecoder(failingDecoder(t)))
			assert.True(t, img.IsAbsent())
		})
	}
}

func TestReadImage_Decodes(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo.jpg", 12, 20)

	img := ReadImage(dir, "photo.jpg")
	defer img.Close()

	require.False(t, img.IsAbsent())
	assert.Equal(t, images.KindColor, img.Kind())
	assert.Equal(t, 20, img.Width())
	assert.Equal(t, 12, img.Height())
	assert.Equal(t, 3, img.Channels())
	assert.Equal(t, images.FormatJPEG, img.Format)
}

func TestReadImage_GreyScaleFlag(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "photo.png", 4, 4)

	img := ReadImage(dir, "photo.png", WithReadFlag(gocv.IMReadGrayScale))
	defer img.Close()

	assert.Equal(t, images.KindGrey, img.Kind())
	assert.Equal(t, 1, img.Channels())
}

func TestReadImage_UndecodableIsAbsent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.png")

	img := ReadImage(dir, "broken.png")
	assert.True(t, img.IsAbsent())
	assert.Equal(t, filepath.Join(dir, "broken.png"), img.Path)
}
