package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/nvr-ai/imgview/display"
	"github.com/nvr-ai/imgview/images"
	"github.com/nvr-ai/imgview/loader"
	"gocv.io/x/gocv"
)

const (
	// DefaultWindowName is the title of the display window.
	DefaultWindowName = "imgview"
)

func main() {
	var (
		dir        string
		file       string
		grey       bool
		titlesFlag string
		outputPath string
		dpi        int
		width      float64
		height     float64
	)
	flag.StringVar(&dir, "dir", "", "Directory to read .jpg/.png images from")
	flag.StringVar(&file, "file", "", "Single image inside -dir to show instead of the whole directory")
	flag.BoolVar(&grey, "grey", false, "Decode as greyscale and show with a grey colormap")
	flag.StringVar(&titlesFlag, "titles", "", "Comma separated titles (defaults to file names)")
	flag.StringVar(&outputPath, "out", "", "Write the grid to this file instead of opening a window")
	flag.IntVar(&dpi, "dpi", display.DefaultConfig().DPI, "Pixels per inch of the figure")
	flag.Float64Var(&width, "width", display.DefaultConfig().Width, "Figure width in inches")
	flag.Float64Var(&height, "height", display.DefaultConfig().Height, "Figure row height in inches")
	flag.Parse()

	if dir == "" {
		log.Fatalf("-dir is required")
	}

	readFlag := gocv.IMReadColor
	if grey {
		readFlag = gocv.IMReadGrayScale
	}
	l := loader.New(loader.WithReadFlag(readFlag))

	imgs, err := load(l, dir, file)
	if err != nil {
		log.Fatalf("failed to load images: %v", err)
	}
	defer func() {
		for i := range imgs {
			imgs[i].Close()
		}
	}()
	if len(imgs) == 0 {
		log.Fatalf("no images found in %s", dir)
	}

	titles := splitTitles(titlesFlag)
	if titles == nil {
		for _, img := range imgs {
			titles = append(titles, filepath.Base(img.Path))
		}
	}

	cfg := display.DefaultConfig()
	cfg.DPI = dpi
	cfg.Width = width
	cfg.Height = height
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid figure flags: %v", err)
	}
	fig := display.NewFigure(cfg)
	defer fig.Close()

	var renderer display.Renderer = display.NewWindowRenderer(DefaultWindowName)
	if outputPath != "" {
		renderer = &display.FileRenderer{Path: outputPath}
	}

	show := display.ShowImages
	if grey {
		show = display.ShowImagesGreyScale
	}
	if err := show(renderer, fig, imgs, titles); err != nil {
		log.Fatalf("failed to show images: %v", err)
	}

	if outputPath != "" {
		fmt.Printf("wrote %d images to %s\n", len(imgs), outputPath)
	}
}

// load reads either one file or the whole directory and drops images that failed to decode.
func load(l *loader.Loader, dir, file string) ([]images.Image, error) {
	if file != "" {
		img := l.ReadImage(dir, file)
		if img.IsAbsent() {
			return nil, fmt.Errorf("%s is missing, not a .jpg/.png file, or cannot be decoded", filepath.Join(dir, file))
		}
		return []images.Image{img}, nil
	}

	all, err := l.ReadImages(dir)
	if err != nil {
		return nil, err
	}

	decoded := all[:0]
	for _, img := range all {
		if img.IsAbsent() {
			log.Printf("skipping %s: cannot decode", img.Path)
			continue
		}
		log.Printf("loaded %s", describe(img))
		decoded = append(decoded, img)
	}
	return decoded, nil
}

func splitTitles(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// describe summarizes a loaded image for the log.
func describe(img images.Image) string {
	return fmt.Sprintf("%s (%s, %dx%d, %s, md5 %s)",
		img.Path, img.Format, img.Width(), img.Height(), img.Kind(), img.Checksum())
}
