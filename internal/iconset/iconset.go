// Package iconset defines the fixed set of icon files a macOS iconset
// directory must contain and fills gaps in that set by resampling from
// the largest image available.
package iconset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// Entry pairs an iconset filename with its pixel size. The @2x names
// carry twice the nominal size encoded in the filename.
type Entry struct {
	Name string
	Size int
}

// Required lists every file iconutil expects in an iconset, smallest
// first.
var Required = []Entry{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// ICOSizes are the resolutions embedded in the Windows .ico export.
var ICOSizes = []int{16, 32, 48, 64, 128, 256}

// Result describes one completion run: which source was used and which
// target sizes had to be upscaled from it.
type Result struct {
	SourceName string
	SourceSize int
	Upscaled   []int
}

// FindSource scans the required entries from largest to smallest and
// returns the first one whose file exists in dir, decoded. An error is
// returned when no candidate file exists at all.
func FindSource(dir string) (Entry, image.Image, error) {
	for i := len(Required) - 1; i >= 0; i-- {
		e := Required[i]
		path := filepath.Join(dir, e.Name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		img, err := imaging.Open(path)
		if err != nil {
			return Entry{}, nil, fmt.Errorf("decode %s: %w", e.Name, err)
		}
		return e, img, nil
	}
	return Entry{}, nil, fmt.Errorf("no source icon found in %s", dir)
}

// Complete regenerates every required file in dir by Lanczos-resampling
// from the largest image already present. Targets larger than the
// source are still generated but recorded in Result.Upscaled, since
// upscaling degrades quality.
func Complete(dir string, log zerolog.Logger) (Result, error) {
	src, img, err := FindSource(dir)
	if err != nil {
		return Result{}, err
	}
	log.Info().Str("source", src.Name).Int("size", src.Size).Msg("using source icon")

	res := Result{SourceName: src.Name, SourceSize: src.Size}
	for _, e := range Required {
		if e.Size > src.Size {
			res.Upscaled = append(res.Upscaled, e.Size)
			log.Warn().Int("target", e.Size).Int("source", src.Size).Msg("upscaling beyond source resolution")
		}
		resized := imaging.Resize(img, e.Size, e.Size, imaging.Lanczos)
		if err := imaging.Save(resized, filepath.Join(dir, e.Name)); err != nil {
			return res, fmt.Errorf("write %s: %w", e.Name, err)
		}
		log.Info().Str("file", e.Name).Int("size", e.Size).Msg("created")
	}
	return res, nil
}
