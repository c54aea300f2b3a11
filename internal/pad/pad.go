// Package pad rescales icon content to the macOS HIG content ratio:
// the visible glyph is shrunk to 84% of the canvas and re-centered over
// transparent margins. Files are rewritten in place, so the transform
// refuses to run twice on the same image.
package pad

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/iconset"
	"github.com/arborchat/icons/internal/layout"
)

// ContentRatio is the fraction of the canvas the glyph occupies after
// padding (8% margin on each side per the macOS HIG).
const ContentRatio = 0.84

// ErrAlreadyPadded is returned by File when the image's transparent
// border already meets the expected margin, meaning another run would
// compound the shrink.
var ErrAlreadyPadded = errors.New("icon already padded")

// Apply resizes img to ContentRatio of canvasSize and centers it on a
// fully transparent canvas of canvasSize. The content spans exactly
// int(canvasSize*ContentRatio) pixels with an integer-divided margin on
// each side.
func Apply(img image.Image, canvasSize int) *image.NRGBA {
	content := int(float64(canvasSize) * ContentRatio)
	resized := imaging.Resize(img, content, content, imaging.Lanczos)
	canvas := imaging.New(canvasSize, canvasSize, color.NRGBA{})
	offset := (canvasSize - content) / 2
	return imaging.Paste(canvas, resized, image.Pt(offset, offset))
}

// Margin returns the transparent margin expected on each side of a
// padded canvas of the given size.
func Margin(canvasSize int) int {
	return (canvasSize - int(float64(canvasSize)*ContentRatio)) / 2
}

// BorderWidth measures the fully transparent frame around the image's
// content: the smallest distance from any edge to an opaque pixel. A
// fully transparent image measures as the whole canvas.
func BorderWidth(img image.Image) int {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		if b.Dx() < b.Dy() {
			return b.Dx()
		}
		return b.Dy()
	}
	border := minX - b.Min.X
	for _, d := range []int{minY - b.Min.Y, b.Max.X - 1 - maxX, b.Max.Y - 1 - maxY} {
		if d < border {
			border = d
		}
	}
	return border
}

// File pads a single icon in place. It returns ErrAlreadyPadded when
// the existing transparent border indicates the transform has already
// been applied for this canvas size.
func File(path string, canvasSize int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if m := Margin(canvasSize); m > 0 && BorderWidth(img) >= m {
		return ErrAlreadyPadded
	}
	out := Apply(img, canvasSize)
	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return layout.AtomicWrite(path, buf.Bytes())
}

// Dir backs up the iconset once, then pads every required icon in
// place. Missing files and already-padded files are logged and skipped;
// other per-file failures are logged and the batch continues.
func Dir(dirs layout.Dirs, log zerolog.Logger) error {
	copied, err := layout.BackupOnce(dirs.Iconset, dirs.Backup)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	if copied {
		log.Info().Str("dir", dirs.Backup).Msg("backed up original icons")
	}

	for _, e := range iconset.Required {
		path := filepath.Join(dirs.Iconset, e.Name)
		if _, err := os.Stat(path); err != nil {
			log.Warn().Str("file", e.Name).Msg("not found, skipping")
			continue
		}
		switch err := File(path, e.Size); {
		case errors.Is(err, ErrAlreadyPadded):
			log.Warn().Str("file", e.Name).Msg("already padded, skipping")
		case err != nil:
			log.Error().Err(err).Str("file", e.Name).Msg("padding failed")
		default:
			log.Info().Str("file", e.Name).Int("size", e.Size).Msg("padded")
		}
	}
	return nil
}
