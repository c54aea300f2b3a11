// Package theme produces theme-colored icon variants. Each pixel of the
// base icon is classified as foreground (the near-white tree),
// transparent (the rounded corners), or background; background pixels
// take the theme's accent color while everything else is left alone.
package theme

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/iconset"
	"github.com/arborchat/icons/internal/layout"
	"github.com/arborchat/icons/internal/pack"
)

const (
	// WhiteThreshold: a pixel whose R, G and B all exceed this is
	// foreground (the white tree) and keeps its color.
	WhiteThreshold = 200
	// AlphaThreshold: a pixel with alpha below this is transparent and
	// is left untouched regardless of color.
	AlphaThreshold = 128
)

// Theme is a named accent color variant.
type Theme struct {
	Name  string
	Color color.NRGBA
}

// Themes is the fixed table of app themes, matching the primary button
// color of each.
var Themes = []Theme{
	{"midnight", hex("#5865f2")},
	{"aurora-glass", hex("#8b5cf6")},
	{"linear-minimal", hex("#3b82f6")},
	{"forest-deep", hex("#22c55e")},
	{"neon-cyber", hex("#f472b6")},
	{"golden-hour", hex("#d4a574")},
	{"abyssal", hex("#00d4aa")},
	{"celestial", hex("#ff6eb4")},
	{"ember", hex("#ff6b35")},
}

func hex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad hex color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// Recolor replaces every background pixel's RGB with c, preserving its
// alpha. Foreground and transparent pixels pass through unchanged. The
// two thresholds are applied literally; anti-aliased edge pixels get no
// special blending.
func Recolor(img image.Image, c color.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		r, g, b, a := out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3]
		if a < AlphaThreshold {
			continue
		}
		if r > WhiteThreshold && g > WhiteThreshold && b > WhiteThreshold {
			continue
		}
		out.Pix[i] = c.R
		out.Pix[i+1] = c.G
		out.Pix[i+2] = c.B
	}
	return out
}

// BuildIconset recolors every required icon from the base iconset into
// a per-theme iconset directory under dirs.Themed and returns its path.
// Missing source files are logged and skipped.
func BuildIconset(t Theme, dirs layout.Dirs, log zerolog.Logger) (string, error) {
	out := filepath.Join(dirs.Themed, "icon-"+t.Name+".iconset")
	if err := layout.EnsureDir(out); err != nil {
		return "", err
	}
	for _, e := range iconset.Required {
		src := filepath.Join(dirs.Iconset, e.Name)
		if _, err := os.Stat(src); err != nil {
			log.Warn().Str("theme", t.Name).Str("file", e.Name).Msg("not found in source, skipping")
			continue
		}
		img, err := imaging.Open(src)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", e.Name, err)
		}
		if err := imaging.Save(Recolor(img, t.Color), filepath.Join(out, e.Name)); err != nil {
			return "", fmt.Errorf("write %s: %w", e.Name, err)
		}
		log.Info().Str("theme", t.Name).Str("file", e.Name).Msg("created")
	}
	return out, nil
}

// BuildAll builds an iconset for every theme and compiles each into a
// .icns container. A failure in one theme is logged and does not stop
// the others.
func BuildAll(dirs layout.Dirs, p pack.Packager, log zerolog.Logger) {
	for _, t := range Themes {
		set, err := BuildIconset(t, dirs, log)
		if err != nil {
			log.Error().Err(err).Str("theme", t.Name).Msg("iconset failed")
			continue
		}
		icnsPath := set[:len(set)-len(".iconset")] + ".icns"
		if err := p.Compile(set, icnsPath); err != nil {
			log.Error().Err(err).Str("theme", t.Name).Msg("icns packaging failed")
			continue
		}
		log.Info().Str("theme", t.Name).Str("file", filepath.Base(icnsPath)).Msg("packaged")
	}
}
