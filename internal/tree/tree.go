// Package tree renders the ArborChat app icon: a white stylized tree on
// a rounded-rectangle background in the midnight theme color. All
// geometry is defined on a 512×512 design grid and mapped to the
// requested size, so every output is a deterministic function of the
// size alone.
package tree

import (
	"image"
	"math"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/iconset"
	"github.com/arborchat/icons/internal/layout"
)

const (
	// BaseSize is the design grid all coordinates below are expressed in.
	BaseSize = 512
	// ContentScale shrinks the glyph toward the canvas center, leaving
	// breathing room inside the rounded rectangle.
	ContentScale = 0.75
	// CornerRatio is the rounded-corner radius as a fraction of the
	// canvas size (iOS-style ~22%).
	CornerRatio = 0.22

	// BackgroundColor is the midnight theme primary (#5865f2).
	BackgroundColor = "#5865f2"
)

// branch describes one level of the tree: a mirrored pair of two-segment
// strokes leaving the trunk at y, reaching out by spread, drooping (or
// lifting, when negative) by droop.
type branch struct {
	y, spread, droop float64
	width            float64
}

var branches = []branch{
	{340, 96, 20, 8},
	{300, 116, 10, 7},
	{260, 136, 0, 6},
	{220, 126, -10, 5},
	{180, 106, -25, 4},
	{140, 86, -30, 3},
}

// leaf is a rotated ellipse at a fixed design-grid position.
type leaf struct {
	cx, cy, rx, ry, angle float64
}

var leaves = []leaf{
	{160, 355, 12, 8, -30}, {180, 340, 10, 6, -20},
	{352, 355, 12, 8, 30}, {332, 340, 10, 6, 20},
	{140, 305, 14, 9, -25}, {165, 290, 11, 7, -15},
	{372, 305, 14, 9, 25}, {347, 290, 11, 7, 15},
	{120, 255, 15, 10, -20}, {150, 242, 12, 8, -10},
	{392, 255, 15, 10, 20}, {362, 242, 12, 8, 10},
	{130, 205, 14, 9, -15}, {160, 192, 11, 7, -5},
	{382, 205, 14, 9, 15}, {352, 192, 11, 7, 5},
	{150, 150, 13, 8, -10}, {180, 155, 10, 6, 0},
	{362, 150, 13, 8, 10}, {332, 155, 10, 6, 0},
	{170, 105, 12, 7, -5}, {200, 95, 9, 5, 5},
	{342, 105, 12, 7, 5}, {312, 95, 9, 5, -5},
}

// Draw renders the icon at the given pixel size. Supported sizes range
// from 16 to 1024; the glyph stays legible down to 16px because stroke
// widths never drop below one pixel.
func Draw(size int) image.Image {
	dc := gg.NewContext(size, size)

	scale := float64(size) / BaseSize
	// Map a design coordinate through the centered content scale, then
	// to the output resolution.
	s := func(v float64) float64 {
		return ((v-BaseSize/2)*ContentScale + BaseSize/2) * scale
	}
	// Stroke widths and radii scale the same way but never vanish.
	sw := func(v float64) float64 {
		return math.Max(1, v*ContentScale*scale)
	}

	// Everything is drawn inside the rounded-rectangle clip so the
	// corners stay fully transparent.
	dc.DrawRoundedRectangle(0, 0, float64(size), float64(size), float64(size)*CornerRatio)
	dc.Clip()

	dc.SetHexColor(BackgroundColor)
	dc.DrawRectangle(0, 0, float64(size), float64(size))
	dc.Fill()

	dc.SetRGB(1, 1, 1)

	// Main trunk.
	fillPolygon(dc, []gg.Point{
		{X: s(248), Y: s(480)}, {X: s(248), Y: s(320)},
		{X: s(264), Y: s(320)}, {X: s(264), Y: s(480)},
	})

	// Root flares.
	fillPolygon(dc, []gg.Point{
		{X: s(230), Y: s(480)}, {X: s(248), Y: s(450)}, {X: s(248), Y: s(480)},
	})
	fillPolygon(dc, []gg.Point{
		{X: s(264), Y: s(480)}, {X: s(264), Y: s(450)}, {X: s(282), Y: s(480)},
	})

	// Lower trunk widening.
	fillPolygon(dc, []gg.Point{
		{X: s(244), Y: s(380)}, {X: s(244), Y: s(320)}, {X: s(256), Y: s(300)},
		{X: s(268), Y: s(320)}, {X: s(268), Y: s(380)}, {X: s(256), Y: s(395)},
	})

	// Branches: mirrored two-segment strokes through a raised midpoint.
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	for _, b := range branches {
		for _, dir := range []float64{-1, 1} {
			dc.MoveTo(s(256), s(b.y))
			dc.LineTo(s(256+dir*b.spread/2), s(b.y-20+b.droop))
			dc.LineTo(s(256+dir*b.spread), s(b.y+b.droop))
			dc.SetLineWidth(sw(b.width))
			dc.Stroke()
		}
	}

	// Crown.
	dc.DrawEllipse(s(256), s(80), sw(10), sw(25))
	dc.Fill()

	// Leaves.
	for _, l := range leaves {
		dc.Push()
		dc.RotateAbout(gg.Radians(l.angle), s(l.cx), s(l.cy))
		dc.DrawEllipse(s(l.cx), s(l.cy), sw(2*l.rx), sw(2*l.ry))
		dc.Fill()
		dc.Pop()
	}

	return dc.Image()
}

func fillPolygon(dc *gg.Context, pts []gg.Point) {
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.Fill()
}

// WriteIconset renders every required iconset entry into the iconset
// directory.
func WriteIconset(dirs layout.Dirs, log zerolog.Logger) error {
	if err := layout.EnsureDir(dirs.Iconset); err != nil {
		return err
	}
	for _, e := range iconset.Required {
		path := filepath.Join(dirs.Iconset, e.Name)
		if err := imaging.Save(Draw(e.Size), path); err != nil {
			return err
		}
		log.Info().Str("file", e.Name).Int("size", e.Size).Msg("created")
	}
	return nil
}
