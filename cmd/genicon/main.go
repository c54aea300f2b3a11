// genicon draws the ArborChat tree icon at every required size, writes
// the iconset, and exports icon.icns, icon.png and icon.ico into the
// build directory.
// Usage: genicon [-dir build]
package main

import (
	"flag"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/iconset"
	"github.com/arborchat/icons/internal/layout"
	"github.com/arborchat/icons/internal/pack"
	"github.com/arborchat/icons/internal/tree"
)

func main() {
	dir := flag.String("dir", "build", "build directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	dirs := layout.ForBase(*dir)

	if err := tree.WriteIconset(dirs, log); err != nil {
		log.Error().Err(err).Msg("iconset generation failed")
		os.Exit(1)
	}

	// Packaging failures are reported but don't stop the remaining
	// exports; the PNGs on disk are still useful.
	icnsPath := filepath.Join(dirs.Base, "icon.icns")
	if err := pack.Default().Compile(dirs.Iconset, icnsPath); err != nil {
		log.Error().Err(err).Msg("icns packaging failed")
	} else {
		log.Info().Str("file", "icon.icns").Msg("packaged")
	}

	if err := imaging.Save(tree.Draw(512), filepath.Join(dirs.Base, "icon.png")); err != nil {
		log.Error().Err(err).Msg("icon.png failed")
	} else {
		log.Info().Str("file", "icon.png").Msg("created")
	}

	images := make([]image.Image, 0, len(iconset.ICOSizes))
	for _, size := range iconset.ICOSizes {
		images = append(images, tree.Draw(size))
	}
	if err := pack.WriteICO(filepath.Join(dirs.Base, "icon.ico"), images); err != nil {
		log.Error().Err(err).Msg("icon.ico failed")
	} else {
		log.Info().Str("file", "icon.ico").Msg("created")
	}
}
