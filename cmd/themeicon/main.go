// themeicon recolors the base iconset into one iconset per app theme
// and compiles each into a .icns container under themed-icons/. The
// white tree is preserved; only the background takes the theme color.
// Usage: themeicon [-dir build]
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/layout"
	"github.com/arborchat/icons/internal/pack"
	"github.com/arborchat/icons/internal/theme"
)

func main() {
	dir := flag.String("dir", "build", "build directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	dirs := layout.ForBase(*dir)

	if err := layout.EnsureDir(dirs.Themed); err != nil {
		log.Error().Err(err).Msg("output directory")
		os.Exit(1)
	}
	theme.BuildAll(dirs, pack.Default(), log)
}
