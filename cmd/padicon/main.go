// padicon rescales every icon in the iconset to the macOS HIG content
// ratio (84% of the canvas, centered over transparent margins),
// overwriting the files in place. The original iconset is copied to a
// backup directory on the first run; icons that are already padded are
// detected and skipped.
// Usage: padicon [-dir build]
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/layout"
	"github.com/arborchat/icons/internal/pad"
)

func main() {
	dir := flag.String("dir", "build", "build directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	dirs := layout.ForBase(*dir)

	if err := pad.Dir(dirs, log); err != nil {
		log.Error().Err(err).Msg("padding failed")
		os.Exit(1)
	}
}
