// prepicon fills gaps in the iconset by resampling every required size
// from the largest icon present, then runs themeicon to regenerate the
// themed variants, relaying its output.
// Usage: prepicon [-dir build]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/arborchat/icons/internal/iconset"
	"github.com/arborchat/icons/internal/layout"
)

func main() {
	dir := flag.String("dir", "build", "build directory")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	dirs := layout.ForBase(*dir)

	if _, err := iconset.Complete(dirs.Iconset, log); err != nil {
		log.Error().Err(err).Msg("iconset preparation failed")
		os.Exit(1)
	}
	log.Info().Msg("iconset prepared, running themeicon")

	if err := runThemeicon(*dir); err != nil {
		log.Error().Err(err).Msg("themeicon failed")
		os.Exit(1)
	}
}

// runThemeicon invokes the themeicon binary (preferring the one next to
// this executable, falling back to PATH) and relays its captured
// output.
func runThemeicon(dir string) error {
	name := "themeicon"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := name
	if exe, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(exe), name)
		if _, err := os.Stat(sibling); err == nil {
			path = sibling
		}
	}

	cmd := exec.Command(path, "-dir", dir)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if stdout.Len() > 0 {
		fmt.Fprint(os.Stdout, stdout.String())
	}
	if stderr.Len() > 0 {
		fmt.Fprint(os.Stderr, stderr.String())
	}
	if err != nil {
		return fmt.Errorf("run %s: %w", path, err)
	}
	return nil
}
