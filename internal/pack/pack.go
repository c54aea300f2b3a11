// Package pack is the boundary to icon container formats: compiling an
// iconset directory into a .icns file and assembling a multi-resolution
// Windows .ico. The .icns step is modeled as an injected Packager so
// the image transforms can be tested without iconutil present.
package pack

import (
	"fmt"
	"image"
	"os"
	"os/exec"

	"github.com/jackmordaunt/icns/v3"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/arborchat/icons/internal/iconset"
)

// Packager compiles a directory of correctly named PNGs into a single
// compound icon container at icnsPath.
type Packager interface {
	Compile(iconsetDir, icnsPath string) error
}

// Iconutil shells out to the macOS iconutil tool.
type Iconutil struct{}

// Compile runs iconutil -c icns over the iconset directory.
// Returns an error if iconutil is not found on PATH.
func (Iconutil) Compile(iconsetDir, icnsPath string) error {
	if _, err := exec.LookPath("iconutil"); err != nil {
		return fmt.Errorf("iconutil not found on PATH: %w", err)
	}
	cmd := exec.Command("iconutil", "-c", "icns", iconsetDir, "-o", icnsPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("iconutil: %w\n%s", err, out)
	}
	return nil
}

// Encoder builds the .icns in-process from the largest PNG in the
// iconset directory. Used where iconutil is unavailable.
type Encoder struct{}

// Compile encodes the largest available required icon into icnsPath.
func (Encoder) Compile(iconsetDir, icnsPath string) error {
	_, img, err := iconset.FindSource(iconsetDir)
	if err != nil {
		return err
	}
	f, err := os.Create(icnsPath)
	if err != nil {
		return err
	}
	if err := icns.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode icns: %w", err)
	}
	return f.Close()
}

// Default returns the iconutil packager when the tool is on PATH and
// the pure-Go encoder otherwise.
func Default() Packager {
	if _, err := exec.LookPath("iconutil"); err == nil {
		return Iconutil{}
	}
	return Encoder{}
}

// WriteICO writes the images into a single multi-resolution .ico file.
func WriteICO(path string, images []image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return fmt.Errorf("encode ico: %w", err)
	}
	return f.Close()
}
