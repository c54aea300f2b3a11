package pack

import (
	"image"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

func TestIconutilMissing(t *testing.T) {
	if _, err := exec.LookPath("iconutil"); err == nil {
		t.Skip("iconutil is installed, skipping missing-tool test")
	}

	err := Iconutil{}.Compile("icon.iconset", "icon.icns")
	if err == nil {
		t.Fatal("expected error when iconutil is not installed")
	}
	if !strings.Contains(err.Error(), "iconutil") {
		t.Errorf("error should mention iconutil, got: %v", err)
	}
}

func TestEncoderCompile(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(512, 512, color.NRGBA{88, 101, 242, 255})
	if err := imaging.Save(img, filepath.Join(dir, "icon_512x512.png")); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	out := filepath.Join(t.TempDir(), "icon.icns")
	if err := (Encoder{}).Compile(dir, out); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[:4]) != "icns" {
		t.Errorf("output does not start with the icns magic, got %d bytes", len(data))
	}
}

func TestEncoderCompileEmptyDir(t *testing.T) {
	err := (Encoder{}).Compile(t.TempDir(), filepath.Join(t.TempDir(), "icon.icns"))
	if err == nil {
		t.Fatal("expected error for empty iconset directory")
	}
}

func TestDefaultNotNil(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() = nil")
	}
}

func TestWriteICO(t *testing.T) {
	images := []image.Image{
		imaging.New(16, 16, color.NRGBA{88, 101, 242, 255}),
		imaging.New(32, 32, color.NRGBA{88, 101, 242, 255}),
	}
	path := filepath.Join(t.TempDir(), "icon.ico")
	if err := WriteICO(path, images); err != nil {
		t.Fatalf("WriteICO: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// ICONDIR header: reserved 0, type 1, count 2.
	if len(data) < 6 || data[0] != 0 || data[1] != 0 || data[2] != 1 || data[3] != 0 {
		t.Fatalf("bad ICO header: % x", data[:6])
	}
	if data[4] != 2 || data[5] != 0 {
		t.Errorf("image count = %d, want 2", int(data[4])|int(data[5])<<8)
	}
}
