package iconset

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

func TestRequiredTable(t *testing.T) {
	want := map[string]int{
		"icon_16x16.png":      16,
		"icon_16x16@2x.png":   32,
		"icon_32x32.png":      32,
		"icon_32x32@2x.png":   64,
		"icon_128x128.png":    128,
		"icon_128x128@2x.png": 256,
		"icon_256x256.png":    256,
		"icon_256x256@2x.png": 512,
		"icon_512x512.png":    512,
		"icon_512x512@2x.png": 1024,
	}
	if len(Required) != len(want) {
		t.Fatalf("len(Required) = %d, want %d", len(Required), len(want))
	}
	for _, e := range Required {
		if want[e.Name] != e.Size {
			t.Errorf("%s size = %d, want %d", e.Name, e.Size, want[e.Name])
		}
		if !strings.HasPrefix(e.Name, "icon_") || !strings.HasSuffix(e.Name, ".png") {
			t.Errorf("%s does not follow the naming convention", e.Name)
		}
	}
	for i := 1; i < len(Required); i++ {
		if Required[i].Size < Required[i-1].Size {
			t.Errorf("Required not ordered: %s (%d) after %s (%d)",
				Required[i].Name, Required[i].Size, Required[i-1].Name, Required[i-1].Size)
		}
	}
}

func TestFindSourcePicksLargest(t *testing.T) {
	dir := t.TempDir()
	for _, fixture := range []struct {
		name string
		size int
	}{
		{"icon_16x16.png", 16},
		{"icon_512x512.png", 512},
	} {
		img := imaging.New(fixture.size, fixture.size, color.NRGBA{90, 95, 230, 255})
		if err := imaging.Save(img, filepath.Join(dir, fixture.name)); err != nil {
			t.Fatalf("save fixture: %v", err)
		}
	}

	e, img, err := FindSource(dir)
	if err != nil {
		t.Fatalf("FindSource: %v", err)
	}
	if e.Name != "icon_512x512.png" || e.Size != 512 {
		t.Errorf("source = %s (%d), want icon_512x512.png (512)", e.Name, e.Size)
	}
	if b := img.Bounds(); b.Dx() != 512 {
		t.Errorf("source width = %d, want 512", b.Dx())
	}
}

func TestFindSourceEmpty(t *testing.T) {
	_, _, err := FindSource(t.TempDir())
	if err == nil {
		t.Fatal("expected error for empty directory")
	}
	if !strings.Contains(err.Error(), "no source icon") {
		t.Errorf("error should mention missing source, got: %v", err)
	}
}

func TestCompleteFromSingle512(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(512, 512, color.NRGBA{90, 95, 230, 255})
	if err := imaging.Save(img, filepath.Join(dir, "icon_512x512.png")); err != nil {
		t.Fatalf("save fixture: %v", err)
	}

	res, err := Complete(dir, zerolog.Nop())
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.SourceName != "icon_512x512.png" || res.SourceSize != 512 {
		t.Errorf("source = %s (%d), want icon_512x512.png (512)", res.SourceName, res.SourceSize)
	}
	if len(res.Upscaled) != 1 || res.Upscaled[0] != 1024 {
		t.Errorf("Upscaled = %v, want [1024]", res.Upscaled)
	}

	for _, e := range Required {
		out, err := imaging.Open(filepath.Join(dir, e.Name))
		if err != nil {
			t.Errorf("%s missing: %v", e.Name, err)
			continue
		}
		if b := out.Bounds(); b.Dx() != e.Size || b.Dy() != e.Size {
			t.Errorf("%s = %dx%d, want %dx%d", e.Name, b.Dx(), b.Dy(), e.Size, e.Size)
		}
	}
}

func TestCompleteEmpty(t *testing.T) {
	_, err := Complete(t.TempDir(), zerolog.Nop())
	if err == nil {
		t.Fatal("expected error when no source exists")
	}
}
