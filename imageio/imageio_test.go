package imageio

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.NRGBA{uint8(x * 20), uint8(y * 20), 100, 255})
		}
	}
	return img
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	src := testImage(8, 6)

	for _, name := range []string{"out.png", "out.bmp", "out.tiff", "noext"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", "deeper", name)
			if err := Save(src, path); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, _, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if got.Bounds() != src.Bounds() {
				t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
			}
			for y := range 6 {
				for x := range 8 {
					if got.NRGBAAt(x, y) != src.NRGBAAt(x, y) {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got.NRGBAAt(x, y), src.NRGBAAt(x, y))
					}
				}
			}
		})
	}

	entries, err := os.ReadDir(filepath.Join(dir, "nested", "deeper"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 4 {
		t.Errorf("got %d files, temporary files left behind?", len(entries))
	}
}

func TestLoadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.jpg")
	if err := Save(testImage(4, 4), path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, format, err := Load(path); err != nil || format != "jpeg" {
		t.Errorf("format = %q, %v, want jpeg", format, err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: error = %v, want ErrNotExist", err)
	}

	if _, _, err := Load(dir); !errors.Is(err, ErrNotRegular) {
		t.Errorf("directory: error = %v, want ErrNotRegular", err)
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("definitely not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(junk); !errors.Is(err, ErrDecode) {
		t.Errorf("junk file: error = %v, want ErrDecode", err)
	}
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()

	if err := Save(testImage(2, 2), filepath.Join(dir, "out.webp")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("webp output: error = %v, want ErrUnsupportedFormat", err)
	}

	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := Save(testImage(2, 2), filepath.Join(blocker, "sub", "out.png"))
	if !errors.Is(err, ErrCreateDestination) {
		t.Errorf("parent is a file: error = %v, want ErrCreateDestination", err)
	}
}

func TestSaveTemp(t *testing.T) {
	path, err := SaveTemp(testImage(3, 3))
	if err != nil {
		t.Fatalf("save temp: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	if base := filepath.Base(path); !strings.HasPrefix(base, "image-comparison") || filepath.Ext(base) != ".png" {
		t.Errorf("unexpected temp name %q", base)
	}
	if _, _, err := Load(path); err != nil {
		t.Errorf("load: %v", err)
	}
}

func TestSameSize(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 4, 3))
	b := image.NewGray(image.Rect(10, 10, 14, 13))
	c := image.NewRGBA(image.Rect(0, 0, 3, 4))
	if !SameSize(a, b) {
		t.Error("4x3 images at different origins reported as different sizes")
	}
	if SameSize(a, c) {
		t.Error("4x3 and 3x4 reported as the same size")
	}
}
