package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/xfmoulet/qoi"
)

func writeImage(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.NRGBA{R: 200, G: 10, B: 20, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		encode func(*os.File, image.Image) error
	}{
		{"brick.qoi", func(f *os.File, img image.Image) error { return qoi.Encode(f, img) }},
		{"brick.png", func(f *os.File, img image.Image) error { return png.Encode(f, img) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			writeImage(t, path, tt.encode)

			img, err := DecodeFile(path)
			if err != nil {
				t.Fatalf("DecodeFile failed: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
				t.Errorf("Expected 4x2 image, got %v", b)
			}
			r, _, _, a := img.At(1, 1).RGBA()
			if r>>8 != 200 || a>>8 != 255 {
				t.Errorf("Expected the red pixel to survive, got r=%d a=%d", r>>8, a>>8)
			}
		})
	}
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := DecodeFile(filepath.Join(dir, "missing.qoi")); err == nil {
		t.Error("Expected an error for a missing file")
	}

	bad := filepath.Join(dir, "bad.qoi")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeFile(bad); err == nil {
		t.Error("Expected an error for a corrupt file")
	}
}
