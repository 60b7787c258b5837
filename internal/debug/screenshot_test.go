package debug

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func TestCaptureFromPixels(t *testing.T) {
	tests := []struct {
		format string
		decode func(io.Reader) (image.Image, error)
	}{
		{"png", png.Decode},
		{"bmp", bmp.Decode},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "shots")
			sc := NewScreenshotCapture(dir, "frame", tt.format)

			// 1x2 image: bottom row red, top row blue (GL order).
			pixels := []byte{
				255, 0, 0, 255,
				0, 0, 255, 255,
			}
			path, err := sc.CaptureFromPixels(pixels, 1, 2, 7)
			if err != nil {
				t.Fatalf("CaptureFromPixels() error = %v", err)
			}
			if want := filepath.Join(dir, "frame_000007."+tt.format); path != want {
				t.Errorf("path = %s, want %s", path, want)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer f.Close()
			img, err := tt.decode(f)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			r, _, b, _ := img.At(0, 0).RGBA()
			if b == 0 || r != 0 {
				t.Errorf("top-left pixel should be blue after flip, got r=%d b=%d", r, b)
			}
		})
	}
}

func TestNewScreenshotCaptureUnknownFormat(t *testing.T) {
	sc := NewScreenshotCapture("", "shot", "tiff")
	if got := sc.Filename(1); got != "shot_000001.png" {
		t.Errorf("Filename() = %s, want shot_000001.png", got)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame", "png")
	if _, err := sc.CaptureFromPixels([]byte{1, 2, 3}, 1, 1, 0); err == nil {
		t.Error("expected size mismatch error")
	}
}
