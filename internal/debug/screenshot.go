package debug

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Screenshot encoders by format name.
var encoders = map[string]func(io.Writer, image.Image) error{
	"png": png.Encode,
	"bmp": bmp.Encode,
}

// ScreenshotFormats returns the accepted screenshot format names.
func ScreenshotFormats() []string {
	return []string{"bmp", "png"}
}

// ScreenshotCapture writes rendered frames to image files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	format    string
}

// NewScreenshotCapture creates a capture handler writing into outputDir.
// Unknown formats fall back to png.
func NewScreenshotCapture(outputDir, prefix, format string) *ScreenshotCapture {
	if _, ok := encoders[format]; !ok {
		format = "png"
	}
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
	}
}

// Filename returns the path used for the given frame number.
func (sc *ScreenshotCapture) Filename(frame uint64) string {
	name := fmt.Sprintf("%s_%06d.%s", sc.prefix, frame, sc.format)
	if sc.outputDir != "" {
		name = filepath.Join(sc.outputDir, name)
	}
	return name
}

// CaptureFromPixels saves RGBA pixels read back from the GL framebuffer.
// Rows are flipped since GL's origin is bottom-left.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int, frame uint64) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}

	return sc.save(img, frame)
}

func (sc *ScreenshotCapture) save(img image.Image, frame uint64) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := sc.Filename(frame)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encoders[sc.format](file, img); err != nil {
		return "", fmt.Errorf("encoding %s: %w", sc.format, err)
	}
	return filename, nil
}
