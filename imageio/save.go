package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const (
	tempPrefix = "image-comparison"
	tempSuffix = ".png"
)

// Format returns the encoder name for the extension of path. Paths without
// an extension are written as png.
func Format(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return "png", nil
	case ".jpg", ".jpeg":
		return "jpeg", nil
	case ".gif":
		return "gif", nil
	case ".bmp":
		return "bmp", nil
	case ".tif", ".tiff":
		return "tiff", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes img to path, creating missing parent directories. The image is
// encoded into a temporary file next to path that replaces path once
// complete.
func Save(img image.Image, path string) (err error) {
	format, err := Format(path)
	if err != nil {
		return err
	}

	destDir, destName := filepath.Split(path)
	if destDir == "" {
		destDir = "."
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("%w %q: %w", ErrCreateDestination, destDir, err)
	}

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	if err = encode(outFile, img, format); err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", strings.ToUpper(format), path, err)
	}

	canRename = true
	return nil
}

// SaveTemp writes img as png to a new file in the temporary directory and
// returns its path.
func SaveTemp(img image.Image) (string, error) {
	f, err := os.CreateTemp("", tempPrefix+"*"+tempSuffix)
	if err != nil {
		return "", fmt.Errorf("could not create temporary file: %w", err)
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not close temporary file %q: %w", name, err)
	}

	if err := Save(img, name); err != nil {
		return "", err
	}
	return name, nil
}

func encode(f *os.File, img image.Image, format string) error {
	switch format {
	case "gif":
		return gif.Encode(f, img, nil)
	case "jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestSpeed,
			BufferPool:       pngPool,
		}
		return enc.Encode(f, img)
	case "bmp":
		return bmp.Encode(f, img)
	case "tiff":
		return tiff.Encode(f, img, nil)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

// Shared by concurrent Save calls.
var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
