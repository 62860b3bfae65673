package plot

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// ErrUnsupportedFormat is returned by Save for extensions other than .webp and .tga.
var ErrUnsupportedFormat = errors.New("plot: unsupported image format")

// Save encodes img to path, choosing WebP or TGA from the file extension.
// Missing parent directories are created. A file that fails to encode is removed.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".webp" && ext != ".tga" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("plot: create dir for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	defer f.Close()

	switch ext {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".tga":
		err = tga.Encode(f, img)
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("plot: encode %s: %w", path, err)
	}

	return f.Close()
}
