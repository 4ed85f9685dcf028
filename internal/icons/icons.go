// Package icons resolves the opaque icon handles carried by catalog
// items to files on disk. Purely presentation-side; the ranking engine
// never calls in here.
package icons

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
)

// Size dirs are probed largest first; a launcher list looks better
// downscaled than upscaled.
var iconSizes = []string{"512x512", "256x256", "128x128", "96x96", "64x64", "48x48", "32x32"}

var iconExts = []string{".png", ".svg", ".xpm", ".ico"}

// Resolver looks icon handles up in a fixed set of directories.
type Resolver struct {
	fs   afero.Fs
	dirs []string
}

// NewResolver creates a resolver searching dirs in order. Directories
// containing "hicolor" are treated as themed trees with per-size
// subdirectories; anything else is searched flat.
func NewResolver(fs afero.Fs, dirs []string) *Resolver {
	return &Resolver{
		fs:   fs,
		dirs: dirs,
	}
}

// Resolve maps a handle to an icon file. Absolute handles pass through
// when the file exists; bare names are searched across the configured
// directories. The second return is false when nothing was found.
func (r *Resolver) Resolve(handle string) (string, bool) {
	if handle == "" {
		return "", false
	}

	if filepath.IsAbs(handle) {
		if ok, _ := afero.Exists(r.fs, handle); ok {
			return handle, true
		}
		return "", false
	}

	for _, dir := range r.dirs {
		if strings.Contains(dir, "hicolor") {
			if p, ok := r.findThemed(dir, handle); ok {
				return p, ok
			}
			continue
		}
		if p, ok := r.findFlat(dir, handle); ok {
			return p, ok
		}
	}

	return "", false
}

func (r *Resolver) findThemed(dir, handle string) (string, bool) {
	for _, size := range iconSizes {
		for _, ext := range iconExts {
			p := filepath.Join(dir, size, "apps", handle+ext)
			if ok, _ := afero.Exists(r.fs, p); ok {
				return p, true
			}
		}
	}
	p := filepath.Join(dir, "scalable", "apps", handle+".svg")
	if ok, _ := afero.Exists(r.fs, p); ok {
		return p, true
	}
	return "", false
}

func (r *Resolver) findFlat(dir, handle string) (string, bool) {
	for _, ext := range iconExts {
		p := filepath.Join(dir, handle+ext)
		if ok, _ := afero.Exists(r.fs, p); ok {
			return p, true
		}
	}
	return "", false
}

// DetectSize reports the pixel size of a raster icon as "WxH", or
// "scalable" for vector formats.
func (r *Resolver) DetectSize(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return "scalable", nil
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("open icon: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return "", fmt.Errorf("decode icon %q: %w", path, err)
	}
	return fmt.Sprintf("%dx%d", cfg.Width, cfg.Height), nil
}
