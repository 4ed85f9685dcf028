package icons

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/spf13/afero"
)

func writeEmptyFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte{}, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveAbsolutePassthrough(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeEmptyFile(t, fs, "/opt/app/icon.png")

	r := NewResolver(fs, nil)

	got, ok := r.Resolve("/opt/app/icon.png")
	if !ok || got != "/opt/app/icon.png" {
		t.Errorf("Resolve() = %q, %v", got, ok)
	}

	if _, ok := r.Resolve("/opt/app/missing.png"); ok {
		t.Error("missing absolute path must not resolve")
	}
}

func TestResolveThemedTree(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeEmptyFile(t, fs, "/usr/share/icons/hicolor/48x48/apps/firefox.png")
	writeEmptyFile(t, fs, "/usr/share/icons/hicolor/256x256/apps/firefox.png")

	r := NewResolver(fs, []string{"/usr/share/icons/hicolor"})

	got, ok := r.Resolve("firefox")
	if !ok {
		t.Fatal("expected firefox icon to resolve")
	}
	// Larger sizes win.
	if got != "/usr/share/icons/hicolor/256x256/apps/firefox.png" {
		t.Errorf("Resolve() = %q, want the 256x256 variant", got)
	}
}

func TestResolveScalableFallback(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeEmptyFile(t, fs, "/usr/share/icons/hicolor/scalable/apps/inkscape.svg")

	r := NewResolver(fs, []string{"/usr/share/icons/hicolor"})

	got, ok := r.Resolve("inkscape")
	if !ok || got != "/usr/share/icons/hicolor/scalable/apps/inkscape.svg" {
		t.Errorf("Resolve() = %q, %v", got, ok)
	}
}

func TestResolveFlatDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	writeEmptyFile(t, fs, "/usr/share/pixmaps/htop.png")

	r := NewResolver(fs, []string{"/usr/share/icons/hicolor", "/usr/share/pixmaps"})

	got, ok := r.Resolve("htop")
	if !ok || got != "/usr/share/pixmaps/htop.png" {
		t.Errorf("Resolve() = %q, %v", got, ok)
	}
}

func TestResolveNotFound(t *testing.T) {
	t.Parallel()

	r := NewResolver(afero.NewMemMapFs(), []string{"/usr/share/pixmaps"})
	if _, ok := r.Resolve("nope"); ok {
		t.Error("unknown handle must not resolve")
	}
	if _, ok := r.Resolve(""); ok {
		t.Error("empty handle must not resolve")
	}
}

func TestDetectSize(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 48, 48))); err != nil {
		t.Fatal(err)
	}

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/icons/app.png", buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(fs, nil)

	got, err := r.DetectSize("/icons/app.png")
	if err != nil {
		t.Fatalf("DetectSize() error = %v", err)
	}
	if got != "48x48" {
		t.Errorf("DetectSize() = %q, want 48x48", got)
	}
}

func TestDetectSizeSVG(t *testing.T) {
	t.Parallel()

	r := NewResolver(afero.NewMemMapFs(), nil)

	got, err := r.DetectSize("/icons/app.svg")
	if err != nil {
		t.Fatalf("DetectSize() error = %v", err)
	}
	if got != "scalable" {
		t.Errorf("DetectSize() = %q, want scalable", got)
	}
}

func TestDetectSizeUnreadable(t *testing.T) {
	t.Parallel()

	r := NewResolver(afero.NewMemMapFs(), nil)
	if _, err := r.DetectSize("/icons/missing.png"); err == nil {
		t.Error("expected error for missing file")
	}
}
