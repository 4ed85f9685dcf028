package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/sling/internal/config"
)

func TestNewResolver(t *testing.T) {
	cfg := &config.Config{}
	resolver := NewResolver(cfg)

	if resolver == nil {
		t.Fatal("NewResolver should not return nil")
	}

	homeDir, _ := os.UserHomeDir()
	if resolver.homeDir != homeDir {
		t.Errorf("NewResolver homeDir = %q, want %q", resolver.homeDir, homeDir)
	}
}

func TestScanRootsOrder(t *testing.T) {
	cfg := &config.Config{}
	resolver := NewResolverWithHome(cfg, "/home/user")

	roots := resolver.ScanRoots()
	want := []string{
		"/home/user/.local/share/applications",
		"/usr/share/applications",
		"/usr/local/share/applications",
	}

	if len(roots) != len(want) {
		t.Fatalf("expected %d roots, got %d", len(want), len(roots))
	}
	for i := range want {
		if roots[i] != want[i] {
			t.Errorf("root %d = %q, want %q", i, roots[i], want[i])
		}
	}
}

func TestScanRootsIncludesExtras(t *testing.T) {
	cfg := &config.Config{}
	cfg.Paths.ExtraRoots = []string{"/opt/apps"}
	resolver := NewResolverWithHome(cfg, "/home/user")

	roots := resolver.ScanRoots()
	if len(roots) != 4 {
		t.Fatalf("expected 4 roots, got %d", len(roots))
	}
	if roots[3] != "/opt/apps" {
		t.Errorf("extra root must come last, got %q", roots[3])
	}
}

func TestHistoryFile(t *testing.T) {
	cfg := &config.Config{}
	resolver := NewResolverWithHome(cfg, "/home/user")

	want := filepath.Join("/home/user", ".local", "share", "sling", "history.db")
	if got := resolver.HistoryFile(); got != want {
		t.Errorf("HistoryFile() = %q, want %q", got, want)
	}

	cfg.Paths.HistoryFile = "/tmp/custom.db"
	if got := resolver.HistoryFile(); got != "/tmp/custom.db" {
		t.Errorf("HistoryFile() = %q, want the configured path", got)
	}
}

func TestIconDirs(t *testing.T) {
	resolver := NewResolverWithHome(&config.Config{}, "/home/user")

	dirs := resolver.IconDirs()
	if len(dirs) != 3 {
		t.Fatalf("expected 3 icon dirs, got %d", len(dirs))
	}
	if dirs[0] != "/home/user/.local/share/icons/hicolor" {
		t.Errorf("user icons dir first, got %q", dirs[0])
	}
}

func TestExpand(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	if got := Expand("~/bin"); got != filepath.Join(homeDir, "bin") {
		t.Errorf("Expand(~/bin) = %q", got)
	}
	if got := Expand("/absolute"); got != "/absolute" {
		t.Errorf("Expand(/absolute) = %q", got)
	}
	if got := Expand(""); got != "" {
		t.Errorf("Expand(\"\") = %q", got)
	}
}
