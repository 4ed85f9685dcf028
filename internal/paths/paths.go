// Package paths centralizes the filesystem layout the launcher cares
// about: the ordered set of application directories to scan and the
// data files under the user's home.
package paths

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/sling/internal/config"
)

// Resolver computes the launcher's well-known directories from HOME
// and the configuration.
type Resolver struct {
	homeDir string
	cfg     *config.Config
}

// NewResolver creates a Resolver for the current user's HOME.
func NewResolver(cfg *config.Config) *Resolver {
	homeDir, _ := os.UserHomeDir()
	return &Resolver{
		homeDir: homeDir,
		cfg:     cfg,
	}
}

// NewResolverWithHome creates a Resolver with an explicit homeDir,
// useful in tests.
func NewResolverWithHome(cfg *config.Config, homeDir string) *Resolver {
	return &Resolver{
		homeDir: homeDir,
		cfg:     cfg,
	}
}

// HomeDir returns the resolved HOME directory.
func (r *Resolver) HomeDir() string {
	return r.homeDir
}

// UserAppsDir returns ~/.local/share/applications, the per-user
// application directory.
func (r *Resolver) UserAppsDir() string {
	return filepath.Join(r.homeDir, ".local", "share", "applications")
}

// SystemAppsDir returns the primary system application directory.
func (r *Resolver) SystemAppsDir() string {
	return "/usr/share/applications"
}

// LocalAppsDir returns the secondary system application directory.
func (r *Resolver) LocalAppsDir() string {
	return "/usr/local/share/applications"
}

// ScanRoots returns the ordered list of directories handed to the
// scanner: user dir first, then the two system dirs, then any extra
// roots from the configuration. All paths are absolute; expansion
// happens here, not in the scanner.
func (r *Resolver) ScanRoots() []string {
	roots := []string{
		r.UserAppsDir(),
		r.SystemAppsDir(),
		r.LocalAppsDir(),
	}
	if r.cfg != nil {
		for _, extra := range r.cfg.Paths.ExtraRoots {
			roots = append(roots, Expand(extra))
		}
	}
	return roots
}

// IconDirs returns the directories searched when resolving an icon
// handle, preferred locations first.
func (r *Resolver) IconDirs() []string {
	return []string{
		filepath.Join(r.homeDir, ".local", "share", "icons", "hicolor"),
		"/usr/share/icons/hicolor",
		"/usr/share/pixmaps",
	}
}

// HistoryFile returns the launch history database location.
func (r *Resolver) HistoryFile() string {
	if r.cfg != nil && r.cfg.Paths.HistoryFile != "" {
		return r.cfg.Paths.HistoryFile
	}
	return filepath.Join(r.homeDir, ".local", "share", "sling", "history.db")
}

// Expand expands a leading ~ and environment variables in a path.
func Expand(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}
