package catalog

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/quantmind-br/sling/internal/desktop"
)

// EntrySuffix marks a directory entry as a launchable application.
const EntrySuffix = ".desktop"

// fileManagerPath is the desktop file manager. It is pinned into every
// scan so it survives layouts where no scanned root carries it.
const fileManagerPath = "/usr/share/applications/org.gnome.Nautilus.desktop"

// Scanner enumerates launchable items under a set of root directories.
type Scanner struct {
	fs  afero.Fs
	log *zerolog.Logger
}

// NewScanner creates a scanner over the given filesystem.
func NewScanner(fs afero.Fs, log *zerolog.Logger) *Scanner {
	return &Scanner{
		fs:  fs,
		log: log,
	}
}

// Scan lists the immediate children of each root, in root order, and
// returns every entry carrying EntrySuffix as an Item. It never
// recurses. Roots that are missing or unreadable contribute nothing.
// Output order is raw scan order; sorting is the Catalog's job.
func (s *Scanner) Scan(roots []string) []Item {
	var items []Item

	if it, ok := s.readEntry(fileManagerPath); ok {
		items = append(items, it)
	}

	for _, root := range roots {
		infos, err := afero.ReadDir(s.fs, root)
		if err != nil {
			s.log.Debug().Str("root", root).Err(err).Msg("skipping unreadable scan root")
			continue
		}

		for _, info := range infos {
			if info.IsDir() {
				continue
			}
			name := info.Name()
			if !strings.HasSuffix(name, EntrySuffix) {
				continue
			}
			if it, ok := s.readEntry(filepath.Join(root, name)); ok {
				items = append(items, it)
			}
		}
	}

	return items
}

// readEntry builds an Item for a single entry path. The display name is
// the file name with EntrySuffix stripped; the desktop file contents
// only enrich the icon handle and terminal flag. Entries the desktop
// file itself asks to hide are dropped.
func (s *Scanner) readEntry(path string) (Item, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, EntrySuffix) {
		return Item{}, false
	}

	it := Item{
		Name: strings.TrimSuffix(base, EntrySuffix),
		Path: path,
	}

	f, err := s.fs.Open(path)
	if err != nil {
		// The pinned file manager lands here when absent.
		return Item{}, false
	}
	defer f.Close()

	entry, err := desktop.Parse(f)
	if err != nil {
		s.log.Debug().Str("path", path).Err(err).Msg("unparseable desktop entry, keeping bare item")
		return it, true
	}
	if entry.NoDisplay || entry.Hidden {
		return Item{}, false
	}

	it.Icon = entry.Icon
	it.Terminal = entry.Terminal
	return it, true
}
