package catalog

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Catalog is an immutable snapshot of launchable items, sorted
// ascending by case-insensitive name. A rescan builds a brand-new
// Catalog; an existing one is never patched in place.
type Catalog struct {
	items []Item
}

// New builds a catalog from raw scan output. Items sharing a path are
// collapsed to the first occurrence, then everything is sorted by
// lowercased name. Input order breaks ties between equal names.
func New(items []Item) *Catalog {
	seen := make(map[string]struct{}, len(items))
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if _, dup := seen[it.Path]; dup {
			continue
		}
		seen[it.Path] = struct{}{}
		kept = append(kept, it)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return strings.ToLower(kept[i].Name) < strings.ToLower(kept[j].Name)
	})

	return &Catalog{items: kept}
}

// Items returns the sorted items. Callers must not mutate the slice.
func (c *Catalog) Items() []Item {
	return c.items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Store publishes catalogs to readers as whole snapshots. A rescan
// swaps in its finished catalog in one step, so a reader either sees
// the previous catalog or the complete new one, never a mix.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding an empty catalog.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(New(nil))
	return s
}

// Swap replaces the published catalog.
func (s *Store) Swap(c *Catalog) {
	if c == nil {
		c = New(nil)
	}
	s.current.Store(c)
}

// Current returns the most recently published catalog.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}
