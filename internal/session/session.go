// Package session holds the live query state for one launcher
// activation: the current query text, the latest ranked shortlist and
// a bounded selection cursor.
package session

import (
	"github.com/quantmind-br/sling/internal/catalog"
	"github.com/quantmind-br/sling/internal/rank"
)

// Direction moves the selection cursor.
type Direction int

const (
	Up Direction = iota
	Down
)

// Session reacts to query edits and cursor moves synchronously; it
// performs no I/O and owns no timers. One caller context owns a
// Session at a time.
type Session struct {
	store    *catalog.Store
	query    string
	results  []catalog.Item
	selected int
}

// New creates a session over the store's current catalog, with an
// empty query already applied.
func New(store *catalog.Store) *Session {
	s := &Session{store: store}
	s.SetQuery("")
	return s
}

// SetQuery replaces the query text, recomputes the shortlist against
// the store's current catalog and resets the cursor to the top. By the
// time it returns, results and query are consistent.
func (s *Session) SetQuery(text string) {
	s.query = text
	s.results = rank.Rank(text, s.store.Current().Items())
	s.selected = 0
}

// Refresh re-runs the current query, picking up a catalog swapped in
// since the last edit.
func (s *Session) Refresh() {
	s.SetQuery(s.query)
}

// MoveSelection shifts the cursor one step, clamped to the result
// bounds. Moving against a boundary is a no-op.
func (s *Session) MoveSelection(d Direction) {
	switch d {
	case Up:
		if s.selected > 0 {
			s.selected--
		}
	case Down:
		if s.selected < len(s.results)-1 {
			s.selected++
		}
	}
}

// CurrentSelection returns the item under the cursor, or false when
// there are no results to select from.
func (s *Session) CurrentSelection() (catalog.Item, bool) {
	if len(s.results) == 0 {
		return catalog.Item{}, false
	}
	return s.results[s.selected], true
}

// Query returns the current query text.
func (s *Session) Query() string {
	return s.query
}

// Results returns the latest shortlist. Callers must not mutate it.
func (s *Session) Results() []catalog.Item {
	return s.results
}

// SelectedIndex returns the cursor position; 0 when there are no
// results.
func (s *Session) SelectedIndex() int {
	return s.selected
}
