// Package rank scores catalog items against a query string. It is the
// only part of the launcher with real algorithmic content: a tiered
// matcher where exact beats prefix beats substring beats a greedy
// subsequence walk.
package rank

import (
	"sort"
	"strings"

	"github.com/quantmind-br/sling/internal/catalog"
)

// MaxResults caps the shortlist so downstream rendering never deals
// with an unbounded list.
const MaxResults = 50

// Tier scores. Any subsequence score is expected to land well below
// the substring tier for realistic query lengths.
const (
	scoreExact     = 1000
	scorePrefix    = 900
	scoreSubstring = 500
)

// Match pairs an item with the score it earned for one query. Matches
// are transient; they never outlive a single Rank call.
type Match struct {
	Item  catalog.Item
	Score int
}

// Rank returns the items matching query, best first, capped at
// MaxResults. It is pure: same query and items, same output. An empty
// query short-circuits to the head of the catalog without scoring.
func Rank(query string, items []catalog.Item) []catalog.Item {
	matches := Score(query, items)
	out := make([]catalog.Item, len(matches))
	for i, m := range matches {
		out[i] = m.Item
	}
	return out
}

// Score is Rank with the scores still attached, for callers that want
// to display or inspect them.
func Score(query string, items []catalog.Item) []Match {
	if query == "" {
		n := min(MaxResults, len(items))
		matches := make([]Match, n)
		for i, it := range items[:n] {
			matches[i] = Match{Item: it}
		}
		return matches
	}

	q := strings.ToLower(query)
	matches := make([]Match, 0, len(items))

	for _, it := range items {
		name := strings.ToLower(it.Name)

		var score int
		switch {
		case name == q:
			score = scoreExact
		case strings.HasPrefix(name, q):
			score = scorePrefix
		case strings.Contains(name, q):
			score = scoreSubstring
		default:
			score = subsequenceScore(q, name)
			if score == 0 {
				continue
			}
		}

		matches = append(matches, Match{Item: it, Score: score})
	}

	// Ties keep catalog order, which is itself deterministic, so the
	// sort must be stable.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

// subsequenceScore walks name left to right, consuming query
// characters greedily. Each matched character is worth 1 plus the
// length of the consecutive run it extends, so contiguous matches
// compound while scattered ones stay cheap. Returns 0 unless every
// query character is found in order.
//
// The greedy walk is normative: an ambiguous run like query "oo"
// against "foo" is resolved by this walk, not by searching for a
// better alignment.
func subsequenceScore(query, name string) int {
	qr := []rune(query)
	score, run, qi := 0, 0, 0

	for _, c := range name {
		if qi < len(qr) && c == qr[qi] {
			score += 1 + run
			run++
			qi++
		} else {
			run = 0
		}
	}

	if qi < len(qr) {
		return 0
	}
	return score
}
