package rank

import (
	"fmt"
	"testing"

	"github.com/quantmind-br/sling/internal/catalog"
)

func items(names ...string) []catalog.Item {
	its := make([]catalog.Item, len(names))
	for i, n := range names {
		its[i] = catalog.Item{Name: n, Path: "/apps/" + n + ".desktop"}
	}
	return its
}

func names(its []catalog.Item) []string {
	out := make([]string, len(its))
	for i, it := range its {
		out[i] = it.Name
	}
	return out
}

func TestRankEmptyQueryReturnsCatalogPrefix(t *testing.T) {
	t.Parallel()

	cat := items("Alpha", "Beta", "Gamma")
	got := Rank("", cat)

	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, it := range got {
		if it.Name != cat[i].Name {
			t.Errorf("result %d = %q, want catalog order %q", i, it.Name, cat[i].Name)
		}
	}
}

func TestRankEmptyQueryCapped(t *testing.T) {
	t.Parallel()

	var cat []catalog.Item
	for i := 0; i < 120; i++ {
		cat = append(cat, catalog.Item{
			Name: fmt.Sprintf("App %03d", i),
			Path: fmt.Sprintf("/apps/app-%03d.desktop", i),
		})
	}

	got := Rank("", cat)
	if len(got) != MaxResults {
		t.Fatalf("expected %d results, got %d", MaxResults, len(got))
	}
	if got[0].Name != "App 000" || got[MaxResults-1].Name != "App 049" {
		t.Errorf("expected the catalog head, got %q..%q", got[0].Name, got[MaxResults-1].Name)
	}
}

func TestRankTierOrdering(t *testing.T) {
	t.Parallel()

	// Exact beats prefix beats substring beats subsequence. "Fgoo"
	// still matches "foo" through the greedy walk (f, skip g, o, o)
	// and lands last.
	cat := items("AFoo B", "Fgoo", "Foo", "Foobar", "Xyzzy")

	got := names(Rank("foo", cat))
	want := []string{"Foo", "Foobar", "AFoo B", "Fgoo"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRankExcludesNonSubsequences(t *testing.T) {
	t.Parallel()

	cat := items("Calculator", "Terminal", "Files")

	got := Rank("xq", cat)
	if len(got) != 0 {
		t.Errorf("expected no matches for %q, got %v", "xq", names(got))
	}

	// Every result must contain the query characters in order.
	got = Rank("clr", cat)
	for _, it := range got {
		if it.Name != "Calculator" {
			t.Errorf("unexpected match %q for subsequence query", it.Name)
		}
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	t.Parallel()

	cat := items("FireFox")
	if got := Rank("FIREFOX", cat); len(got) != 1 {
		t.Fatalf("expected case-insensitive exact match, got %v", names(got))
	}
}

func TestRankCapKeepsHighestScores(t *testing.T) {
	t.Parallel()

	// 200 items that all match "a": 100 prefix-tier, 100 substring-tier.
	var cat []catalog.Item
	for i := 0; i < 100; i++ {
		cat = append(cat, catalog.Item{
			Name: fmt.Sprintf("a prefix %03d", i),
			Path: fmt.Sprintf("/apps/p%03d.desktop", i),
		})
	}
	for i := 0; i < 100; i++ {
		cat = append(cat, catalog.Item{
			Name: fmt.Sprintf("has a inside %03d", i),
			Path: fmt.Sprintf("/apps/s%03d.desktop", i),
		})
	}

	got := Rank("a", cat)
	if len(got) != MaxResults {
		t.Fatalf("expected cap of %d, got %d", MaxResults, len(got))
	}
	for i, it := range got {
		// The prefix tier outscores the substring tier, so the whole
		// shortlist comes from it, in catalog order.
		want := fmt.Sprintf("a prefix %03d", i)
		if it.Name != want {
			t.Fatalf("result %d = %q, want %q", i, it.Name, want)
		}
	}
}

func TestRankStableWithinTier(t *testing.T) {
	t.Parallel()

	cat := items("Calculator", "Calendar")
	got := names(Rank("cal", cat))
	want := []string{"Calculator", "Calendar"}

	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRankQueryLongerThanName(t *testing.T) {
	t.Parallel()

	cat := items("Vim")
	if got := Rank("vim extra characters", cat); len(got) != 0 {
		t.Errorf("expected no match for an over-long query, got %v", names(got))
	}
}

func TestSubsequenceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		text  string
		want  int
	}{
		{
			// f(+1, run 1), g resets, o(+1, run 1), o(+2, run 2)
			name:  "fgoo exercise case",
			query: "foo",
			text:  "fgoo",
			want:  4,
		},
		{
			// Greedy walk consumes the second o inside the run: o(+1), o(+2).
			name:  "ambiguous run resolved greedily",
			query: "oo",
			text:  "foo",
			want:  3,
		},
		{
			// Fully contiguous: 1+2+3.
			name:  "contiguous run compounds",
			query: "abc",
			text:  "xabcx",
			want:  6,
		},
		{
			// Scattered: each match restarts at 1.
			name:  "scattered match stays cheap",
			query: "abc",
			text:  "a-b-c",
			want:  3,
		},
		{
			name:  "query not fully consumed",
			query: "abz",
			text:  "abc",
			want:  0,
		},
		{
			name:  "empty text",
			query: "a",
			text:  "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := subsequenceScore(tt.query, tt.text); got != tt.want {
				t.Errorf("subsequenceScore(%q, %q) = %d, want %d", tt.query, tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreExposesTiers(t *testing.T) {
	t.Parallel()

	cat := items("Foo", "Foobar", "AFoo B", "Fgoo")
	matches := Score("foo", cat)

	wantScores := map[string]int{
		"Foo":    1000,
		"Foobar": 900,
		"AFoo B": 500,
		"Fgoo":   4,
	}
	if len(matches) != len(wantScores) {
		t.Fatalf("expected %d matches, got %d", len(wantScores), len(matches))
	}
	for _, m := range matches {
		if want := wantScores[m.Item.Name]; m.Score != want {
			t.Errorf("%s scored %d, want %d", m.Item.Name, m.Score, want)
		}
	}
}
