package search

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/appgrid/internal/domain"
)

func entries(names ...string) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(names))
	for i, n := range names {
		out[i] = domain.CatalogEntry{
			Name:        n,
			Copyright:   "© " + n,
			ArtworkURL:  fmt.Sprintf("https://is1.example.com/%d.png", i),
			ReleaseDate: "2021-01-01",
		}
	}
	return out
}

func names(list []domain.CatalogEntry) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Name
	}
	return out
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	got := Filter(entries("App One", "Other", "MyApp"), "app")
	assert.Equal(t, []string{"App One", "MyApp"}, names(got))
}

func TestFilter_EmptyQueryReturnsInput(t *testing.T) {
	in := entries("Zeta", "Alpha", "Mid")
	got := Filter(in, "")
	assert.Equal(t, in, got)
}

func TestFilter_NoTrimming(t *testing.T) {
	in := entries("Two Words", "Oneword")
	assert.Equal(t, []string{"Two Words"}, names(Filter(in, " ")))
	assert.Empty(t, Filter(in, " oneword"))
}

func TestFilter_EmptyEntries(t *testing.T) {
	assert.Empty(t, Filter(nil, "anything"))
	assert.Empty(t, Filter([]domain.CatalogEntry{}, "x"))
}

func TestFilter_Unicode(t *testing.T) {
	in := entries("Café Noir", "CAFÉ BLEU", "Tea")
	assert.Equal(t, []string{"Café Noir", "CAFÉ BLEU"}, names(Filter(in, "café")))
}

func TestFilter_Properties(t *testing.T) {
	pool := []string{"App", "Photo Editor", "Map Pro", "My APP", "Calendar", "Snapchat", "apple notes", "Weather", "TAPPER", ""}
	queries := []string{"", "a", "app", "AP", "er", "notes", "zz", " ", "P"}

	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := rng.Intn(len(pool) + 1)
		list := make([]string, n)
		for i := range list {
			list[i] = pool[rng.Intn(len(pool))]
		}
		in := entries(list...)

		for _, q := range queries {
			got := Filter(in, q)

			// Idempotent
			require.Equal(t, got, Filter(got, q), "query %q", q)

			// Membership matches the predicate exactly, in source order
			var want []domain.CatalogEntry
			for _, e := range in {
				if Match(e.Name, q) {
					want = append(want, e)
				}
			}
			require.Equal(t, len(want), len(got), "query %q", q)
			for i := range want {
				require.Equal(t, want[i], got[i])
			}
		}
	}
}

func TestMatchRange(t *testing.T) {
	tests := []struct {
		name, query string
		start, end  int
		ok          bool
	}{
		{"MyApp", "app", 2, 5, true},
		{"App One", "APP", 0, 3, true},
		{"Café Noir", "é n", 3, 6, true},
		{"Other", "app", 0, 0, false},
		{"Other", "", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.query, func(t *testing.T) {
			start, end, ok := MatchRange(tt.name, tt.query)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
