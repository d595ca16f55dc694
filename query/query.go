// Package query remembers submitted search queries and suggests them back,
// ranked by how often they were used.
package query

import (
	"strings"
	"sync"

	"github.com/animeflow/animeflow/filesystem"
	"github.com/animeflow/animeflow/key"
	"github.com/animeflow/animeflow/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	mu          sync.Mutex
	suggestions = make(map[string][]*record)
)

// Remember records a query, adding weight to its rank when it is already known.
// Blank queries are ignored.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	records := load()
	if r, ok := records[q]; ok {
		r.Rank += weight
	} else {
		records[q] = &record{Rank: weight, Query: q}
	}

	mu.Lock()
	suggestions = make(map[string][]*record)
	mu.Unlock()

	return cacher.Set(records)
}

// Suggest returns the best ranked suggestion for a partial query.
func Suggest(q string) mo.Option[string] {
	found := SuggestMany(q)
	if len(found) == 0 {
		return mo.None[string]()
	}
	return mo.Some(found[0])
}

// SuggestMany returns every remembered query fuzzily matching q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	matched, ok := suggestions[q]
	if !ok {
		for _, r := range load() {
			if fuzzy.Match(q, r.Query) {
				matched = append(matched, r)
			}
		}

		slices.SortStableFunc(matched, func(a, b *record) int {
			if a.Rank == b.Rank {
				return strings.Compare(a.Query, b.Query)
			}
			return b.Rank - a.Rank
		})

		suggestions[q] = matched
	}

	return lo.Map(matched, func(r *record, _ int) string {
		return r.Query
	})
}

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return make(map[string]*record)
	}
	return cached
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
