package match

import (
	"sort"

	"github.com/samber/lo"
)

// MinSuggestionScore is the similarity below which candidates are not
// suggested.
const MinSuggestionScore = 0.5

// Suggest returns up to limit candidates most similar to name, best first.
// Ties keep candidate order.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	ranked := lo.FilterMap(lo.Uniq(candidates), func(c string, _ int) (scored, bool) {
		s := Similarity(name, c)
		return scored{name: c, score: s}, s >= MinSuggestionScore
	})

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return lo.Map(ranked, func(s scored, _ int) string { return s.name })
}
