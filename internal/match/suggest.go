package match

import (
	"cmp"
	"slices"
	"strings"
)

// MinSuggestScore is the similarity below which a candidate is not offered.
const MinSuggestScore = 0.6

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit candidates that resemble name, best first.
// Candidates are compared by their last dot-separated element, so
// "github.com/acme/store.OrderItem" is compared as "OrderItem". Ties keep
// alphabetical order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	want := NormalizeIdent(lastElem(name))

	var ranked []scored

	for _, c := range candidates {
		score := Similarity(want, NormalizeIdent(lastElem(c)))
		if score >= MinSuggestScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return strings.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}

func lastElem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}
