package optimizer

import (
	"sort"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// bestQuotes collapses duplicate quotes for the same (player, market, line)
// to the single best price. Higher American odds always pay more, so they
// win regardless of sign.
func bestQuotes(candidates []models.Candidate) []models.Candidate {
	type quoteKey struct {
		player string
		market models.MarketKey
		line   float64
	}

	best := make(map[quoteKey]models.Candidate, len(candidates))
	order := make([]quoteKey, 0, len(candidates))
	for _, c := range candidates {
		key := quoteKey{c.Player, c.Market, c.Line}
		prev, seen := best[key]
		if !seen {
			order = append(order, key)
			best[key] = c
			continue
		}
		if c.AmericanOdds > prev.AmericanOdds {
			best[key] = c
		}
	}

	out := make([]models.Candidate, 0, len(best))
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// Filter returns the candidates passing every eligibility rule: book,
// direction, stat-family allow-list, price floor and positive edge.
// Candidates sharing a LegKey all survive; the conflict is enforced at
// enumeration time, since different parlays may legitimately use different
// line variants of the same slot.
func Filter(candidates []models.Candidate, cfg Config) []models.Candidate {
	allowed := make(map[string]bool, len(cfg.AllowedFamilies))
	for _, family := range cfg.AllowedFamilies {
		allowed[family] = true
	}

	filtered := make([]models.Candidate, 0, len(candidates))
	for _, c := range bestQuotes(candidates) {
		if cfg.Book != "" && c.Book != cfg.Book {
			continue
		}
		if c.Direction != cfg.Direction {
			continue
		}
		if len(allowed) > 0 && !allowed[c.Market.Family()] {
			continue
		}
		if c.AmericanOdds < 0 && c.AmericanOdds < cfg.PriceFloor {
			continue
		}
		if c.Edge <= 0 {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// rank orders candidates by the bounding priority score: edge descending,
// then implied probability descending. The sort is stable so runs are
// reproducible for equal candidates.
func rank(candidates []models.Candidate) []models.Candidate {
	ranked := make([]models.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Edge != ranked[j].Edge {
			return ranked[i].Edge > ranked[j].Edge
		}
		return ranked[i].ImpliedProb > ranked[j].ImpliedProb
	})
	return ranked
}

// truncate keeps the top limit candidates of an already-ranked slice and
// reports whether anything was cut.
func truncate(ranked []models.Candidate, limit int) ([]models.Candidate, bool) {
	if limit <= 0 || len(ranked) <= limit {
		return ranked, false
	}
	return ranked[:limit], true
}
