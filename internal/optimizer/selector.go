package optimizer

import (
	"sort"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// mostProbable returns the top count parlays by combined probability
// descending, ties broken by average edge descending. The sort is stable so
// equal parlays keep enumeration order and runs stay reproducible.
func mostProbable(parlays []Parlay, count int) []Parlay {
	ranked := make([]Parlay, len(parlays))
	copy(ranked, parlays)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].CombinedProbability != ranked[j].CombinedProbability {
			return ranked[i].CombinedProbability > ranked[j].CombinedProbability
		}
		return ranked[i].AverageEdge > ranked[j].AverageEdge
	})
	if count > len(ranked) {
		count = len(ranked)
	}
	return ranked[:count]
}

// bestTwoLeg runs its own enumerate-and-score pass over 2-subsets and picks
// the parlay maximizing average edge, subject to a decimal payout floor and a
// minimum combined probability. A nil return means no 2-leg combination
// cleared the constraints, which is a normal outcome rather than an error.
func bestTwoLeg(candidates []models.Candidate, payoutFloor, probabilityFloor float64, cap int64) (*Parlay, *enumeration) {
	enum := &enumeration{candidates: candidates, legs: 2, cap: cap}

	var best *Parlay
	enum.forEachCombination(func(legs []models.Candidate) {
		parlay := scoreCombination(legs)
		if payoutFloor > 0 && parlay.CombinedDecimalOdds < payoutFloor {
			return
		}
		if parlay.CombinedProbability < probabilityFloor {
			return
		}
		if best == nil || parlay.AverageEdge > best.AverageEdge {
			best = &parlay
		}
	})
	return best, enum
}
