package optimizer

import (
	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// scoreCombination builds a scored Parlay from a leg set. Probability is the
// plain product of per-leg implied probabilities and payout the product of
// per-leg decimal odds; edges average arithmetically. The legs slice is
// copied, so enumeration buffers can be reused by the caller.
func scoreCombination(legs []models.Candidate) Parlay {
	combined := make([]models.Candidate, len(legs))
	copy(combined, legs)

	probability := 1.0
	payout := 1.0
	edgeSum := 0.0
	for _, leg := range combined {
		probability *= leg.ImpliedProb
		payout *= leg.DecimalOdds
		edgeSum += leg.Edge
	}

	return Parlay{
		Legs:                combined,
		CombinedProbability: probability,
		CombinedDecimalOdds: payout,
		AverageEdge:         edgeSum / float64(len(combined)),
	}
}
