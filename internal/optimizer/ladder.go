package optimizer

import (
	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// Ladder produces the companion parlay with every leg stepped up to the next
// stricter line: for each leg it looks through pool for the same player and
// stat family and takes the smallest line strictly greater than the leg's
// line. A leg with no higher line in the pool is kept unchanged and marked
// held, so consumers can tell a laddered leg from a held one. The result is
// rescored from scratch; the input parlay is not touched.
func Ladder(parlay Parlay, pool []models.Candidate) LadderedParlay {
	legs := make([]models.Candidate, len(parlay.Legs))
	held := make([]bool, len(parlay.Legs))

	for i, leg := range parlay.Legs {
		if next, ok := nextHigherLine(leg, pool); ok {
			legs[i] = next
		} else {
			legs[i] = leg
			held[i] = true
		}
	}

	return LadderedParlay{
		Parlay: scoreCombination(legs),
		Held:   held,
	}
}

func nextHigherLine(leg models.Candidate, pool []models.Candidate) (models.Candidate, bool) {
	key := leg.LegKey()
	var best models.Candidate
	found := false
	for _, c := range pool {
		if c.LegKey() != key || c.Line <= leg.Line {
			continue
		}
		if !found || c.Line < best.Line {
			best = c
			found = true
		}
	}
	return best, found
}
