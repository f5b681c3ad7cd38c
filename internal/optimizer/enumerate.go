package optimizer

import (
	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// enumeration walks k-subsets of a candidate slice and tracks how many
// combinations were visited against the hard cap.
type enumeration struct {
	candidates []models.Candidate
	legs       int
	cap        int64

	visited int64
	capped  bool
}

// forEachCombination calls visit with every k-subset of candidates whose
// LegKeys are pairwise distinct. The slice passed to visit is reused between
// calls; visitors must copy it if they keep it. Enumeration stops early once
// the combination cap is hit, which is recorded on the enumeration rather
// than silently swallowed.
func (e *enumeration) forEachCombination(visit func(legs []models.Candidate)) {
	if e.legs < 1 || len(e.candidates) < e.legs {
		return
	}

	current := make([]models.Candidate, 0, e.legs)
	used := make(map[models.LegKey]bool, e.legs)

	var backtrack func(start int)
	backtrack = func(start int) {
		if e.capped {
			return
		}
		if len(current) == e.legs {
			if e.cap > 0 && e.visited >= e.cap {
				e.capped = true
				return
			}
			e.visited++
			visit(current)
			return
		}
		// Not enough candidates left to complete the combination.
		remaining := e.legs - len(current)
		for i := start; i <= len(e.candidates)-remaining; i++ {
			key := e.candidates[i].LegKey()
			if used[key] {
				continue
			}
			used[key] = true
			current = append(current, e.candidates[i])
			backtrack(i + 1)
			current = current[:len(current)-1]
			delete(used, key)
			if e.capped {
				return
			}
		}
	}

	backtrack(0)
}
