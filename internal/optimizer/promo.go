package optimizer

import (
	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// NoSweatEV is the expected value of a parlay under a no-sweat promotion:
// win the net payout with combined probability p, otherwise get a fraction
// of the stake back as a free bet valued at the conversion rate.
func NoSweatEV(parlay Parlay, promo PromotionConfig) float64 {
	win := parlay.CombinedProbability * promo.Stake * (parlay.CombinedDecimalOdds - 1)
	refund := (1 - parlay.CombinedProbability) * promo.Stake * promo.FreeBetConversion
	return win + refund
}

// bestNoSweat searches legal legs-sized combinations for the EV-maximizing
// parlay under the promotion payout model. Candidates are expected to be
// pre-filtered to the promotion's book, families, direction and price floor.
// Ties in EV keep the first combination enumerated, so results are stable.
func bestNoSweat(candidates []models.Candidate, legs int, promo PromotionConfig, cap int64) (*PromoParlay, *enumeration) {
	enum := &enumeration{candidates: candidates, legs: legs, cap: cap}

	var best *PromoParlay
	enum.forEachCombination(func(combo []models.Candidate) {
		parlay := scoreCombination(combo)
		ev := NoSweatEV(parlay, promo)
		if best == nil || ev > best.ExpectedValue {
			best = &PromoParlay{
				Parlay:            parlay,
				ExpectedValue:     ev,
				Stake:             promo.Stake,
				FreeBetConversion: promo.FreeBetConversion,
			}
		}
	})
	return best, enum
}
