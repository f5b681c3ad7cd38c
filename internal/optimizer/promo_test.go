package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

func TestNoSweatEV(t *testing.T) {
	// A long-shot 5-leg parlay: 2.45% to win a ~39.78x net payout, with 70%
	// of the stake coming back as a free bet on a loss.
	parlay := Parlay{
		CombinedProbability: 0.0245,
		CombinedDecimalOdds: 40.78,
	}
	promo := PromotionConfig{Stake: 100, FreeBetConversion: 0.70}

	ev := NoSweatEV(parlay, promo)

	win := 0.0245 * 100 * 39.78
	refund := 0.9755 * 100 * 0.70
	assert.InDelta(t, win+refund, ev, 1e-9)
	assert.InDelta(t, 68.285, refund, 0.001)
}

func TestNoSweatEVZeroConversion(t *testing.T) {
	parlay := Parlay{CombinedProbability: 0.5, CombinedDecimalOdds: 3.0}
	promo := PromotionConfig{Stake: 100, FreeBetConversion: 0}

	// Without a free-bet refund, EV reduces to p * stake * (d - 1).
	assert.InDelta(t, 100.0, NoSweatEV(parlay, promo), 1e-9)
}

func TestBestNoSweatPicksMaxEV(t *testing.T) {
	pool := []models.Candidate{
		candidate(t, "A", models.PlayerPoints, 9.5, -450, 0.5),
		candidate(t, "B", models.PlayerRebounds, 5.5, 250, 2.0),
		candidate(t, "C", models.PlayerAssists, 4.5, 400, 1.5),
		candidate(t, "D", models.PlayerPointsAlternate, 19.5, -110, 1.0),
	}
	promo := PromotionConfig{Stake: 100, FreeBetConversion: 0.70}

	best, enum := bestNoSweat(pool, 2, promo, 0)
	require.NotNil(t, best)
	assert.Equal(t, int64(6), enum.visited)
	assert.Equal(t, promo.Stake, best.Stake)
	assert.Equal(t, promo.FreeBetConversion, best.FreeBetConversion)

	// Exhaustively verify the winner really maximizes EV.
	check := &enumeration{candidates: pool, legs: 2}
	check.forEachCombination(func(legs []models.Candidate) {
		parlay := scoreCombination(legs)
		assert.LessOrEqual(t, NoSweatEV(parlay, promo), best.ExpectedValue+1e-12)
	})
}

func TestBestNoSweatEmptyPool(t *testing.T) {
	best, enum := bestNoSweat(nil, 5, PromotionConfig{Stake: 100, FreeBetConversion: 0.7}, 0)
	assert.Nil(t, best)
	assert.Equal(t, int64(0), enum.visited)
}
