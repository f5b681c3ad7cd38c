package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

func TestForEachCombinationCountsKSubsets(t *testing.T) {
	pool := []models.Candidate{
		candidate(t, "A", models.PlayerPoints, 9.5, -200, 1.0),
		candidate(t, "B", models.PlayerRebounds, 5.5, -150, 1.0),
		candidate(t, "C", models.PlayerAssists, 4.5, 120, 1.0),
		candidate(t, "D", models.PlayerPoints, 19.5, -110, 1.0),
	}

	enum := &enumeration{candidates: pool, legs: 2}
	count := 0
	enum.forEachCombination(func(legs []models.Candidate) {
		count++
		assert.Len(t, legs, 2)
	})

	// C(4,2) = 6, all players distinct so no conflicts.
	assert.Equal(t, 6, count)
	assert.Equal(t, int64(6), enum.visited)
	assert.False(t, enum.capped)
}

func TestForEachCombinationSkipsSharedLegKeys(t *testing.T) {
	// Standard and alternate rebounds for the same player collide.
	standard := candidate(t, "Obi Toppin", models.PlayerRebounds, 3.5, -200, 1.0)
	alternate := candidate(t, "Obi Toppin", models.PlayerReboundsAlternate, 4.5, 130, 1.0)
	other := candidate(t, "Pascal Siakam", models.PlayerPoints, 19.5, -120, 1.0)

	enum := &enumeration{candidates: []models.Candidate{standard, alternate, other}, legs: 2}
	var combos [][]models.Candidate
	enum.forEachCombination(func(legs []models.Candidate) {
		copied := make([]models.Candidate, len(legs))
		copy(copied, legs)
		combos = append(combos, copied)
	})

	// Only {standard, other} and {alternate, other} are legal.
	require.Len(t, combos, 2)
	for _, combo := range combos {
		seen := make(map[models.LegKey]bool)
		for _, leg := range combo {
			assert.False(t, seen[leg.LegKey()], "duplicate leg key in combination")
			seen[leg.LegKey()] = true
		}
	}
}

func TestForEachCombinationHonorsCap(t *testing.T) {
	pool := []models.Candidate{
		candidate(t, "A", models.PlayerPoints, 9.5, -200, 1.0),
		candidate(t, "B", models.PlayerRebounds, 5.5, -150, 1.0),
		candidate(t, "C", models.PlayerAssists, 4.5, 120, 1.0),
		candidate(t, "D", models.PlayerPoints, 19.5, -110, 1.0),
	}

	enum := &enumeration{candidates: pool, legs: 2, cap: 3}
	count := 0
	enum.forEachCombination(func(legs []models.Candidate) {
		count++
	})

	assert.Equal(t, 3, count)
	assert.Equal(t, int64(3), enum.visited)
	assert.True(t, enum.capped)
}

func TestForEachCombinationSmallPools(t *testing.T) {
	single := []models.Candidate{candidate(t, "A", models.PlayerPoints, 9.5, -200, 1.0)}

	enum := &enumeration{candidates: single, legs: 2}
	called := false
	enum.forEachCombination(func([]models.Candidate) { called = true })
	assert.False(t, called)

	enum = &enumeration{candidates: nil, legs: 5}
	enum.forEachCombination(func([]models.Candidate) { called = true })
	assert.False(t, called)
}

func TestScoreCombination(t *testing.T) {
	a := candidate(t, "Myles Turner", models.PlayerPointsAlternate, 8.5, -476, 4.2)
	b := candidate(t, "Tyrese Haliburton", models.PlayerAssists, 9.5, 164, 1.3)

	parlay := scoreCombination([]models.Candidate{a, b})

	assert.InDelta(t, 0.3130, parlay.CombinedProbability, 0.0001)
	assert.InDelta(t, 1.2101*2.64, parlay.CombinedDecimalOdds, 0.0001)
	assert.InDelta(t, (4.2+1.3)/2, parlay.AverageEdge, 1e-9)

	assert.Greater(t, parlay.CombinedProbability, 0.0)
	assert.Less(t, parlay.CombinedProbability, 1.0)
	assert.InDelta(t, a.ImpliedProb*b.ImpliedProb, parlay.CombinedProbability, 1e-12)
}
