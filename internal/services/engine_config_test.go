package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
	"github.com/jstittsworth/parlay-optimizer/pkg/config"
)

func TestEngineConfigFrom(t *testing.T) {
	cfg := &config.Config{
		Book:                   "fanduel",
		AllowedFamilies:        []string{"player_points"},
		PriceFloor:             -500,
		MaxCandidates:          24,
		MaxCombinations:        200000,
		ParlayLegs:             5,
		MostProbableCount:      3,
		TwoLegPayoutFloor:      3.0,
		PromoStake:             100,
		PromoFreeBetConversion: 0.70,
	}

	engine := EngineConfigFrom(cfg)
	assert.Equal(t, "fanduel", engine.Book)
	assert.Equal(t, []string{"player_points"}, engine.AllowedFamilies)
	assert.Equal(t, -500, engine.PriceFloor)
	assert.Equal(t, 24, engine.MaxCandidates)
	assert.Equal(t, 100.0, engine.Promotion.Stake)
	assert.Equal(t, 0.70, engine.Promotion.FreeBetConversion)
	assert.NoError(t, engine.Validate())
}

func TestHashConfigIsStable(t *testing.T) {
	first := optimizer.DefaultConfig()
	second := optimizer.DefaultConfig()
	assert.Equal(t, HashConfig(first), HashConfig(second))

	second.MaxCandidates = 30
	assert.NotEqual(t, HashConfig(first), HashConfig(second))
}
