package services

import (
	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
	"github.com/jstittsworth/parlay-optimizer/pkg/config"
)

// EngineConfigFrom maps the application config onto an engine config.
// Unset knobs fall through to the engine defaults.
func EngineConfigFrom(cfg *config.Config) optimizer.Config {
	return optimizer.Config{
		Book:              cfg.Book,
		AllowedFamilies:   cfg.AllowedFamilies,
		PriceFloor:        cfg.PriceFloor,
		MaxCandidates:     cfg.MaxCandidates,
		MaxCombinations:   cfg.MaxCombinations,
		ParlayLegs:        cfg.ParlayLegs,
		MostProbableCount: cfg.MostProbableCount,
		TwoLegPayoutFloor: cfg.TwoLegPayoutFloor,
		Promotion: optimizer.PromotionConfig{
			Stake:             cfg.PromoStake,
			FreeBetConversion: cfg.PromoFreeBetConversion,
		},
	}
}
