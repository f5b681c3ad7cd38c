package optimizer

import (
	"fmt"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/internal/odds"
)

// Config controls one optimization run. Zero values are filled from
// DefaultConfig by Optimize.
type Config struct {
	Book            string           `json:"book"`
	AllowedFamilies []string         `json:"allowed_families"`
	Direction       models.Direction `json:"direction"`

	// PriceFloor excludes legs with American odds worse (more negative)
	// than this value. Applies everywhere in the engine.
	PriceFloor int `json:"price_floor"`

	// MaxCandidates is the rank-and-truncate bound B: candidates are sorted
	// by edge, then implied probability, and only the top B are enumerated
	// exhaustively. C(24,5) = 42,504.
	MaxCandidates int `json:"max_candidates"`

	// MaxCombinations is a hard cap on enumerated combinations per search.
	// Hitting it surfaces a truncation notice, never a silent partial result.
	MaxCombinations int64 `json:"max_combinations"`

	ParlayLegs        int     `json:"parlay_legs"`          // legs in the main search
	MostProbableCount int     `json:"most_probable_count"`  // parlays reported from it
	TwoLegPayoutFloor float64 `json:"two_leg_payout_floor"` // decimal odds floor for 2-leg picks

	Promotion PromotionConfig `json:"promotion"`
}

// PromotionConfig models a no-sweat (risk-mitigated) promotion: on a loss a
// fraction of the stake comes back as a free bet.
type PromotionConfig struct {
	Stake             float64 `json:"stake"`
	FreeBetConversion float64 `json:"free_bet_conversion"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Book:              "fanduel",
		AllowedFamilies:   models.DefaultAllowedFamilies(),
		Direction:         models.DirectionOver,
		PriceFloor:        -500,
		MaxCandidates:     24,
		MaxCombinations:   200000,
		ParlayLegs:        5,
		MostProbableCount: 3,
		TwoLegPayoutFloor: 3.0,
		Promotion: PromotionConfig{
			Stake:             100,
			FreeBetConversion: 0.70,
		},
	}
}

// Validate rejects config values the engine cannot run with.
func (c *Config) Validate() error {
	if c.ParlayLegs < 2 {
		return &models.ValidationError{
			Field:  "parlay_legs",
			Reason: fmt.Sprintf("must be at least 2, got %d", c.ParlayLegs),
		}
	}
	if c.MaxCandidates < c.ParlayLegs {
		return &models.ValidationError{
			Field:  "max_candidates",
			Reason: fmt.Sprintf("must be at least parlay_legs (%d), got %d", c.ParlayLegs, c.MaxCandidates),
		}
	}
	if c.Promotion.Stake <= 0 {
		return &models.ValidationError{
			Field:  "promotion.stake",
			Reason: fmt.Sprintf("must be positive, got %g", c.Promotion.Stake),
		}
	}
	if c.Promotion.FreeBetConversion < 0 || c.Promotion.FreeBetConversion > 1 {
		return &models.ValidationError{
			Field:  "promotion.free_bet_conversion",
			Reason: fmt.Sprintf("must be in [0,1], got %g", c.Promotion.FreeBetConversion),
		}
	}
	if c.PriceFloor > 0 {
		return &models.ValidationError{
			Field:  "price_floor",
			Reason: fmt.Sprintf("must be negative American odds, got %d", c.PriceFloor),
		}
	}
	return nil
}

// Parlay is a scored, immutable combination of legs. Legs are modeled as
// independent events: the combined probability is a plain product, with no
// correlation adjustment. That is a documented approximation, not a bug.
type Parlay struct {
	Legs                []models.Candidate `json:"legs"`
	CombinedProbability float64            `json:"combined_probability"`
	CombinedDecimalOdds float64            `json:"combined_decimal_odds"`
	AverageEdge         float64            `json:"average_edge"`
}

// AmericanPayout is the display-only American price of the combined payout.
func (p *Parlay) AmericanPayout() int {
	return odds.DecimalToAmerican(p.CombinedDecimalOdds)
}

// LadderedParlay is a companion parlay with every leg stepped to its next
// stricter line. Held is parallel to Legs and marks legs that had no higher
// line available and were kept unchanged.
type LadderedParlay struct {
	Parlay
	Held []bool `json:"held"`
}

// PromoParlay is the EV-maximizing parlay under the promotion payout model.
type PromoParlay struct {
	Parlay
	ExpectedValue     float64 `json:"expected_value"`
	Stake             float64 `json:"stake"`
	FreeBetConversion float64 `json:"free_bet_conversion"`
}

// Notice codes surfaced on the result.
const (
	NoticeBoundedSearch  = "bounded_search"
	NoticeCombinationCap = "combination_cap"
)

// Notice tells the consumer a search was limited and results are
// best-within-bound rather than globally optimal.
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the immutable output of one run. A nil parlay pointer or empty
// slice means no legal combination satisfied that query's constraints,
// which is a normal outcome, not a failure.
type Result struct {
	MostProbable []Parlay         `json:"most_probable"`
	Ladders      []LadderedParlay `json:"ladders"` // parallel to MostProbable
	BestTwoLeg   *Parlay          `json:"best_two_leg,omitempty"`
	BestTwoLeg10 *Parlay          `json:"best_two_leg_10,omitempty"`
	BestTwoLeg20 *Parlay          `json:"best_two_leg_20,omitempty"`
	NoSweat      *PromoParlay     `json:"no_sweat,omitempty"`

	Notices []Notice `json:"notices,omitempty"`

	PoolSize           int   `json:"pool_size"`
	FilteredSize       int   `json:"filtered_size"`
	RetainedSize       int   `json:"retained_size"`
	EnumeratedCombos   int64 `json:"enumerated_combinations"`
	OptimizationTimeMs int64 `json:"optimization_time_ms"`
}
