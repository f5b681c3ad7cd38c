package models

import (
	"fmt"
	"time"

	"github.com/jstittsworth/parlay-optimizer/internal/odds"
)

// Direction is the side of the line a wager takes.
type Direction string

const (
	DirectionOver  Direction = "over"
	DirectionUnder Direction = "under"
)

// ValidationError reports a candidate or config field that failed ingestion
// checks. Invalid input is rejected here, never silently coerced.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Pool is an ingested batch of wager candidates. Every optimization run
// reads one pool; pools are never mutated after ingestion.
type Pool struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Book      string    `gorm:"not null;index" json:"book"`
	Source    string    `json:"source"` // label from the upstream merge stage
	CreatedAt time.Time `json:"created_at"`

	Candidates []Candidate `gorm:"foreignKey:PoolID" json:"candidates,omitempty"`
}

func (Pool) TableName() string {
	return "pools"
}

// Candidate is one priced wager with its model-derived edge. ImpliedProb and
// DecimalOdds are always derived from AmericanOdds at ingestion; they are
// never trusted from input.
type Candidate struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PoolID       string    `gorm:"type:uuid;not null;index" json:"pool_id"`
	Player       string    `gorm:"not null;index" json:"player"`
	Market       MarketKey `gorm:"not null;index" json:"market"`
	Line         float64   `gorm:"not null" json:"line"`
	Direction    Direction `gorm:"not null" json:"direction"`
	Book         string    `gorm:"not null" json:"book"`
	AmericanOdds int       `gorm:"not null" json:"american_odds"`
	ImpliedProb  float64   `json:"implied_probability"`
	DecimalOdds  float64   `json:"decimal_odds"`
	Edge         float64   `json:"edge"` // projection minus line
	CreatedAt    time.Time `json:"created_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// LegKey identifies a (player, stat family) slot. No parlay may carry two
// legs with the same LegKey, so a player's standard and alternate lines for
// the same stat can never co-occur.
type LegKey struct {
	Player string
	Family string
}

func (c *Candidate) LegKey() LegKey {
	return LegKey{Player: c.Player, Family: c.Market.Family()}
}

// Validate checks the raw input fields against the ingestion contract.
func (c *Candidate) Validate() error {
	if c.Player == "" {
		return &ValidationError{Field: "player", Reason: "must not be empty"}
	}
	if c.AmericanOdds == 0 {
		return &ValidationError{Field: "american_odds", Reason: "odds of 0 are invalid"}
	}
	if c.AmericanOdds > -100 && c.AmericanOdds < 100 {
		return &ValidationError{
			Field:  "american_odds",
			Reason: fmt.Sprintf("magnitude must be at least 100, got %d", c.AmericanOdds),
		}
	}
	if c.Line <= 0 {
		return &ValidationError{
			Field:  "line",
			Reason: fmt.Sprintf("must be positive, got %g", c.Line),
		}
	}
	if c.Direction != DirectionOver && c.Direction != DirectionUnder {
		return &ValidationError{
			Field:  "direction",
			Reason: fmt.Sprintf("must be %q or %q, got %q", DirectionOver, DirectionUnder, c.Direction),
		}
	}
	return nil
}

// Derive fills ImpliedProb and DecimalOdds from AmericanOdds. Call after
// Validate; the two derived fields are consistent by construction.
func (c *Candidate) Derive() error {
	prob, err := odds.AmericanToImplied(c.AmericanOdds)
	if err != nil {
		return &ValidationError{Field: "american_odds", Reason: err.Error()}
	}
	decimal, err := odds.AmericanToDecimal(c.AmericanOdds)
	if err != nil {
		return &ValidationError{Field: "american_odds", Reason: err.Error()}
	}
	c.ImpliedProb = prob
	c.DecimalOdds = decimal
	return nil
}

// MarketFor maps the input contract's (statCategory, isAlternate) pair to a
// market key, e.g. ("player_rebounds", true) → player_rebounds_alternate.
func MarketFor(statCategory string, alternate bool) MarketKey {
	key := MarketKey(statCategory)
	if alternate && !key.IsAlternate() {
		key = MarketKey(statCategory + alternateSuffix)
	}
	return key
}

// Describe renders the leg line used in reports:
// "player: stat label Over <line> @ <americanOdds>".
func (c *Candidate) Describe() string {
	return fmt.Sprintf("%s: %s %s %g @ %+d",
		c.Player, c.Market.Description(), capitalized(c.Direction), c.Line, c.AmericanOdds)
}

func capitalized(d Direction) string {
	switch d {
	case DirectionOver:
		return "Over"
	case DirectionUnder:
		return "Under"
	default:
		return string(d)
	}
}
