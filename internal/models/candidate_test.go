package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Candidate {
	return Candidate{
		Player:       "Myles Turner",
		Market:       PlayerPointsAlternate,
		Line:         8.5,
		Direction:    DirectionOver,
		Book:         "fanduel",
		AmericanOdds: -476,
		Edge:         4.2,
	}
}

func TestCandidateValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Candidate)
		field  string
	}{
		{"zero odds", func(c *Candidate) { c.AmericanOdds = 0 }, "american_odds"},
		{"sub-100 magnitude", func(c *Candidate) { c.AmericanOdds = 50 }, "american_odds"},
		{"negative sub-100 magnitude", func(c *Candidate) { c.AmericanOdds = -99 }, "american_odds"},
		{"zero line", func(c *Candidate) { c.Line = 0 }, "line"},
		{"negative line", func(c *Candidate) { c.Line = -3.5 }, "line"},
		{"empty player", func(c *Candidate) { c.Player = "" }, "player"},
		{"bad direction", func(c *Candidate) { c.Direction = "sideways" }, "direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			err := c.Validate()
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	c := validCandidate()
	assert.NoError(t, c.Validate())
}

func TestCandidateDerive(t *testing.T) {
	c := validCandidate()
	require.NoError(t, c.Derive())

	assert.InDelta(t, 0.8264, c.ImpliedProb, 0.0001)
	assert.InDelta(t, 1.2101, c.DecimalOdds, 0.0001)

	// Derived fields must stay consistent with each other.
	assert.InDelta(t, c.ImpliedProb, 1.0/c.DecimalOdds, 1e-9)
}

func TestLegKeyCollapsesAlternates(t *testing.T) {
	standard := validCandidate()
	standard.Market = PlayerRebounds

	alternate := validCandidate()
	alternate.Market = PlayerReboundsAlternate

	assert.Equal(t, standard.LegKey(), alternate.LegKey())

	other := validCandidate()
	other.Market = PlayerAssists
	assert.NotEqual(t, standard.LegKey(), other.LegKey())
}

func TestMarketFor(t *testing.T) {
	assert.Equal(t, PlayerRebounds, MarketFor("player_rebounds", false))
	assert.Equal(t, PlayerReboundsAlternate, MarketFor("player_rebounds", true))
	// Already-alternate keys don't get a second suffix.
	assert.Equal(t, PlayerReboundsAlternate, MarketFor("player_rebounds_alternate", true))
}

func TestDescribe(t *testing.T) {
	c := validCandidate()
	assert.Equal(t, "Myles Turner: Alternate Points (Over/Under) Over 8.5 @ -476", c.Describe())

	c.AmericanOdds = 164
	c.Market = PlayerAssists
	c.Line = 9.5
	assert.Equal(t, "Myles Turner: Player Assists (Over/Under) Over 9.5 @ +164", c.Describe())
}
