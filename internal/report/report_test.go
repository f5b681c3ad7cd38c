package report

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
)

func testCandidate(t *testing.T, player string, market models.MarketKey, line float64, odds int, edge float64) models.Candidate {
	t.Helper()
	c := models.Candidate{
		Player:       player,
		Market:       market,
		Line:         line,
		Direction:    models.DirectionOver,
		Book:         "fanduel",
		AmericanOdds: odds,
		Edge:         edge,
	}
	require.NoError(t, c.Validate())
	require.NoError(t, c.Derive())
	return c
}

func testResult(t *testing.T) *optimizer.Result {
	t.Helper()
	pool := []models.Candidate{
		testCandidate(t, "Myles Turner", models.PlayerPointsAlternate, 8.5, -476, 4.2),
		testCandidate(t, "Myles Turner", models.PlayerPointsAlternate, 10.5, -280, 2.2),
		testCandidate(t, "Tyrese Haliburton", models.PlayerAssists, 9.5, 164, 1.3),
		testCandidate(t, "Pascal Siakam", models.PlayerPoints, 19.5, -120, 2.4),
		testCandidate(t, "Aaron Nesmith", models.PlayerPointsAlternate, 9.5, -330, 2.9),
		testCandidate(t, "T.J. McConnell", models.PlayerAssistsAlternate, 4.5, -400, 1.8),
		testCandidate(t, "Obi Toppin", models.PlayerReboundsAlternate, 3.5, -250, 1.2),
	}

	result, err := optimizer.Optimize(pool, optimizer.DefaultConfig())
	require.NoError(t, err)
	return result
}

func TestRowsLabelsAndLegs(t *testing.T) {
	result := testResult(t)
	rows, err := Rows(result)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	labels := make(map[string]models.ReportRow, len(rows))
	for _, row := range rows {
		labels[row.Label] = row
	}

	// Every most-probable parlay is followed by its ladder row.
	for i := 1; i <= len(result.MostProbable); i++ {
		mp, ok := labels["most_probable_"+strconv.Itoa(i)]
		require.True(t, ok)
		assert.Equal(t, 5, mp.LegCount)

		ladder, ok := labels["ladder_"+strconv.Itoa(i)]
		require.True(t, ok)
		assert.Equal(t, 5, ladder.LegCount)
	}

	best, ok := labels[models.LabelBestTwoLeg]
	require.True(t, ok)
	assert.Equal(t, 2, best.LegCount)
	assert.InDelta(t, result.BestTwoLeg.CombinedProbability, best.CombinedProbability, 1e-12)

	var legs []models.LegRecord
	require.NoError(t, json.Unmarshal(best.Legs, &legs))
	require.Len(t, legs, 2)
	for _, leg := range legs {
		assert.NotEmpty(t, leg.Description)
		assert.Contains(t, leg.Description, "Over")
	}

	promo, ok := labels[models.LabelNoSweat]
	require.True(t, ok)
	require.NotNil(t, promo.ExpectedValue)
	require.NotNil(t, promo.Stake)
	require.NotNil(t, promo.FreeBetConversion)
	assert.Equal(t, 100.0, *promo.Stake)
	assert.Equal(t, 0.70, *promo.FreeBetConversion)
}

func TestRowsMarkHeldLadderLegs(t *testing.T) {
	result := testResult(t)
	rows, err := Rows(result)
	require.NoError(t, err)

	for _, row := range rows {
		if !strings.HasPrefix(row.Label, models.LabelLadder) {
			continue
		}
		var legs []models.LegRecord
		require.NoError(t, json.Unmarshal(row.Legs, &legs))

		// Only Turner's 8.5 points line has a higher variant in the pool,
		// so every other stepped leg must be flagged held.
		for _, leg := range legs {
			if leg.Held {
				continue
			}
			assert.Equal(t, "Myles Turner", leg.Player)
			assert.Equal(t, 10.5, leg.Line)
		}
	}
}

func TestMarkdownSections(t *testing.T) {
	result := testResult(t)
	doc := Markdown(result)

	assert.True(t, strings.HasPrefix(doc, "# Top NBA Player Prop Parlays\n"))
	assert.Contains(t, doc, "## Top 3 Most Probable 5-Leg Parlays")
	assert.Contains(t, doc, "### Parlay 1 (5 legs)")
	assert.Contains(t, doc, "#### Parlay 1 Ladder (next higher line for each leg)")
	assert.Contains(t, doc, "## Best 2-Leg Parlay (No Probability Filter)")
	assert.Contains(t, doc, "## Highest Value 2-Leg Parlay (with >10% win probability)")
	assert.Contains(t, doc, "## Highest Value 2-Leg Parlay (with >20% win probability)")
	assert.Contains(t, doc, "## Best Parlay for No Sweat Promo")
	assert.Contains(t, doc, "Expected Value (No Sweat, $100 stake, 70% free bet)")
	assert.Contains(t, doc, "- **Probability:** 31.30%")
	assert.Contains(t, doc, "Myles Turner: Alternate Points (Over/Under) Over 8.5 @ -476")
}

func TestMarkdownEmptyResult(t *testing.T) {
	result, err := optimizer.Optimize(nil, optimizer.DefaultConfig())
	require.NoError(t, err)

	doc := Markdown(result)
	assert.Contains(t, doc, "No qualifying parlay found.")
	assert.NotContains(t, doc, "### Parlay 1")
}

func TestMarkdownNotices(t *testing.T) {
	cfg := optimizer.DefaultConfig()
	cfg.MaxCandidates = 5

	pool := []models.Candidate{
		testCandidate(t, "A", models.PlayerPoints, 9.5, -200, 3.0),
		testCandidate(t, "B", models.PlayerRebounds, 5.5, -150, 2.5),
		testCandidate(t, "C", models.PlayerAssists, 4.5, 120, 2.0),
		testCandidate(t, "D", models.PlayerPointsAlternate, 19.5, -110, 1.5),
		testCandidate(t, "E", models.PlayerRebounds, 3.5, -130, 1.0),
		testCandidate(t, "F", models.PlayerAssists, 2.5, -120, 0.5),
	}
	result, err := optimizer.Optimize(pool, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, result.Notices)

	doc := Markdown(result)
	assert.Contains(t, doc, "## Search Notices")
	assert.Contains(t, doc, "truncated")
}

func TestCSV(t *testing.T) {
	result := testResult(t)
	rows, err := Rows(result)
	require.NoError(t, err)

	data, err := CSV(rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "label,num_legs,probability_pct,avg_edge,payout_decimal,payout_american,legs",
		lines[0])
	assert.Len(t, lines, len(rows)+1)
	assert.Contains(t, string(data), "most_probable_1,5,")
	assert.Contains(t, string(data), "; ")
}
