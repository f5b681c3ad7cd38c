package models

import "strings"

// MarketKey identifies a player prop market as named by the odds feed,
// e.g. "player_points" or "player_rebounds_alternate".
type MarketKey string

const (
	// Standard player props
	PlayerPoints    MarketKey = "player_points"
	PlayerRebounds  MarketKey = "player_rebounds"
	PlayerAssists   MarketKey = "player_assists"
	PlayerThrees    MarketKey = "player_threes"
	PlayerSteals    MarketKey = "player_steals"
	PlayerBlocks    MarketKey = "player_blocks"
	PlayerTurnovers MarketKey = "player_turnovers"

	// Alternate lines for the same stats
	PlayerPointsAlternate    MarketKey = "player_points_alternate"
	PlayerReboundsAlternate  MarketKey = "player_rebounds_alternate"
	PlayerAssistsAlternate   MarketKey = "player_assists_alternate"
	PlayerThreesAlternate    MarketKey = "player_threes_alternate"
	PlayerStealsAlternate    MarketKey = "player_steals_alternate"
	PlayerBlocksAlternate    MarketKey = "player_blocks_alternate"
	PlayerTurnoversAlternate MarketKey = "player_turnovers_alternate"

	// Combination props
	PlayerPointsAssistsAlternate         MarketKey = "player_points_assists_alternate"
	PlayerPointsReboundsAlternate        MarketKey = "player_points_rebounds_alternate"
	PlayerReboundsAssistsAlternate       MarketKey = "player_rebounds_assists_alternate"
	PlayerPointsReboundsAssistsAlternate MarketKey = "player_points_rebounds_assists_alternate"
)

const alternateSuffix = "_alternate"

// Family collapses a market and its alternate variant to the same stat
// family, so "player_rebounds" and "player_rebounds_alternate" both map to
// "player_rebounds". Parlay leg-conflict checks key on the family.
func (m MarketKey) Family() string {
	return strings.TrimSuffix(string(m), alternateSuffix)
}

// IsAlternate reports whether this is an alternate-line market.
func (m MarketKey) IsAlternate() bool {
	return strings.HasSuffix(string(m), alternateSuffix)
}

// AllMarkets returns every supported player prop market key.
func AllMarkets() []MarketKey {
	return []MarketKey{
		PlayerPoints, PlayerRebounds, PlayerAssists, PlayerThrees,
		PlayerSteals, PlayerBlocks, PlayerTurnovers,
		PlayerPointsAlternate, PlayerReboundsAlternate, PlayerAssistsAlternate,
		PlayerThreesAlternate, PlayerStealsAlternate, PlayerBlocksAlternate,
		PlayerTurnoversAlternate,
		PlayerPointsAssistsAlternate, PlayerPointsReboundsAlternate,
		PlayerReboundsAssistsAlternate, PlayerPointsReboundsAssistsAlternate,
	}
}

// StandardMarkets returns the non-alternate player prop market keys.
func StandardMarkets() []MarketKey {
	return []MarketKey{
		PlayerPoints, PlayerRebounds, PlayerAssists, PlayerThrees,
		PlayerSteals, PlayerBlocks, PlayerTurnovers,
	}
}

// DefaultAllowedFamilies is the stat-family allow-list the engine uses when
// none is configured: points, rebounds and assists, standard and alternate.
func DefaultAllowedFamilies() []string {
	return []string{
		PlayerPoints.Family(),
		PlayerRebounds.Family(),
		PlayerAssists.Family(),
	}
}

var marketDescriptions = map[MarketKey]string{
	PlayerPoints:                         "Player Points (Over/Under)",
	PlayerRebounds:                       "Player Rebounds (Over/Under)",
	PlayerAssists:                        "Player Assists (Over/Under)",
	PlayerThrees:                         "Player Three-Pointers Made (Over/Under)",
	PlayerSteals:                         "Player Steals (Over/Under)",
	PlayerBlocks:                         "Player Blocks (Over/Under)",
	PlayerTurnovers:                      "Player Turnovers (Over/Under)",
	PlayerPointsAlternate:                "Alternate Points (Over/Under)",
	PlayerReboundsAlternate:              "Alternate Rebounds (Over/Under)",
	PlayerAssistsAlternate:               "Alternate Assists (Over/Under)",
	PlayerThreesAlternate:                "Alternate Three-Pointers (Over/Under)",
	PlayerStealsAlternate:                "Alternate Steals (Over/Under)",
	PlayerBlocksAlternate:                "Alternate Blocks (Over/Under)",
	PlayerTurnoversAlternate:             "Alternate Turnovers (Over/Under)",
	PlayerPointsAssistsAlternate:         "Alternate Points + Assists (Over/Under)",
	PlayerPointsReboundsAlternate:        "Alternate Points + Rebounds (Over/Under)",
	PlayerReboundsAssistsAlternate:       "Alternate Rebounds + Assists (Over/Under)",
	PlayerPointsReboundsAssistsAlternate: "Alternate Points + Rebounds + Assists (Over/Under)",
}

// Description returns the human-readable label used in reports.
func (m MarketKey) Description() string {
	if desc, ok := marketDescriptions[m]; ok {
		return desc
	}
	return "Unknown Market: " + string(m)
}
