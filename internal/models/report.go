package models

import (
	"time"

	"gorm.io/datatypes"
)

// Report row labels for the named selector outputs.
const (
	LabelMostProbable = "most_probable"   // suffixed _1.._3
	LabelLadder       = "ladder"          // suffixed _1.._3, pairs with most_probable
	LabelBestTwoLeg   = "best_two_leg"    // no probability floor
	LabelBestTwoLeg10 = "best_two_leg_10" // >= 10% combined probability
	LabelBestTwoLeg20 = "best_two_leg_20" // >= 20% combined probability
	LabelNoSweat      = "no_sweat_promo"  // promotion EV optimizer
)

// ReportRun is one persisted optimization run over a pool.
type ReportRun struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	PoolID    string    `gorm:"type:uuid;not null;index" json:"pool_id"`
	Book      string    `json:"book"`
	CreatedAt time.Time `json:"created_at"`

	// Search notices: set when rank-and-truncate bounding or the hard
	// combination cap limited the search, so consumers know results are
	// best-within-bound rather than globally optimal.
	Notices datatypes.JSON `json:"notices,omitempty"`

	// Markdown is the rendered human-readable document for this run. Stored
	// alongside the rows so both output artifacts come from the same result.
	Markdown string `json:"markdown,omitempty"`

	Rows []ReportRow `gorm:"foreignKey:RunID" json:"rows,omitempty"`
}

func (ReportRun) TableName() string {
	return "report_runs"
}

// ReportRow is one reported parlay in the structured output table.
type ReportRow struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	RunID               string  `gorm:"type:uuid;not null;index" json:"run_id"`
	Label               string  `gorm:"not null" json:"label"`
	LegCount            int     `json:"leg_count"`
	CombinedProbability float64 `json:"combined_probability"`
	AverageEdge         float64 `json:"average_edge"`
	CombinedDecimalOdds float64 `json:"combined_decimal_odds"`
	AmericanPayout      int     `json:"american_payout"`

	// Promotion rows only.
	ExpectedValue     *float64 `json:"expected_value,omitempty"`
	Stake             *float64 `json:"stake,omitempty"`
	FreeBetConversion *float64 `json:"free_bet_conversion,omitempty"`

	// Ordered leg records, stored as JSON.
	Legs datatypes.JSON `json:"legs"`
}

func (ReportRow) TableName() string {
	return "report_rows"
}

// LegRecord is the JSON shape of one leg inside a ReportRow. Held marks a
// ladder leg that had no strictly higher line and was kept unchanged.
type LegRecord struct {
	Player       string  `json:"player"`
	Market       string  `json:"market"`
	Line         float64 `json:"line"`
	AmericanOdds int     `json:"american_odds"`
	Description  string  `json:"description"`
	Held         bool    `json:"held,omitempty"`
}
