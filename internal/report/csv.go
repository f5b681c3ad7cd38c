package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

var csvHeader = []string{
	"label", "num_legs", "probability_pct", "avg_edge",
	"payout_decimal", "payout_american", "legs",
}

// CSV renders the structured rows as a CSV document, legs joined into one
// semicolon-separated column.
func CSV(rows []models.ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		var legs []models.LegRecord
		if err := json.Unmarshal(row.Legs, &legs); err != nil {
			return nil, fmt.Errorf("failed to decode legs for %s: %w", row.Label, err)
		}
		descriptions := make([]string, len(legs))
		for i, leg := range legs {
			descriptions[i] = leg.Description
		}

		record := []string{
			row.Label,
			strconv.Itoa(row.LegCount),
			fmt.Sprintf("%.2f", row.CombinedProbability*100),
			fmt.Sprintf("%.2f", row.AverageEdge),
			fmt.Sprintf("%.2f", row.CombinedDecimalOdds),
			fmt.Sprintf("%+d", row.AmericanPayout),
			strings.Join(descriptions, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row %s: %w", row.Label, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
