// Package report renders one optimizer result into the two output
// artifacts: the structured row table and the human-readable Markdown
// document. Both read the same immutable result, so they can never drift.
package report

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
)

// Rows flattens a result into the structured table, one row per reported
// parlay. Queries that found no legal combination simply contribute no row.
func Rows(result *optimizer.Result) ([]models.ReportRow, error) {
	var rows []models.ReportRow

	for i, parlay := range result.MostProbable {
		row, err := parlayRow(fmt.Sprintf("%s_%d", models.LabelMostProbable, i+1), parlay, nil)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)

		if i < len(result.Ladders) {
			ladder := result.Ladders[i]
			ladderRow, err := parlayRow(fmt.Sprintf("%s_%d", models.LabelLadder, i+1), ladder.Parlay, ladder.Held)
			if err != nil {
				return nil, err
			}
			rows = append(rows, ladderRow)
		}
	}

	twoLegRows := []struct {
		label  string
		parlay *optimizer.Parlay
	}{
		{models.LabelBestTwoLeg, result.BestTwoLeg},
		{models.LabelBestTwoLeg10, result.BestTwoLeg10},
		{models.LabelBestTwoLeg20, result.BestTwoLeg20},
	}
	for _, entry := range twoLegRows {
		if entry.parlay == nil {
			continue
		}
		row, err := parlayRow(entry.label, *entry.parlay, nil)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	if result.NoSweat != nil {
		row, err := parlayRow(models.LabelNoSweat, result.NoSweat.Parlay, nil)
		if err != nil {
			return nil, err
		}
		ev := result.NoSweat.ExpectedValue
		stake := result.NoSweat.Stake
		conv := result.NoSweat.FreeBetConversion
		row.ExpectedValue = &ev
		row.Stake = &stake
		row.FreeBetConversion = &conv
		rows = append(rows, row)
	}

	return rows, nil
}

// NoticesJSON marshals the result's search notices for storage alongside
// the rows.
func NoticesJSON(result *optimizer.Result) (datatypes.JSON, error) {
	if len(result.Notices) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(result.Notices)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notices: %w", err)
	}
	return datatypes.JSON(data), nil
}

func parlayRow(label string, parlay optimizer.Parlay, held []bool) (models.ReportRow, error) {
	records := legRecords(parlay, held)
	data, err := json.Marshal(records)
	if err != nil {
		return models.ReportRow{}, fmt.Errorf("failed to marshal legs for %s: %w", label, err)
	}

	return models.ReportRow{
		Label:               label,
		LegCount:            len(parlay.Legs),
		CombinedProbability: parlay.CombinedProbability,
		AverageEdge:         parlay.AverageEdge,
		CombinedDecimalOdds: parlay.CombinedDecimalOdds,
		AmericanPayout:      parlay.AmericanPayout(),
		Legs:                datatypes.JSON(data),
	}, nil
}

func legRecords(parlay optimizer.Parlay, held []bool) []models.LegRecord {
	records := make([]models.LegRecord, len(parlay.Legs))
	for i, leg := range parlay.Legs {
		records[i] = models.LegRecord{
			Player:       leg.Player,
			Market:       string(leg.Market),
			Line:         leg.Line,
			AmericanOdds: leg.AmericanOdds,
			Description:  leg.Describe(),
		}
		if held != nil && i < len(held) {
			records[i].Held = held[i]
		}
	}
	return records
}
