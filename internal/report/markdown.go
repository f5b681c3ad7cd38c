package report

import (
	"fmt"
	"strings"

	"github.com/jstittsworth/parlay-optimizer/internal/optimizer"
)

// Markdown renders the human-readable document: the top most-probable
// parlays each followed by their ladder, the three 2-leg picks, and the
// no-sweat promotion pick with its EV, stake and free-bet rate spelled out.
func Markdown(result *optimizer.Result) string {
	var b strings.Builder
	b.WriteString("# Top NBA Player Prop Parlays\n\n")

	if len(result.MostProbable) > 0 {
		legCount := len(result.MostProbable[0].Legs)
		fmt.Fprintf(&b, "## Top %d Most Probable %d-Leg Parlays\n\n", len(result.MostProbable), legCount)
		for i, parlay := range result.MostProbable {
			fmt.Fprintf(&b, "### Parlay %d (%d legs)\n", i+1, len(parlay.Legs))
			writeParlayBody(&b, parlay, nil)
			if i < len(result.Ladders) {
				fmt.Fprintf(&b, "#### Parlay %d Ladder (next higher line for each leg)\n", i+1)
				writeParlayBody(&b, result.Ladders[i].Parlay, result.Ladders[i].Held)
			}
		}
	} else {
		b.WriteString("## Top Most Probable Parlays\n\n- No qualifying parlay found.\n\n")
	}

	writeTwoLegSection(&b, "Best 2-Leg Parlay (No Probability Filter)", result.BestTwoLeg)
	writeTwoLegSection(&b, "Highest Value 2-Leg Parlay (with >10% win probability)", result.BestTwoLeg10)
	writeTwoLegSection(&b, "Highest Value 2-Leg Parlay (with >20% win probability)", result.BestTwoLeg20)

	if result.NoSweat != nil {
		promo := result.NoSweat
		b.WriteString("## Best Parlay for No Sweat Promo\n\n")
		fmt.Fprintf(&b, "- **Probability:** %.2f%%\n", promo.CombinedProbability*100)
		fmt.Fprintf(&b, "- **Avg Edge:** %.2f\n", promo.AverageEdge)
		fmt.Fprintf(&b, "- **Payout:** %.2f (Decimal), %+d (American)\n", promo.CombinedDecimalOdds, promo.AmericanPayout())
		fmt.Fprintf(&b, "- **Expected Value (No Sweat, $%.0f stake, %.0f%% free bet):** $%.2f\n",
			promo.Stake, promo.FreeBetConversion*100, promo.ExpectedValue)
		writeLegs(&b, promo.Parlay, nil)
		b.WriteString("\n")
	} else {
		b.WriteString("## Best Parlay for No Sweat Promo\n\n- No qualifying parlay found.\n\n")
	}

	if len(result.Notices) > 0 {
		b.WriteString("## Search Notices\n\n")
		for _, notice := range result.Notices {
			fmt.Fprintf(&b, "- %s\n", notice.Message)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeTwoLegSection(b *strings.Builder, heading string, parlay *optimizer.Parlay) {
	if parlay == nil {
		fmt.Fprintf(b, "## %s\n\n- No qualifying parlay found.\n\n", heading)
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	writeParlayBody(b, *parlay, nil)
}

func writeParlayBody(b *strings.Builder, parlay optimizer.Parlay, held []bool) {
	fmt.Fprintf(b, "- **Probability:** %.2f%%\n", parlay.CombinedProbability*100)
	fmt.Fprintf(b, "- **Avg Edge:** %.2f\n", parlay.AverageEdge)
	fmt.Fprintf(b, "- **Payout:** %.2f (Decimal), %+d (American)\n", parlay.CombinedDecimalOdds, parlay.AmericanPayout())
	writeLegs(b, parlay, held)
	b.WriteString("\n")
}

func writeLegs(b *strings.Builder, parlay optimizer.Parlay, held []bool) {
	b.WriteString("- **Legs:**\n")
	for i, leg := range parlay.Legs {
		suffix := ""
		if held != nil && i < len(held) && held[i] {
			suffix = " (held, no higher line)"
		}
		fmt.Fprintf(b, "    - %s%s\n", leg.Describe(), suffix)
	}
}
