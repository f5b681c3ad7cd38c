package optimizer

import (
	"fmt"
	"time"

	"github.com/jstittsworth/parlay-optimizer/internal/models"
)

// Optimize runs one full engine pass over an immutable candidate pool:
// filter, rank-and-truncate, enumerate, score, then extract the named
// outputs. Empty named results mean no legal combination satisfied that
// query, never a failure; the error return covers config problems only.
func Optimize(pool []models.Candidate, cfg Config) (*Result, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &Result{PoolSize: len(pool)}

	filtered := Filter(pool, cfg)
	result.FilteredSize = len(filtered)

	retained, truncated := truncate(rank(filtered), cfg.MaxCandidates)
	result.RetainedSize = len(retained)
	if truncated {
		result.addNotice(NoticeBoundedSearch, fmt.Sprintf(
			"candidate pool truncated from %d to top %d by edge then probability; results are best within the retained set, not globally optimal",
			len(filtered), len(retained)))
	}

	// Main search: most-probable k-leg parlays, each with its ladder.
	mainEnum := &enumeration{candidates: retained, legs: cfg.ParlayLegs, cap: cfg.MaxCombinations}
	var scored []Parlay
	mainEnum.forEachCombination(func(legs []models.Candidate) {
		scored = append(scored, scoreCombination(legs))
	})
	result.noteEnumeration(mainEnum, fmt.Sprintf("%d-leg search", cfg.ParlayLegs))

	result.MostProbable = mostProbable(scored, cfg.MostProbableCount)
	result.Ladders = make([]LadderedParlay, len(result.MostProbable))
	for i, parlay := range result.MostProbable {
		// Ladder steps look through the full filtered pool, not the
		// truncated one, so higher lines cut by the bound stay reachable.
		result.Ladders[i] = Ladder(parlay, filtered)
	}

	// Independent 2-leg passes, one per probability floor.
	twoLeg, twoEnum := bestTwoLeg(retained, cfg.TwoLegPayoutFloor, 0, cfg.MaxCombinations)
	result.noteEnumeration(twoEnum, "2-leg search")
	result.BestTwoLeg = twoLeg

	twoLeg10, enum10 := bestTwoLeg(retained, cfg.TwoLegPayoutFloor, 0.10, cfg.MaxCombinations)
	result.noteEnumeration(enum10, "2-leg search at 10% floor")
	result.BestTwoLeg10 = twoLeg10

	twoLeg20, enum20 := bestTwoLeg(retained, cfg.TwoLegPayoutFloor, 0.20, cfg.MaxCombinations)
	result.noteEnumeration(enum20, "2-leg search at 20% floor")
	result.BestTwoLeg20 = twoLeg20

	// Promotion search is always restricted to the core stat families,
	// whatever the main allow-list says.
	promoCfg := cfg
	promoCfg.AllowedFamilies = models.DefaultAllowedFamilies()
	promoFiltered := Filter(pool, promoCfg)
	promoRetained, promoTruncated := truncate(rank(promoFiltered), cfg.MaxCandidates)
	if promoTruncated {
		result.addNotice(NoticeBoundedSearch, fmt.Sprintf(
			"promotion pool truncated from %d to top %d; the reported EV is the best within the retained set",
			len(promoFiltered), len(promoRetained)))
	}
	noSweat, promoEnum := bestNoSweat(promoRetained, cfg.ParlayLegs, cfg.Promotion, cfg.MaxCombinations)
	result.noteEnumeration(promoEnum, "promotion EV search")
	result.NoSweat = noSweat

	result.OptimizationTimeMs = time.Since(start).Milliseconds()
	return result, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Book == "" {
		c.Book = defaults.Book
	}
	if len(c.AllowedFamilies) == 0 {
		c.AllowedFamilies = defaults.AllowedFamilies
	}
	if c.Direction == "" {
		c.Direction = defaults.Direction
	}
	if c.PriceFloor == 0 {
		c.PriceFloor = defaults.PriceFloor
	}
	if c.MaxCandidates == 0 {
		c.MaxCandidates = defaults.MaxCandidates
	}
	if c.MaxCombinations == 0 {
		c.MaxCombinations = defaults.MaxCombinations
	}
	if c.ParlayLegs == 0 {
		c.ParlayLegs = defaults.ParlayLegs
	}
	if c.MostProbableCount == 0 {
		c.MostProbableCount = defaults.MostProbableCount
	}
	if c.TwoLegPayoutFloor == 0 {
		c.TwoLegPayoutFloor = defaults.TwoLegPayoutFloor
	}
	if c.Promotion.Stake == 0 {
		c.Promotion.Stake = defaults.Promotion.Stake
	}
	if c.Promotion.FreeBetConversion == 0 {
		c.Promotion.FreeBetConversion = defaults.Promotion.FreeBetConversion
	}
}

func (r *Result) addNotice(code, message string) {
	r.Notices = append(r.Notices, Notice{Code: code, Message: message})
}

// noteEnumeration folds an enumeration's counters into the result and
// surfaces a truncation notice when the combination cap cut the search off.
func (r *Result) noteEnumeration(e *enumeration, label string) {
	r.EnumeratedCombos += e.visited
	if e.capped {
		r.addNotice(NoticeCombinationCap, fmt.Sprintf(
			"%s stopped at the %d-combination cap; results cover only the combinations enumerated before the cap",
			label, e.cap))
	}
}
