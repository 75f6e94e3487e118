// Package analytics is the query layer over the soccer snapshot. Every query
// is a pure, stateless transformation of the store's current contents: filter
// pushdown happens in the Reader, grouping and ranking happen here. Queries
// are independently safe to run concurrently and never return partial
// aggregates on a failed scan.
package analytics

import (
	"math"
	"regexp"
	"strconv"

	"github.com/kickstats/kickstats-data/internal/store"
)

// Engine answers the analytical query catalog. It holds no mutable state
// beyond the Reader handle.
type Engine struct {
	store store.Reader
}

// New creates an Engine over a snapshot Reader.
func New(r store.Reader) *Engine {
	return &Engine{store: r}
}

var seasonPattern = regexp.MustCompile(`^(\d{4})/(\d{4})$`)

// validateSeason enforces the fixed "YYYY/YYYY" season format with
// consecutive years. Callers supplying alternate separators must normalize
// before calling.
func validateSeason(season string) error {
	m := seasonPattern.FindStringSubmatch(season)
	if m == nil {
		return invalidf("season %q must be formatted YYYY/YYYY", season)
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	if second != first+1 {
		return invalidf("season %q must span consecutive years", season)
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 0 {
		return invalidf("limit must not be negative, got %d", limit)
	}
	return nil
}

// Display rounding happens once, at the aggregation boundary, so repeated
// queries are byte-identical.
func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
