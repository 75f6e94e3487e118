package analytics

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// trendWorkers bounds the per-season fan-out in TeamRatingTrend.
const trendWorkers = 4

// SeasonRating is one point of a rating trend: the mean player rating
// observed during one season's date window.
type SeasonRating struct {
	Season           string  `json:"season"`
	AvgOverallRating float64 `json:"avg_overall_rating"`
	AvgPotential     float64 `json:"avg_potential"`
	Snapshots        int     `json:"snapshots"`
}

// TeamRatingTrend computes, for each season the team appears in, the mean
// overall rating and potential of attribute snapshots dated within that
// season's match-date window. The snapshot carries no roster table, so
// membership is approximated by the season window; see DESIGN.md for the
// rule choice. Seasons are computed concurrently but reassembled in season
// order, ascending.
func (e *Engine) TeamRatingTrend(ctx context.Context, team string) ([]SeasonRating, error) {
	if team == "" {
		return nil, invalidf("team name must not be empty")
	}
	if _, err := e.store.TeamByName(ctx, team); err != nil {
		return nil, lookupErr("team rating trend", err)
	}

	matches, err := e.store.MatchesByTeam(ctx, team)
	if err != nil {
		return nil, storeFail("load team matches", err)
	}

	seen := make(map[string]bool)
	var seasons []string
	for _, m := range matches {
		if !seen[m.Season] {
			seen[m.Season] = true
			seasons = append(seasons, m.Season)
		}
	}
	sort.Strings(seasons)

	// One slot per season keeps the output ordered by season, not by
	// worker completion.
	points := make([]*SeasonRating, len(seasons))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(trendWorkers)
	for i, season := range seasons {
		i, season := i, season
		g.Go(func() error {
			pt, err := e.seasonRating(gctx, season)
			if err != nil {
				return err
			}
			points[i] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]SeasonRating, 0, len(points))
	for _, pt := range points {
		if pt != nil {
			out = append(out, *pt)
		}
	}
	return out, nil
}

// seasonRating averages the snapshots inside one season window. Returns nil
// (no point) when the window holds no rated snapshot.
func (e *Engine) seasonRating(ctx context.Context, season string) (*SeasonRating, error) {
	from, to, err := e.store.SeasonWindow(ctx, season)
	if err != nil {
		return nil, storeFail("resolve season window", err)
	}
	attrs, err := e.store.AttributesInWindow(ctx, from, to)
	if err != nil {
		return nil, storeFail("load window snapshots", err)
	}

	var ratingSum, ratingN, potentialSum, potentialN int
	for _, a := range attrs {
		if a.OverallRating != nil {
			ratingSum += *a.OverallRating
			ratingN++
		}
		if a.Potential != nil {
			potentialSum += *a.Potential
			potentialN++
		}
	}
	if ratingN == 0 {
		return nil, nil
	}
	pt := &SeasonRating{
		Season:           season,
		AvgOverallRating: round1(float64(ratingSum) / float64(ratingN)),
		Snapshots:        ratingN,
	}
	if potentialN > 0 {
		pt.AvgPotential = round1(float64(potentialSum) / float64(potentialN))
	}
	return pt, nil
}
