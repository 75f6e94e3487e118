package analytics

import (
	"context"
	"sort"
	"time"
)

// PlayerRating is one row in the top-players ranking.
type PlayerRating struct {
	PlayerName    string   `json:"player_name"`
	AvgRating     float64  `json:"avg_rating"`
	MaxRating     int      `json:"max_rating"`
	Snapshots     int      `json:"snapshots"`
	Height        *float64 `json:"height,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	PreferredFoot string   `json:"preferred_foot,omitempty"`
}

// AttributeSample is one point of a player's rating time series, trimmed to
// the fields the trend view plots.
type AttributeSample struct {
	Date          time.Time `json:"date"`
	OverallRating *int      `json:"overall_rating"`
	Potential     *int      `json:"potential"`
	Finishing     *int      `json:"finishing"`
	ShortPassing  *int      `json:"short_passing"`
	Dribbling     *int      `json:"dribbling"`
	SprintSpeed   *int      `json:"sprint_speed"`
	Stamina       *int      `json:"stamina"`
	Strength      *int      `json:"strength"`
}

// TopPlayersByRating ranks players by the mean of overall_rating across their
// full snapshot history, descending, name ascending on ties. Players with no
// rated snapshot are skipped. The league argument is validated against the
// league collection when present; the snapshot carries no player-to-team
// linkage, so it cannot narrow the ranking further. A limit of 0 returns
// everything.
func (e *Engine) TopPlayersByRating(ctx context.Context, league string, limit int) ([]PlayerRating, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	if league != "" {
		if _, err := e.store.LeagueByName(ctx, league); err != nil {
			return nil, lookupErr("top players", err)
		}
	}

	players, err := e.store.Players(ctx)
	if err != nil {
		return nil, storeFail("load players", err)
	}
	attrs, err := e.store.Attributes(ctx)
	if err != nil {
		return nil, storeFail("load attribute snapshots", err)
	}

	type acc struct {
		sum, count, max int
		latest          time.Time
		foot            string
	}
	byPlayer := make(map[int]*acc)
	for _, a := range attrs {
		if a.OverallRating == nil {
			continue
		}
		p := byPlayer[a.PlayerID]
		if p == nil {
			p = &acc{}
			byPlayer[a.PlayerID] = p
		}
		p.sum += *a.OverallRating
		p.count++
		if *a.OverallRating > p.max {
			p.max = *a.OverallRating
		}
		if a.PreferredFoot != nil && (p.foot == "" || a.Date.After(p.latest)) {
			p.latest = a.Date
			p.foot = *a.PreferredFoot
		}
	}

	out := make([]PlayerRating, 0, len(byPlayer))
	for _, player := range players {
		p, ok := byPlayer[player.PlayerID]
		if !ok {
			continue
		}
		out = append(out, PlayerRating{
			PlayerName:    player.Name,
			AvgRating:     round1(float64(p.sum) / float64(p.count)),
			MaxRating:     p.max,
			Snapshots:     p.count,
			Height:        player.Height,
			Weight:        player.Weight,
			PreferredFoot: p.foot,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].PlayerName < out[j].PlayerName
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// PlayerAttributeHistory returns the named player's attribute snapshots
// ordered by date ascending. The sequence is re-materialized from the store
// on every call. An existing player with no snapshots yields an empty
// history.
func (e *Engine) PlayerAttributeHistory(ctx context.Context, player string) ([]AttributeSample, error) {
	if player == "" {
		return nil, invalidf("player name must not be empty")
	}
	p, err := e.store.PlayerByName(ctx, player)
	if err != nil {
		return nil, lookupErr("player attribute history", err)
	}
	attrs, err := e.store.AttributesByPlayer(ctx, p.PlayerID)
	if err != nil {
		return nil, storeFail("load player snapshots", err)
	}

	out := make([]AttributeSample, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, AttributeSample{
			Date:          a.Date,
			OverallRating: a.OverallRating,
			Potential:     a.Potential,
			Finishing:     a.Finishing,
			ShortPassing:  a.ShortPassing,
			Dribbling:     a.Dribbling,
			SprintSpeed:   a.SprintSpeed,
			Stamina:       a.Stamina,
			Strength:      a.Strength,
		})
	}
	return out, nil
}
