package analytics

import (
	"context"
	"fmt"
	"sort"
)

// ScorelineCount is one ordered (home, away) final score and how often it
// occurred. Home/away is significant: "2-1" and "1-2" are distinct.
type ScorelineCount struct {
	Scoreline   string `json:"scoreline"`
	HomeGoals   int    `json:"home_goals"`
	AwayGoals   int    `json:"away_goals"`
	Occurrences int    `json:"occurrences"`
}

// CommonScorelines counts every final score across all leagues, most common
// first. Equal counts order by home then away goals ascending so output is
// reproducible. A limit of 0 returns everything.
func (e *Engine) CommonScorelines(ctx context.Context, limit int) ([]ScorelineCount, error) {
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	matches, err := e.store.Matches(ctx)
	if err != nil {
		return nil, storeFail("load matches", err)
	}

	counts := make(map[[2]int]int)
	for _, m := range matches {
		counts[[2]int{m.HomeGoals, m.AwayGoals}]++
	}

	out := make([]ScorelineCount, 0, len(counts))
	for score, n := range counts {
		out = append(out, ScorelineCount{
			Scoreline:   fmt.Sprintf("%d-%d", score[0], score[1]),
			HomeGoals:   score[0],
			AwayGoals:   score[1],
			Occurrences: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Occurrences != out[j].Occurrences {
			return out[i].Occurrences > out[j].Occurrences
		}
		if out[i].HomeGoals != out[j].HomeGoals {
			return out[i].HomeGoals < out[j].HomeGoals
		}
		return out[i].AwayGoals < out[j].AwayGoals
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
