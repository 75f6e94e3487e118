package store

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Mem is an in-memory Reader over fixed slices. It mirrors the ordering
// conventions of the Postgres statements so the engine behaves identically
// against either implementation. Used by tests and loader verification.
type Mem struct {
	MatchDocs     []Match
	TeamDocs      []Team
	PlayerDocs    []Player
	LeagueDocs    []League
	AttributeDocs []PlayerAttributes
}

var _ Reader = (*Mem)(nil)

func (s *Mem) TeamByName(_ context.Context, longName string) (*Team, error) {
	for i := range s.TeamDocs {
		if s.TeamDocs[i].LongName == longName {
			t := s.TeamDocs[i]
			return &t, nil
		}
	}
	return nil, fmt.Errorf("team %q: %w", longName, ErrNotFound)
}

func (s *Mem) Teams(_ context.Context) ([]Team, error) {
	teams := append([]Team(nil), s.TeamDocs...)
	sort.Slice(teams, func(i, j int) bool { return teams[i].LongName < teams[j].LongName })
	return teams, nil
}

func (s *Mem) PlayerByName(_ context.Context, name string) (*Player, error) {
	for i := range s.PlayerDocs {
		if s.PlayerDocs[i].Name == name {
			p := s.PlayerDocs[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("player %q: %w", name, ErrNotFound)
}

func (s *Mem) Players(_ context.Context) ([]Player, error) {
	players := append([]Player(nil), s.PlayerDocs...)
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

func (s *Mem) LeagueByName(_ context.Context, name string) (*League, error) {
	for i := range s.LeagueDocs {
		if s.LeagueDocs[i].Name == name {
			l := s.LeagueDocs[i]
			return &l, nil
		}
	}
	return nil, fmt.Errorf("league %q: %w", name, ErrNotFound)
}

func (s *Mem) Leagues(_ context.Context) ([]League, error) {
	leagues := append([]League(nil), s.LeagueDocs...)
	sort.Slice(leagues, func(i, j int) bool { return leagues[i].Name < leagues[j].Name })
	return leagues, nil
}

func (s *Mem) Matches(_ context.Context) ([]Match, error) {
	return append([]Match(nil), s.MatchDocs...), nil
}

func (s *Mem) MatchesByTeam(_ context.Context, team string) ([]Match, error) {
	return s.filterMatches(func(m Match) bool {
		return m.HomeTeamName == team || m.AwayTeamName == team
	}), nil
}

func (s *Mem) MatchesByTeamSeason(_ context.Context, team, season string) ([]Match, error) {
	return s.filterMatches(func(m Match) bool {
		return m.Season == season && (m.HomeTeamName == team || m.AwayTeamName == team)
	}), nil
}

func (s *Mem) MatchesByLeagueSeason(_ context.Context, league, season string) ([]Match, error) {
	return s.filterMatches(func(m Match) bool {
		return m.LeagueName == league && m.Season == season
	}), nil
}

func (s *Mem) MatchesBetween(_ context.Context, teamA, teamB string) ([]Match, error) {
	return s.filterMatches(func(m Match) bool {
		return (m.HomeTeamName == teamA && m.AwayTeamName == teamB) ||
			(m.HomeTeamName == teamB && m.AwayTeamName == teamA)
	}), nil
}

func (s *Mem) RecentMatchesByTeam(ctx context.Context, team string, limit int) ([]Match, error) {
	matches, _ := s.MatchesByTeam(ctx, team)
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Date.After(matches[j].Date) })
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (s *Mem) SeasonWindow(_ context.Context, season string) (time.Time, time.Time, error) {
	var from, to time.Time
	found := false
	for _, m := range s.MatchDocs {
		if m.Season != season {
			continue
		}
		if !found || m.Date.Before(from) {
			from = m.Date
		}
		if !found || m.Date.After(to) {
			to = m.Date
		}
		found = true
	}
	if !found {
		return time.Time{}, time.Time{}, fmt.Errorf("season %q: %w", season, ErrNotFound)
	}
	return from, to, nil
}

func (s *Mem) Attributes(_ context.Context) ([]PlayerAttributes, error) {
	return append([]PlayerAttributes(nil), s.AttributeDocs...), nil
}

func (s *Mem) AttributesByPlayer(_ context.Context, playerID int) ([]PlayerAttributes, error) {
	var attrs []PlayerAttributes
	for _, a := range s.AttributeDocs {
		if a.PlayerID == playerID {
			attrs = append(attrs, a)
		}
	}
	sort.SliceStable(attrs, func(i, j int) bool { return attrs[i].Date.Before(attrs[j].Date) })
	return attrs, nil
}

func (s *Mem) AttributesInWindow(_ context.Context, from, to time.Time) ([]PlayerAttributes, error) {
	var attrs []PlayerAttributes
	for _, a := range s.AttributeDocs {
		if !a.Date.Before(from) && !a.Date.After(to) {
			attrs = append(attrs, a)
		}
	}
	return attrs, nil
}

func (s *Mem) filterMatches(keep func(Match) bool) []Match {
	var matches []Match
	for _, m := range s.MatchDocs {
		if keep(m) {
			matches = append(matches, m)
		}
	}
	return matches
}
