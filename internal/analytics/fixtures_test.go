package analytics

import (
	"time"

	"github.com/kickstats/kickstats-data/internal/store"
)

// Shared fixture snapshot: two leagues, three English seasons' worth of
// fixtures plus one Spanish match, three players with attribute histories.
//
// England 2015/2016 final table (derivable by hand):
//
//	Arsenal  P4 W2 D1 L1 GF8 GA7 GD+1 Pts7
//	Chelsea  P4 W1 D2 L1 GF8 GA6 GD+2 Pts5
//	Leeds    P4 W1 D1 L2 GF5 GA8 GD-3 Pts4

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intp(v int) *int         { return &v }
func strp(v string) *string   { return &v }
func f64p(v float64) *float64 { return &v }

const (
	englishLeague = "England Premier League"
	spanishLeague = "Spain LIGA BBVA"
)

func fixtureStore() *store.Mem {
	return &store.Mem{
		LeagueDocs: []store.League{
			{LeagueID: 1729, CountryID: 1729, Name: englishLeague, CountryName: "England"},
			{LeagueID: 21518, CountryID: 21518, Name: spanishLeague, CountryName: "Spain"},
		},
		TeamDocs: []store.Team{
			{TeamID: 9825, LongName: "Arsenal", ShortName: "ARS"},
			{TeamID: 8455, LongName: "Chelsea", ShortName: "CHE"},
			{TeamID: 8463, LongName: "Leeds United", ShortName: "LEE"},
			{TeamID: 8633, LongName: "Real Madrid CF", ShortName: "REA"},
			{TeamID: 9001, LongName: "Idle FC", ShortName: "IDL"},
		},
		MatchDocs: []store.Match{
			// England 2015/2016
			match(1, englishLeague, "2015/2016", day(2015, 8, 15), "Arsenal", "Chelsea", 3, 1),
			match(2, englishLeague, "2015/2016", day(2015, 9, 10), "Chelsea", "Arsenal", 2, 2),
			match(3, englishLeague, "2015/2016", day(2015, 10, 5), "Arsenal", "Leeds United", 0, 2),
			match(4, englishLeague, "2015/2016", day(2015, 11, 1), "Leeds United", "Chelsea", 1, 1),
			match(5, englishLeague, "2015/2016", day(2016, 2, 20), "Chelsea", "Leeds United", 4, 0),
			match(6, englishLeague, "2015/2016", day(2016, 3, 12), "Leeds United", "Arsenal", 2, 3),
			// England 2014/2015
			match(7, englishLeague, "2014/2015", day(2014, 10, 4), "Arsenal", "Chelsea", 1, 0),
			// Spain 2015/2016
			match(8, spanishLeague, "2015/2016", day(2015, 9, 19), "Real Madrid CF", "Sevilla FC", 2, 2),
		},
		PlayerDocs: []store.Player{
			{PlayerID: 1, Name: "Lionel Messi", Height: f64p(170.18), Weight: f64p(159)},
			{PlayerID: 2, Name: "John Keeper", Height: f64p(190.5), Weight: f64p(187)},
			{PlayerID: 3, Name: "Unrated Rookie"},
		},
		AttributeDocs: []store.PlayerAttributes{
			{
				PlayerID: 1, Date: day(2015, 9, 21),
				OverallRating: intp(93), Potential: intp(95), PreferredFoot: strp("left"),
			},
			{
				PlayerID: 1, Date: day(2016, 2, 1),
				OverallRating: intp(91), Potential: intp(93), PreferredFoot: strp("left"),
			},
			{
				PlayerID: 2, Date: day(2015, 10, 1),
				OverallRating: intp(80), PreferredFoot: strp("right"),
			},
			{
				PlayerID: 3, Date: day(2015, 12, 1),
				Potential: intp(70),
			},
		},
	}
}

func fixtureEngine() *Engine {
	return New(fixtureStore())
}

var emptyStore = store.Mem{}

func match(id int, league, season string, date time.Time, home, away string, hg, ag int) store.Match {
	result := store.ResultDraw
	if hg > ag {
		result = store.ResultHomeWin
	} else if hg < ag {
		result = store.ResultAwayWin
	}
	return store.Match{
		MatchID:      id,
		LeagueName:   league,
		Season:       season,
		Date:         date,
		HomeTeamName: home,
		AwayTeamName: away,
		HomeGoals:    hg,
		AwayGoals:    ag,
		Result:       result,
	}
}
