package usecase

import (
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

func score(n int) *int {
	return &n
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

// perspective builds a decided match from the subject's point of view.
func perspective(date, opponent string, teamScore, opponentScore int) match.PerspectiveMatch {
	return match.FromHomePerspective(match.Match{
		Date:      day(date),
		HomeTeam:  "Sunset City",
		AwayTeam:  opponent,
		HomeScore: score(teamScore),
		AwayScore: score(opponentScore),
	})
}

// perspectiveNA builds a match with no recorded score.
func perspectiveNA(date, opponent string) match.PerspectiveMatch {
	return match.FromHomePerspective(match.Match{
		Date:     day(date),
		HomeTeam: "Sunset City",
		AwayTeam: opponent,
	})
}
