package memory

import (
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
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

// SeedMatches is a small corpus for local development, covering the Key West
// naming variants and a couple of unscored fixtures.
func SeedMatches() []match.Match {
	return []match.Match{
		{Date: day("2024-03-02"), HomeTeam: "Key West FC", AwayTeam: "Miami United", HomeScore: score(3), AwayScore: score(1)},
		{Date: day("2024-03-09"), HomeTeam: "Orlando Rovers", AwayTeam: "Key West FC", HomeScore: score(2), AwayScore: score(2)},
		{Date: day("2024-03-16"), HomeTeam: "Key-West", AwayTeam: "Tampa Bay Rangers", HomeScore: score(0), AwayScore: score(1)},
		{Date: day("2024-04-06"), HomeTeam: "Naples City", AwayTeam: "Keywest FC", HomeScore: score(1), AwayScore: score(4)},
		{Date: day("2024-04-13"), HomeTeam: "Key West FC", AwayTeam: "Orlando Rovers", HomeScore: score(2), AwayScore: score(0)},
		{Date: day("2024-05-04"), HomeTeam: "Miami United", AwayTeam: "Key West FC", HomeScore: score(3), AwayScore: score(2)},
		{Date: day("2024-05-18"), HomeTeam: "Key West FC", AwayTeam: "Naples City", HomeScore: score(1), AwayScore: score(1)},
		{Date: day("2024-06-01"), HomeTeam: "Tampa Bay Rangers", AwayTeam: "Key West FC", HomeScore: nil, AwayScore: nil},
		{Date: day("2024-09-07"), HomeTeam: "Key West FC", AwayTeam: "Fort Myers Athletic", HomeScore: score(5), AwayScore: score(0)},
		{Date: day("2024-09-21"), HomeTeam: "Orlando Rovers", AwayTeam: "Miami United", HomeScore: score(1), AwayScore: score(2)},
		{Date: day("2024-10-05"), HomeTeam: "Fort Myers Athletic", AwayTeam: "Tampa Bay Rangers", HomeScore: score(0), AwayScore: score(0)},
		{Date: day("2025-02-15"), HomeTeam: "Key West FC", AwayTeam: "Miami United", HomeScore: score(2), AwayScore: score(1)},
		{Date: day("2025-03-01"), HomeTeam: "Naples City", AwayTeam: "Key West FC", HomeScore: score(0), AwayScore: score(3)},
		{Date: day("2025-03-22"), HomeTeam: "Key West FC", AwayTeam: "Tampa Bay Rangers", HomeScore: nil, AwayScore: nil},
	}
}

func SeedTeamGroups() []teamgroup.Group {
	return []teamgroup.Group{
		{Name: "South Florida", Teams: []string{"Miami United", "Naples City", "Fort Myers Athletic"}},
		{Name: "Rivals", Teams: []string{"Miami United", "Tampa Bay Rangers"}},
	}
}
