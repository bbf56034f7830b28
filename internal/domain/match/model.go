package match

import (
	"fmt"
	"time"
)

const (
	ResultWin  = "Win"
	ResultDraw = "Draw"
	ResultLoss = "Loss"
	ResultNA   = "NA"
)

// Match is one row of the source corpus. Scores are nil for fixtures that
// were never played or never scored.
type Match struct {
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
}

func (m Match) Played() bool {
	return m.HomeScore != nil && m.AwayScore != nil
}

// FormatScore renders the raw scoreline for table rows.
func (m Match) FormatScore() string {
	if !m.Played() {
		return "<NA> - <NA>"
	}
	return fmt.Sprintf("%d - %d", *m.HomeScore, *m.AwayScore)
}

// PerspectiveMatch is a Match annotated from the subject's point of view.
type PerspectiveMatch struct {
	Match
	TeamScore     *int
	OpponentScore *int
	OpponentTeam  string
	Result        string
}

func (m PerspectiveMatch) Decided() bool {
	return m.Result != ResultNA
}

// FromHomePerspective annotates a match with the home side as the subject;
// FromAwayPerspective does the same for the away side.
func FromHomePerspective(m Match) PerspectiveMatch {
	return PerspectiveMatch{
		Match:         m,
		TeamScore:     m.HomeScore,
		OpponentScore: m.AwayScore,
		OpponentTeam:  m.AwayTeam,
		Result:        resultOf(m.HomeScore, m.AwayScore),
	}
}

func FromAwayPerspective(m Match) PerspectiveMatch {
	return PerspectiveMatch{
		Match:         m,
		TeamScore:     m.AwayScore,
		OpponentScore: m.HomeScore,
		OpponentTeam:  m.HomeTeam,
		Result:        resultOf(m.AwayScore, m.HomeScore),
	}
}

func resultOf(teamScore, opponentScore *int) string {
	if teamScore == nil || opponentScore == nil {
		return ResultNA
	}
	switch {
	case *teamScore > *opponentScore:
		return ResultWin
	case *teamScore == *opponentScore:
		return ResultDraw
	default:
		return ResultLoss
	}
}
