package usecase

import (
	"sort"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

// Metrics summarizes a match set from the subject's perspective. Matches
// without a result are excluded from every figure.
type Metrics struct {
	GamesPlayed   int
	Wins          int
	Losses        int
	Draws         int
	WinRate       float64
	LossRate      float64
	GoalsScored   int
	GoalsConceded int
	GoalDiff      int
}

// OpponentStats is the per-opponent breakdown row.
type OpponentStats struct {
	Opponent       string
	TotalMatches   int
	Wins           int
	Losses         int
	Draws          int
	WinRate        float64
	LossRate       float64
	DrawRate       float64
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

type OpponentSortKey string

const (
	// OpponentSortWinRate orders for comparison views.
	OpponentSortWinRate OpponentSortKey = "win_rate"
	// OpponentSortGoalDifference orders for goal-performance views.
	OpponentSortGoalDifference OpponentSortKey = "goal_difference"
)

type MetricsService struct{}

func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// Aggregate computes summary statistics over a match set. Rates are
// percentages; an empty or all-NA set yields zeros throughout.
func (s *MetricsService) Aggregate(matches []match.PerspectiveMatch) Metrics {
	var m Metrics
	for _, pm := range matches {
		if !pm.Decided() {
			continue
		}
		m.GamesPlayed++
		switch pm.Result {
		case match.ResultWin:
			m.Wins++
		case match.ResultLoss:
			m.Losses++
		case match.ResultDraw:
			m.Draws++
		}
		if pm.TeamScore != nil {
			m.GoalsScored += *pm.TeamScore
		}
		if pm.OpponentScore != nil {
			m.GoalsConceded += *pm.OpponentScore
		}
	}

	m.GoalDiff = m.GoalsScored - m.GoalsConceded
	if m.GamesPlayed > 0 {
		m.WinRate = float64(m.Wins) / float64(m.GamesPlayed) * 100
		m.LossRate = float64(m.Losses) / float64(m.GamesPlayed) * 100
	}
	return m
}

// AggregateByOpponent computes the same statistics grouped by opponent team.
// Rates here are fractions in [0, 1], matching what the comparison views
// consume. Ties sort by opponent name for determinism.
func (s *MetricsService) AggregateByOpponent(matches []match.PerspectiveMatch, sortKey OpponentSortKey) []OpponentStats {
	index := make(map[string]int)
	rows := make([]OpponentStats, 0)

	for _, pm := range matches {
		if !pm.Decided() {
			continue
		}
		i, ok := index[pm.OpponentTeam]
		if !ok {
			index[pm.OpponentTeam] = len(rows)
			rows = append(rows, OpponentStats{Opponent: pm.OpponentTeam})
			i = len(rows) - 1
		}

		row := &rows[i]
		row.TotalMatches++
		switch pm.Result {
		case match.ResultWin:
			row.Wins++
		case match.ResultLoss:
			row.Losses++
		case match.ResultDraw:
			row.Draws++
		}
		if pm.TeamScore != nil {
			row.GoalsFor += *pm.TeamScore
		}
		if pm.OpponentScore != nil {
			row.GoalsAgainst += *pm.OpponentScore
		}
	}

	for i := range rows {
		row := &rows[i]
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		if row.TotalMatches > 0 {
			row.WinRate = float64(row.Wins) / float64(row.TotalMatches)
			row.LossRate = float64(row.Losses) / float64(row.TotalMatches)
			row.DrawRate = float64(row.Draws) / float64(row.TotalMatches)
		}
	}

	switch sortKey {
	case OpponentSortGoalDifference:
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].GoalDifference != rows[j].GoalDifference {
				return rows[i].GoalDifference > rows[j].GoalDifference
			}
			return rows[i].Opponent < rows[j].Opponent
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].WinRate != rows[j].WinRate {
				return rows[i].WinRate > rows[j].WinRate
			}
			return rows[i].Opponent < rows[j].Opponent
		})
	}

	return rows
}
