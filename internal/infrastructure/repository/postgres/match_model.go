package postgres

import (
	"database/sql"
	"time"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
)

type matchTableModel struct {
	Date      time.Time     `db:"date"`
	HomeTeam  string        `db:"home_team"`
	AwayTeam  string        `db:"away_team"`
	HomeScore sql.NullInt64 `db:"home_score"`
	AwayScore sql.NullInt64 `db:"away_score"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		Date:      m.Date,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: nullInt64ToScore(m.HomeScore),
		AwayScore: nullInt64ToScore(m.AwayScore),
	}
}

func nullInt64ToScore(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	score := int(v.Int64)
	return &score
}

func scoreToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
