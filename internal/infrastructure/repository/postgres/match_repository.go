package postgres

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kwdash/soccer-analytics/internal/domain/match"
	qb "github.com/kwdash/soccer-analytics/internal/platform/querybuilder"
)

const matchesTable = "matches"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBetween(ctx context.Context, from, to time.Time) ([]match.Match, error) {
	query, args, err := qb.Select("date", "home_team", "away_team", "home_score", "away_score").
		From(matchesTable).
		Where(
			qb.Gte("date", from),
			qb.Lte("date", to),
		).
		OrderBy("date", "home_team", "away_team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// ListBetweenForTeams narrows the window to matches where any of the given
// teams plays either side, pushing the subject filter into SQL.
func (r *MatchRepository) ListBetweenForTeams(ctx context.Context, from, to time.Time, teams []string) ([]match.Match, error) {
	values := make([]any, 0, len(teams))
	for _, t := range teams {
		values = append(values, t)
	}

	query, args, err := qb.Select("date", "home_team", "away_team", "home_score", "away_score").
		From(matchesTable).
		Where(
			qb.Gte("date", from),
			qb.Lte("date", to),
			qb.Or(
				qb.In("home_team", values),
				qb.In("away_team", values),
			),
		).
		OrderBy("date", "home_team", "away_team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches for teams query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches for teams: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) ListTeams(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	for _, column := range []string{"home_team", "away_team"} {
		query, args, err := qb.Select("DISTINCT " + column + " AS team").
			From(matchesTable).
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build distinct %s query: %w", column, err)
		}

		var names []string
		if err := r.db.SelectContext(ctx, &names, query, args...); err != nil {
			return nil, fmt.Errorf("select distinct %s: %w", column, err)
		}
		for _, name := range names {
			if name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MatchRepository) DateBounds(ctx context.Context) (time.Time, time.Time, bool, error) {
	query, args, err := qb.Select("MIN(date) AS min_date", "MAX(date) AS max_date").
		From(matchesTable).
		ToSQL()
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("build date bounds query: %w", err)
	}

	var row struct {
		MinDate *time.Time `db:"min_date"`
		MaxDate *time.Time `db:"max_date"`
	}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("select date bounds: %w", err)
	}
	if row.MinDate == nil || row.MaxDate == nil {
		return time.Time{}, time.Time{}, false, nil
	}
	return *row.MinDate, *row.MaxDate, true, nil
}

// InsertMatches bulk-loads corpus rows, skipping duplicates on the natural
// key. Used by the importer.
func (r *MatchRepository) InsertMatches(ctx context.Context, matches []match.Match) (int, error) {
	if len(matches) == 0 {
		return 0, nil
	}

	builder := qb.InsertInto(matchesTable).
		Columns("date", "home_team", "away_team", "home_score", "away_score").
		Suffix("ON CONFLICT (date, home_team, away_team) DO NOTHING")
	for _, m := range matches {
		builder = builder.Values(m.Date, m.HomeTeam, m.AwayTeam, scoreToNullInt64(m.HomeScore), scoreToNullInt64(m.AwayScore))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert matches query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert matches: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count inserted matches: %w", err)
	}
	return int(inserted), nil
}
