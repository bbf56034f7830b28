package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_Basic(t *testing.T) {
	sql, args, err := Select("date", "home_team", "away_team").
		From("matches").
		OrderBy("date ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT date, home_team, away_team FROM matches ORDER BY date ASC"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_WhereNumbering(t *testing.T) {
	sql, args, err := Select("date").
		From("matches").
		Where(Gte("date", "2024-01-01"), Lte("date", "2024-12-31")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT date FROM matches WHERE date >= $1 AND date <= $2"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"2024-01-01", "2024-12-31"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelect_OrAndIn(t *testing.T) {
	sql, args, err := Select("date").
		From("matches").
		Where(
			Gte("date", "2024-01-01"),
			Or(
				In("home_team", []any{"Miami United", "Naples City"}),
				In("away_team", []any{"Miami United", "Naples City"}),
			),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT date FROM matches WHERE date >= $1 AND (home_team IN ($2, $3) OR away_team IN ($4, $5))"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 5 {
		t.Fatalf("args = %v", args)
	}
}

func TestSelect_EmptyIn(t *testing.T) {
	sql, args, err := Select("date").
		From("matches").
		Where(In("home_team", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT date FROM matches WHERE 1=0"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v", args)
	}
}

func TestSelect_EmptyOr(t *testing.T) {
	sql, _, err := Select("date").From("matches").Where(Or()).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}
	if sql != "SELECT date FROM matches WHERE 1=0" {
		t.Fatalf("empty OR must be always false, got %q", sql)
	}
}

func TestSelect_Expr(t *testing.T) {
	sql, args, err := Select("date").
		From("matches").
		Where(Expr("home_score IS NOT NULL")).
		Where(Expr("date > ?", "2024-01-01")).
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "SELECT date FROM matches WHERE home_score IS NOT NULL AND date > $1 LIMIT 10"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"2024-01-01"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelect_Validation(t *testing.T) {
	if _, _, err := Select().From("matches").ToSQL(); err == nil {
		t.Fatal("missing columns must error")
	}
	if _, _, err := Select("date").ToSQL(); err == nil {
		t.Fatal("missing table must error")
	}
}

func TestInsert_MultiRow(t *testing.T) {
	sql, args, err := InsertInto("matches").
		Columns("date", "home_team", "away_team").
		Values("2024-03-02", "Key West FC", "Miami United").
		Values("2024-03-09", "Orlando Rovers", "Key West FC").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "INSERT INTO matches (date, home_team, away_team) VALUES ($1, $2, $3), ($4, $5, $6)"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 6 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsert_Suffix(t *testing.T) {
	sql, _, err := InsertInto("matches").
		Columns("date").
		Values("2024-03-02").
		Suffix("ON CONFLICT (date) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	want := "INSERT INTO matches (date) VALUES ($1) ON CONFLICT (date) DO NOTHING"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
}

func TestInsert_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("matches").
		Columns("date", "home_team").
		Values("2024-03-02").
		ToSQL()
	if err == nil {
		t.Fatal("row with wrong arity must error")
	}
}
