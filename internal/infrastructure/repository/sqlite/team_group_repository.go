package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kwdash/soccer-analytics/internal/domain/teamgroup"
)

// TeamGroupRepository persists team groups in SQLite. The analytics core only
// ever consumes the Snapshot view; CRUD exists for the management surface.
type TeamGroupRepository struct {
	db *sql.DB
}

func NewTeamGroupRepository(dbPath string) (*TeamGroupRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open team groups database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("set journal mode: %w", err)
	}

	repo := &TeamGroupRepository{db: db}
	if err := repo.migrate(); err != nil {
		return nil, fmt.Errorf("migrate team groups schema: %w", err)
	}
	return repo, nil
}

func (r *TeamGroupRepository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS team_groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS team_group_members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id INTEGER NOT NULL,
			team_name TEXT NOT NULL,
			FOREIGN KEY (group_id) REFERENCES team_groups(id) ON DELETE CASCADE,
			UNIQUE(group_id, team_name)
		)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}
	return nil
}

func (r *TeamGroupRepository) Close() error {
	return r.db.Close()
}

func (r *TeamGroupRepository) Snapshot(ctx context.Context) (teamgroup.Snapshot, error) {
	groups, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make(teamgroup.Snapshot, len(groups))
	for _, g := range groups {
		snapshot[g.Name] = g.Teams
	}
	return snapshot, nil
}

func (r *TeamGroupRepository) List(ctx context.Context) ([]teamgroup.Group, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT g.name, m.team_name
		FROM team_groups g
		JOIN team_group_members m ON m.group_id = g.id
		ORDER BY g.name, m.team_name`)
	if err != nil {
		return nil, fmt.Errorf("query team groups: %w", err)
	}
	defer rows.Close()

	var out []teamgroup.Group
	index := make(map[string]int)
	for rows.Next() {
		var groupName, teamName string
		if err := rows.Scan(&groupName, &teamName); err != nil {
			return nil, fmt.Errorf("scan team group row: %w", err)
		}

		i, ok := index[groupName]
		if !ok {
			index[groupName] = len(out)
			out = append(out, teamgroup.Group{Name: groupName})
			i = len(out) - 1
		}
		out[i].Teams = append(out[i].Teams, teamName)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team group rows: %w", err)
	}
	return out, nil
}

func (r *TeamGroupRepository) Save(ctx context.Context, group teamgroup.Group) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save team group: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO team_groups (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, group.Name); err != nil {
		return fmt.Errorf("upsert team group: %w", err)
	}

	var groupID int64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM team_groups WHERE name = ?`, group.Name).Scan(&groupID); err != nil {
		return fmt.Errorf("resolve team group id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM team_group_members WHERE group_id = ?`, groupID); err != nil {
		return fmt.Errorf("clear team group members: %w", err)
	}
	for _, team := range group.Teams {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO team_group_members (group_id, team_name) VALUES (?, ?)`, groupID, team); err != nil {
			return fmt.Errorf("insert team group member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save team group: %w", err)
	}
	return nil
}

func (r *TeamGroupRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM team_groups WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete team group: %w", err)
	}
	return nil
}
