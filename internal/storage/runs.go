package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is a stored command log for one play session.
// Commands holds the log file text, one command token per line.
// Definition is the map the run was played on, so runs of maps outside
// any level pack can still be replayed.
type Run struct {
	ID         uuid.UUID
	LevelID    string
	Definition string
	Commands   string
	Moves      int
	Won        bool
	CreatedAt  time.Time
}

// SaveRun stores a command log and returns its generated ID.
func (s *Store) SaveRun(levelID, definition, commands string, moves int, won bool) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.Exec(
		"INSERT INTO runs (id, level_id, definition, commands, moves, won) VALUES (?, ?, ?, ?, ?, ?)",
		id.String(), levelID, definition, commands, moves, won,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// RunByID retrieves a stored run. Returns nil if no run has the ID.
func (s *Store) RunByID(id string) (*Run, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid run id %q: %w", id, err)
	}

	row := s.db.QueryRow(
		`SELECT id, level_id, definition, commands, moves, won, created_at
		 FROM runs
		 WHERE id = ?`,
		parsed.String(),
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return run, nil
}

// RecentRuns retrieves the most recent runs, optionally for one level.
// An empty levelID matches every level.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, definition, commands, moves, won, created_at
		 FROM runs
		 WHERE ? = '' OR level_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var (
		run       Run
		id        string
		createdAt any
	)
	if err := sc.Scan(&id, &run.LevelID, &run.Definition, &run.Commands, &run.Moves, &run.Won, &createdAt); err != nil {
		return nil, err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("corrupt run id %q: %w", id, err)
	}
	run.ID = parsed
	run.CreatedAt = parseTime(createdAt)
	return &run, nil
}
