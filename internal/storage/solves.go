package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SolveEntry represents one completed level.
type SolveEntry struct {
	ID        int64
	LevelID   string
	Moves     int
	Pushes    int
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Solves     int
	BestMoves  int
	BestPushes int
	AvgMoves   float64
	LastSolved time.Time
}

// SaveSolve records a completed level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(levelID string, moves, pushes int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO solves (level_id, moves, pushes) VALUES (?, ?, ?)",
		levelID, moves, pushes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopSolves retrieves the best N solves for the given level.
// Results are ordered by moves, then pushes, ascending.
func (s *Store) TopSolves(levelID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, moves, pushes, created_at
		 FROM solves
		 WHERE level_id = ?
		 ORDER BY moves ASC, pushes ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.LevelID, &e.Moves, &e.Pushes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestSolve returns the fewest moves recorded for the level.
// ok is false if the level was never solved.
func (s *Store) BestSolve(levelID string) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE level_id = ?",
		levelID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best solve: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// ClearSolves deletes all solves for the given level.
func (s *Store) ClearSolves(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(MIN(pushes), 0), COALESCE(AVG(moves), 0)
		 FROM solves WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Solves, &stats.BestMoves, &stats.BestPushes, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE level_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		levelID,
	).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(last)
	}
	return stats, nil
}

// GetAllLevelStats retrieves statistics for every level solved at least once.
func (s *Store) GetAllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), MIN(pushes), AVG(moves), MAX(created_at)
		 FROM solves
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var last any
		if err := rows.Scan(&st.LevelID, &st.Solves, &st.BestMoves, &st.BestPushes, &st.AvgMoves, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastSolved = parseTime(last)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
