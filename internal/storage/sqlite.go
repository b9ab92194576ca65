// Package storage provides SQLite-based persistence for recorded game sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// End reasons recorded with a replay.
const (
	EndGameOver = "game_over"
	EndQuit     = "quit"
)

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// Frame is the input of one tick that had at least one action.
type Frame struct {
	Tick    uint64
	Actions []string // action names, in the order the game applied them
}

// Replay is one recorded session: everything needed to re-run it plus the
// final result to compare against.
type Replay struct {
	ID          int64
	GameID      string
	Seed        int64
	BoardWidth  int
	BoardHeight int
	TicksPerRow int
	Ticks       uint64 // total steps taken
	Score       int
	Lines       int
	Pieces      int
	EndReason   string
	FrameCount  int
	Frames      []Frame // nil in listings
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			board_width INTEGER NOT NULL,
			board_height INTEGER NOT NULL,
			ticks_per_row INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			lines INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_frames (
			replay_id INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			actions TEXT NOT NULL,
			PRIMARY KEY (replay_id, tick)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a session and its frames in one transaction.
// Returns the ID of the inserted replay.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	res, err := tx.Exec(
		`INSERT INTO replays
		 (game_id, seed, board_width, board_height, ticks_per_row, ticks, score, lines, pieces, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Seed, r.BoardWidth, r.BoardHeight, r.TicksPerRow,
		int64(r.Ticks), r.Score, r.Lines, r.Pieces, r.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO replay_frames (replay_id, tick, actions) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare frame insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range r.Frames {
		if len(f.Actions) == 0 {
			continue
		}
		if _, err := stmt.Exec(id, int64(f.Tick), strings.Join(f.Actions, ",")); err != nil {
			return 0, fmt.Errorf("storage: cannot save frame %d: %w", f.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

const replayColumns = `r.id, r.game_id, r.seed, r.board_width, r.board_height, r.ticks_per_row,
	r.ticks, r.score, r.lines, r.pieces, r.end_reason, r.created_at,
	(SELECT COUNT(*) FROM replay_frames f WHERE f.replay_id = r.id)`

type scanner interface {
	Scan(dest ...any) error
}

func scanReplay(row scanner) (Replay, error) {
	var r Replay
	var ticks int64
	var createdAt any
	err := row.Scan(
		&r.ID, &r.GameID, &r.Seed, &r.BoardWidth, &r.BoardHeight, &r.TicksPerRow,
		&ticks, &r.Score, &r.Lines, &r.Pieces, &r.EndReason, &createdAt,
		&r.FrameCount,
	)
	if err != nil {
		return Replay{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Replay loads a session with all of its frames in tick order.
func (s *Store) Replay(id int64) (*Replay, error) {
	r, err := scanReplay(s.db.QueryRow(
		`SELECT `+replayColumns+` FROM replays r WHERE r.id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT tick, actions FROM replay_frames WHERE replay_id = ? ORDER BY tick`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query frames: %w", err)
	}
	defer rows.Close()

	r.Frames = make([]Frame, 0, r.FrameCount)
	for rows.Next() {
		var tick int64
		var actions string
		if err := rows.Scan(&tick, &actions); err != nil {
			return nil, fmt.Errorf("storage: cannot scan frame: %w", err)
		}
		r.Frames = append(r.Frames, Frame{Tick: uint64(tick), Actions: strings.Split(actions, ",")})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// RecentReplays lists the newest sessions without their frames.
func (s *Store) RecentReplays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+replayColumns+` FROM replays r ORDER BY r.created_at DESC, r.id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var out []Replay
	for rows.Next() {
		r, err := scanReplay(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteReplay removes a session and its frames.
func (s *Store) DeleteReplay(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM replay_frames WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete frames: %w", err)
	}
	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}
