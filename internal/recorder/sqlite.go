package recorder

import (
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists audit events to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("sqlite recorder opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS claims (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			user_id   TEXT NOT NULL,
			username  TEXT,
			date      TEXT NOT NULL,
			delta     INTEGER,
			streak    INTEGER,
			outcome   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_claims_ts ON claims(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_claims_user ON claims(user_id)`,

		`CREATE TABLE IF NOT EXISTS matches (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			winner_id TEXT NOT NULL,
			loser_id  TEXT NOT NULL,
			stake     INTEGER,
			payable   INTEGER,
			payout    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_ts ON matches(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			from_id   TEXT NOT NULL,
			to_id     TEXT NOT NULL,
			item      TEXT NOT NULL,
			quantity  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordClaim(evt *ClaimEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.db.Exec(
		`INSERT INTO claims (timestamp, user_id, username, date, delta, streak, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), evt.UserID, evt.Username, evt.Date, evt.Delta, evt.Streak, evt.Outcome,
	)
	return err
}

func (r *SQLiteRecorder) RecordMatch(evt *MatchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.db.Exec(
		`INSERT INTO matches (timestamp, winner_id, loser_id, stake, payable, payout)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), evt.WinnerID, evt.LoserID, evt.Stake, evt.Payable, evt.Payout,
	)
	return err
}

func (r *SQLiteRecorder) RecordTrade(evt *TradeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.db.Exec(
		`INSERT INTO trades (timestamp, from_id, to_id, item, quantity)
		 VALUES (?, ?, ?, ?, ?)`,
		time.Now().Unix(), evt.FromID, evt.ToID, evt.Item, evt.Quantity,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
