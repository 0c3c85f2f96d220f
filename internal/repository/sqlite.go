package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/mr1hm/go-flood-safety/internal/models"
)

// alertSlot is the single named slot holding the JSON-encoded alert array.
const alertSlot = "floodsafe_alerts_v1"

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Load(ctx context.Context) ([]models.Alert, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, alertSlot).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.Alert{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading slot %q: %w", alertSlot, err)
	}

	var alerts []models.Alert
	if err := json.Unmarshal([]byte(raw), &alerts); err != nil {
		// A corrupt slot is recovered locally, never surfaced to the caller.
		slog.Error("malformed alert slot, treating as empty", "slot", alertSlot, "error", err)
		return []models.Alert{}, nil
	}
	if alerts == nil {
		alerts = []models.Alert{}
	}

	return alerts, nil
}

func (s *SQLiteDB) Save(ctx context.Context, alerts []models.Alert) error {
	if alerts == nil {
		alerts = []models.Alert{}
	}
	raw, err := json.Marshal(alerts)
	if err != nil {
		return fmt.Errorf("error encoding alerts: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO slots(name, value) VALUES(?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		alertSlot, string(raw))
	if err != nil {
		return fmt.Errorf("error writing slot %q: %w", alertSlot, err)
	}
	return nil
}

func (s *SQLiteDB) Append(ctx context.Context, alert models.Alert) error {
	alerts, err := s.Load(ctx)
	if err != nil {
		return err
	}
	return s.Save(ctx, append(alerts, alert))
}

func (s *SQLiteDB) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, alertSlot)
	if err != nil {
		return fmt.Errorf("error clearing slot %q: %w", alertSlot, err)
	}
	return nil
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
