package sensor

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Entry is a package waiting in the inbox.
type Entry struct {
	ID         int64
	Package    Package
	ReceivedAt time.Time
}

// Inbox buffers packages pushed by a device bridge until they are read.
// Only raw readings are kept; computed summaries are never written.
type Inbox struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewInbox(db *sql.DB, logger *slog.Logger) *Inbox {
	return &Inbox{
		db:     db,
		logger: logger,
	}
}

func (i *Inbox) EnsureSchema(ctx context.Context) error {
	_, err := i.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS packages (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        code TEXT NOT NULL,
        data TEXT NOT NULL,
        received_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`)
	if err != nil {
		return fmt.Errorf("creating packages table: %w", err)
	}
	return nil
}

// Push stores the readings as a JSON array so non-Go bridges can write rows too.
func (i *Inbox) Push(ctx context.Context, pkg Package) error {
	data, err := json.Marshal(pkg.Data)
	if err != nil {
		return fmt.Errorf("encoding package: %w", err)
	}

	res, err := i.db.ExecContext(ctx, "INSERT INTO packages (code, data) VALUES (?, ?)", pkg.Code, string(data))
	if err != nil {
		return fmt.Errorf("inserting package: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting package: %w", err)
	}

	if affected != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", affected)
	}

	i.logger.Debug("Package pushed", slog.String("code", pkg.Code), slog.Int("readings", len(pkg.Data)))
	return nil
}

// List returns every package in arrival order. Rows whose readings are not a
// JSON array of numbers are logged and skipped.
func (i *Inbox) List(ctx context.Context) ([]Entry, error) {
	rows, err := i.db.QueryContext(ctx, "SELECT id, code, data, received_at FROM packages ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var dataVal string
		if err := rows.Scan(&e.ID, &e.Package.Code, &dataVal, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scanning package: %w", err)
		}

		if err := json.Unmarshal([]byte(dataVal), &e.Package.Data); err != nil {
			i.logger.Warn("Skipping undecodable package", slog.Int64("id", e.ID), slog.Any("error", err))
			continue
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}

	return entries, nil
}
