// Package history keeps a structured record of every command-set run,
// completed or failed, in SQLite.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the outcome of a run.
type Status string

// Run outcomes.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// timeLayout is fixed-width so started_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Record is one run attempt.
type Record struct {
	ID            string
	Name          string
	Directory     string
	Status        Status
	FailedCommand string
	CommandsRun   int
	StartedAt     time.Time
	Duration      time.Duration
}

// Recorder stores run records. The runner depends on this interface so tests
// can do without a database.
type Recorder interface {
	Record(rec Record) (string, error)
}

// Repository reads and writes run records.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Record inserts rec, assigning an ID when it has none, and returns the ID.
func (r *Repository) Record(rec Record) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	var failed sql.NullString
	if rec.FailedCommand != "" || rec.Status == StatusFailed {
		failed = sql.NullString{String: rec.FailedCommand, Valid: true}
	}
	_, err := r.db.Exec(`INSERT INTO runs (id, name, directory, status, failed_command, started_at, duration_ms, commands_run)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Directory, string(rec.Status), failed,
		rec.StartedAt.UTC().Format(timeLayout), rec.Duration.Milliseconds(), rec.CommandsRun)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return rec.ID, nil
}

// List returns runs newest first. An empty name lists every set; limit <= 0
// means no limit.
func (r *Repository) List(name string, limit int) ([]Record, error) {
	q := `SELECT id, name, directory, status, failed_command, started_at, duration_ms, commands_run FROM runs`
	var args []interface{}
	if name != "" {
		q += " WHERE name = ?"
		args = append(args, name)
	}
	q += " ORDER BY started_at DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Record
	for rows.Next() {
		var rec Record
		var status, started string
		var failed sql.NullString
		var ms int64
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Directory, &status, &failed, &started, &ms, &rec.CommandsRun); err != nil {
			return nil, err
		}
		rec.Status = Status(status)
		rec.FailedCommand = failed.String
		rec.Duration = time.Duration(ms) * time.Millisecond
		if rec.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", started, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
