package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"inventory_dashboard/internal/models"

	"github.com/google/uuid"
)

// ActivitySQLite stores the activity log in the activity_events table.
type ActivitySQLite struct {
	db    *sql.DB
	newID func() string
	now   func() time.Time
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite {
	return &ActivitySQLite{db: db, newID: uuid.NewString, now: time.Now}
}

var _ ActivityRepo = (*ActivitySQLite)(nil)

const (
	insertActivitySQL = `INSERT INTO activity_events (id, occurred_at, type, message, meta) VALUES (?, ?, ?, ?, ?)`
	selectActivitySQL = `SELECT id, occurred_at, type, message, meta FROM activity_events`

	// occurred_at is stored as text so range filters compare lexically.
	sqliteTimestampLayout = "2006-01-02 15:04:05"

	rawMetaKey = "raw"
)

// Append stores e, assigning an id and timestamp when they are missing.
func (r *ActivitySQLite) Append(ctx context.Context, e models.ActivityEvent) error {
	if _, ok := models.ParseActivityType(string(e.Type)); !ok {
		return fmt.Errorf("append activity: unknown type %q", e.Type)
	}
	if e.ID == "" {
		e.ID = r.newID()
	}
	if e.At.IsZero() {
		e.At = r.now()
	}
	meta, err := encodeMeta(e.Meta)
	if err != nil {
		return fmt.Errorf("append activity %s: %w", e.Type, err)
	}

	if _, err := r.db.ExecContext(ctx, insertActivitySQL,
		e.ID,
		e.At.UTC().Format(sqliteTimestampLayout),
		string(e.Type),
		e.Message,
		meta,
	); err != nil {
		return fmt.Errorf("append activity %s: %w", e.Type, err)
	}
	return nil
}

// List returns the entries selected by q.
func (r *ActivitySQLite) List(ctx context.Context, q models.ActivityQuery) ([]models.ActivityEvent, error) {
	stmt, args := buildActivityQuery(q)

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	out := []models.ActivityEvent{}
	for rows.Next() {
		var (
			ev   models.ActivityEvent
			typ  string
			meta sql.NullString
		)
		if err := rows.Scan(&ev.ID, &ev.At, &typ, &ev.Message, &meta); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		ev.At = ev.At.UTC()
		ev.Type = models.ActivityType(typ)
		ev.Meta = decodeMeta(meta)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return out, nil
}

// buildActivityQuery renders q as a SELECT over activity_events.
func buildActivityQuery(q models.ActivityQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if !q.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, q.From.UTC().Format(sqliteTimestampLayout))
	}
	if !q.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, q.To.UTC().Format(sqliteTimestampLayout))
	}
	if len(q.Types) > 0 {
		marks := strings.TrimSuffix(strings.Repeat("?, ", len(q.Types)), ", ")
		conds = append(conds, "type IN ("+marks+")")
		for _, t := range q.Types {
			args = append(args, string(t))
		}
	}

	var b strings.Builder
	b.WriteString(selectActivitySQL)
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	if q.Oldest {
		b.WriteString(" ORDER BY occurred_at ASC, rowid ASC")
	} else {
		b.WriteString(" ORDER BY occurred_at DESC, rowid DESC")
	}
	if q.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, q.Limit)
	}
	return b.String(), args
}

func encodeMeta(m map[string]any) (sql.NullString, error) {
	if len(m) == 0 {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode meta: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// decodeMeta parses the stored JSON object. Text that is not an object is
// surfaced under the "raw" key instead of being dropped.
func decodeMeta(s sql.NullString) map[string]any {
	if !s.Valid || s.String == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s.String), &m); err != nil {
		return map[string]any{rawMetaKey: s.String}
	}
	return m
}
