package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"todo_manager/internal/models"

	"github.com/google/uuid"
)

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

var _ Activity = (*ActivitySQLite)(nil)

const (
	insertActivitySQL = `
		INSERT INTO activity (id, user_id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectActivitySQL = `SELECT id, user_id, occurred_at, type, message, meta FROM activity`
)

// Append inserts a new entry. If ID or OccurredAt are empty, they’re set.
func (r *ActivitySQLite) Append(ctx context.Context, a models.Activity) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now()
	}

	var metaPtr *string
	if a.Metadata != nil {
		if b, err := json.Marshal(a.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		a.ID,
		a.UserID,
		formatTimestamp(a.OccurredAt),
		strings.ToUpper(strings.TrimSpace(a.Type)),
		a.Description,
		metaPtr,
	)
	if err != nil {
		return fmt.Errorf("insert activity for user %d: %w", a.UserID, err)
	}
	return nil
}

// List returns the user's entries filtered by [from, to] (inclusive) and/or type, newest first.
// A non-positive limit means no limit.
func (r *ActivitySQLite) List(ctx context.Context, userID int, from, to time.Time, typ string, limit int) ([]models.Activity, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, formatTimestamp(from))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, formatTimestamp(to))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := selectActivitySQL + " WHERE " + strings.Join(conds, " AND ") + " ORDER BY occurred_at DESC"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select activity for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Activity, 0, 32)
	for rows.Next() {
		var (
			a          models.Activity
			occurredAt string
			metaStr    sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.UserID, &occurredAt, &a.Type, &a.Description, &metaStr); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		if a.OccurredAt, err = parseTimestamp(occurredAt); err != nil {
			return nil, fmt.Errorf("parse occurred_at %q: %w", occurredAt, err)
		}

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				a.Metadata = v
			} else {
				a.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}
	return out, nil
}
