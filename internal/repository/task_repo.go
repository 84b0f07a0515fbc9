package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"todo_manager/internal/models"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite {
	return &TaskSQLite{db: db}
}

var _ Tasks = (*TaskSQLite)(nil)

const (
	insertTaskSQL        = `INSERT INTO tasks (content, done, due_date, user_id, created_at) VALUES (?, ?, ?, ?, ?)`
	selectTaskColumnsSQL = `SELECT id, content, done, due_date, user_id, created_at FROM tasks`
	selectTasksByUserSQL = selectTaskColumnsSQL + ` WHERE user_id = ? ORDER BY id`
	selectTaskByIDSQL    = selectTaskColumnsSQL + ` WHERE id = ?`
	updateTaskSQL        = `UPDATE tasks SET content = ?, done = ?, due_date = ? WHERE id = ? AND user_id = ?`
	deleteTaskSQL        = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	markAllDoneSQL       = `UPDATE tasks SET done = 1 WHERE user_id = ? AND done = 0`
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// dueDateValue converts an optional due date into its column value.
func dueDateValue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(models.DueDateLayout)
}

func scanTask(s rowScanner) (models.Task, error) {
	var (
		t         models.Task
		due       sql.NullString
		createdAt string
	)
	if err := s.Scan(&t.ID, &t.Content, &t.Done, &due, &t.UserID, &createdAt); err != nil {
		return models.Task{}, err
	}
	if due.Valid && due.String != "" {
		d, err := time.Parse(models.DueDateLayout, due.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("parse due_date %q: %w", due.String, err)
		}
		t.DueDate = &d
	}
	ts, err := parseTimestamp(createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	t.CreatedAt = ts
	return t, nil
}

// Create inserts a task and returns its ID. A zero CreatedAt is set to now.
func (r *TaskSQLite) Create(ctx context.Context, t models.Task) (int, error) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	res, err := r.db.ExecContext(ctx, insertTaskSQL,
		t.Content,
		t.Done,
		dueDateValue(t.DueDate),
		t.UserID,
		formatTimestamp(t.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert task for user %d: %w", t.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for task: %w", err)
	}
	return int(lastID), nil
}

// ListByUser returns every task owned by userID ordered by id.
func (r *TaskSQLite) ListByUser(ctx context.Context, userID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// GetByID fetches a task regardless of owner. Returns (nil, nil) if not found.
func (r *TaskSQLite) GetByID(ctx context.Context, id int) (*models.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, selectTaskByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &t, nil
}

// Update writes content, done and due date of a task owned by t.UserID.
func (r *TaskSQLite) Update(ctx context.Context, t models.Task) error {
	res, err := r.db.ExecContext(ctx, updateTaskSQL, t.Content, t.Done, dueDateValue(t.DueDate), t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return requireAffected(res, "update task", t.ID)
}

// Delete removes a task owned by userID.
func (r *TaskSQLite) Delete(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, deleteTaskSQL, id, userID)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return requireAffected(res, "delete task", id)
}

// MarkAllDone sets done on every open task of userID and returns how many changed.
func (r *TaskSQLite) MarkAllDone(ctx context.Context, userID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, markAllDoneSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("resolve tasks for user %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for user %d: %w", userID, err)
	}
	return n, nil
}

func requireAffected(res sql.Result, op string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d: rows affected: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", op, id, ErrNotFound)
	}
	return nil
}
