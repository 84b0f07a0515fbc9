package repository

import (
	"context"
	"database/sql"
	"time"

	"todo_manager/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// Tasks persists to-do items. Update and Delete are scoped by owner and
// return ErrNotFound when no row matches both id and user id.
type Tasks interface {
	Create(ctx context.Context, t models.Task) (int, error)
	ListByUser(ctx context.Context, userID int) ([]models.Task, error)
	GetByID(ctx context.Context, id int) (*models.Task, error)
	Update(ctx context.Context, t models.Task) error
	Delete(ctx context.Context, userID, id int) error
	MarkAllDone(ctx context.Context, userID int) (int64, error)
}

type Activity interface {
	Append(ctx context.Context, a models.Activity) error
	List(ctx context.Context, userID int, from, to time.Time, typ string, limit int) ([]models.Activity, error)
}

type Repository struct {
	Users    Users
	Tasks    Tasks
	Activity Activity
	// Ping reports whether the backing store is reachable.
	Ping func(ctx context.Context) error
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Tasks:    NewTaskSQLite(db),
		Activity: NewActivitySQLite(db),
		Ping:     db.PingContext,
	}
}
