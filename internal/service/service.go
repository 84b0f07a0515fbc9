package service

import (
	"context"
	"time"

	"todo_manager/internal/models"
	"todo_manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, int, error)
	ParseToken(accessToken string) (int, error)
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// Tasks exposes CRUD over the tasks of one explicitly passed user.
type Tasks interface {
	ListTasks(ctx context.Context, userID int) ([]models.Task, error)
	AddTask(ctx context.Context, userID int, content, dueDate string) (models.Task, error)
	ToggleTask(ctx context.Context, userID, taskID int) (models.Task, error)
	EditTask(ctx context.Context, userID, taskID int, content string) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int) error
	ResolveAll(ctx context.Context, userID int) (int, error)
}

// Analytics exposes read-only counters over a user's tasks.
type Analytics interface {
	Summarize(ctx context.Context, userID int) (models.Summary, error)
}

// ActivityLog exposes the append-only per-user audit trail.
type ActivityLog interface {
	Record(ctx context.Context, a models.Activity) error
	History(ctx context.Context, userID int, f ActivityFilter) ([]models.Activity, error)
}

type Health interface {
	Ping(ctx context.Context) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Tasks
	Analytics
	ActivityLog
	Health
}

// Options carries the tunables the services need from configuration.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
	// Now is the clock used for token issue/expiry and overdue checks; nil means time.Now.
	Now func() time.Time
}

const defaultTokenTTL = 24 * time.Hour

func (o Options) withDefaults() Options {
	if o.TokenTTL <= 0 {
		o.TokenTTL = defaultTokenTTL
	}
	if o.BcryptCost == 0 {
		o.BcryptCost = bcrypt.DefaultCost
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		Authorization: NewAuthService(repos.Users, opts),
		Tasks:         NewTaskService(repos.Tasks),
		Analytics:     NewAnalyticsService(repos.Tasks, opts.Now),
		ActivityLog:   NewActivityService(repos.Activity, opts.Now),
		Health:        pingFunc(repos.Ping),
	}
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
