package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"todo_manager/internal/models"

	"github.com/google/uuid"
)

// memoryStore backs the in-memory repositories. It is selected with db.driver=memory
// and used by service and handler tests.
type memoryStore struct {
	mu         sync.RWMutex
	users      map[int]models.User
	tasks      map[int]models.Task
	activity   []models.Activity
	nextUserID int
	nextTaskID int
}

type (
	MemoryUsers    struct{ s *memoryStore }
	MemoryTasks    struct{ s *memoryStore }
	MemoryActivity struct{ s *memoryStore }
)

var (
	_ Users    = MemoryUsers{}
	_ Tasks    = MemoryTasks{}
	_ Activity = MemoryActivity{}
)

// NewMemoryRepository returns a Repository whose data lives only in process memory.
func NewMemoryRepository() *Repository {
	s := &memoryStore{
		users: make(map[int]models.User),
		tasks: make(map[int]models.Task),
	}
	return &Repository{
		Users:    MemoryUsers{s},
		Tasks:    MemoryTasks{s},
		Activity: MemoryActivity{s},
		Ping:     func(context.Context) error { return nil },
	}
}

func (r MemoryUsers) Create(_ context.Context, username, email, passwordHash string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username || u.Email == email {
			return 0, fmt.Errorf("insert user %q: %w", username, ErrDuplicate)
		}
	}
	r.s.nextUserID++
	r.s.users[r.s.nextUserID] = models.User{
		ID:           r.s.nextUserID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return r.s.nextUserID, nil
}

func (r MemoryUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username }), nil
}

func (r MemoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email }), nil
}

func (r MemoryUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id }), nil
}

func (r MemoryUsers) find(match func(models.User) bool) *models.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u
		}
	}
	return nil
}

// copyTask detaches the due date pointer from the stored record.
func copyTask(t models.Task) models.Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

func (r MemoryTasks) Create(_ context.Context, t models.Task) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[t.UserID]; !ok {
		return 0, fmt.Errorf("insert task for user %d: unknown owner", t.UserID)
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	r.s.nextTaskID++
	t.ID = r.s.nextTaskID
	r.s.tasks[t.ID] = copyTask(t)
	return t.ID, nil
}

func (r MemoryTasks) ListByUser(_ context.Context, userID int) ([]models.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Task, 0, 16)
	for _, t := range r.s.tasks {
		if t.UserID == userID {
			out = append(out, copyTask(t))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r MemoryTasks) GetByID(_ context.Context, id int) (*models.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, nil
	}
	t = copyTask(t)
	return &t, nil
}

func (r MemoryTasks) Update(_ context.Context, t models.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[t.ID]
	if !ok || cur.UserID != t.UserID {
		return fmt.Errorf("update task %d: %w", t.ID, ErrNotFound)
	}
	cur.Content = t.Content
	cur.Done = t.Done
	cur.DueDate = t.DueDate
	r.s.tasks[t.ID] = copyTask(cur)
	return nil
}

func (r MemoryTasks) Delete(_ context.Context, userID, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.tasks[id]
	if !ok || cur.UserID != userID {
		return fmt.Errorf("delete task %d: %w", id, ErrNotFound)
	}
	delete(r.s.tasks, id)
	return nil
}

func (r MemoryTasks) MarkAllDone(_ context.Context, userID int) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for id, t := range r.s.tasks {
		if t.UserID == userID && !t.Done {
			t.Done = true
			r.s.tasks[id] = t
			n++
		}
	}
	return n, nil
}

func (r MemoryActivity) Append(_ context.Context, a models.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = time.Now()
	}
	a.OccurredAt = a.OccurredAt.UTC()
	a.Type = strings.ToUpper(strings.TrimSpace(a.Type))
	r.s.activity = append(r.s.activity, a)
	return nil
}

func (r MemoryActivity) List(_ context.Context, userID int, from, to time.Time, typ string, limit int) ([]models.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	typ = strings.ToUpper(strings.TrimSpace(typ))
	out := make([]models.Activity, 0, 32)
	for _, a := range r.s.activity {
		if a.UserID != userID {
			continue
		}
		if !from.IsZero() && a.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && a.OccurredAt.After(to) {
			continue
		}
		if typ != "" && a.Type != typ {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
