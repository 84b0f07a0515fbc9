package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"todo_manager/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var taskColumns = []string{"id", "content", "done", "due_date", "user_id", "created_at"}

func newMockTaskRepo(t *testing.T) (*TaskSQLite, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("mock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewTaskSQLite(db), mock
}

func TestTaskSQLite_Create_WithDueDate(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	due := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WithArgs("Buy milk", false, "2099-01-01", 3, "2025-01-02T03:04:05.000000000Z").
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Create(context.Background(), models.Task{
		Content:   "Buy milk",
		DueDate:   &due,
		UserID:    3,
		CreatedAt: created,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
}

func TestTaskSQLite_Create_WithoutDueDate(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WithArgs("No deadline", false, nil, 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	if _, err := repo.Create(context.Background(), models.Task{Content: "No deadline", UserID: 3}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestTaskSQLite_Create_ExecError(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WillReturnError(errors.New("disk full"))

	id, err := repo.Create(context.Background(), models.Task{Content: "x", UserID: 1})
	if err == nil {
		t.Fatalf("expected error")
	}
	if id != 0 {
		t.Fatalf("expected id=0 on error, got %d", id)
	}
}

func TestTaskSQLite_ListByUser(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	rows := sqlmock.NewRows(taskColumns).
		AddRow(1, "first", false, "2099-01-01", 5, testCreatedAt).
		AddRow(2, "second", true, nil, 5, testCreatedAt)
	mock.ExpectQuery(regexp.QuoteMeta(selectTasksByUserSQL)).
		WithArgs(5).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].DueDate == nil || got[0].DueDateString() != "2099-01-01" {
		t.Fatalf("unexpected due date on first task: %+v", got[0])
	}
	if got[1].DueDate != nil || !got[1].Done {
		t.Fatalf("unexpected second task: %+v", got[1])
	}
	for _, task := range got {
		if task.UserID != 5 {
			t.Fatalf("task %d has owner %d", task.ID, task.UserID)
		}
	}
}

func TestTaskSQLite_ListByUser_BadDueDate(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	rows := sqlmock.NewRows(taskColumns).AddRow(1, "x", false, "tomorrow", 5, testCreatedAt)
	mock.ExpectQuery(regexp.QuoteMeta(selectTasksByUserSQL)).WithArgs(5).WillReturnRows(rows)

	if _, err := repo.ListByUser(context.Background(), 5); err == nil {
		t.Fatalf("expected parse error for malformed due_date")
	}
}

func TestTaskSQLite_GetByID(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectTaskByIDSQL)).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(taskColumns).AddRow(9, "x", false, nil, 2, testCreatedAt))
	mock.ExpectQuery(regexp.QuoteMeta(selectTaskByIDSQL)).
		WithArgs(10).
		WillReturnError(sql.ErrNoRows)

	task, err := repo.GetByID(context.Background(), 9)
	if err != nil || task == nil || task.UserID != 2 {
		t.Fatalf("GetByID(9) = %+v, %v", task, err)
	}

	task, err = repo.GetByID(context.Background(), 10)
	if err != nil || task != nil {
		t.Fatalf("GetByID(10) = %+v, %v; want nil, nil", task, err)
	}
}

func TestTaskSQLite_UpdateAndDelete_Scoped(t *testing.T) {
	tests := []struct {
		name    string
		run     func(*TaskSQLite) error
		expect  func(sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "update ok",
			run: func(r *TaskSQLite) error {
				return r.Update(context.Background(), models.Task{ID: 4, UserID: 1, Content: "c", Done: true})
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(updateTaskSQL)).
					WithArgs("c", true, nil, 4, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "update foreign task",
			run: func(r *TaskSQLite) error {
				return r.Update(context.Background(), models.Task{ID: 4, UserID: 2, Content: "c"})
			},
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(updateTaskSQL)).
					WithArgs("c", false, nil, 4, 2).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
		{
			name: "delete ok",
			run:  func(r *TaskSQLite) error { return r.Delete(context.Background(), 1, 4) },
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteTaskSQL)).
					WithArgs(4, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "delete missing",
			run:  func(r *TaskSQLite) error { return r.Delete(context.Background(), 1, 99) },
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(deleteTaskSQL)).
					WithArgs(99, 1).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockTaskRepo(t)
			tt.expect(mock)

			err := tt.run(repo)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestTaskSQLite_MarkAllDone(t *testing.T) {
	repo, mock := newMockTaskRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(markAllDoneSQL)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkAllDone(context.Background(), 7)
	if err != nil {
		t.Fatalf("MarkAllDone: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows changed, got %d", n)
	}
}
