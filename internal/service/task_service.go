package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"todo_manager/internal/models"
	"todo_manager/internal/repository"
)

// maxContentLen is the widest task text the UI accepts.
const maxContentLen = 200

type TaskService struct {
	tasks repository.Tasks
}

func NewTaskService(tasks repository.Tasks) *TaskService {
	return &TaskService{tasks: tasks}
}

// ListTasks returns every task owned by userID in storage order.
func (s *TaskService) ListTasks(ctx context.Context, userID int) ([]models.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// AddTask creates an open task for userID. An empty dueDate means no due date.
func (s *TaskService) AddTask(ctx context.Context, userID int, content, dueDate string) (models.Task, error) {
	content, err := validateContent(content)
	if err != nil {
		return models.Task{}, err
	}
	due, err := parseDueDate(dueDate)
	if err != nil {
		return models.Task{}, err
	}

	t := models.Task{
		Content:   content,
		DueDate:   due,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.tasks.Create(ctx, t)
	if err != nil {
		return models.Task{}, err
	}
	t.ID = id
	return t, nil
}

// ToggleTask flips the done flag of a task owned by userID.
func (s *TaskService) ToggleTask(ctx context.Context, userID, taskID int) (models.Task, error) {
	t, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	t.Done = !t.Done
	if err := s.tasks.Update(ctx, t); err != nil {
		return models.Task{}, mapNotFound(err)
	}
	return t, nil
}

// EditTask replaces the content of a task owned by userID.
func (s *TaskService) EditTask(ctx context.Context, userID, taskID int, content string) (models.Task, error) {
	content, err := validateContent(content)
	if err != nil {
		return models.Task{}, err
	}
	t, err := s.ownedTask(ctx, userID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	t.Content = content
	if err := s.tasks.Update(ctx, t); err != nil {
		return models.Task{}, mapNotFound(err)
	}
	return t, nil
}

// DeleteTask permanently removes a task owned by userID.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID int) error {
	return mapNotFound(s.tasks.Delete(ctx, userID, taskID))
}

// ResolveAll marks every open task of userID as done and returns how many changed.
func (s *TaskService) ResolveAll(ctx context.Context, userID int) (int, error) {
	n, err := s.tasks.MarkAllDone(ctx, userID)
	return int(n), err
}

// ownedTask loads a task and hides it unless userID owns it.
func (s *TaskService) ownedTask(ctx context.Context, userID, taskID int) (models.Task, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if t == nil || t.UserID != userID {
		return models.Task{}, ErrTaskNotFound
	}
	return *t, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "", ErrContentTooLong
	}
	return content, nil
}

// parseDueDate accepts "" (no due date) or a valid YYYY-MM-DD calendar date.
func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(models.DueDateLayout, s)
	if err != nil {
		return nil, ErrInvalidDueDate
	}
	return &d, nil
}
