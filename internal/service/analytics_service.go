package service

import (
	"context"
	"time"

	"todo_manager/internal/models"
	"todo_manager/internal/repository"
)

type AnalyticsService struct {
	tasks repository.Tasks
	now   func() time.Time
}

func NewAnalyticsService(tasks repository.Tasks, now func() time.Time) *AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{tasks: tasks, now: now}
}

// Summarize counts the user's tasks. Tasks without a due date are never overdue.
func (s *AnalyticsService) Summarize(ctx context.Context, userID int) (models.Summary, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return models.Summary{}, err
	}
	return summarize(tasks, s.now()), nil
}

func summarize(tasks []models.Task, now time.Time) models.Summary {
	sum := models.Summary{TotalTasks: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			sum.CompletedTasks++
		}
		if t.IsOverdue(now) {
			sum.OverdueTasks++
		}
	}
	sum.PendingTasks = sum.TotalTasks - sum.CompletedTasks
	return sum
}
