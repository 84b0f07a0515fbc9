package models

import "time"

// DueDateLayout is the only accepted calendar-date format for due dates.
const DueDateLayout = "2006-01-02"

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID        int        `json:"id"`
	Content   string     `json:"content"`
	Done      bool       `json:"done"`
	DueDate   *time.Time `json:"due_date,omitempty"` // calendar date, stored as UTC midnight
	UserID    int        `json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsOverdue reports whether the task is still open and the start of its due
// day, taken in now's location, lies strictly before now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Done || t.DueDate == nil {
		return false
	}
	d := t.DueDate
	dueDay := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	return dueDay.Before(now)
}

// DueDateString renders the due date in DueDateLayout, or "" when unset.
func (t Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DueDateLayout)
}

// Summary holds the per-user task counters shown on the analytics page.
type Summary struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	PendingTasks   int `json:"pending_tasks"`
	OverdueTasks   int `json:"overdue_tasks"`
}
