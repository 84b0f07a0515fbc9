package models

import "time"

// Activity types recorded in a user's trail.
const (
	ActivityRegistered    = "REGISTERED"
	ActivityLogin         = "LOGIN"
	ActivityLogout        = "LOGOUT"
	ActivityTaskCreated   = "TASK_CREATED"
	ActivityTaskToggled   = "TASK_TOGGLED"
	ActivityTaskEdited    = "TASK_EDITED"
	ActivityTaskDeleted   = "TASK_DELETED"
	ActivityTasksResolved = "TASKS_RESOLVED"
)

// Activity is a single entry of a user's own audit trail.
type Activity struct {
	ID          string    `json:"id"`
	UserID      int       `json:"user_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
