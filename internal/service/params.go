package service

import "time"

// ActivityFilter narrows a user's activity history by time range and type.
type ActivityFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "LOGIN", "TASK_CREATED", ...
	Limit int       // <= 0 means defaultHistoryLimit
}
