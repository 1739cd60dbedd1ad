package metrics

import (
	"time"

	"finboard/internal/model"
)

// TaskStats counts tasks by status. Overdue is computed live against the
// instant passed in, never persisted.
type TaskStats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Overdue    int
}

// SummarizeTasks tallies the task collection as of now.
func SummarizeTasks(tasks []model.Task, now time.Time) TaskStats {
	var s TaskStats
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case model.TaskPending:
			s.Pending++
		case model.TaskInProgress:
			s.InProgress++
		case model.TaskCompleted:
			s.Completed++
		}
		if t.Overdue(now) {
			s.Overdue++
		}
	}
	return s
}
