package model

import "time"

// TaskStatus tracks task progress.
type TaskStatus string

const (
	// TaskPending is the initial status of every task.
	TaskPending TaskStatus = "pending"
	// TaskInProgress marks a task being worked on.
	TaskInProgress TaskStatus = "in-progress"
	// TaskCompleted marks a finished task.
	TaskCompleted TaskStatus = "completed"
)

// Valid reports whether the status is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a unit of work assigned to a team member. AssignedToName and
// CreatedByName are frozen at creation time, like Transaction.UserName.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	AssignedTo     string     `json:"assignedTo"`
	AssignedToName string     `json:"assignedToName"`
	DueDate        time.Time  `json:"dueDate"`
	Status         TaskStatus `json:"status"`
	CreatedBy      string     `json:"createdBy"`
	CreatedByName  string     `json:"createdByName"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Overdue reports whether the task is late as of now: not completed and
// due strictly before the given instant.
func (t Task) Overdue(now time.Time) bool {
	return t.Status != TaskCompleted && t.DueDate.Before(now)
}
