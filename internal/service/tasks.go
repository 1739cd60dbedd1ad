package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"finboard/internal/common"
	"finboard/internal/model"
	"finboard/internal/permission"
	"finboard/internal/state"
	"finboard/internal/storage"
)

// TaskService creates, updates, and deletes tasks.
type TaskService struct {
	state *state.State
	blobs storage.BlobStore
}

// NewTaskService creates a TaskService.
func NewTaskService(st *state.State, blobs storage.BlobStore) *TaskService {
	return &TaskService{state: st, blobs: blobs}
}

// AddTaskInput is the new-task form.
type AddTaskInput struct {
	Title       string
	Description string
	AssignedTo  string
	DueDate     time.Time // zero means now
}

// Add creates a task assigned to an existing user. Assignee and creator
// names are denormalized at creation time and never updated.
func (s *TaskService) Add(ctx context.Context, actor model.Actor, in AddTaskInput) (*model.Task, error) {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.AssignedTo) == "" {
		missing = append(missing, "assignedTo")
	}
	if len(missing) > 0 {
		return nil, common.Validationf("required fields missing: %s", strings.Join(missing, ", "))
	}

	if !permission.CanManageTasks(actor) {
		return nil, common.Permissionf("viewers cannot create tasks")
	}

	assignee, ok := s.state.UserByID(in.AssignedTo)
	if !ok {
		return nil, common.NotFoundf("assigned user %s not found", in.AssignedTo)
	}
	creator, ok := s.state.UserByID(actor.ID)
	if !ok {
		return nil, common.NotFoundf("user %s not found", actor.ID)
	}

	due := in.DueDate
	if due.IsZero() {
		due = time.Now()
	}

	task := model.Task{
		ID:             s.state.NextID(),
		Title:          in.Title,
		Description:    in.Description,
		AssignedTo:     assignee.ID,
		AssignedToName: assignee.Name,
		DueDate:        due,
		Status:         model.TaskPending,
		CreatedBy:      creator.ID,
		CreatedByName:  creator.Name,
		CreatedAt:      time.Now(),
	}
	s.state.AddTask(task)
	persist(ctx, s.state, s.blobs, storage.KeyTasks, storage.KeyIDCounter)

	slog.Debug("task created", "id", task.ID, "assignedTo", task.AssignedTo)
	return &task, nil
}

// UpdateStatus moves a task through its lifecycle. Admins, the assignee,
// and the creator may do this.
func (s *TaskService) UpdateStatus(ctx context.Context, actor model.Actor, id string, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, common.Validationf("unknown task status %q", status)
	}

	task, ok := s.state.TaskByID(id)
	if !ok {
		return nil, common.NotFoundf("task %s not found", id)
	}
	if !permission.CanMutateTaskStatus(actor, task) {
		return nil, common.Permissionf("you can only update tasks assigned to you or created by you")
	}

	s.state.SetTaskStatus(id, status)
	persist(ctx, s.state, s.blobs, storage.KeyTasks)

	task.Status = status
	slog.Debug("task status changed", "id", id, "status", status)
	return &task, nil
}

// Delete removes a task. Admins or the creator only. The caller is
// expected to have confirmed the deletion with the user already.
func (s *TaskService) Delete(ctx context.Context, actor model.Actor, id string) error {
	task, ok := s.state.TaskByID(id)
	if !ok {
		return common.NotFoundf("task %s not found", id)
	}
	if !permission.CanDeleteTask(actor, task) {
		return common.Permissionf("you can only delete tasks you created")
	}

	s.state.RemoveTask(id)
	persist(ctx, s.state, s.blobs, storage.KeyTasks)

	slog.Debug("task deleted", "id", id)
	return nil
}
