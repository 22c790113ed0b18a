package repository

import (
	"context"
	"log/slog"

	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/models"
)

// TaskRepo handles all task-related API calls.
type TaskRepo struct {
	base
}

// NewTaskRepo creates a TaskRepo
func NewTaskRepo(client *api.Client, invalidator SessionInvalidator, logger *slog.Logger) *TaskRepo {
	return &TaskRepo{base: newBase(client, invalidator, logger)}
}

func (r *TaskRepo) CreateTask(ctx context.Context, token string, req models.CreateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.client.CreateTask(ctx, token, req)
	return payload[models.Task](&r.base, "create_task", resp, err)
}

func (r *TaskRepo) UpdateTask(ctx context.Context, token, id string, req models.UpdateTaskRequest) (*models.Task, error) {
	if err := models.ValidateID(id, models.ErrEmptyTaskID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.client.UpdateTask(ctx, token, id, req)
	return payload[models.Task](&r.base, "update_task", resp, err)
}

// DeleteTask returns the server's confirmation message
func (r *TaskRepo) DeleteTask(ctx context.Context, token, id string) (string, error) {
	if err := models.ValidateID(id, models.ErrEmptyTaskID); err != nil {
		return "", err
	}
	resp, err := r.client.DeleteTask(ctx, token, id)
	return message(&r.base, "delete_task", resp, err)
}

// ListTasks returns the tasks of a project, empty when the server sends null
func (r *TaskRepo) ListTasks(ctx context.Context, token, projectID string) ([]models.Task, error) {
	if err := models.ValidateID(projectID, models.ErrEmptyProjectID); err != nil {
		return nil, err
	}
	resp, err := r.client.ListTasks(ctx, token, projectID)
	return list[models.Task](&r.base, "list_tasks", resp, err)
}

func (r *TaskRepo) GetTaskDetails(ctx context.Context, token, taskID string) (*models.Task, error) {
	if err := models.ValidateID(taskID, models.ErrEmptyTaskID); err != nil {
		return nil, err
	}
	resp, err := r.client.GetTask(ctx, token, taskID)
	return payload[models.Task](&r.base, "get_task", resp, err)
}
