package repository

import (
	"context"
	"log/slog"

	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/models"
)

// ProjectRepo handles all project-related API calls.
type ProjectRepo struct {
	base
}

// NewProjectRepo creates a ProjectRepo
func NewProjectRepo(client *api.Client, invalidator SessionInvalidator, logger *slog.Logger) *ProjectRepo {
	return &ProjectRepo{base: newBase(client, invalidator, logger)}
}

// ListProjects returns every project the user collaborates on
func (r *ProjectRepo) ListProjects(ctx context.Context, token string) ([]models.Project, error) {
	resp, err := r.client.ListProjects(ctx, token)
	return list[models.Project](&r.base, "list_projects", resp, err)
}

// GetProject returns a project with its collaborators, tasks and proposals
func (r *ProjectRepo) GetProject(ctx context.Context, token, id string) (*models.ProjectDetail, error) {
	if err := models.ValidateID(id, models.ErrEmptyProjectID); err != nil {
		return nil, err
	}
	resp, err := r.client.GetProject(ctx, token, id)
	return payload[models.ProjectDetail](&r.base, "get_project", resp, err)
}

// CreateProject creates a project; collaborators are invited by email
func (r *ProjectRepo) CreateProject(ctx context.Context, token string, req models.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.client.CreateProject(ctx, token, req)
	return payload[models.Project](&r.base, "create_project", resp, err)
}

func (r *ProjectRepo) UpdateProject(ctx context.Context, token, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	if err := models.ValidateID(id, models.ErrEmptyProjectID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.client.UpdateProject(ctx, token, id, req)
	return payload[models.Project](&r.base, "update_project", resp, err)
}

// DeleteProject returns the server's confirmation message
func (r *ProjectRepo) DeleteProject(ctx context.Context, token, id string) (string, error) {
	if err := models.ValidateID(id, models.ErrEmptyProjectID); err != nil {
		return "", err
	}
	resp, err := r.client.DeleteProject(ctx, token, id)
	return message(&r.base, "delete_project", resp, err)
}

// JoinProject joins a project through its invite code and returns the new membership
func (r *ProjectRepo) JoinProject(ctx context.Context, token, inviteCode string) (*models.Collaborator, error) {
	req := models.JoinProjectRequest{InviteCode: inviteCode}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.client.JoinProject(ctx, token, req)
	return payload[models.Collaborator](&r.base, "join_project", resp, err)
}

// AddCollaborators invites users by email and returns the server's message
func (r *ProjectRepo) AddCollaborators(ctx context.Context, token, projectID string, emails []string) (string, error) {
	req := models.AddCollaboratorsRequest{ProjectID: projectID, Collaborators: emails}
	if err := req.Validate(); err != nil {
		return "", err
	}
	resp, err := r.client.AddCollaborators(ctx, token, req)
	return message(&r.base, "add_collaborators", resp, err)
}
