package repository

import (
	"context"

	"github.com/tbtb-research/riset/internal/models"
)

// SessionInvalidator clears the persisted session. Repositories call it
// whenever the server answers 401.
type SessionInvalidator interface {
	Invalidate() error
}

// AuthReader defines read operations for the signed-in user.
type AuthReader interface {
	GetCurrentUser(ctx context.Context, token string) (*models.User, error)
}

// AuthWriter defines account operations.
type AuthWriter interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	UpdateUser(ctx context.Context, token string, req models.UpdateUserRequest) (*models.User, error)
}

// AuthRepository combines all account operations.
type AuthRepository interface {
	AuthReader
	AuthWriter
}

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	ListProjects(ctx context.Context, token string) ([]models.Project, error)
	GetProject(ctx context.Context, token, id string) (*models.ProjectDetail, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	CreateProject(ctx context.Context, token string, req models.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, token, id string, req models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, token, id string) (string, error)
	JoinProject(ctx context.Context, token, inviteCode string) (*models.Collaborator, error)
	AddCollaborators(ctx context.Context, token, projectID string, emails []string) (string, error)
}

// ProjectRepository combines all project operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	ListTasks(ctx context.Context, token, projectID string) ([]models.Task, error)
	GetTaskDetails(ctx context.Context, token, taskID string) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, token string, req models.CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, token, id string, req models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, token, id string) (string, error)
}

// TaskRepository combines all task operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// ProposalRepository submits proposals.
type ProposalRepository interface {
	CreateProposal(ctx context.Context, token, projectID string, upload models.ProposalUpload) (*models.Proposal, error)
}
