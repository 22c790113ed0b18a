// Package repository wraps the API client with typed, classified operations
// for accounts, projects, tasks and proposals.
package repository

import (
	"log/slog"

	"github.com/tbtb-research/riset/internal/api"
)

// Repository composes the domain repositories using struct embedding.
type Repository struct {
	*AuthRepo
	*ProjectRepo
	*TaskRepo
	*ProposalRepo
}

// NewRepository creates every repository over one shared client.
// invalidator may be nil when no session is persisted.
func NewRepository(client *api.Client, invalidator SessionInvalidator, logger *slog.Logger) *Repository {
	return &Repository{
		AuthRepo:     NewAuthRepo(client, invalidator, logger),
		ProjectRepo:  NewProjectRepo(client, invalidator, logger),
		TaskRepo:     NewTaskRepo(client, invalidator, logger),
		ProposalRepo: NewProposalRepo(client, invalidator, logger),
	}
}

var (
	_ AuthRepository     = (*AuthRepo)(nil)
	_ ProjectRepository  = (*ProjectRepo)(nil)
	_ TaskRepository     = (*TaskRepo)(nil)
	_ ProposalRepository = (*ProposalRepo)(nil)
)
