package repository

import (
	"context"
	"log/slog"

	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/models"
)

// ProposalRepo uploads proposal documents.
type ProposalRepo struct {
	base
}

// NewProposalRepo creates a ProposalRepo
func NewProposalRepo(client *api.Client, invalidator SessionInvalidator, logger *slog.Logger) *ProposalRepo {
	return &ProposalRepo{base: newBase(client, invalidator, logger)}
}

// CreateProposal submits a proposal against a project.
// A rejected upload (wrong file type, not a collaborator) carries the server's message.
func (r *ProposalRepo) CreateProposal(ctx context.Context, token, projectID string, upload models.ProposalUpload) (*models.Proposal, error) {
	if err := models.ValidateID(projectID, models.ErrEmptyProjectID); err != nil {
		return nil, err
	}
	if err := upload.Validate(); err != nil {
		return nil, err
	}
	resp, err := r.client.CreateProposal(ctx, token, projectID, upload)
	return payload[models.Proposal](&r.base, "create_proposal", resp, err)
}
