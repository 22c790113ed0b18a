package models

// Project is the root aggregate of the research workspace.
// Tasks and collaborators reference it by ID.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"nama_project"`
	Description string    `json:"deskripsi"`
	ObjectType  string    `json:"object"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
	IsFinished  bool      `json:"is_finish"`
	InviteCode  string    `json:"invite_code"`
}

// GetID returns the project ID for quiet output
func (p *Project) GetID() string {
	return p.ID
}

// ProjectDetail is the full project view returned by the detail endpoint
type ProjectDetail struct {
	Project
	Collaborators []Collaborator `json:"project_collaborator"`
	Tasks         []Task         `json:"task"`
	Proposals     []Proposal     `json:"proposals"`
}

// Collaborator links a user to a project with a role flag and membership status
type Collaborator struct {
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id"`
	IsOwner   bool   `json:"is_owner"`
	Status    string `json:"status"`
	User      *User  `json:"User,omitempty"`
}

// Collaborator membership statuses seen on the wire
const (
	CollaboratorPending  = "pending"
	CollaboratorAccepted = "accepted"
)
