package models

import (
	"fmt"
	"net/mail"
	"strings"
)

// LoginRequest carries credentials for the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credentials are present
func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return ErrEmptyEmail
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// RegisterRequest creates a new account
type RegisterRequest struct {
	Name     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks name, email and password
func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// UpdateUserRequest is a partial profile update.
// Nil fields are not sent and stay untouched on the server.
type UpdateUserRequest struct {
	Email    *string
	Name     *string
	Password *string
	Photo    *File
}

// Validate rejects an update that would send nothing
func (r UpdateUserRequest) Validate() error {
	if r.Email == nil && r.Name == nil && r.Password == nil && r.Photo == nil {
		return ErrNothingToUpdate
	}
	if r.Photo != nil && r.Photo.Content == nil {
		return ErrEmptyPhoto
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return ErrEmptyName
	}
	if r.Password != nil && *r.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// CreateProjectRequest creates a project. Collaborators is always serialized,
// as an empty array when there are none, because the server requires the field.
type CreateProjectRequest struct {
	Name          string   `json:"nama_project"`
	Description   string   `json:"deskripsi"`
	ObjectType    string   `json:"object"`
	Collaborators []string `json:"collaborators"`
}

// Normalize replaces a nil collaborator list with an empty one
func (r CreateProjectRequest) Normalize() CreateProjectRequest {
	if r.Collaborators == nil {
		r.Collaborators = []string{}
	}
	return r
}

// Validate checks the project name and collaborator emails
func (r CreateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyProjectName
	}
	for _, email := range r.Collaborators {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	return nil
}

// UpdateProjectRequest replaces the editable project fields
type UpdateProjectRequest struct {
	Name        string `json:"nama_project"`
	Description string `json:"deskripsi"`
	ObjectType  string `json:"object"`
	IsFinished  bool   `json:"is_finish"`
}

// Validate checks the project name
func (r UpdateProjectRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyProjectName
	}
	return nil
}

// JoinProjectRequest joins a project through its invite code
type JoinProjectRequest struct {
	InviteCode string `json:"invite_code"`
}

// Validate checks the invite code
func (r JoinProjectRequest) Validate() error {
	if strings.TrimSpace(r.InviteCode) == "" {
		return ErrEmptyInviteCode
	}
	return nil
}

// AddCollaboratorsRequest invites users to a project by email
type AddCollaboratorsRequest struct {
	ProjectID     string   `json:"project_id"`
	Collaborators []string `json:"collaborators"`
}

// Validate checks the project ID and every email
func (r AddCollaboratorsRequest) Validate() error {
	if strings.TrimSpace(r.ProjectID) == "" {
		return ErrEmptyProjectID
	}
	if len(r.Collaborators) == 0 {
		return ErrNoCollaborators
	}
	for _, email := range r.Collaborators {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	return nil
}

// CreateTaskRequest creates a task inside a project
type CreateTaskRequest struct {
	Description       string `json:"deskripsi"`
	Deadline          Date   `json:"deadline"`
	ResponsibleUserID string `json:"penanggung_jawab"`
	ProjectID         string `json:"project_id"`
}

// Validate checks the required task fields
func (r CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyTaskDesc
	}
	if r.Deadline.IsZero() {
		return ErrMissingDeadline
	}
	if strings.TrimSpace(r.ResponsibleUserID) == "" {
		return ErrEmptyResponsible
	}
	if strings.TrimSpace(r.ProjectID) == "" {
		return ErrEmptyProjectID
	}
	return nil
}

// UpdateTaskRequest replaces the editable task fields
type UpdateTaskRequest struct {
	Description       string `json:"deskripsi"`
	Deadline          Date   `json:"deadline"`
	IsFinished        bool   `json:"is_finish"`
	ResponsibleUserID string `json:"penanggung_jawab"`
}

// Validate checks the required task fields
func (r UpdateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyTaskDesc
	}
	if r.Deadline.IsZero() {
		return ErrMissingDeadline
	}
	if strings.TrimSpace(r.ResponsibleUserID) == "" {
		return ErrEmptyResponsible
	}
	return nil
}

// ProposalUpload is the multipart payload of a proposal submission
type ProposalUpload struct {
	Title       string
	Description string
	File        *File
}

// Validate checks the title and the attached file
func (r ProposalUpload) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if r.File == nil || r.File.Content == nil {
		return ErrMissingFile
	}
	return nil
}

// ValidateID rejects an ID that is empty, returning empty, or that is a dot
// segment which would resolve the request path to another route
func ValidateID(id string, empty error) error {
	if strings.TrimSpace(id) == "" {
		return empty
	}
	if id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	return nil
}
