package api

import (
	"context"

	"github.com/tbtb-research/riset/internal/models"
)

// Login posts credentials. It carries no bearer token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*Response, error) {
	return c.Call(ctx, OpLogin, Request{JSON: req})
}

// Register creates an account
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*Response, error) {
	return c.Call(ctx, OpRegister, Request{JSON: req})
}

// CurrentUser fetches the profile behind token
func (c *Client) CurrentUser(ctx context.Context, token string) (*Response, error) {
	return c.Call(ctx, OpCurrentUser, Request{Token: token})
}

// UpdateUser sends a multipart profile update made only of the provided fields
func (c *Client) UpdateUser(ctx context.Context, token string, req models.UpdateUserRequest) (*Response, error) {
	return c.Call(ctx, OpUpdateUser, Request{Token: token, Multipart: userForm(req)})
}

func userForm(req models.UpdateUserRequest) *Multipart {
	form := &Multipart{}
	if req.Email != nil {
		form.AddField("email", *req.Email)
	}
	if req.Name != nil {
		form.AddField("nama", *req.Name)
	}
	if req.Password != nil {
		form.AddField("password", *req.Password)
	}
	if req.Photo != nil && req.Photo.Content != nil {
		form.AddFile("photo_url", req.Photo.Name, req.Photo.ContentType, req.Photo.Content)
	}
	return form
}

// ListProjects fetches every project the user collaborates on
func (c *Client) ListProjects(ctx context.Context, token string) (*Response, error) {
	return c.Call(ctx, OpListProjects, Request{Token: token})
}

// GetProject fetches one project with collaborators, tasks and proposals
func (c *Client) GetProject(ctx context.Context, token, id string) (*Response, error) {
	return c.Call(ctx, OpGetProject, Request{
		Token:      token,
		PathParams: map[string]string{"id": id},
	})
}

// CreateProject always sends a collaborators array, empty when there are none
func (c *Client) CreateProject(ctx context.Context, token string, req models.CreateProjectRequest) (*Response, error) {
	return c.Call(ctx, OpCreateProject, Request{Token: token, JSON: req.Normalize()})
}

func (c *Client) UpdateProject(ctx context.Context, token, id string, req models.UpdateProjectRequest) (*Response, error) {
	return c.Call(ctx, OpUpdateProject, Request{
		Token:      token,
		PathParams: map[string]string{"id": id},
		JSON:       req,
	})
}

func (c *Client) DeleteProject(ctx context.Context, token, id string) (*Response, error) {
	return c.Call(ctx, OpDeleteProject, Request{
		Token:      token,
		PathParams: map[string]string{"id": id},
	})
}

func (c *Client) JoinProject(ctx context.Context, token string, req models.JoinProjectRequest) (*Response, error) {
	return c.Call(ctx, OpJoinProject, Request{Token: token, JSON: req})
}

func (c *Client) AddCollaborators(ctx context.Context, token string, req models.AddCollaboratorsRequest) (*Response, error) {
	return c.Call(ctx, OpAddCollaborators, Request{Token: token, JSON: req})
}

func (c *Client) CreateTask(ctx context.Context, token string, req models.CreateTaskRequest) (*Response, error) {
	return c.Call(ctx, OpCreateTask, Request{Token: token, JSON: req})
}

func (c *Client) UpdateTask(ctx context.Context, token, id string, req models.UpdateTaskRequest) (*Response, error) {
	return c.Call(ctx, OpUpdateTask, Request{
		Token:      token,
		PathParams: map[string]string{"id": id},
		JSON:       req,
	})
}

func (c *Client) DeleteTask(ctx context.Context, token, id string) (*Response, error) {
	return c.Call(ctx, OpDeleteTask, Request{
		Token:      token,
		PathParams: map[string]string{"id": id},
	})
}

// ListTasks fetches the tasks of one project
func (c *Client) ListTasks(ctx context.Context, token, projectID string) (*Response, error) {
	return c.Call(ctx, OpListTasks, Request{
		Token:      token,
		PathParams: map[string]string{"project_id": projectID},
	})
}

func (c *Client) GetTask(ctx context.Context, token, id string) (*Response, error) {
	return c.Call(ctx, OpGetTask, Request{
		Token:      token,
		PathParams: map[string]string{"id": id},
	})
}

// CreateProposal uploads a proposal document with its title and description
func (c *Client) CreateProposal(ctx context.Context, token, projectID string, upload models.ProposalUpload) (*Response, error) {
	form := &Multipart{}
	form.AddField("judul", upload.Title)
	form.AddField("deskripsi", upload.Description)
	if upload.File != nil && upload.File.Content != nil {
		form.AddFile("file", upload.File.Name, upload.File.ContentType, upload.File.Content)
	}
	return c.Call(ctx, OpCreateProposal, Request{
		Token:      token,
		PathParams: map[string]string{"project_id": projectID},
		Multipart:  form,
	})
}
