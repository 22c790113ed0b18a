package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Operation names one logical call of the remote API
type Operation string

const (
	OpLogin            Operation = "login"
	OpRegister         Operation = "register"
	OpCurrentUser      Operation = "current_user"
	OpUpdateUser       Operation = "update_user"
	OpListProjects     Operation = "list_projects"
	OpGetProject       Operation = "get_project"
	OpCreateProject    Operation = "create_project"
	OpUpdateProject    Operation = "update_project"
	OpDeleteProject    Operation = "delete_project"
	OpJoinProject      Operation = "join_project"
	OpAddCollaborators Operation = "add_collaborators"
	OpCreateTask       Operation = "create_task"
	OpUpdateTask       Operation = "update_task"
	OpDeleteTask       Operation = "delete_task"
	OpListTasks        Operation = "list_tasks"
	OpGetTask          Operation = "get_task"
	OpCreateProposal   Operation = "create_proposal"
)

// Encoding is the request body encoding of an endpoint
type Encoding int

const (
	EncodingNone Encoding = iota
	EncodingJSON
	EncodingMultipart
)

// String returns the encoding name used in logs
func (e Encoding) String() string {
	switch e {
	case EncodingJSON:
		return "json"
	case EncodingMultipart:
		return "multipart"
	default:
		return "none"
	}
}

// Endpoint binds an operation to its HTTP method, path template and body encoding.
// Path placeholders are written as {name} and filled from Request.PathParams.
type Endpoint struct {
	Method   string
	Path     string
	Auth     bool
	Encoding Encoding
}

// Endpoints describes the entire remote surface
var Endpoints = map[Operation]Endpoint{
	OpLogin:            {Method: http.MethodPost, Path: "api/login", Encoding: EncodingJSON},
	OpRegister:         {Method: http.MethodPost, Path: "api/register", Encoding: EncodingJSON},
	OpCurrentUser:      {Method: http.MethodGet, Path: "api/me", Auth: true},
	OpUpdateUser:       {Method: http.MethodPatch, Path: "api/me", Auth: true, Encoding: EncodingMultipart},
	OpListProjects:     {Method: http.MethodGet, Path: "api/projects", Auth: true},
	OpGetProject:       {Method: http.MethodGet, Path: "api/projects/{id}", Auth: true},
	OpCreateProject:    {Method: http.MethodPost, Path: "api/projects", Auth: true, Encoding: EncodingJSON},
	OpJoinProject:      {Method: http.MethodPost, Path: "api/project/join", Auth: true, Encoding: EncodingJSON},
	OpUpdateProject:    {Method: http.MethodPatch, Path: "api/project/{id}", Auth: true, Encoding: EncodingJSON},
	OpDeleteProject:    {Method: http.MethodDelete, Path: "api/project/{id}", Auth: true},
	OpAddCollaborators: {Method: http.MethodPost, Path: "api/project/collaborators", Auth: true, Encoding: EncodingJSON},
	OpCreateTask:       {Method: http.MethodPost, Path: "api/task", Auth: true, Encoding: EncodingJSON},
	OpUpdateTask:       {Method: http.MethodPatch, Path: "api/task/{id}", Auth: true, Encoding: EncodingJSON},
	OpDeleteTask:       {Method: http.MethodDelete, Path: "api/task/{id}", Auth: true},
	OpListTasks:        {Method: http.MethodGet, Path: "api/tasks/{project_id}", Auth: true},
	OpGetTask:          {Method: http.MethodGet, Path: "api/task/{id}", Auth: true},
	OpCreateProposal:   {Method: http.MethodPost, Path: "api/{project_id}/proposal", Auth: true, Encoding: EncodingMultipart},
}

// ErrInvalidPathParam is returned when a path parameter is missing or would change the route
var ErrInvalidPathParam = errors.New("invalid path parameter")

// Expand fills the path template with escaped parameters.
// A placeholder without a matching parameter is an error.
func (e Endpoint) Expand(params map[string]string) (string, error) {
	var b strings.Builder
	rest := e.Path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in path %q", e.Path)
		}
		name := rest[open+1 : open+end]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: missing %q for %s", ErrInvalidPathParam, name, e.Path)
		}
		// url.Parse drops dot segments, which would send the call to another route
		if value == "." || value == ".." {
			return "", fmt.Errorf("%w: %q is not allowed for %q", ErrInvalidPathParam, value, name)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(value))
		rest = rest[open+end+1:]
	}
}
