package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbtb-research/riset/internal/api"
	"github.com/tbtb-research/riset/internal/models"
)

func TestListProjects(t *testing.T) {
	t.Run("projects", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.RespondEnvelope(http.MethodGet, "/api/projects", "ok", []map[string]interface{}{
			{"id": "p1", "nama_project": "Padi", "created_at": "2024-05-01T10:00:00Z", "is_finish": false, "invite_code": "ABC"},
			{"id": "p2", "nama_project": "Jagung", "created_at": "2024-05-02T10:00:00Z", "is_finish": true},
		})

		projects, err := repo.ListProjects(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "Padi", projects[0].Name)
		assert.Equal(t, "ABC", projects[0].InviteCode)
		assert.True(t, projects[1].IsFinished)
	})

	t.Run("loose timestamps", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.RespondEnvelope(http.MethodGet, "/api/projects", "ok", []map[string]interface{}{
			{"id": "p1", "nama_project": "Padi", "created_at": "2024-05-01 10:00:00", "updated_at": ""},
			{"id": "p2", "nama_project": "Jagung", "created_at": "kemarin", "updated_at": nil},
		})

		projects, err := repo.ListProjects(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "2024-05-01", projects[0].CreatedAt.DateString())
		assert.True(t, projects[0].UpdatedAt.IsZero())
		assert.Equal(t, "kemarin", projects[1].CreatedAt.Raw)
		assert.True(t, projects[1].UpdatedAt.IsZero())
	})

	t.Run("null data is an empty list", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.RespondEnvelope(http.MethodGet, "/api/projects", "ok", nil)

		projects, err := repo.ListProjects(context.Background(), "tok")
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("empty body", func(t *testing.T) {
		mock, repo, _ := setupRepo(t)
		mock.Respond(http.MethodGet, "/api/projects", http.StatusOK, "")

		_, err := repo.ListProjects(context.Background(), "tok")
		apiErr := requireAPIError(t, err)
		assert.Equal(t, api.KindEmptyBody, apiErr.Kind)
		assert.Equal(t, "Response body is null", apiErr.Message)
	})

	t.Run("401 invalidates", func(t *testing.T) {
		mock, repo, inv := setupRepo(t)
		mock.Respond(http.MethodGet, "/api/projects", http.StatusUnauthorized, "")

		_, err := repo.ListProjects(context.Background(), "tok")
		assert.True(t, api.IsUnauthorized(err))
		assert.Equal(t, int32(1), inv.calls.Load())
	})
}

func TestGetProject(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodGet, "/api/projects/{id}", "ok", map[string]interface{}{
		"id":           "p1",
		"nama_project": "Padi",
		"created_at":   "2024-05-01T10:00:00Z",
		"project_collaborator": []map[string]interface{}{
			{"user_id": "1", "project_id": "p1", "is_owner": true, "status": "accepted",
				"User": map[string]interface{}{"id": "1", "nama": "Ani", "email": "ani@x.com"}},
		},
		"task": []map[string]interface{}{
			{"id": "t1", "deskripsi": "Sampling", "deadline": "2024-06-01", "penanggung_jawab": "1", "project_id": "p1"},
		},
		"proposals": []map[string]interface{}{},
	})

	detail, err := repo.GetProject(context.Background(), "tok", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", detail.ID)
	require.Len(t, detail.Collaborators, 1)
	assert.True(t, detail.Collaborators[0].IsOwner)
	assert.Equal(t, "Ani", detail.Collaborators[0].User.Name)
	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, models.NewDate(2024, 6, 1), detail.Tasks[0].Deadline)
	assert.Equal(t, "/api/projects/p1", mock.LastRequest().Path)

	_, err = repo.GetProject(context.Background(), "tok", "")
	assert.ErrorIs(t, err, models.ErrEmptyProjectID)
}

func TestGetProject_NotFound(t *testing.T) {
	mock, repo, inv := setupRepo(t)
	mock.Respond(http.MethodGet, "/api/projects/{id}", http.StatusNotFound, `{"message":"Project not found"}`)

	_, err := repo.GetProject(context.Background(), "tok", "missing")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, api.KindDecoded, apiErr.Kind)
	assert.Equal(t, "Project not found", apiErr.Message)
	assert.Equal(t, int32(0), inv.calls.Load())
}

func TestCreateProject(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondJSON(http.MethodPost, "/api/projects", http.StatusCreated, map[string]interface{}{
		"message": "Project created",
		"data":    map[string]interface{}{"id": "p9", "nama_project": "Kedelai", "created_at": "2024-05-01T10:00:00Z"},
	})

	project, err := repo.CreateProject(context.Background(), "tok", models.CreateProjectRequest{Name: "Kedelai"})
	require.NoError(t, err)
	assert.Equal(t, "p9", project.ID)

	body := mock.LastRequest().JSON(t)
	assert.Equal(t, []interface{}{}, body["collaborators"])

	_, err = repo.CreateProject(context.Background(), "tok", models.CreateProjectRequest{Name: "X", Collaborators: []string{"not-an-email"}})
	assert.ErrorIs(t, err, models.ErrInvalidEmail)
	assert.Equal(t, 1, mock.RequestCount())
}

func TestCreateProject_NullData(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPost, "/api/projects", "ok", nil)

	_, err := repo.CreateProject(context.Background(), "tok", models.CreateProjectRequest{Name: "Kedelai"})
	assert.True(t, api.IsKind(err, api.KindEmptyBody))
}

func TestUpdateProject(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPatch, "/api/project/{id}", "updated", map[string]interface{}{
		"id": "p1", "nama_project": "Padi 2", "created_at": "2024-05-01T10:00:00Z", "is_finish": true,
	})

	project, err := repo.UpdateProject(context.Background(), "tok", "p1", models.UpdateProjectRequest{Name: "Padi 2", IsFinished: true})
	require.NoError(t, err)
	assert.True(t, project.IsFinished)

	req := mock.LastRequest()
	assert.Equal(t, "/api/project/p1", req.Path)
	assert.Equal(t, true, req.JSON(t)["is_finish"])
}

func TestUpdateProject_Forbidden(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.Respond(http.MethodPatch, "/api/project/{id}", http.StatusForbidden, "")

	_, err := repo.UpdateProject(context.Background(), "tok", "p1", models.UpdateProjectRequest{Name: "Padi"})
	assert.Equal(t, "Access denied", err.Error())
}

func TestDeleteProject(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodDelete, "/api/project/{id}", "Project deleted", nil)

	msg, err := repo.DeleteProject(context.Background(), "tok", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Project deleted", msg)
	assert.Equal(t, http.MethodDelete, mock.LastRequest().Method)
}

func TestDeleteProject_DotSegmentID(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodDelete, "/api/", "wiped", nil)

	for _, id := range []string{".", ".."} {
		msg, err := repo.DeleteProject(context.Background(), "tok", id)
		assert.ErrorIs(t, err, models.ErrInvalidID, id)
		assert.True(t, models.IsValidationError(err))
		assert.Empty(t, msg)
	}
	assert.Zero(t, mock.RequestCount())
}

func TestJoinProject(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPost, "/api/project/join", "Joined", map[string]interface{}{
		"user_id": "2", "project_id": "p1", "is_owner": false, "status": "accepted",
	})

	membership, err := repo.JoinProject(context.Background(), "tok", "INV123")
	require.NoError(t, err)
	assert.Equal(t, "p1", membership.ProjectID)
	assert.Equal(t, "INV123", mock.LastRequest().JSON(t)["invite_code"])

	_, err = repo.JoinProject(context.Background(), "tok", " ")
	assert.ErrorIs(t, err, models.ErrEmptyInviteCode)
}

func TestAddCollaborators(t *testing.T) {
	mock, repo, _ := setupRepo(t)
	mock.RespondEnvelope(http.MethodPost, "/api/project/collaborators", "Collaborators added", nil)

	msg, err := repo.AddCollaborators(context.Background(), "tok", "p1", []string{"a@x.com", "b@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Collaborators added", msg)

	body := mock.LastRequest().JSON(t)
	assert.Equal(t, "p1", body["project_id"])
	assert.Equal(t, []interface{}{"a@x.com", "b@x.com"}, body["collaborators"])

	_, err = repo.AddCollaborators(context.Background(), "tok", "p1", nil)
	assert.ErrorIs(t, err, models.ErrNoCollaborators)
}
