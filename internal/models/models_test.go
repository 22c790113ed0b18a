package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Date Tests
// ============================================================================

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: `"2025-01-10"`, want: NewDate(2025, time.January, 10)},
		{name: "rfc3339 timestamp", input: `"2025-01-10T00:00:00.000Z"`, want: NewDate(2025, time.January, 10)},
		{name: "null", input: `null`, want: Date{}},
		{name: "empty string", input: `""`, want: Date{}},
		{name: "garbage", input: `"tomorrow"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDate))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %s want %s", d, tt.want)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2025, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-10"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	at := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		wantTime time.Time
		wantRaw  string
	}{
		{name: "rfc3339", input: `"2024-05-01T10:00:00Z"`, wantTime: at},
		{name: "rfc3339 with fraction", input: `"2024-05-01T10:00:00.000Z"`, wantTime: at},
		{name: "space separated", input: `"2024-05-01 10:00:00"`, wantTime: at},
		{name: "no zone", input: `"2024-05-01T10:00:00"`, wantTime: at},
		{name: "date only", input: `"2024-05-01"`, wantTime: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{name: "empty string", input: `""`},
		{name: "null", input: `null`},
		{name: "unknown layout kept raw", input: `"1 Mei 2024"`, wantRaw: "1 Mei 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.wantTime.Equal(ts.Time), "got %s want %s", ts.Time, tt.wantTime)
			assert.Equal(t, tt.wantRaw, ts.Raw)
		})
	}

	t.Run("non-string fails", func(t *testing.T) {
		var ts Timestamp
		assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
	})
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Timestamp{Time: time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01T10:00:00Z"`, string(data))

	data, err = json.Marshal(Timestamp{Raw: "1 Mei 2024"})
	require.NoError(t, err)
	assert.Equal(t, `"1 Mei 2024"`, string(data))

	data, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}

func TestTimestamp_DateString(t *testing.T) {
	assert.Equal(t, "2024-05-01", ParseTimestamp("2024-05-01 10:00:00").DateString())
	assert.Equal(t, "1 Mei 2024", ParseTimestamp("1 Mei 2024").DateString())
	assert.True(t, Timestamp{}.IsZero())
	assert.False(t, ParseTimestamp("1 Mei 2024").IsZero())
}

// ============================================================================
// Request Tests
// ============================================================================

func TestCreateProjectRequest_EmptyCollaboratorsSerialized(t *testing.T) {
	req := CreateProjectRequest{Name: "Survey", Description: "d", ObjectType: "o"}.Normalize()

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"collaborators":[]`)
}

func TestCreateTaskRequest_WireFormat(t *testing.T) {
	req := CreateTaskRequest{
		Description:       "Write intro",
		Deadline:          NewDate(2025, time.January, 10),
		ResponsibleUserID: "u1",
		ProjectID:         "p1",
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "Write intro", fields["deskripsi"])
	assert.Equal(t, "2025-01-10", fields["deadline"])
	assert.Equal(t, "u1", fields["penanggung_jawab"])
	assert.Equal(t, "p1", fields["project_id"])
}

func TestRequests_Validate(t *testing.T) {
	name := "New Name"
	blank := "  "
	badEmail := "not-an-email"

	tests := []struct {
		name    string
		req     interface{ Validate() error }
		wantErr error
	}{
		{"login ok", LoginRequest{Email: "user@test.com", Password: "secret1"}, nil},
		{"login missing email", LoginRequest{Password: "x"}, ErrEmptyEmail},
		{"login missing password", LoginRequest{Email: "user@test.com"}, ErrEmptyPassword},
		{"register bad email", RegisterRequest{Name: "A", Email: badEmail, Password: "x"}, ErrInvalidEmail},
		{"update user nothing", UpdateUserRequest{}, ErrNothingToUpdate},
		{"update user name", UpdateUserRequest{Name: &name}, nil},
		{"update user blank name", UpdateUserRequest{Name: &blank}, ErrEmptyName},
		{"update user bad email", UpdateUserRequest{Email: &badEmail}, ErrInvalidEmail},
		{"update user photo without content", UpdateUserRequest{Photo: &File{Name: "me.png"}}, ErrEmptyPhoto},
		{"update user photo", UpdateUserRequest{Photo: &File{Name: "me.png", Content: strings.NewReader("png")}}, nil},
		{"create project ok", CreateProjectRequest{Name: "P"}, nil},
		{"create project empty name", CreateProjectRequest{Name: " "}, ErrEmptyProjectName},
		{"create project bad collaborator", CreateProjectRequest{Name: "P", Collaborators: []string{badEmail}}, ErrInvalidEmail},
		{"update project empty name", UpdateProjectRequest{}, ErrEmptyProjectName},
		{"join empty code", JoinProjectRequest{}, ErrEmptyInviteCode},
		{"add collaborators no project", AddCollaboratorsRequest{Collaborators: []string{"a@b.com"}}, ErrEmptyProjectID},
		{"add collaborators none", AddCollaboratorsRequest{ProjectID: "p1"}, ErrNoCollaborators},
		{"create task no deadline", CreateTaskRequest{Description: "d", ResponsibleUserID: "u", ProjectID: "p"}, ErrMissingDeadline},
		{"create task no project", CreateTaskRequest{Description: "d", Deadline: NewDate(2025, 1, 1), ResponsibleUserID: "u"}, ErrEmptyProjectID},
		{"update task no responsible", UpdateTaskRequest{Description: "d", Deadline: NewDate(2025, 1, 1)}, ErrEmptyResponsible},
		{"proposal no file", ProposalUpload{Title: "T"}, ErrMissingFile},
		{"proposal ok", ProposalUpload{Title: "T", File: &File{Name: "a.pdf", Content: strings.NewReader("%PDF")}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("p1", ErrEmptyProjectID))
	assert.NoError(t, ValidateID("v1..2", ErrEmptyProjectID))
	assert.ErrorIs(t, ValidateID("", ErrEmptyProjectID), ErrEmptyProjectID)
	assert.ErrorIs(t, ValidateID("  ", ErrEmptyTaskID), ErrEmptyTaskID)
	assert.ErrorIs(t, ValidateID(".", ErrEmptyTaskID), ErrInvalidID)
	assert.ErrorIs(t, ValidateID("..", ErrEmptyProjectID), ErrInvalidID)
}

func TestSession_Valid(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Valid())
	assert.False(t, (&Session{}).Valid())
	assert.True(t, (&Session{Token: "abc"}).Valid())
}

func TestIsValidationError(t *testing.T) {
	_, err := ParseDate("tomorrow")
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("creating task: %w", ErrEmptyTaskDesc)))
	assert.False(t, IsValidationError(errors.New("boom")))
	assert.False(t, IsValidationError(nil))
}
