package proposal

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbtb-research/riset/internal/cli"
	clitest "github.com/tbtb-research/riset/internal/testutil/cli"
)

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proposal.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 body"), 0o600))
	return path
}

func TestCreateProposal(t *testing.T) {
	t.Run("uploads the document", func(t *testing.T) {
		mock, app := clitest.SetupCLITest(t)
		clitest.LoginTestUser(t, app, "tok", "u1")
		mock.RespondEnvelope(http.MethodPost, "/api/{project_id}/proposal", "Proposal created", map[string]interface{}{
			"id": "pr1", "judul": "Phase 1", "deskripsi": "Budget", "file_url": "https://files/pr1.pdf", "project_id": "p1",
		})

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--project", "p1", "--title", "Phase 1", "--description", "Budget", "--file", writeDoc(t),
		})
		require.NoError(t, err)
		assert.Contains(t, output, "Proposal 'Phase 1' submitted (ID: pr1)")
		assert.Contains(t, output, "https://files/pr1.pdf")

		req := mock.LastRequest()
		assert.Equal(t, "/api/p1/proposal", req.Path)
		assert.Equal(t, "Bearer tok", req.Authorization)
		assert.Equal(t, "Phase 1", req.Form["judul"])
		assert.Equal(t, "Budget", req.Form["deskripsi"])
		assert.Equal(t, "proposal.pdf", req.Files["file"])
		assert.Equal(t, []byte("%PDF-1.4 body"), req.FileContents["file"])
	})

	t.Run("quiet prints the ID", func(t *testing.T) {
		mock, app := clitest.SetupCLITest(t)
		clitest.LoginTestUser(t, app, "tok", "u1")
		mock.RespondEnvelope(http.MethodPost, "/api/{project_id}/proposal", "ok", map[string]interface{}{"id": "pr1", "judul": "Phase 1"})

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--project", "p1", "--title", "Phase 1", "--file", writeDoc(t), "--quiet",
		})
		require.NoError(t, err)
		assert.Equal(t, "pr1", strings.TrimSpace(output))
	})

	t.Run("missing file", func(t *testing.T) {
		mock, app := clitest.SetupCLITest(t)
		clitest.LoginTestUser(t, app, "tok", "u1")

		_, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--project", "p1", "--title", "Phase 1", "--file", filepath.Join(t.TempDir(), "gone.pdf"),
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeOf(err))
		assert.Zero(t, mock.RequestCount())
	})

	t.Run("blank title", func(t *testing.T) {
		mock, app := clitest.SetupCLITest(t)
		clitest.LoginTestUser(t, app, "tok", "u1")

		output, err := clitest.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--project", "p1", "--title", " ", "--file", writeDoc(t), "--json",
		})
		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeOf(err))
		assert.Equal(t, "VALIDATION_ERROR", clitest.JSONError(t, output)["code"])
		assert.Zero(t, mock.RequestCount())
	})
}
