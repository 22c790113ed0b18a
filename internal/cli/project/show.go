package project

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tbtb-research/riset/internal/cli"
	"github.com/tbtb-research/riset/internal/cli/styles"
	"github.com/tbtb-research/riset/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a project with its collaborators and tasks",
		RunE:  runShow,
	}

	cmd.Flags().String("id", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cli.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	projectID, _ := cmd.Flags().GetString("id")
	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	sess, err := cliInstance.RequireSession(formatter)
	if err != nil {
		return err
	}

	detail, err := cliInstance.App.Repo.GetProject(ctx, sess.Token, projectID)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	if formatter.Quiet && !formatter.JSON {
		return formatter.PrintID(detail.ID)
	}

	return formatter.Success(detail, func(w io.Writer) error {
		return printDetail(w, detail, time.Now(), cli.TermWidth())
	})
}

func printDetail(w io.Writer, d *models.ProjectDetail, now time.Time, width int) error {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(d.Name) + "  " + styles.ProjectStatus(d.IsFinished) + "\n")
	b.WriteString(styles.Field("ID", d.ID) + "\n")
	if d.ObjectType != "" {
		b.WriteString(styles.Field("Object", d.ObjectType) + "\n")
	}
	if d.InviteCode != "" {
		b.WriteString(styles.Field("Invite code", d.InviteCode) + "\n")
	}
	if !d.CreatedAt.IsZero() {
		b.WriteString(styles.Field("Created", d.CreatedAt.DateString()) + "\n")
	}
	b.WriteString("\n" + styles.RenderMarkdown(d.Description, width-4) + "\n")

	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Collaborators (%d)", len(d.Collaborators))) + "\n")
	for _, c := range d.Collaborators {
		b.WriteString("  " + collaboratorLine(c) + "\n")
	}

	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Tasks (%d)", len(d.Tasks))) + "\n")
	for i := range d.Tasks {
		b.WriteString(styles.RenderTaskLine(&d.Tasks[i], now, width) + "\n")
	}

	if len(d.Proposals) > 0 {
		b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Proposals (%d)", len(d.Proposals))) + "\n")
		for _, p := range d.Proposals {
			b.WriteString(fmt.Sprintf("  %s %s\n", styles.SubtitleStyle.Render("["+p.ID+"]"), p.Title))
		}
	}

	_, err := fmt.Fprint(w, b.String())
	return err
}

func collaboratorLine(c models.Collaborator) string {
	name := c.UserID
	if c.User != nil {
		name = fmt.Sprintf("%s <%s>", c.User.Name, c.User.Email)
	}
	role := ""
	if c.IsOwner {
		role = styles.LabelStyle.Render(" owner")
	}
	status := ""
	if c.Status != "" && c.Status != models.CollaboratorAccepted {
		status = styles.SubtitleStyle.Render(" (" + c.Status + ")")
	}
	return name + role + status
}
