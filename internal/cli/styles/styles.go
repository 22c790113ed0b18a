package styles

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/tbtb-research/riset/internal/config"
	"github.com/tbtb-research/riset/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Deadline:", "Invite code:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Tasks", "Collaborators"

	// Status styles
	FinishedStyle lipgloss.Style
	OpenStyle     lipgloss.Style
	OverdueStyle  lipgloss.Style
	SuccessStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	WarningStyle  lipgloss.Style

	// Confirmation styles
	CreateStyle lipgloss.Style
	EditStyle   lipgloss.Style
	DeleteStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	FinishedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Finished))
	OpenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Open))
	OverdueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Overdue))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)

	CreateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Create))
	EditStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Edit))
	DeleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Delete))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// ProjectStatus renders the finished flag of a project
func ProjectStatus(finished bool) string {
	if finished {
		return FinishedStyle.Render("finished")
	}
	return OpenStyle.Render("in progress")
}

// TaskStatus renders a task's state relative to now
func TaskStatus(task *models.Task, now time.Time) string {
	switch {
	case task.IsFinished:
		return FinishedStyle.Render("✓ done")
	case !task.Deadline.IsZero() && task.Deadline.Before(now.Truncate(24*time.Hour)):
		return OverdueStyle.Render("! overdue")
	default:
		return OpenStyle.Render("○ open")
	}
}

// Wrap word-wraps text to width columns
func Wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wordwrap.String(text, width)
}

var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders a project description as terminal markdown.
// It falls back to plain wrapped text when rendering fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Render("(no description)")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return Wrap(text, width)
	}
	out, err := renderer.Render(text)
	if err != nil {
		return Wrap(text, width)
	}
	return strings.TrimRight(out, "\n")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderProjectLine renders one project in a list
func RenderProjectLine(p *models.Project) string {
	return fmt.Sprintf("  %s %s  %s",
		SubtitleStyle.Render("["+p.ID+"]"),
		TitleStyle.Render(p.Name),
		ProjectStatus(p.IsFinished))
}

// RenderTaskLine renders one task in a list
func RenderTaskLine(t *models.Task, now time.Time, width int) string {
	deadline := t.Deadline.String()
	if deadline == "" {
		deadline = "no deadline"
	}
	head := fmt.Sprintf("  %s %s  %s",
		SubtitleStyle.Render("["+t.ID+"]"),
		TaskStatus(t, now),
		SubtitleStyle.Render(deadline))

	desc := Wrap(t.Description, width-6)
	return head + "\n" + indent(desc, "      ")
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
