package cli

import (
	"os"

	"github.com/tbtb-research/riset/internal/models"
	"golang.org/x/term"
)

// RequireSession returns the stored session or reports why there is none
func (c *CLI) RequireSession(formatter *OutputFormatter) (*models.Session, error) {
	s, err := c.App.Session()
	if err != nil {
		return nil, Fail(formatter, "NOT_LOGGED_IN", err)
	}
	return s, nil
}

// TermWidth returns the width of stdout, or 80 when it is not a terminal
func TermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	if width > 120 {
		return 120
	}
	return width
}
