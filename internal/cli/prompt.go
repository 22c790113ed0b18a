package cli

import (
	"os"

	"charm.land/huh/v2"
	"golang.org/x/term"
)

// IsInteractive reports whether stdin is a terminal a prompt can read from.
// Tests replace it to force either mode.
var IsInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptPassword asks for a password without echoing it
func PromptPassword(title string) (string, error) {
	var password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return password, nil
}

// Confirm asks a yes/no question; the default answer is no
func Confirm(title, description string) (bool, error) {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// ConfirmDelete asks before a destructive action unless skip is set or no terminal is attached
func ConfirmDelete(skip bool, title, description string) (bool, error) {
	if skip || !IsInteractive() {
		return true, nil
	}
	return Confirm(title, description)
}
