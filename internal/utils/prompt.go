package utils

import (
	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
)

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string, defaultYes bool) (bool, error)
}

// HuhPrompter asks on the terminal.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	answer := defaultYes
	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&answer).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, errors.Wrap(err, "confirmation prompt failed")
	}
	return answer, nil
}

// Always answers every question the same way, for scripts and tests.
type Always bool

func (a Always) Confirm(string, bool) (bool, error) {
	return bool(a), nil
}
