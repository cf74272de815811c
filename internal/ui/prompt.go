package ui

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ConfirmFunc asks a yes/no question. It exists so callers can swap the terminal prompt out in tests.
type ConfirmFunc func(label string) (bool, error)

// ConfirmPrompt asks a yes/no confirmation question. Answering no is not an error.
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	// promptui returns "y" for yes
	return result == "y" || result == "Y", nil
}
