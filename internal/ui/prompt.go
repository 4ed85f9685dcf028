package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/manifoldco/promptui"
)

// ConfirmPrompt asks a yes/no confirmation question
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, fmt.Errorf("operation cancelled by user")
		}
		return false, err
	}

	return result == "y", nil
}

// SelectTerminalPrompt asks the user to pick a terminal emulator from
// the detected candidates. The list is fuzzy-searchable, so typing
// narrows it the same way the launcher itself does.
func SelectTerminalPrompt(candidates []string) (string, error) {
	prompt := promptui.Select{
		Label: "Terminal emulator for command-line items",
		Items: candidates,
		Size:  min(8, len(candidates)),
		Searcher: func(input string, index int) bool {
			if index < 0 || index >= len(candidates) {
				return false
			}
			if input == "" {
				return true
			}
			return fuzzy.MatchNormalizedFold(strings.TrimSpace(input), candidates[index])
		},
	}

	_, result, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return "", fmt.Errorf("selection cancelled by user")
		}
		return "", err
	}

	return result, nil
}
