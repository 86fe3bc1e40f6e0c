// Package interactive provides the survey-based terminal menus and pickers
// used by interactive mode.
package interactive

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// MenuOption is one entry of the main menu: a short name, a one-line
// description shown next to the highlighted entry, and the action to run.
type MenuOption struct {
	Name        string
	Description string
	Action      func() error
}

// exitChoice is always appended as the last menu entry.
const exitChoice = "Exit"

var (
	// ErrExit is returned when the user chooses to exit or aborts a prompt.
	ErrExit = errors.New("exit")
	// ErrInvalidSelection is returned when an invalid menu option is selected.
	ErrInvalidSelection = errors.New("invalid selection")
)

// ShowMainMenu displays the top-level menu and runs the chosen action.
// Aborting the prompt (ctrl-c) counts as choosing Exit.
func ShowMainMenu(options []MenuOption) error {
	names := make([]string, 0, len(options)+1)
	byName := make(map[string]MenuOption, len(options))

	for _, opt := range options {
		names = append(names, opt.Name)
		byName[opt.Name] = opt
	}

	names = append(names, exitChoice)

	var selected string
	prompt := &survey.Select{
		Message: "What would you like to do?",
		Options: names,
		Description: func(value string, _ int) string {
			return byName[value].Description
		},
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return ErrExit
	}

	if selected == exitChoice {
		return ErrExit
	}

	option, ok := byName[selected]
	if !ok {
		return ErrInvalidSelection
	}

	return option.Action()
}

// SelectProbes asks the user to pick a subset of the given capability
// names. The returned order follows the presented name order.
func SelectProbes(names []string) ([]string, error) {
	var selected []string

	prompt := &survey.MultiSelect{
		Message: "Which capabilities should be probed?",
		Options: names,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, ErrExit
	}

	return selected, nil
}

// SelectFrom asks the user to pick one of the given choices.
func SelectFrom(message string, choices []string) (string, error) {
	var selected string

	prompt := &survey.Select{
		Message: message,
		Options: choices,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", ErrExit
	}

	return selected, nil
}

// SelectIndex asks the user to pick one of the given choices and returns
// its position in the list.
func SelectIndex(message string, choices []string) (int, error) {
	var selected int

	prompt := &survey.Select{
		Message: message,
		Options: choices,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return 0, ErrExit
	}

	return selected, nil
}

// PauseForEnter waits for the user to press Enter.
func PauseForEnter() {
	fmt.Println("\nPress Enter to continue...")
	_, _ = fmt.Scanln()
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(message string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	_ = survey.AskOne(prompt, &confirmed)

	return confirmed
}
