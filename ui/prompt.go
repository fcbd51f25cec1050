package ui

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

func PromptText(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
	}
	return prompt.Run()
}

// PromptTextDefault asks for a value, offering def as an editable default.
func PromptTextDefault(text string, def string) (string, error) {
	prompt := promptui.Prompt{
		Label:     text,
		Default:   def,
		AllowEdit: true,
	}
	return prompt.Run()
}

func PromptRepository(def string) (string, error) {
	validate := func(input string) error {
		parts := strings.Split(input, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("expected owner/repo")
		}
		return nil
	}
	prompt := promptui.Prompt{
		Label:     "Repository (owner/repo)",
		Default:   def,
		AllowEdit: true,
		Validate:  validate,
	}
	return prompt.Run()
}

func PromptConfirm(text string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     text,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err == promptui.ErrAbort {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
