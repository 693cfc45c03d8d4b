package main

import (
	"context"
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"

	"carve/generator"
)

const (
	namePrompt  = "Enter component name (e.g. MyButton)"
	defaultName = "MyComponent"
)

// Prompter asks the user for a single line of input.
type Prompter interface {
	Input(ctx context.Context, message, def string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(ctx context.Context, message, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", generator.ErrNameMissing
		}
		return "", err
	}
	return out, nil
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveName returns name, or prompts for one when interactive is set.
func resolveName(ctx context.Context, name string, interactive bool, p Prompter) (string, error) {
	if name != "" {
		return name, nil
	}
	if !interactive || p == nil {
		return "", generator.ErrNameMissing
	}
	answer, err := p.Input(ctx, namePrompt, defaultName)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", generator.ErrNameMissing
	}
	return answer, nil
}
