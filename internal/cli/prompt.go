package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("cli: aborted by user")

// Question configures one text prompt.
type Question struct {
	Message   string
	Default   string
	Help      string
	Multiline bool
	Validate  func(string) error
}

// Prompter asks the wizard questions. The survey implementation is used
// unless WithPrompter replaces it.
type Prompter interface {
	Ask(ctx context.Context, q Question) (string, error)
	Select(ctx context.Context, message string, options []string) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Ask(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var prompt survey.Prompt = &survey.Input{Message: q.Message, Default: q.Default, Help: q.Help}
	if q.Multiline {
		prompt = &survey.Multiline{Message: q.Message, Default: q.Default, Help: q.Help}
	}

	var opts []survey.AskOpt
	if q.Validate != nil {
		validate := q.Validate
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}

	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(ctx context.Context, message string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var out int
	if err := survey.AskOne(&survey.Select{Message: message, Options: options}, &out); err != nil {
		return 0, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
