package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

var (
	// ErrInterrupted is returned when the operator aborts a prompt
	ErrInterrupted = errors.New("interrupted")
	// ErrNotTerminal is returned when prompting without an interactive terminal
	ErrNotTerminal = errors.New("an interactive terminal is required")
)

// Option is one choice of a select prompt
type Option struct {
	Key         string
	Label       string
	Description string
}

// Prompter collects values from the operator. Every call blocks until the
// operator answers or aborts (ErrInterrupted).
type Prompter interface {
	// Input asks for a line of text. validate, when set, rejects an answer by
	// returning an error and the operator is asked again.
	Input(message, defaultValue string, validate func(string) error) (string, error)
	Select(message string, options []Option, initial string) (string, error)
	MultiSelect(message string, options []Option, required bool) ([]string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter asks questions on the terminal
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter returns a terminal prompter
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// RequireTerminal fails when stdin is not a terminal
func RequireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// Input asks for a single line of text
func (p *SurveyPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	opts := append([]survey.AskOpt{}, p.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(val interface{}) error {
			str, _ := val.(string)
			return validate(str)
		}))
	}
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", promptError(err)
	}
	return answer, nil
}

// Select asks for one option and returns its key
func (p *SurveyPrompter) Select(message string, options []Option, initial string) (string, error) {
	labels, keys := splitOptions(options)
	prompt := &survey.Select{
		Message: message,
		Options: labels,
		Description: func(_ string, index int) string {
			return options[index].Description
		},
	}
	for i, key := range keys {
		if key == initial {
			prompt.Default = labels[i]
		}
	}

	var index int
	if err := survey.AskOne(prompt, &index, p.opts...); err != nil {
		return "", promptError(err)
	}
	return keys[index], nil
}

// MultiSelect asks for any number of options and returns their keys in list order
func (p *SurveyPrompter) MultiSelect(message string, options []Option, required bool) ([]string, error) {
	labels, keys := splitOptions(options)
	prompt := &survey.MultiSelect{
		Message: message,
		Options: labels,
		Description: func(_ string, index int) string {
			return options[index].Description
		},
	}
	opts := append([]survey.AskOpt{}, p.opts...)
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	var answers []core.OptionAnswer
	if err := survey.AskOne(prompt, &answers, opts...); err != nil {
		return nil, promptError(err)
	}

	selected := make([]string, 0, len(answers))
	for _, answer := range answers {
		selected = append(selected, keys[answer.Index])
	}
	return selected, nil
}

// Confirm asks a yes/no question
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmed, p.opts...); err != nil {
		return false, promptError(err)
	}
	return confirmed, nil
}

func splitOptions(options []Option) (labels, keys []string) {
	labels = make([]string, len(options))
	keys = make([]string, len(options))
	for i, opt := range options {
		label := opt.Label
		if label == "" {
			label = opt.Key
		}
		labels[i] = label
		keys[i] = opt.Key
	}
	return labels, keys
}

func promptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
