// SPDX-License-Identifier: MPL-2.0

package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

type (
	// ConfirmBuilder configures a yes/no prompt.
	ConfirmBuilder struct {
		u           *UI
		title       string
		description string
		affirmative string
		negative    string
		value       bool
	}

	// InputBuilder configures a free-text prompt.
	InputBuilder struct {
		u           *UI
		title       string
		description string
		placeholder string
		password    bool
		validate    func(string) error
		value       string
	}

	// SelectBuilder configures a single-choice prompt.
	SelectBuilder struct {
		u           *UI
		title       string
		description string
		options     []string
		value       string
	}

	// MultiSelectBuilder configures a multiple-choice prompt.
	MultiSelectBuilder struct {
		u           *UI
		title       string
		description string
		options     []string
		limit       int
		values      []string
	}
)

// Confirm starts a yes/no prompt with the given question.
func (u *UI) Confirm(title string) *ConfirmBuilder {
	return &ConfirmBuilder{u: u, title: title, affirmative: "Yes", negative: "No", value: true}
}

// Description sets explanatory text below the question.
func (b *ConfirmBuilder) Description(desc string) *ConfirmBuilder {
	b.description = desc
	return b
}

// Affirmative sets the text of the affirmative option.
func (b *ConfirmBuilder) Affirmative(text string) *ConfirmBuilder {
	b.affirmative = text
	return b
}

// Negative sets the text of the negative option.
func (b *ConfirmBuilder) Negative(text string) *ConfirmBuilder {
	b.negative = text
	return b
}

// Default sets the preselected answer.
func (b *ConfirmBuilder) Default(value bool) *ConfirmBuilder {
	b.value = value
	return b
}

// Run shows the prompt and returns the answer. ErrCanceled reports a user
// abort.
func (b *ConfirmBuilder) Run() (bool, error) {
	field := huh.NewConfirm().
		Title(b.title).
		Description(b.description).
		Affirmative(b.affirmative).
		Negative(b.negative).
		Value(&b.value)
	if err := b.u.run(field); err != nil {
		return false, err
	}
	return b.value, nil
}

// Input starts a free-text prompt with the given question.
func (u *UI) Input(title string) *InputBuilder {
	return &InputBuilder{u: u, title: title}
}

// Description sets explanatory text below the question.
func (b *InputBuilder) Description(desc string) *InputBuilder {
	b.description = desc
	return b
}

// Placeholder sets ghost text shown while the field is empty.
func (b *InputBuilder) Placeholder(text string) *InputBuilder {
	b.placeholder = text
	return b
}

// Default sets the initial field value.
func (b *InputBuilder) Default(value string) *InputBuilder {
	b.value = value
	return b
}

// Password masks the typed input.
func (b *InputBuilder) Password() *InputBuilder {
	b.password = true
	return b
}

// Validate rejects input for which fn returns an error.
func (b *InputBuilder) Validate(fn func(string) error) *InputBuilder {
	b.validate = fn
	return b
}

// Run shows the prompt and returns the entered text. ErrCanceled reports a
// user abort.
func (b *InputBuilder) Run() (string, error) {
	field := huh.NewInput().
		Title(b.title).
		Description(b.description).
		Placeholder(b.placeholder).
		Value(&b.value)
	if b.password {
		field = field.EchoMode(huh.EchoModePassword)
	}
	if b.validate != nil {
		field = field.Validate(b.validate)
	}
	if err := b.u.run(field); err != nil {
		return "", err
	}
	return b.value, nil
}

// Select starts a single-choice prompt over options.
func (u *UI) Select(title string, options ...string) *SelectBuilder {
	return &SelectBuilder{u: u, title: title, options: options}
}

// Description sets explanatory text below the question.
func (b *SelectBuilder) Description(desc string) *SelectBuilder {
	b.description = desc
	return b
}

// Run shows the prompt and returns the chosen option. ErrCanceled reports a
// user abort.
func (b *SelectBuilder) Run() (string, error) {
	field := huh.NewSelect[string]().
		Title(b.title).
		Description(b.description).
		Options(huh.NewOptions(b.options...)...).
		Value(&b.value)
	if err := b.u.run(field); err != nil {
		return "", err
	}
	return b.value, nil
}

// MultiSelect starts a multiple-choice prompt over options.
func (u *UI) MultiSelect(title string, options ...string) *MultiSelectBuilder {
	return &MultiSelectBuilder{u: u, title: title, options: options}
}

// Description sets explanatory text below the question.
func (b *MultiSelectBuilder) Description(desc string) *MultiSelectBuilder {
	b.description = desc
	return b
}

// Limit caps how many options can be picked.
func (b *MultiSelectBuilder) Limit(n int) *MultiSelectBuilder {
	b.limit = n
	return b
}

// Run shows the prompt and returns the chosen options. ErrCanceled reports
// a user abort.
func (b *MultiSelectBuilder) Run() ([]string, error) {
	field := huh.NewMultiSelect[string]().
		Title(b.title).
		Description(b.description).
		Options(huh.NewOptions(b.options...)...).
		Value(&b.values)
	if b.limit > 0 {
		field = field.Limit(b.limit)
	}
	if err := b.u.run(field); err != nil {
		return nil, err
	}
	return b.values, nil
}

// Spinner runs action while showing an animated spinner titled title. In
// accessible mode the title is printed once and action runs without
// animation. The returned error is the action's own error, or the
// spinner's when rendering fails.
func (u *UI) Spinner(title string, action func() error) error {
	if u.accessible {
		u.Println(title)
		return action()
	}
	var actionErr error
	if err := spinner.New().
		Title(title).
		Type(spinner.Dots).
		Action(func() { actionErr = action() }).
		Run(); err != nil {
		return err
	}
	return actionErr
}
