// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(input, output, target *string, integerBounds *bool, targets []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OpenAPI document").
				Placeholder("openapi.yaml").
				Validate(requiredValidator("input document")).
				Value(input),
			huh.NewInput().
				Title("Output file").
				Placeholder("schemas.ts").
				Value(output),
		),
		huh.NewGroup(
			TargetSelect(target, targets),
			huh.NewConfirm().
				Title("Emit integer bounds?").
				Description("Add .gte/.lte to integer fields with minimum/maximum").
				Value(integerBounds),
		),
	).WithTheme(Theme()).Run()
}

// TargetSelect returns a select field for choosing the output target.
func TargetSelect(value *string, targets []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(targets))
	for i, t := range targets {
		options[i] = huh.NewOption(t, t)
	}
	return huh.NewSelect[string]().
		Title("Output target").
		Options(options...).
		Value(value)
}
