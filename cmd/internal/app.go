// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/openapi2zod/internal/commands"
	"github.com/dacolabs/openapi2zod/internal/translate"
	"github.com/dacolabs/openapi2zod/internal/translate/jsonschema"
	"github.com/dacolabs/openapi2zod/internal/translate/zod"
)

// Translators returns the registered output targets.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators.Add(&zod.Translator{})
	translators.Add(&jsonschema.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments, environment).
func Run(ctx context.Context, args, environ []string) error {
	rootCmd := commands.NewRootCmd(Translators(), environ)
	rootCmd.SetArgs(append([]string{}, args...))
	return rootCmd.ExecuteContext(ctx)
}
