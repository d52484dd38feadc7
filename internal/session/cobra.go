// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// FromCommand extracts the session Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the session Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("configuration not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PreRunE function that resolves the configuration from
// the working directory and stores it in the command's context. configPath is
// read when the hook runs, after flags are parsed. The file is required only
// when the "config" flag was set explicitly.
func PreRunLoad(configPath *string, environ []string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		required := false
		if f := cmd.Flags().Lookup("config"); f != nil {
			required = f.Changed
		}
		ctx, err := Load(cmd.Context(), cwd, *configPath, required, environ)
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
