// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"
	"strings"

	"github.com/dacolabs/openapi2zod/internal/config"
	"github.com/dacolabs/openapi2zod/internal/session"
	"github.com/dacolabs/openapi2zod/internal/translate"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
// environ holds the process environment as "KEY=value" pairs.
func NewRootCmd(translators translate.Register, environ []string) *cobra.Command {
	opts := &generateOptions{}

	rootCmd := &cobra.Command{
		Use:   "openapi2zod <input> [output]",
		Short: "Generate Zod schemas from an OpenAPI document",
		Long: fmt.Sprintf(`Generate TypeScript Zod validators from the component schemas of an
OpenAPI 3.x document (YAML or JSON).

Settings are read from %s, then from %s* environment variables
(a .env file in the working directory is honored), then from flags and arguments.

Available targets: %s`, config.FileName, config.EnvPrefix, strings.Join(translators.Available(), ", ")),
		Example: `  # Write schemas.ts next to the current directory
  openapi2zod openapi.yaml

  # Choose the output file
  openapi2zod api/openapi.json src/api/schemas.ts

  # Print to stdout
  openapi2zod openapi.yaml --stdout

  # Emit a JSON Schema document instead
  openapi2zod openapi.yaml --target jsonschema`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       session.PreRunLoad(&opts.configPath, environ),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.target, "target", "t", config.DefaultTarget, fmt.Sprintf("Output target (%s)", strings.Join(translators.Available(), ", ")))
	rootCmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write the generated file to stdout")
	rootCmd.Flags().BoolVar(&opts.integerBounds, "integer-bounds", false, "Emit .gte/.lte for integer minimum/maximum")
	rootCmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when a default or example does not match its format")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", fmt.Sprintf("Config file (default %s)", config.FileName))

	rootCmd.AddCommand(newInitCmd(translators))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
