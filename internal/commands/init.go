// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dacolabs/openapi2zod/internal/config"
	"github.com/dacolabs/openapi2zod/internal/prompts"
	"github.com/dacolabs/openapi2zod/internal/translate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	input          string
	output         string
	target         string
	integerBounds  bool
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a " + config.FileName + " configuration file",
		Long: `Create a configuration file in the current directory so that
openapi2zod can run without arguments.`,
		Example: `  # Interactive mode
  openapi2zod init

  # Non-interactive
  openapi2zod init --input openapi.yaml --output src/schemas.ts --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			return runInit(cmd.OutOrStdout(), cwd, translators.Available(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "OpenAPI document")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default schemas.<ext>)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", config.DefaultTarget, "Output target")
	cmd.Flags().BoolVar(&opts.integerBounds, "integer-bounds", false, "Emit .gte/.lte for integer minimum/maximum")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --input)")

	return cmd
}

func runInit(w io.Writer, dir string, targets []string, opts *initOptions) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", config.FileName)
	}

	if opts.nonInteractive {
		if opts.input == "" {
			return errors.New("non-interactive mode requires --input")
		}
	} else if err := prompts.RunInitForm(&opts.input, &opts.output, &opts.target, &opts.integerBounds, targets); err != nil {
		return err
	}

	cfg := config.Config{
		Version:       config.CurrentConfigVersion,
		Input:         opts.input,
		Output:        opts.output,
		Target:        opts.target,
		IntegerBounds: opts.integerBounds,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(w, []prompts.ResultField{
		{Label: "Input", Value: cfg.Input},
		{Label: "Target", Value: cfg.Target},
		{Label: "Integer bounds", Value: strconv.FormatBool(cfg.IntegerBounds)},
	}, "Initialization completed")
	return nil
}
