// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dacolabs/openapi2zod/internal/config"
	"github.com/dacolabs/openapi2zod/internal/jschema"
	"github.com/dacolabs/openapi2zod/internal/openapi"
	"github.com/dacolabs/openapi2zod/internal/prompts"
	"github.com/dacolabs/openapi2zod/internal/session"
	"github.com/dacolabs/openapi2zod/internal/translate"
	"github.com/dacolabs/openapi2zod/internal/translate/zod"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	configPath    string
	target        string
	stdout        bool
	integerBounds bool
	strict        bool
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions, args []string) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := *sess.Config
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}
	if cmd.Flags().Changed("target") {
		cfg.Target = opts.target
	}
	if cmd.Flags().Changed("integer-bounds") {
		cfg.IntegerBounds = opts.integerBounds
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = opts.strict
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("no input document: pass <input> or set input in %s", config.FileName)
	}

	translator, err := translators.Get(cfg.Target)
	if err != nil {
		return fmt.Errorf("%w %q (available: %s)", config.ErrUnknownTarget, cfg.Target, strings.Join(translators.Available(), ", "))
	}
	if _, ok := translator.(*zod.Translator); ok {
		translator = &zod.Translator{Options: zod.Options{IntegerBounds: cfg.IntegerBounds}}
	}

	input := sess.Path(cfg.Input)
	doc, err := openapi.Load(cmd.Context(), os.DirFS(filepath.Dir(input)), filepath.Base(input), openapi.Options{
		Strict: cfg.Strict,
		Warn: func(err error) {
			prompts.PrintWarning(cmd.ErrOrStderr(), "%v", err)
		},
	})
	if err != nil {
		return err
	}

	names := make([]string, len(doc.Schemas))
	nodes := 0
	for i, s := range doc.Schemas {
		names[i] = s.Name
		nodes += jschema.Count(s.Node)
	}
	if len(names) == 0 {
		prompts.PrintWarning(cmd.ErrOrStderr(), "%s has no components.schemas", cfg.Input)
	}
	collisions := translate.Collisions(names)
	ids := make([]string, 0, len(collisions))
	for id := range collisions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		group := collisions[id]
		prompts.PrintWarning(cmd.ErrOrStderr(), "schemas %s all map to %s; keeping %q",
			strings.Join(group, ", "), id, group[len(group)-1])
	}

	data, err := translator.Translate(doc)
	if err != nil {
		return fmt.Errorf("failed to translate %s: %w", cfg.Input, err)
	}

	if opts.stdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	output := cfg.Output
	if output == "" {
		output = "schemas" + translator.FileExtension()
	}
	outFile := sess.Path(output)
	if err := os.MkdirAll(filepath.Dir(outFile), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil { //nolint:gosec // generated source is meant to be shared
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	title := doc.Title
	if doc.Version != "" {
		title += " " + doc.Version
	}
	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Document", Value: title},
		{Label: "Target", Value: cfg.Target},
		{Label: "Schemas", Value: strconv.Itoa(len(doc.Schemas))},
		{Label: "Nodes", Value: strconv.Itoa(nodes)},
		{Label: "Output", Value: output},
	}, "Schemas generated")
	return nil
}
