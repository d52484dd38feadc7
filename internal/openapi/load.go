// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/dacolabs/openapi2zod/internal/jschema"
	"gopkg.in/yaml.v3"
)

// Options tunes how a document is loaded.
type Options struct {
	// Strict turns literal format mismatches into ErrInvalidDocument.
	Strict bool
	// Warn receives literal format mismatches when Strict is off. May be nil.
	Warn func(error)
}

// Load reads the document at name from fsys, validates it and returns the
// classified component schemas in declaration order.
func Load(ctx context.Context, fsys fs.FS, name string, opts Options) (*jschema.Document, error) {
	name = path.Clean(name)
	parser, err := ParserFor(name)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close() //nolint:errcheck

	root, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return Build(ctx, fsys, name, root, opts)
}

// Build converts an already parsed root node. name locates relative file
// references inside fsys.
func Build(ctx context.Context, fsys fs.FS, name string, root *yaml.Node, opts Options) (*jschema.Document, error) {
	if err := Validate(root); err != nil {
		return nil, err
	}

	info := mappingValue(root, "info")
	doc := &jschema.Document{
		Title:   scalarValue(mappingValue(info, "title")),
		Version: scalarValue(mappingValue(info, "version")),
	}

	schemas := mappingValue(mappingValue(root, "components"), "schemas")
	if schemas == nil {
		return doc, nil
	}

	deref := NewDereferencer(fsys, name, root)
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		schemaName := schemas.Content[i].Value

		resolved, err := deref.ResolveSchema(ctx, name, schemaName)
		if err != nil {
			return nil, fmt.Errorf("component schema %q: %w", schemaName, err)
		}
		if errs := CheckLiterals(schemaName, resolved); len(errs) > 0 {
			if opts.Strict {
				return nil, fmt.Errorf("component schema %q: %w: %w", schemaName, ErrInvalidDocument, errors.Join(errs...))
			}
			if opts.Warn != nil {
				for _, err := range errs {
					opts.Warn(err)
				}
			}
		}

		doc.Schemas = append(doc.Schemas, jschema.Named{
			Name: schemaName,
			Node: jschema.Classify(resolved),
		})
	}
	return doc, nil
}

func scalarValue(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}
