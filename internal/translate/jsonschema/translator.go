// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema writes the classified schemas back out as a single
// JSON Schema (draft 2020-12) document with one $defs entry per schema.
package jsonschema

import (
	"fmt"

	json "github.com/goccy/go-json"
	js "github.com/google/jsonschema-go/jsonschema"

	"github.com/dacolabs/openapi2zod/internal/jschema"
	"github.com/dacolabs/openapi2zod/internal/translate"
)

// Draft is the $schema URI of generated documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Translator translates schema documents to JSON Schema.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string {
	return "jsonschema"
}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".json"
}

// Translate converts every schema of doc into a $defs entry keyed by its
// normalized name. Later schemas replace earlier ones with the same key.
func (t *Translator) Translate(doc *jschema.Document) ([]byte, error) {
	root := &js.Schema{
		Schema: Draft,
		Title:  doc.Title,
		Defs:   make(map[string]*js.Schema, len(doc.Schemas)),
	}
	for _, s := range doc.Schemas {
		root.Defs[translate.Normalize(s.Name)] = build(s.Node)
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON Schema: %w", err)
	}
	return append(out, '\n'), nil
}

func build(node jschema.Node) *js.Schema {
	switch n := node.(type) {
	case *jschema.Object:
		s := &js.Schema{Type: "object", Description: n.Description}
		if len(n.Properties) > 0 {
			s.Properties = make(map[string]*js.Schema, len(n.Properties))
			for _, p := range n.Properties {
				s.Properties[p.Name] = build(p.Schema)
				if n.IsRequired(p.Name) {
					s.Required = append(s.Required, p.Name)
				}
			}
		}
		if n.AllowExtra {
			s.AdditionalProperties = &js.Schema{}
		}
		return s
	case *jschema.Array:
		return &js.Schema{Type: "array", Description: n.Description, Items: build(n.Items)}
	case *jschema.Enum:
		values := make([]any, len(n.Values))
		for i, v := range n.Values {
			values[i] = v
		}
		return &js.Schema{Type: "string", Description: n.Description, Enum: values}
	case *jschema.Union:
		members := make([]*js.Schema, len(n.Members))
		for i, m := range n.Members {
			members[i] = build(m)
		}
		if n.Exclusive {
			return &js.Schema{Description: n.Description, OneOf: members}
		}
		return &js.Schema{Description: n.Description, AnyOf: members}
	case *jschema.Primitive:
		s := &js.Schema{Description: n.Description, Format: n.Format}
		if n.Type != jschema.Unknown {
			s.Type = string(n.Type)
		}
		if n.Type == jschema.Number || n.Type == jschema.Integer {
			s.Minimum = n.Minimum
			s.Maximum = n.Maximum
		}
		return s
	default:
		return &js.Schema{}
	}
}
