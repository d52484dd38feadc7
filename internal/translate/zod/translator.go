// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package zod translates schema trees into TypeScript source built on the Zod
// validation library.
package zod

import (
	"github.com/dacolabs/openapi2zod/internal/jschema"
)

// Translator translates schema documents to Zod validators.
type Translator struct {
	Options Options
}

// Name returns the target identifier.
func (t *Translator) Name() string {
	return "zod"
}

// FileExtension returns the file extension for TypeScript source files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate converts every schema of doc and emits the resulting file.
func (t *Translator) Translate(doc *jschema.Document) ([]byte, error) {
	reg, ctx := TranslateDocument(doc, t.Options)
	out, err := Emit(reg, ctx)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// TranslateDocument translates each top-level schema in declaration order.
// The returned Registry and Context belong to this run only.
func TranslateDocument(doc *jschema.Document, opts Options) (*Registry, *Context) {
	ctx := NewContext(opts)
	reg := NewRegistry()
	for _, s := range doc.Schemas {
		reg.Set(s.Name, Translate(s.Node, ctx))
	}
	return reg, ctx
}
