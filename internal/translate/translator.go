// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides schema translation utilities.
package translate

import (
	"fmt"
	"sort"

	"github.com/dacolabs/openapi2zod/internal/jschema"
)

// Translator defines the interface all output targets must implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "zod", "jsonschema")
	Name() string

	// Translate converts every top-level schema of doc into one output document.
	Translate(doc *jschema.Document) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts", ".json")
	FileExtension() string
}

// Register maps target names to translators.
type Register map[string]Translator

// Add stores t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
