// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openapi

import (
	"context"
	"os"
	"testing"

	"github.com/dacolabs/openapi2zod/internal/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaNames(doc *jschema.Document) []string {
	names := make([]string, len(doc.Schemas))
	for i, s := range doc.Schemas {
		names[i] = s.Name
	}
	return names
}

func TestLoad_Petstore(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"YAML", "petstore.yaml"},
		{"JSON", "petstore.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(context.Background(), os.DirFS("testdata"), tt.file, Options{})
			require.NoError(t, err)

			assert.Equal(t, "Petstore", doc.Title)
			assert.Equal(t, "1.0.0", doc.Version)
			assert.Equal(t, []string{"Pet", "Status", "Owner"}, schemaNames(doc))

			pet, ok := doc.Schemas[0].Node.(*jschema.Object)
			require.True(t, ok, "expected *Object, got %T", doc.Schemas[0].Node)
			assert.Equal(t, "A pet in the store", pet.Doc())
			require.Len(t, pet.Properties, 4)
			assert.Equal(t, "status", pet.Properties[2].Name)

			status, ok := pet.Properties[2].Schema.(*jschema.Enum)
			require.True(t, ok, "reference was not inlined")
			assert.Equal(t, []string{"available", "pending", "sold"}, status.Values)

			owner, ok := doc.Schemas[2].Node.(*jschema.Object)
			require.True(t, ok)
			ownerPet, ok := owner.Properties[1].Schema.(*jschema.Object)
			require.True(t, ok)
			assert.Equal(t, "The owner's pet", ownerPet.Doc())
			assert.True(t, ownerPet.IsRequired("id"))
		})
	}
}

func TestLoad_ExternalRefs(t *testing.T) {
	doc, err := Load(context.Background(), os.DirFS("testdata"), "external.yaml", Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pet", "Error"}, schemaNames(doc))

	pet, ok := doc.Schemas[0].Node.(*jschema.Object)
	require.True(t, ok)
	id, ok := pet.Properties[0].Schema.(*jschema.Primitive)
	require.True(t, ok)
	assert.Equal(t, jschema.Integer, id.Type)
	require.NotNil(t, id.Minimum)
	assert.InDelta(t, 1.0, *id.Minimum, 0)

	category, ok := pet.Properties[1].Schema.(*jschema.Object)
	require.True(t, ok)
	assert.Equal(t, "name", category.Properties[0].Name)

	errSchema, ok := doc.Schemas[1].Node.(*jschema.Object)
	require.True(t, ok)
	assert.Len(t, errSchema.Properties, 2)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		want error
	}{
		{"cyclic reference", "cyclic.yaml", ErrCyclicRef},
		{"unresolved reference", "unresolved.yaml", ErrUnresolvedRef},
		{"swagger 2", "swagger.yaml", ErrInvalidDocument},
		{"unknown extension", "petstore.txt", ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), os.DirFS("testdata"), tt.file, Options{})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_LiteralErrorsAreJoined(t *testing.T) {
	_, err := Load(context.Background(), os.DirFS("testdata"), "bad-literal.yaml", Options{Strict: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, err.Error(), `"not-a-uuid" is not a valid uuid`)
	assert.Contains(t, err.Error(), `"yesterday" is not a valid date-time`)
}

func TestLoad_LiteralMismatchWarns(t *testing.T) {
	var warnings []string
	doc, err := Load(context.Background(), os.DirFS("testdata"), "bad-literal.yaml", Options{
		Warn: func(err error) { warnings = append(warnings, err.Error()) },
	})
	require.NoError(t, err)
	require.Len(t, doc.Schemas, 1)
	assert.Equal(t, "Event", doc.Schemas[0].Name)
	assert.Equal(t, []string{
		`Event/properties/id/default: "not-a-uuid" is not a valid uuid`,
		`Event/properties/at/example: "yesterday" is not a valid date-time`,
	}, warnings)
}

func TestLoad_LiteralMismatchWithoutWarn(t *testing.T) {
	_, err := Load(context.Background(), os.DirFS("testdata"), "bad-literal.yaml", Options{})
	assert.NoError(t, err)
}

func TestLoad_NoComponents(t *testing.T) {
	doc, err := Load(context.Background(), os.DirFS("testdata"), "empty.yaml", Options{})
	require.NoError(t, err)
	assert.Equal(t, "Empty", doc.Title)
	assert.Empty(t, doc.Schemas)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), os.DirFS("testdata"), "missing.yaml", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, os.DirFS("testdata"), "petstore.yaml", Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
