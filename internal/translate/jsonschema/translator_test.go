// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/openapi2zod/internal/jschema"
)

func decode(t *testing.T, out []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	return m
}

func TestTranslator_Translate(t *testing.T) {
	zero := 0.0
	doc := &jschema.Document{
		Title: "Petstore",
		Schemas: []jschema.Named{
			{Name: "pet", Node: &jschema.Object{
				Meta: jschema.Meta{Description: "A pet"},
				Properties: []jschema.Property{
					{Name: "id", Schema: &jschema.Primitive{Type: jschema.String, Format: "uuid"}},
					{Name: "age", Schema: &jschema.Primitive{Type: jschema.Integer, Minimum: &zero}},
					{Name: "tags", Schema: &jschema.Array{Items: &jschema.Primitive{Type: jschema.String}}},
				},
				Required:   []string{"id"},
				AllowExtra: true,
			}},
			{Name: "status", Node: &jschema.Enum{Values: []string{"on", "off"}}},
			{Name: "value", Node: &jschema.Union{
				Exclusive: true,
				Members:   []jschema.Node{&jschema.Primitive{Type: jschema.Number}, &jschema.Primitive{Type: jschema.Unknown}},
			}},
		},
	}

	tr := &Translator{}
	assert.Equal(t, "jsonschema", tr.Name())
	assert.Equal(t, ".json", tr.FileExtension())

	out, err := tr.Translate(doc)
	require.NoError(t, err)
	assert.True(t, len(out) > 0 && out[len(out)-1] == '\n')

	m := decode(t, out)
	assert.Equal(t, Draft, m["$schema"])
	assert.Equal(t, "Petstore", m["title"])

	defs, ok := m["$defs"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, defs, 3)

	pet, ok := defs["Pet"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "object", pet["type"])
	assert.Equal(t, "A pet", pet["description"])
	assert.Equal(t, []any{"id"}, pet["required"])
	assert.NotNil(t, pet["additionalProperties"])

	props := pet["properties"].(map[string]any)
	assert.Equal(t, "uuid", props["id"].(map[string]any)["format"])
	assert.InDelta(t, 0.0, props["age"].(map[string]any)["minimum"], 0)
	assert.Equal(t, "array", props["tags"].(map[string]any)["type"])

	status := defs["Status"].(map[string]any)
	assert.Equal(t, []any{"on", "off"}, status["enum"])

	value := defs["Value"].(map[string]any)
	assert.Len(t, value["oneOf"], 2)
	assert.Nil(t, value["anyOf"])
}

func TestTranslator_CollidingNamesKeepLast(t *testing.T) {
	doc := &jschema.Document{Schemas: []jschema.Named{
		{Name: "user-id", Node: &jschema.Primitive{Type: jschema.String}},
		{Name: "user_id", Node: &jschema.Primitive{Type: jschema.Integer}},
	}}

	out, err := (&Translator{}).Translate(doc)
	require.NoError(t, err)

	defs := decode(t, out)["$defs"].(map[string]any)
	require.Len(t, defs, 1)
	assert.Equal(t, "integer", defs["UserId"].(map[string]any)["type"])
}

func TestTranslator_Empty(t *testing.T) {
	out, err := (&Translator{}).Translate(&jschema.Document{})
	require.NoError(t, err)
	m := decode(t, out)
	assert.Equal(t, Draft, m["$schema"])
	_, hasDefs := m["$defs"]
	assert.False(t, hasDefs)
}
