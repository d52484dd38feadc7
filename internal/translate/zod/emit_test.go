// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"regexp"
	"strings"
	"testing"

	"github.com/dacolabs/openapi2zod/internal/jschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petDocument() *jschema.Document {
	return &jschema.Document{
		Schemas: []jschema.Named{
			{Name: "Pet", Node: &jschema.Object{
				Properties: []jschema.Property{
					{Name: "id", Schema: str("uuid")},
					{Name: "name", Schema: str("")},
				},
				Required: []string{"id"},
			}},
		},
	}
}

func TestTranslator_PetScenario(t *testing.T) {
	translator := &Translator{}
	output, err := translator.Translate(petDocument())
	require.NoError(t, err)

	want := "import { z } from 'zod'\n" +
		"\n" +
		"export const Pet = z.object({\n" +
		"  id: z.string().uuid(),\n" +
		"  name: z.string().optional(),\n" +
		"})\n" +
		"\n" +
		"export {\n" +
		"  Pet as PetSchema,\n" +
		"}\n"
	assert.Equal(t, want, string(output))
}

func TestTranslator_Deterministic(t *testing.T) {
	doc := &jschema.Document{
		Schemas: []jschema.Named{
			{Name: "status", Node: &jschema.Enum{Values: []string{"on", "off"}}},
			{Name: "pet_list", Node: &jschema.Array{Items: str("")}},
			{Name: "Value", Node: &jschema.Union{Members: []jschema.Node{str(""), &jschema.Primitive{Type: jschema.Boolean}}}},
		},
	}

	translator := &Translator{}
	first, err := translator.Translate(doc)
	require.NoError(t, err)
	second, err := translator.Translate(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEmit_OrderPreserved(t *testing.T) {
	reg := NewRegistry()
	reg.Set("zebra", "z.string()")
	reg.Set("apple", "z.number()")
	reg.Set("mango_item", "z.boolean()")

	out, err := Emit(reg, NewContext(Options{}))
	require.NoError(t, err)

	consts := regexp.MustCompile(`export const (\w+) =`).FindAllStringSubmatch(out, -1)
	var names []string
	for _, m := range consts {
		names = append(names, m[1])
	}
	assert.Equal(t, []string{"Zebra", "Apple", "MangoItem"}, names)

	assert.Contains(t, out, "export {\n  Zebra as ZebraSchema,\n  Apple as AppleSchema,\n  MangoItem as MangoItemSchema,\n}\n")
}

func TestEmit_Empty(t *testing.T) {
	out, err := Emit(NewRegistry(), NewContext(Options{}))
	require.NoError(t, err)
	assert.Equal(t, "import { z } from 'zod'\n\nexport {\n}\n", out)
}

func TestEmit_ImportsAllSymbols(t *testing.T) {
	ctx := NewContext(Options{})
	ctx.Use("ZodType")

	out, err := Emit(NewRegistry(), ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "import { z, ZodType } from 'zod'\n"))
}

func TestEmit_CollisionLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Set("pet_store", "z.string()")
	reg.Set("Order", "z.number()")
	reg.Set("PetStore", "z.boolean()")

	exports := Exports(reg)
	assert.Equal(t, []Export{
		{Name: "PetStore", Expr: "z.boolean()"},
		{Name: "Order", Expr: "z.number()"},
	}, exports)
	assert.Equal(t, reg.Len(), cap(exports))

	out, err := Emit(reg, NewContext(Options{}))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "export const PetStore ="))
	assert.Equal(t, 1, strings.Count(out, "PetStore as PetStoreSchema"))
	assert.NotContains(t, out, "z.string()")
}

func TestRegistry_SetKeepsPosition(t *testing.T) {
	reg := NewRegistry()
	reg.Set("a", "1")
	reg.Set("b", "2")
	reg.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, reg.Names())
	assert.Equal(t, 2, reg.Len())
	expr, ok := reg.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", expr)
	_, ok = reg.Get("c")
	assert.False(t, ok)
}

func TestTranslateDocument_RegistryOrder(t *testing.T) {
	doc := &jschema.Document{
		Schemas: []jschema.Named{
			{Name: "B", Node: str("")},
			{Name: "A", Node: &jschema.Primitive{Type: jschema.Boolean}},
		},
	}

	reg, ctx := TranslateDocument(doc, Options{})
	assert.Equal(t, []string{"B", "A"}, reg.Names())
	assert.Equal(t, []string{"z"}, ctx.Symbols())
}

func TestTranslator_Metadata(t *testing.T) {
	translator := &Translator{}
	assert.Equal(t, "zod", translator.Name())
	assert.Equal(t, ".ts", translator.FileExtension())
}
