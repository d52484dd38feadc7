// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/openapi2zod/internal/translate"
)

// Module is the package the generated code imports from.
const Module = "zod"

//go:embed zod.ts.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("zod.ts.tmpl").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(tmplFS, "zod.ts.tmpl"))

// Export is one exported constant of the generated file.
type Export struct {
	Name string
	Expr string
}

type fileData struct {
	Module  string
	Imports []string
	Exports []Export
}

// Exports returns the constants Emit writes, in registry order.
// Names that normalize to the same identifier collapse into one export at the
// position of the first, holding the expression of the last.
func Exports(reg *Registry) []Export {
	exports := make([]Export, 0, reg.Len())
	index := make(map[string]int, reg.Len())
	for _, name := range reg.Names() {
		expr, _ := reg.Get(name)
		id := translate.Normalize(name)
		if i, ok := index[id]; ok {
			exports[i].Expr = expr
			continue
		}
		index[id] = len(exports)
		exports = append(exports, Export{Name: id, Expr: expr})
	}
	return exports
}

// Emit assembles the import statement, one constant per registry entry and the
// aliased re-export block. The expressions are written as given.
func Emit(reg *Registry, ctx *Context) (string, error) {
	data := fileData{
		Module:  Module,
		Imports: ctx.Symbols(),
		Exports: Exports(reg),
	}

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, "zod.ts.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return sb.String(), nil
}
