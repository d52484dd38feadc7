// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"strings"

	"github.com/dacolabs/openapi2zod/internal/jschema"
)

// Translate returns the validator expression for node, recording every
// library symbol it references in ctx.
func Translate(node jschema.Node, ctx *Context) string {
	switch n := node.(type) {
	case *jschema.Object:
		return translateObject(n, ctx)
	case *jschema.Array:
		return translateArray(n, ctx)
	case *jschema.Enum:
		return translateEnum(n, ctx)
	case *jschema.Union:
		return translateUnion(n, ctx)
	case *jschema.Primitive:
		return translatePrimitive(n, ctx)
	default:
		return ctx.call("any()")
	}
}

func translateObject(o *jschema.Object, ctx *Context) string {
	var sb strings.Builder
	sb.WriteString(ctx.call("object("))

	if len(o.Properties) == 0 {
		sb.WriteString("{}")
	} else {
		sb.WriteString("{\n")
		ctx.depth++
		indent := strings.Repeat("  ", ctx.depth)
		for _, p := range o.Properties {
			expr := Translate(p.Schema, ctx)
			if !o.IsRequired(p.Name) {
				expr += ".optional()"
			}
			if desc := p.Schema.Doc(); desc != "" {
				expr += ".describe(" + quote(desc) + ")"
			}
			sb.WriteString(indent + propertyKey(p.Name) + ": " + expr + ",\n")
		}
		ctx.depth--
		sb.WriteString(strings.Repeat("  ", ctx.depth) + "}")
	}

	sb.WriteString(")")
	if o.AllowExtra {
		sb.WriteString(".passthrough()")
	}
	return sb.String()
}

func translateArray(a *jschema.Array, ctx *Context) string {
	return ctx.call("array(") + Translate(a.Items, ctx) + ")"
}

func translateEnum(e *jschema.Enum, ctx *Context) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = quote(v)
	}
	return ctx.call("enum([") + strings.Join(values, ", ") + "])"
}

// translateUnion chains members with .or(); oneOf and anyOf render the same way.
func translateUnion(u *jschema.Union, ctx *Context) string {
	var sb strings.Builder
	for i, m := range u.Members {
		expr := Translate(m, ctx)
		if i == 0 {
			sb.WriteString(expr)
			continue
		}
		sb.WriteString(".or(" + expr + ")")
	}
	if sb.Len() == 0 {
		return ctx.call("never()")
	}
	return sb.String()
}

func translatePrimitive(p *jschema.Primitive, ctx *Context) string {
	switch p.Type {
	case jschema.String:
		expr := ctx.call("string()")
		switch p.Format {
		case "date-time":
			expr += ".datetime({ offset: true })"
		case "email":
			expr += ".email()"
		case "uuid":
			expr += ".uuid()"
		}
		return expr
	case jschema.Number:
		return ctx.call("number()") + bounds(p)
	case jschema.Integer:
		expr := ctx.call("number()") + ".int()"
		if ctx.opts.IntegerBounds {
			expr += bounds(p)
		}
		return expr
	case jschema.Boolean:
		return ctx.call("boolean()")
	default:
		return ctx.call("any()")
	}
}

func bounds(p *jschema.Primitive) string {
	var out string
	if p.Minimum != nil {
		out += ".gte(" + formatNumber(*p.Minimum) + ")"
	}
	if p.Maximum != nil {
		out += ".lte(" + formatNumber(*p.Maximum) + ")"
	}
	return out
}
