// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Classify converts a dereferenced schema mapping into its shape.
// The tests run in a fixed order: object, array, string enum, union, primitive.
// Anything that is not a mapping (including boolean schemas) becomes an unknown primitive.
func Classify(n *yaml.Node) Node {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return &Primitive{Type: Unknown}
	}

	meta := Meta{Description: scalar(Lookup(n, "description"))}
	typ := schemaType(n)

	if typ == "object" {
		return classifyObject(n, meta)
	}
	if typ == "array" {
		return &Array{Meta: meta, Items: Classify(Lookup(n, "items"))}
	}
	if typ == "string" {
		if values := enumValues(Lookup(n, "enum")); len(values) > 0 {
			return &Enum{Meta: meta, Values: values}
		}
	}
	if members := sequence(Lookup(n, "oneOf")); len(members) > 0 {
		return classifyUnion(members, meta, true)
	}
	if members := sequence(Lookup(n, "anyOf")); len(members) > 0 {
		return classifyUnion(members, meta, false)
	}
	return classifyPrimitive(n, typ, meta)
}

func classifyObject(n *yaml.Node, meta Meta) *Object {
	obj := &Object{Meta: meta}

	if props := unwrap(Lookup(n, "properties")); props != nil && props.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(props.Content); i += 2 {
			obj.Properties = append(obj.Properties, Property{
				Name:   props.Content[i].Value,
				Schema: Classify(props.Content[i+1]),
			})
		}
	}

	for _, req := range sequence(Lookup(n, "required")) {
		if req.Kind == yaml.ScalarNode {
			obj.Required = append(obj.Required, req.Value)
		}
	}

	if extra := unwrap(Lookup(n, "additionalProperties")); extra != nil {
		switch extra.Kind {
		case yaml.MappingNode:
			obj.AllowExtra = true
		case yaml.ScalarNode:
			allow, err := strconv.ParseBool(extra.Value)
			obj.AllowExtra = err == nil && allow
		}
	}

	return obj
}

func classifyUnion(members []*yaml.Node, meta Meta, exclusive bool) *Union {
	u := &Union{Meta: meta, Exclusive: exclusive}
	for _, m := range members {
		u.Members = append(u.Members, Classify(m))
	}
	return u
}

func classifyPrimitive(n *yaml.Node, typ string, meta Meta) *Primitive {
	p := &Primitive{Meta: meta, Format: scalar(Lookup(n, "format"))}
	switch typ {
	case "string":
		p.Type = String
	case "number":
		p.Type = Number
	case "integer":
		p.Type = Integer
	case "boolean":
		p.Type = Boolean
	default:
		p.Type = Unknown
	}
	p.Minimum = number(Lookup(n, "minimum"))
	p.Maximum = number(Lookup(n, "maximum"))
	return p
}

// schemaType returns the declared type. For a type list (OpenAPI 3.1) it
// returns the first entry other than "null".
func schemaType(n *yaml.Node) string {
	t := unwrap(Lookup(n, "type"))
	if t == nil {
		return ""
	}
	switch t.Kind {
	case yaml.ScalarNode:
		return t.Value
	case yaml.SequenceNode:
		for _, item := range t.Content {
			if v := scalar(item); v != "" && v != "null" {
				return v
			}
		}
	}
	return ""
}

// enumValues returns the scalar literals of an enum list in order. Null entries are skipped.
func enumValues(n *yaml.Node) []string {
	var values []string
	for _, item := range sequence(n) {
		if item.Kind != yaml.ScalarNode || item.ShortTag() == "!!null" {
			continue
		}
		values = append(values, item.Value)
	}
	return values
}

// Lookup returns the value stored under key in a mapping node, or nil.
func Lookup(n *yaml.Node, key string) *yaml.Node {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

func sequence(n *yaml.Node) []*yaml.Node {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]*yaml.Node, 0, len(n.Content))
	for _, item := range n.Content {
		if item = unwrap(item); item != nil {
			out = append(out, item)
		}
	}
	return out
}

func scalar(n *yaml.Node) string {
	n = unwrap(n)
	if n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}

func number(n *yaml.Node) *float64 {
	v := scalar(n)
	if v == "" {
		return nil
	}
	if unwrap(n).ShortTag() == "!!int" {
		// Hex, octal and binary literals resolve to !!int.
		if i, err := strconv.ParseInt(v, 0, 64); err == nil {
			f := float64(i)
			return &f
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

func unwrap(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}
