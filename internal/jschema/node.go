// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema provides the normalized schema tree handed to translators,
// along with shape classification and traversal utilities.
package jschema

// Node is a schema node of exactly one shape: *Object, *Array, *Enum, *Union or *Primitive.
type Node interface {
	// Doc returns the node's human-readable description, if any.
	Doc() string

	node()
}

// Meta holds the annotations shared by every shape.
type Meta struct {
	Description string
}

// Doc returns the description.
func (m Meta) Doc() string { return m.Description }

func (Meta) node() {}

// Property is a named member of an Object, kept in declaration order.
type Property struct {
	Name   string
	Schema Node
}

// Object is a schema with declared properties.
type Object struct {
	Meta
	Properties []Property
	Required   []string
	AllowExtra bool // additionalProperties is true or a schema
}

// IsRequired reports whether name is listed in Required.
func (o *Object) IsRequired(name string) bool {
	for _, req := range o.Required {
		if req == name {
			return true
		}
	}
	return false
}

// Array is a schema whose instances are lists of Items.
type Array struct {
	Meta
	Items Node
}

// Enum is a string schema restricted to literal values.
type Enum struct {
	Meta
	Values []string
}

// Union is a composition of alternative schemas.
type Union struct {
	Meta
	Members []Node
	// Exclusive is true for oneOf, false for anyOf.
	Exclusive bool
}

// PrimitiveType is the scalar kind of a Primitive.
type PrimitiveType string

// Primitive types.
const (
	String  PrimitiveType = "string"
	Number  PrimitiveType = "number"
	Integer PrimitiveType = "integer"
	Boolean PrimitiveType = "boolean"
	Unknown PrimitiveType = "unknown"
)

// Primitive is a scalar schema with optional format and numeric bounds.
type Primitive struct {
	Meta
	Type    PrimitiveType
	Format  string
	Minimum *float64
	Maximum *float64
}

// Named is a top-level schema together with its declared name.
type Named struct {
	Name string
	Node Node
}

// Document is the ordered collection of top-level schemas of one source document.
type Document struct {
	Title   string
	Version string
	Schemas []Named
}
