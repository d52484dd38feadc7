// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openapi

import (
	_ "embed"
	"fmt"
	"slices"
	"strconv"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.schema.json
var documentSchemaJSON string

const documentSchemaURL = "https://dacolabs.dev/openapi2zod/openapi-document.json"

var documentSchema = jsonschema.MustCompileString(documentSchemaURL, documentSchemaJSON)

// Validate checks the document structure: the OpenAPI version, the info block
// and the shape of every component schema.
func Validate(root *yaml.Node) error {
	if err := documentSchema.Validate(toValue(root)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// LiteralFormats are the string formats whose "default" and "example" values
// CheckLiterals verifies.
var LiteralFormats = []string{"uuid", "email", "date-time"}

// CheckLiterals reports every string "default" and "example" value of a
// dereferenced schema that does not match its declared format. Each error
// names the literal's path, rooted at name.
func CheckLiterals(name string, schema *yaml.Node) []error {
	var errs []error
	checkLiterals(schema, name, &errs)
	return errs
}

func checkLiterals(n *yaml.Node, path string, errs *[]error) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.SequenceNode:
		for i, item := range n.Content {
			checkLiterals(item, path+"/"+strconv.Itoa(i), errs)
		}
		return
	case yaml.MappingNode:
	default:
		return
	}

	format := ""
	if f := mappingValue(n, "format"); f != nil && f.Kind == yaml.ScalarNode {
		format = f.Value
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		if (key == "default" || key == "example") && isText(val) {
			if err := checkFormat(format, val.Value); err != nil {
				*errs = append(*errs, fmt.Errorf("%s/%s: %w", path, key, err))
			}
			continue
		}
		checkLiterals(val, path+"/"+key, errs)
	}
}

// isText reports whether a literal holds text. Unquoted YAML timestamps count as text.
func isText(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode {
		return false
	}
	tag := n.ShortTag()
	return tag == "!!str" || tag == "!!timestamp"
}

func checkFormat(format, value string) error {
	if !slices.Contains(LiteralFormats, format) {
		return nil
	}
	if !jsonschema.Formats[format](value) {
		return fmt.Errorf("%q is not a valid %s", value, format)
	}
	return nil
}

// toValue converts a node tree into the generic values the validator expects.
func toValue(n *yaml.Node) any {
	for n != nil && (n.Kind == yaml.DocumentNode || n.Kind == yaml.AliasNode) {
		if n.Kind == yaml.AliasNode {
			n = n.Alias
			continue
		}
		if len(n.Content) == 0 {
			return nil
		}
		n = n.Content[0]
	}
	if n == nil {
		return nil
	}

	switch n.Kind {
	case yaml.MappingNode:
		m := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			m[n.Content[i].Value] = toValue(n.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		s := make([]any, len(n.Content))
		for i, item := range n.Content {
			s[i] = toValue(item)
		}
		return s
	}

	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return b
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
	}
	return n.Value
}
