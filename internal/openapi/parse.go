// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openapi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parser decodes a document into an ordered node tree.
type Parser struct {
	name  string
	parse func([]byte) (*yaml.Node, error)
}

var (
	// JSON parses documents from JSON.
	JSON = Parser{"json", parseJSON}
	// YAML parses documents from YAML.
	YAML = Parser{"yaml", parseYAML}
)

// ParserFor picks the parser from a file extension.
// ".yaml" and ".yml" select YAML, ".json" selects JSON.
func ParserFor(filePath string) (Parser, error) {
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		return YAML, nil
	case strings.HasSuffix(filePath, ".json"):
		return JSON, nil
	default:
		return Parser{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
}

// String returns the parser's format name.
func (p Parser) String() string {
	return p.name
}

// Parse reads r and returns the document node.
func (p Parser) Parse(r io.Reader) (*yaml.Node, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.parse(data)
}

func parseYAML(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	return doc.Content[0], nil
}

// parseJSON walks the token stream so that object keys keep their order.
func parseJSON(data []byte) (*yaml.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	node, err := decodeJSON(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return node, nil
}

func decodeJSON(dec *json.Decoder, tok any) (*yaml.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", rune(v))
		}
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}, nil
	case json.Number:
		tag := "!!float"
		if _, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(v)}, nil
	case float64:
		tag := "!!float"
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (*yaml.Node, error) {
	obj := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, err := decodeJSON(dec, valTok)
		if err != nil {
			return nil, err
		}
		obj.Content = append(obj.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, val)
	}
}

func decodeJSONArray(dec *json.Decoder) (*yaml.Node, error) {
	arr := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}
		item, err := decodeJSON(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.Content = append(arr.Content, item)
	}
}
