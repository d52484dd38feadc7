// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package openapi

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dereferencer expands $ref references into a fresh, reference-free tree.
// Local references ("#/components/schemas/Pet") and relative file references
// ("./pet.yaml", "common.yaml#/Error") are supported. Files are read from fsys
// and cached for the lifetime of the Dereferencer.
type Dereferencer struct {
	fsys  fs.FS
	files map[string]*yaml.Node

	refs   []string            // reference chain being expanded
	active map[*yaml.Node]bool // containers being copied
}

// NewDereferencer returns a Dereferencer for a document already parsed from
// file name. fsys may be nil when the document has no file references.
func NewDereferencer(fsys fs.FS, name string, root *yaml.Node) *Dereferencer {
	return &Dereferencer{
		fsys:   fsys,
		files:  map[string]*yaml.Node{path.Clean(name): root},
		active: make(map[*yaml.Node]bool),
	}
}

// Resolve returns a deep copy of n, found in file, with every $ref replaced by
// the node it points to. Keys next to a $ref are kept and override the target's.
// A reference that leads back to itself fails with ErrCyclicRef.
func (d *Dereferencer) Resolve(ctx context.Context, n *yaml.Node, file string) (*yaml.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.Resolve(ctx, n.Content[0], file)
	case yaml.AliasNode:
		return d.Resolve(ctx, n.Alias, file)
	case yaml.ScalarNode:
		c := *n
		return &c, nil
	}

	if d.active[n] {
		if n.Anchor != "" {
			return nil, fmt.Errorf("%w: anchor %q refers to itself", ErrCyclicRef, n.Anchor)
		}
		return nil, fmt.Errorf("%w: %s", ErrCyclicRef, strings.Join(d.refs, " -> "))
	}
	d.active[n] = true
	defer delete(d.active, n)

	if n.Kind == yaml.SequenceNode {
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: n.Tag, Style: n.Style}
		for _, item := range n.Content {
			c, err := d.Resolve(ctx, item, file)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, c)
		}
		return out, nil
	}

	if ref := refOf(n); ref != "" {
		return d.resolveRef(ctx, n, ref, file)
	}

	out := &yaml.Node{Kind: yaml.MappingNode, Tag: n.Tag, Style: n.Style}
	for i := 0; i+1 < len(n.Content); i += 2 {
		v, err := d.Resolve(ctx, n.Content[i+1], file)
		if err != nil {
			return nil, err
		}
		k := *n.Content[i]
		out.Content = append(out.Content, &k, v)
	}
	return out, nil
}

// ResolveSchema resolves components.schemas[name] of the root document.
func (d *Dereferencer) ResolveSchema(ctx context.Context, file, name string) (*yaml.Node, error) {
	file = path.Clean(file)
	root, err := d.file(ctx, file)
	if err != nil {
		return nil, err
	}
	schemas := mappingValue(mappingValue(root, "components"), "schemas")
	target := mappingValue(schemas, name)
	if target == nil {
		return nil, fmt.Errorf("%w: schema %q not found", ErrUnresolvedRef, name)
	}

	d.refs = append(d.refs, file+"#/components/schemas/"+escapeToken(name))
	defer func() { d.refs = d.refs[:len(d.refs)-1] }()
	return d.Resolve(ctx, target, file)
}

func (d *Dereferencer) resolveRef(ctx context.Context, n *yaml.Node, ref, file string) (*yaml.Node, error) {
	target, targetFile, key, err := d.lookup(ctx, ref, file)
	if err != nil {
		return nil, err
	}
	for _, k := range d.refs {
		if k == key {
			chain := append(append([]string{}, d.refs...), key)
			return nil, fmt.Errorf("%w: %s", ErrCyclicRef, strings.Join(chain, " -> "))
		}
	}

	d.refs = append(d.refs, key)
	resolved, err := d.Resolve(ctx, target, targetFile)
	d.refs = d.refs[:len(d.refs)-1]
	if err != nil {
		return nil, err
	}

	var siblings []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != "$ref" {
			siblings = append(siblings, n.Content[i], n.Content[i+1])
		}
	}
	if len(siblings) == 0 || resolved == nil || resolved.Kind != yaml.MappingNode {
		return resolved, nil
	}

	for i := 0; i < len(siblings); i += 2 {
		v, err := d.Resolve(ctx, siblings[i+1], file)
		if err != nil {
			return nil, err
		}
		setKey(resolved, siblings[i].Value, v)
	}
	return resolved, nil
}

// lookup finds the node a reference points to, loading external files as needed.
// It returns the node, the file it lives in and a canonical key for cycle detection.
func (d *Dereferencer) lookup(ctx context.Context, ref, file string) (*yaml.Node, string, string, error) {
	if strings.Contains(ref, "://") {
		return nil, "", "", fmt.Errorf("%w: %s (remote references are not supported)", ErrUnresolvedRef, ref)
	}

	filePart, fragment, _ := strings.Cut(ref, "#")
	targetFile := path.Clean(file)
	if filePart != "" {
		targetFile = path.Join(path.Dir(file), filePart)
	}

	root, err := d.file(ctx, targetFile)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %s: %v", ErrUnresolvedRef, ref, err)
	}

	target, err := pointer(root, fragment)
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %s: %v", ErrUnresolvedRef, ref, err)
	}
	return target, targetFile, targetFile + "#" + fragment, nil
}

func (d *Dereferencer) file(ctx context.Context, name string) (*yaml.Node, error) {
	if root, ok := d.files[name]; ok {
		return root, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.fsys == nil {
		return nil, fmt.Errorf("no filesystem to load %s", name)
	}

	parser, err := ParserFor(name)
	if err != nil {
		return nil, err
	}
	f, err := d.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	root, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	d.files[name] = root
	return root, nil
}

// pointer evaluates a JSON pointer fragment ("/components/schemas/Pet") against root.
func pointer(root *yaml.Node, fragment string) (*yaml.Node, error) {
	fragment, err := url.PathUnescape(fragment)
	if err != nil {
		return nil, err
	}
	if fragment == "" || fragment == "/" {
		return root, nil
	}
	if !strings.HasPrefix(fragment, "/") {
		return nil, fmt.Errorf("invalid JSON pointer %q", fragment)
	}

	cur := root
	for _, token := range strings.Split(fragment[1:], "/") {
		token = strings.ReplaceAll(strings.ReplaceAll(token, "~1", "/"), "~0", "~")
		for cur != nil && cur.Kind == yaml.AliasNode {
			cur = cur.Alias
		}
		if cur == nil {
			return nil, fmt.Errorf("%q not found", fragment)
		}

		switch cur.Kind {
		case yaml.MappingNode:
			var next *yaml.Node
			for i := 0; i+1 < len(cur.Content); i += 2 {
				if cur.Content[i].Value == token {
					next = cur.Content[i+1]
					break
				}
			}
			cur = next
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(cur.Content) {
				return nil, fmt.Errorf("%q not found", fragment)
			}
			cur = cur.Content[idx]
		default:
			cur = nil
		}
		if cur == nil {
			return nil, fmt.Errorf("%q not found", fragment)
		}
	}
	return cur, nil
}

func escapeToken(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
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

func refOf(n *yaml.Node) string {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "$ref" && n.Content[i+1].Kind == yaml.ScalarNode {
			return n.Content[i+1].Value
		}
	}
	return ""
}

func setKey(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
}
