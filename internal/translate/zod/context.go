// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

// Namespace is the symbol every validator expression is built from.
const Namespace = "z"

// Options tune the generated validators.
type Options struct {
	// IntegerBounds applies minimum/maximum to integer schemas as well as numbers.
	IntegerBounds bool
}

// Context is the state of one translation run: the library symbols referenced
// so far and the current object nesting depth.
type Context struct {
	opts    Options
	symbols []string
	seen    map[string]bool
	depth   int
}

// NewContext returns a Context whose symbol set holds only the base namespace.
func NewContext(opts Options) *Context {
	c := &Context{
		opts: opts,
		seen: make(map[string]bool),
	}
	c.Use(Namespace)
	return c
}

// Use records that symbol must be imported. Symbols are never removed.
func (c *Context) Use(symbol string) {
	if c.seen[symbol] {
		return
	}
	c.seen[symbol] = true
	c.symbols = append(c.symbols, symbol)
}

// Symbols returns the referenced symbols in first-use order.
func (c *Context) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// call returns a call on the base namespace, e.g. call("string") is "z.string".
func (c *Context) call(fn string) string {
	c.Use(Namespace)
	return Namespace + "." + fn
}
