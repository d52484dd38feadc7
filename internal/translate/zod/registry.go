// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

// Registry maps top-level schema names to their validator expressions,
// preserving insertion order.
type Registry struct {
	names []string
	exprs map[string]string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{exprs: make(map[string]string)}
}

// Set stores expr under name. Setting an existing name replaces its expression
// and keeps its position.
func (r *Registry) Set(name, expr string) {
	if _, ok := r.exprs[name]; !ok {
		r.names = append(r.names, name)
	}
	r.exprs[name] = expr
}

// Get returns the expression stored under name.
func (r *Registry) Get(name string) (string, bool) {
	expr, ok := r.exprs[name]
	return expr, ok
}

// Names returns the registered names in insertion order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.names)
}
