// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import "iter"

// Traverse returns a depth-first, pre-order iterator over node and all of its descendants.
// Object properties and union members are visited in declaration order.
func Traverse(node Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		traverse(node, yield)
	}
}

func traverse(node Node, yield func(Node) bool) bool {
	if node == nil {
		return true
	}
	if !yield(node) {
		return false
	}

	switch n := node.(type) {
	case *Object:
		for _, p := range n.Properties {
			if !traverse(p.Schema, yield) {
				return false
			}
		}
	case *Array:
		if !traverse(n.Items, yield) {
			return false
		}
	case *Union:
		for _, m := range n.Members {
			if !traverse(m, yield) {
				return false
			}
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	var count int
	for range Traverse(node) {
		count++
	}
	return count
}
