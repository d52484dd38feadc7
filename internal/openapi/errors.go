// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package openapi reads OpenAPI 3.x documents and turns their component
// schemas into classified jschema nodes.
package openapi

import "errors"

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrInvalidDocument is returned when the document fails structural validation.
	ErrInvalidDocument = errors.New("invalid OpenAPI document")
	// ErrUnresolvedRef is returned when a $ref target cannot be found.
	ErrUnresolvedRef = errors.New("unresolved reference")
	// ErrCyclicRef is returned when a $ref chain leads back to itself.
	ErrCyclicRef = errors.New("cyclic reference")
)
