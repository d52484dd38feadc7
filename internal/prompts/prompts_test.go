// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Input", Value: "openapi.yaml"},
		{Label: "Schemas", Value: "3"},
	}, "Done")

	out := buf.String()
	assert.Contains(t, out, "Input:")
	assert.Contains(t, out, "openapi.yaml")
	assert.Contains(t, out, "Schemas:")
	assert.Contains(t, out, "Done")
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	PrintWarning(&buf, "%d names collide", 2)
	assert.Contains(t, buf.String(), "2 names collide")
}

func TestRequiredValidator(t *testing.T) {
	validate := requiredValidator("input document")
	assert.EqualError(t, validate(""), "input document is required")
	assert.NoError(t, validate("openapi.yaml"))
}
