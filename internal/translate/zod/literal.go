// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package zod

import (
	"regexp"
	"strconv"
	"strings"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// quote renders s as a single-quoted string literal.
func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

// propertyKey renders an object key, quoting it unless it is a plain identifier.
func propertyKey(name string) string {
	if identifierRe.MatchString(name) {
		return name
	}
	return quote(name)
}

// formatNumber prints f the way JavaScript prints numbers: positional
// notation for exponents in [-6, 20], otherwise shortest exponent form
// without leading zeros ("1e-7", "1e+21").
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	n, _ := strconv.Atoi(exp)
	if n > -7 && n < 21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
