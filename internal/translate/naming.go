// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"
	"unicode"
)

// Normalize converts a schema name into a PascalCase identifier.
// Words are split on non-alphanumeric characters and on case boundaries
// ("petStore", "HTTPServer"); each word keeps its first letter upper-cased and
// the rest lower-cased. A word after the first that starts with a digit is
// prefixed with "_", as is a result that would start with a digit.
func Normalize(name string) string {
	var sb strings.Builder
	for i, w := range splitWords(name) {
		r := []rune(strings.ToLower(w))
		if unicode.IsDigit(r[0]) {
			if i > 0 {
				sb.WriteByte('_')
			}
		} else {
			r[0] = unicode.ToUpper(r[0])
		}
		sb.WriteString(string(r))
	}

	result := sb.String()
	if result == "" {
		return "_"
	}
	if unicode.IsDigit([]rune(result)[0]) {
		return "_" + result
	}
	return result
}

// Collisions groups distinct names that normalize to the same identifier.
// Only identifiers shared by two or more names are returned.
func Collisions(names []string) map[string][]string {
	groups := make(map[string][]string)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		id := Normalize(name)
		groups[id] = append(groups[id], name)
	}
	for id, group := range groups {
		if len(group) < 2 {
			delete(groups, id)
		}
	}
	return groups
}

func splitWords(s string) []string {
	runes := []rune(s)

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = nil
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(cur) > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()

	return words
}
