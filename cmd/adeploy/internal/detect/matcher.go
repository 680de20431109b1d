// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package detect

import (
	"regexp"
	"strings"
)

// Pattern is a compiled fnmatch-style glob.
//
// # Description
//
// Supported metacharacters are '*' (any run of characters, including
// '/'), '?' (any single character), and '[...]' character classes
// with '!' negation. Everything else matches literally. This is
// deliberately not filepath.Match: config patterns like "*.md" must
// exclude markdown files at any depth, so '*' may not stop at path
// separators.
type Pattern struct {
	glob string
	re   *regexp.Regexp
}

// CompilePattern compiles a glob into a Pattern. Compilation cannot
// fail for any input: an unterminated character class matches a
// literal '['.
func CompilePattern(glob string) *Pattern {
	return &Pattern{glob: glob, re: regexp.MustCompile(translate(glob))}
}

// CompilePatterns compiles a list of globs.
func CompilePatterns(globs []string) []*Pattern {
	patterns := make([]*Pattern, 0, len(globs))
	for _, g := range globs {
		patterns = append(patterns, CompilePattern(g))
	}
	return patterns
}

// Match reports whether the pattern matches the whole path. The path
// should already be '/'-normalized; see NormalizePath.
func (p *Pattern) Match(path string) bool {
	return p.re.MatchString(path)
}

// String returns the original glob.
func (p *Pattern) String() string {
	return p.glob
}

// MatchAny reports whether any pattern matches the path,
// short-circuiting on the first hit.
func MatchAny(patterns []*Pattern, path string) bool {
	for _, p := range patterns {
		if p.Match(path) {
			return true
		}
	}
	return false
}

// NormalizePath rewrites backslash separators to forward slashes so
// diffs produced on Windows checkouts match the same patterns.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// translate converts a glob to an anchored regular expression.
func translate(glob string) string {
	var sb strings.Builder
	sb.WriteString(`\A`)

	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			sb.WriteString(`.*`)
		case '?':
			sb.WriteString(`.`)
		case '[':
			end := scanClass(glob, i)
			if end < 0 {
				sb.WriteString(`\[`)
				continue
			}
			writeClass(&sb, glob[i+1:end])
			i = end
		default:
			sb.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	sb.WriteString(`\z`)
	return sb.String()
}

// scanClass finds the index of the ']' closing the class opened at
// start, or -1 if the class is unterminated. A ']' directly after the
// opening (or after '!') is a literal member, per fnmatch.
func scanClass(glob string, start int) int {
	i := start + 1
	if i < len(glob) && glob[i] == '!' {
		i++
	}
	if i < len(glob) && glob[i] == ']' {
		i++
	}
	for i < len(glob) && glob[i] != ']' {
		i++
	}
	if i >= len(glob) {
		return -1
	}
	return i
}

// writeClass emits a regexp character class for the glob class body.
func writeClass(sb *strings.Builder, body string) {
	body = strings.ReplaceAll(body, `\`, `\\`)
	if strings.HasPrefix(body, "!") {
		body = "^" + body[1:]
	}
	sb.WriteString("[")
	sb.WriteString(body)
	sb.WriteString("]")
}
