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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPattern_Match(t *testing.T) {
	tests := []struct {
		name    string
		glob    string
		path    string
		matched bool
	}{
		{"exact", "lambda/index.py", "lambda/index.py", true},
		{"star crosses separators", "*.md", "docs/guides/setup.md", true},
		{"star within segment", "lambda/*.py", "lambda/index.py", true},
		{"star spans directories", "lambda/*", "lambda/util/helpers.py", true},
		{"prefix star", "infrastructure/*", "infrastructure/template.yaml", true},
		{"question mark", "config/v?.yaml", "config/v2.yaml", true},
		{"question mark single char only", "config/v?.yaml", "config/v12.yaml", false},
		{"class", "release-[0-9].txt", "release-3.txt", true},
		{"negated class", "release-[!0-9].txt", "release-x.txt", true},
		{"negated class rejects member", "release-[!0-9].txt", "release-3.txt", false},
		{"case sensitive", "README.md", "readme.md", false},
		{"no partial match", "lambda", "lambda/index.py", false},
		{"regexp metachars are literal", "a+b.txt", "a+b.txt", true},
		{"regexp metachars do not repeat", "a+b.txt", "aab.txt", false},
		{"unterminated class is literal", "data[01.csv", "data[01.csv", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matched, CompilePattern(tt.glob).Match(tt.path))
		})
	}
}

func TestMatchAny(t *testing.T) {
	patterns := CompilePatterns([]string{"*.md", "docs/*"})

	assert.True(t, MatchAny(patterns, "CHANGELOG.md"))
	assert.True(t, MatchAny(patterns, "docs/setup.rst"))
	assert.False(t, MatchAny(patterns, "lambda/index.py"))
	assert.False(t, MatchAny(nil, "anything"))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "lambda/index.py", NormalizePath(`lambda\index.py`))
	assert.Equal(t, "lambda/index.py", NormalizePath("lambda/index.py"))
}
