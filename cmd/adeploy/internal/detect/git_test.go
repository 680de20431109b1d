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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNameOnly(t *testing.T) {
	output := "lambda/index.py\n\n  \ninfrastructure/template.yaml\nREADME.md\n"

	files := parseNameOnly(output)

	assert.Equal(t, []string{
		"lambda/index.py",
		"infrastructure/template.yaml",
		"README.md",
	}, files)
}

func TestParseNameOnly_Empty(t *testing.T) {
	assert.Equal(t, []string{}, parseNameOnly(""))
}

func TestChangedFiles_SoftFailsOutsideRepo(t *testing.T) {
	// t.TempDir is not a git repository, so the diff fails; the client
	// must report no changes rather than an error.
	client := NewGitClient(t.TempDir(), nil)

	files := client.ChangedFiles(context.Background(), "main", "HEAD")

	assert.NotNil(t, files)
	assert.Empty(t, files)
}
