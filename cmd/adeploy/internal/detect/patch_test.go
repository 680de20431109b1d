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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePatch = `diff --git a/lambda/index.py b/lambda/index.py
index 83db48f..bf2696d 100644
--- a/lambda/index.py
+++ b/lambda/index.py
@@ -1,3 +1,4 @@
 import json
+import os

 def handler(event, context):
diff --git a/docs/old-notes.md b/docs/old-notes.md
deleted file mode 100644
index 5716ca5..0000000
--- a/docs/old-notes.md
+++ /dev/null
@@ -1,2 +0,0 @@
-# Notes
-stale
diff --git a/infrastructure/template.yaml b/infrastructure/template.yaml
new file mode 100644
index 0000000..9daeafb
--- /dev/null
+++ b/infrastructure/template.yaml
@@ -0,0 +1,2 @@
+AWSTemplateFormatVersion: '2010-09-09'
+Resources: {}
`

func writePatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "changes.patch")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestChangedFilesFromPatch(t *testing.T) {
	files, err := ChangedFilesFromPatch(writePatch(t, samplePatch))

	require.NoError(t, err)
	assert.Equal(t, []string{
		"lambda/index.py",
		"docs/old-notes.md",
		"infrastructure/template.yaml",
	}, files)
}

func TestChangedFilesFromPatch_MissingFile(t *testing.T) {
	_, err := ChangedFilesFromPatch(filepath.Join(t.TempDir(), "absent.patch"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading patch")
}

func TestChangedFilesFromPatch_EmptyPatch(t *testing.T) {
	files, err := ChangedFilesFromPatch(writePatch(t, ""))

	require.NoError(t, err)
	assert.Empty(t, files)
}
