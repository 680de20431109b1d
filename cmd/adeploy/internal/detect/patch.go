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
	"fmt"
	"os"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

const devNull = "/dev/null"

// ChangedFilesFromPatch extracts the changed-file list from a saved
// unified-diff file.
//
// # Description
//
// Some CI steps receive a patch artifact instead of a full checkout;
// this is the offline counterpart of GitClient.ChangedFiles. Each
// file diff contributes one path: the new name, or the original name
// for deletions. Duplicate paths are collapsed, first occurrence
// wins, so the output preserves diff order.
//
// # Inputs
//
//   - path: Path to a unified-diff (git format-patch / git diff) file.
//
// # Outputs
//
//   - []string: '/'-normalized changed file paths.
//   - error: Non-nil if the file is missing or not a parseable diff.
func ChangedFilesFromPatch(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading patch: %w", err)
	}

	fileDiffs, err := diff.ParseMultiFileDiff(data)
	if err != nil {
		return nil, fmt.Errorf("parsing patch %s: %w", path, err)
	}

	seen := make(map[string]bool, len(fileDiffs))
	files := []string{}
	for _, fd := range fileDiffs {
		name := stripGitPrefix(fd.NewName)
		if fd.NewName == devNull {
			name = stripGitPrefix(fd.OrigName)
		}
		if name == "" || name == devNull || seen[name] {
			continue
		}
		seen[name] = true
		files = append(files, NormalizePath(name))
	}
	return files, nil
}

// stripGitPrefix removes the conventional a/ and b/ prefixes git puts
// on diff names.
func stripGitPrefix(name string) string {
	if strings.HasPrefix(name, "a/") || strings.HasPrefix(name, "b/") {
		return name[2:]
	}
	return name
}
