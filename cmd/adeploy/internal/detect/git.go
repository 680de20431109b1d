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
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/AleutianAI/AleutianDeploy/pkg/logging"
)

// GitClient obtains changed-file lists from git.
//
// # Thread Safety
//
// GitClient is safe for concurrent use.
type GitClient struct {
	workDir string
	logger  *logging.Logger
}

// NewGitClient creates a GitClient rooted at workDir.
func NewGitClient(workDir string, logger *logging.Logger) *GitClient {
	if logger == nil {
		logger = logging.Default()
	}
	return &GitClient{workDir: workDir, logger: logger}
}

// IsRepo checks whether the working directory is inside a git
// repository.
func (g *GitClient) IsRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	cmd.Dir = g.workDir
	return cmd.Run() == nil
}

// ChangedFiles returns the paths changed between base and head.
//
// # Description
//
// Runs `git diff --name-only <base> <head>`. A non-zero git exit is
// deliberately NOT propagated: the failure is logged and an empty
// list returned, so placeholder runs (shallow clones, missing refs in
// CI sandboxes) flow through the pipeline as "no changes" instead of
// aborting it. Real upstream CI failures are expected to stop the
// build before this tool runs.
//
// # Inputs
//
//   - ctx: Context for cancellation. Must not be nil.
//   - base: Base commit/branch reference (e.g. "main").
//   - head: Head commit/branch reference (e.g. "HEAD").
//
// # Outputs
//
//   - []string: '/'-normalized changed file paths in diff order;
//     empty when the diff fails or nothing changed.
func (g *GitClient) ChangedFiles(ctx context.Context, base, head string) []string {
	cmd := exec.CommandContext(ctx, "git", "diff", "--name-only", base, head)
	cmd.Dir = g.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		g.logger.Warn("git diff failed, treating as no changes",
			"base", base,
			"head", head,
			"error", err.Error(),
			"stderr", strings.TrimSpace(stderr.String()),
		)
		return []string{}
	}

	return parseNameOnly(stdout.String())
}

// parseNameOnly splits `git diff --name-only` output into a clean
// path list, dropping blank and whitespace-only lines.
func parseNameOnly(output string) []string {
	files := []string{}
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		files = append(files, NormalizePath(line))
	}
	return files
}
