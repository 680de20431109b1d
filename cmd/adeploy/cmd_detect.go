// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/detect"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/ruleset"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	detectConfig  string
	detectBase    string
	detectHead    string
	detectOutput  string
	detectPatch   string
	detectWorkdir string
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var detectCmd = &cobra.Command{
	Use:   "detect [files...]",
	Short: "Classify changed files against the resource mappings",
	Long: `Detect which deployment resources are affected by a set of changed
files and write the change-metadata artifact.

Changed files come from one of three sources, in precedence order:
  [files...]   Explicit file list on the command line
  --patch      A saved unified-diff file
  --base/--head  git diff between two refs (default)

A failing git diff is treated as "no changes" so placeholder CI runs
flow through; pass files explicitly when git is unavailable.

Examples:
  adeploy detect --base origin/main --head HEAD
  adeploy detect --patch changes.patch
  adeploy detect lambda/index.py infrastructure/template.yaml`,
	Args: cobra.ArbitraryArgs,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectConfig, "config", defaultConfigPath,
		"Path to the change-detection rule set")
	detectCmd.Flags().StringVar(&detectBase, "base", "main",
		"Base git ref for the diff")
	detectCmd.Flags().StringVar(&detectHead, "head", "HEAD",
		"Head git ref for the diff")
	detectCmd.Flags().StringVar(&detectOutput, "output", metadata.DefaultDetectOutput,
		"Output path for the change-metadata JSON")
	detectCmd.Flags().StringVar(&detectPatch, "patch", "",
		"Read changed files from a unified-diff file instead of git")
	detectCmd.Flags().StringVar(&detectWorkdir, "workdir", ".",
		"Working directory for git commands")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runDetect(cmd *cobra.Command, args []string) error {
	rules, err := ruleset.LoadFromPath(detectConfig)
	if err != nil {
		return err
	}

	var changedFiles []string
	switch {
	case len(args) > 0:
		changedFiles = args
		logger.Info("using explicit file list", "count", len(args))
	case detectPatch != "":
		changedFiles, err = detect.ChangedFilesFromPatch(detectPatch)
		if err != nil {
			return err
		}
		logger.Info("read changed files from patch", "patch", detectPatch, "count", len(changedFiles))
	default:
		client := detect.NewGitClient(detectWorkdir, logger)
		changedFiles = client.ChangedFiles(cmd.Context(), detectBase, detectHead)
		logger.Info("read changed files from git",
			"base", detectBase, "head", detectHead, "count", len(changedFiles))
	}

	doc := detect.NewDetector(rules, logger).Detect(changedFiles)
	doc.ChangeDetectionConfig = detectConfig
	doc.BaseCommit = detectBase
	doc.HeadCommit = detectHead

	if err := metadata.Write(detectOutput, doc); err != nil {
		return err
	}

	fmt.Printf("Change detection complete. Written to: %s\n", detectOutput)
	fmt.Printf("Changed files: %d\n", doc.ChangedFilesCount)
	fmt.Printf("Affected resources: %d\n", len(doc.AffectedResources))
	if len(doc.AffectedMappings) > 0 {
		fmt.Printf("Affected mappings: %s\n", strings.Join(doc.AffectedMappings, ", "))
	}
	if marked := markedStacks(doc.DeploymentChecklist); len(marked) > 0 {
		fmt.Printf("Stacks to deploy: %s\n", strings.Join(marked, ", "))
	}
	if len(doc.RequiredActions) > 0 {
		fmt.Printf("Required actions: %s\n", strings.Join(doc.RequiredActions, ", "))
	}
	return nil
}

// markedStacks returns the checklist keys flagged for deployment, in
// lexical order.
func markedStacks(checklist map[string]bool) []string {
	marked := []string{}
	for stack, deploy := range checklist {
		if deploy {
			marked = append(marked, stack)
		}
	}
	sort.Strings(marked)
	return marked
}
