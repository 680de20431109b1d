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

	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/enhance"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/ruleset"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	enhanceMetadata string
	enhanceConfig   string
	enhanceOutput   string
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "Derive CloudFormation condition flags from the checklist",
	Long: `Decorate a change-metadata artifact with CloudFormation condition
flags derived from the deployment checklist, plus summary fields for
downstream decision-making.

Examples:
  adeploy enhance
  adeploy enhance --metadata build/change-metadata.json --output build/enhanced.json`,
	Args: cobra.NoArgs,
	RunE: runEnhance,
}

func init() {
	enhanceCmd.Flags().StringVar(&enhanceMetadata, "metadata", metadata.DefaultDetectOutput,
		"Path to the detect-stage metadata JSON")
	enhanceCmd.Flags().StringVar(&enhanceConfig, "config", defaultConfigPath,
		"Path to the change-detection rule set")
	enhanceCmd.Flags().StringVar(&enhanceOutput, "output", metadata.DefaultEnhanceOutput,
		"Output path for the enhanced metadata JSON")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runEnhance(cmd *cobra.Command, args []string) error {
	doc, err := metadata.Load(enhanceMetadata)
	if err != nil {
		return err
	}

	rules, err := ruleset.LoadFromPath(enhanceConfig)
	if err != nil {
		return err
	}

	enhanced := enhance.Enhance(&doc.Document, rules.ConditionMapping)

	if err := metadata.Write(enhanceOutput, enhanced); err != nil {
		return err
	}

	fmt.Printf("Change metadata enhanced. Written to: %s\n", enhanceOutput)
	fmt.Printf("CloudFormation conditions: %s\n", formatConditions(enhanced.CloudFormationConditions))
	fmt.Printf("Valid for deployment: %t\n", enhanced.IsValid)
	return nil
}

// formatConditions renders the condition map sorted by name so output
// is stable across runs.
func formatConditions(conditions map[string]bool) string {
	if len(conditions) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(conditions))
	for name := range conditions {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%t", name, conditions[name]))
	}
	return strings.Join(parts, ", ")
}
