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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/validate"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	validateMetadata string
	validateStrict   bool
	validateNoExit   bool
)

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Gate the pipeline on metadata consistency",
	Long: `Validate a change-metadata artifact for internal consistency and
exit non-zero when the pipeline should stop.

Errors always fail the gate. Warnings fail it only with --strict.
--no-exit prints the verdict but always exits 0, for jobs that record
the result without blocking.

Examples:
  adeploy validate
  adeploy validate --strict
  adeploy validate --metadata build/enhanced.json --no-exit`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateMetadata, "metadata", metadata.DefaultEnhanceOutput,
		"Path to the metadata JSON to validate")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false,
		"Fail on warnings, not just errors")
	validateCmd.Flags().BoolVar(&validateNoExit, "no-exit", false,
		"Report the verdict but exit 0")
}

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

func runValidate(cmd *cobra.Command, args []string) error {
	doc, err := metadata.Load(validateMetadata)
	if err != nil {
		return err
	}

	report := validate.Check(doc, validateStrict)

	if len(report.Errors) > 0 {
		fmt.Println("VALIDATION ERRORS:")
		for i, msg := range report.Errors {
			fmt.Printf("  %d. %s\n", i+1, msg)
		}
	}
	if len(report.Warnings) > 0 {
		fmt.Println("VALIDATION WARNINGS:")
		for i, msg := range report.Warnings {
			fmt.Printf("  %d. %s\n", i+1, msg)
		}
	}

	switch {
	case report.Clean():
		fmt.Println("Validation passed - change impact is valid and complete")
	case report.OK:
		fmt.Printf("\nValidation passed (%d warnings)\n", len(report.Warnings))
	default:
		fmt.Println("\nValidation failed")
		if !validateNoExit {
			return fmt.Errorf("change impact validation failed: %d errors, %d warnings",
				len(report.Errors), len(report.Warnings))
		}
	}
	return nil
}
