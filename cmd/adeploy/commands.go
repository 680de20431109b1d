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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianDeploy/pkg/logging"
)

// =============================================================================
// GLOBAL FLAGS AND ROOT COMMAND
// =============================================================================

// defaultConfigPath is where CI checkouts keep the rule set.
const defaultConfigPath = "config/change-detection-config.yaml"

var (
	logLevel string
	quiet    bool

	// logger is rebuilt in PersistentPreRun; commands must not cache it
	// before then.
	logger = logging.Default()

	rootCmd = &cobra.Command{
		Use:   "adeploy",
		Short: "Change-impact tooling for the Aleutian deployment pipeline",
		Long: `adeploy runs the pre-deploy change-impact pipeline:

  detect    Classify changed files against the resource mappings
  enhance   Derive CloudFormation condition flags from the checklist
  validate  Gate the pipeline on metadata consistency

The stages communicate through JSON artifacts, so they can run in one
job or as separate CI steps:

  adeploy detect --base origin/main --head HEAD
  adeploy enhance
  adeploy validate --strict`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(logLevel),
				Service: "adeploy",
				Quiet:   quiet,
			})
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log verbosity: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false,
		"Suppress log output (results still print to stdout)")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(enhanceCmd)
	rootCmd.AddCommand(validateCmd)
}
