// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validate implements the change-impact consistency gate run
// at the end of the pre-deploy pipeline.
package validate

import (
	"fmt"

	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/ruleset"
)

// Report is the outcome of validating a metadata document.
//
// # Fields
//
//   - OK: Whether the pipeline may proceed. False when any error was
//     found, or in strict mode when any warning was found.
//   - Errors: Hard inconsistencies; always fail the gate.
//   - Warnings: Suspicious but tolerable findings; fail the gate only
//     in strict mode.
type Report struct {
	OK       bool
	Errors   []string
	Warnings []string
}

// Clean reports whether validation produced no findings at all.
func (r Report) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

// Check validates a metadata document for internal consistency.
//
// # Description
//
// Checks run in a fixed order, so the report is deterministic for a
// given document:
//
//  1. Structural: affected_resources and deployment_checklist keys
//     must be present (nil means the key was absent). Structural
//     errors short-circuit; no further checks run.
//  2. Changed files but no affected resources -> warning; everything
//     may legitimately have been excluded.
//  3. Affected resources but an all-false checklist -> error; the
//     rule set failed to route changes to any stack.
//  4. Enhanced document with affected resources but no conditions ->
//     warning.
//  5. Per-resource field presence: missing resource_type or
//     impact_level -> warning each.
//  6. CRITICAL resources with no required actions -> error.
//
// # Inputs
//
//   - doc: Document to validate, from either pipeline stage. Must not
//     be nil.
//   - strict: Whether warnings alone fail the gate.
//
// # Outputs
//
//   - Report: Findings in check order and the resulting verdict.
func Check(doc *metadata.EnhancedDocument, strict bool) Report {
	errors := []string{}
	warnings := []string{}

	if doc.AffectedResources == nil {
		errors = append(errors, "metadata missing 'affected_resources' field")
	}
	if doc.DeploymentChecklist == nil {
		errors = append(errors, "metadata missing 'deployment_checklist' field")
	}
	if len(errors) > 0 {
		return Report{OK: false, Errors: errors, Warnings: warnings}
	}

	if len(doc.ChangedFiles) > 0 && len(doc.AffectedResources) == 0 {
		warnings = append(warnings, fmt.Sprintf(
			"files changed (%d) but no affected resources identified; all changes may have been excluded",
			len(doc.ChangedFiles)))
	}

	if len(doc.AffectedResources) > 0 && !anyTrue(doc.DeploymentChecklist) {
		errors = append(errors, fmt.Sprintf(
			"affected resources identified (%d) but deployment checklist is empty; this indicates a configuration error in the rule set",
			len(doc.AffectedResources)))
	}

	if doc.Enhanced && len(doc.CloudFormationConditions) == 0 && len(doc.AffectedResources) > 0 {
		warnings = append(warnings,
			"enhanced metadata but no CloudFormation conditions generated; template may not conditionally deploy resources")
	}

	for _, res := range doc.AffectedResources {
		file := res.File
		if file == "" {
			file = "unknown"
		}
		if res.ResourceType == "" {
			warnings = append(warnings, fmt.Sprintf("resource missing 'resource_type': %s", file))
		}
		if res.ImpactLevel == "" {
			warnings = append(warnings, fmt.Sprintf("resource missing 'impact_level': %s", file))
		}
	}

	critical := 0
	for _, res := range doc.AffectedResources {
		if res.ImpactLevel == string(ruleset.ImpactCritical) {
			critical++
		}
	}
	if critical > 0 && len(doc.RequiredActions) == 0 {
		errors = append(errors, fmt.Sprintf(
			"found %d CRITICAL resources but no required actions defined; build, test, or deployment steps may be missing",
			critical))
	}

	ok := len(errors) == 0 && (!strict || len(warnings) == 0)
	return Report{OK: ok, Errors: errors, Warnings: warnings}
}

func anyTrue(checklist map[string]bool) bool {
	for _, v := range checklist {
		if v {
			return true
		}
	}
	return false
}
