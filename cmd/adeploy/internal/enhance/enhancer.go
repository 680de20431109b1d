// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package enhance implements the metadata-enhancement stage: it
// derives CloudFormation condition flags from the deployment
// checklist and stamps the summary fields downstream deployment
// tooling keys off.
package enhance

import (
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
)

// CompositeRule forces a condition flag from a checklist key
// regardless of the configured condition mapping.
type CompositeRule struct {
	Key       string
	Condition string
}

// CompositeRules are conditions that aggregate several stacks behind
// one flag. Each rule applies only when its checklist key exists, and
// copies that key's boolean, so it can both set and clear the
// condition.
var CompositeRules = []CompositeRule{
	{Key: "application", Condition: "DeployApplicationStack"},
}

// Enhance derives condition flags and summary fields from a detect
// document.
//
// # Description
//
// Every checklist entry whose key has a non-empty name in
// conditionMapping contributes a condition carrying the entry's
// boolean, so templates see explicit false flags for stacks that are
// configured but untouched. Composite rules are applied after the
// mapping and may overwrite a mapped flag. The input document is not
// modified; slices are shared, which is safe because detect output is
// never mutated downstream.
//
// Summary fields: has_affected_resources and has_deployments reflect
// the document's collections, and is_valid is their conjunction. A
// "valid" document is one where the detected changes actually map to
// at least one deployable stack.
//
// # Inputs
//
//   - doc: Detect-stage document. Must not be nil.
//   - conditionMapping: Checklist key -> CloudFormation condition
//     name, from the rule set. May be nil.
//
// # Outputs
//
//   - *metadata.EnhancedDocument: New document with conditions and
//     summary fields populated and metadata_version stamped.
func Enhance(doc *metadata.Document, conditionMapping map[string]string) *metadata.EnhancedDocument {
	conditions := make(map[string]bool, len(doc.DeploymentChecklist))
	for key, shouldDeploy := range doc.DeploymentChecklist {
		if name := conditionMapping[key]; name != "" {
			conditions[name] = shouldDeploy
		}
	}

	for _, rule := range CompositeRules {
		if shouldDeploy, exists := doc.DeploymentChecklist[rule.Key]; exists {
			conditions[rule.Condition] = shouldDeploy
		}
	}

	enhanced := &metadata.EnhancedDocument{
		Document:        *doc,
		MetadataVersion: metadata.Version,
		Enhanced:        true,
	}
	enhanced.CloudFormationConditions = conditions
	enhanced.HasAffectedResources = len(doc.AffectedResources) > 0
	enhanced.HasDeployments = anyTrue(doc.DeploymentChecklist)
	enhanced.IsValid = enhanced.HasAffectedResources && enhanced.HasDeployments
	return enhanced
}

func anyTrue(checklist map[string]bool) bool {
	for _, v := range checklist {
		if v {
			return true
		}
	}
	return false
}
