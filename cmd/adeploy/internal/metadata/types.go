// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package metadata defines the change-metadata documents handed off
// between pipeline stages as JSON build artifacts.
package metadata

// Version is the metadata_version stamped by the enhance stage.
const Version = "2.0"

// DefaultDetectOutput is the conventional detect-stage artifact name.
const DefaultDetectOutput = "change-metadata.json"

// DefaultEnhanceOutput is the conventional enhance-stage artifact name.
const DefaultEnhanceOutput = "change-metadata-enhanced.json"

// AffectedResource is one (changed file, matched mapping) pair. A file
// that matches two mappings produces two entries.
type AffectedResource struct {
	File         string `json:"file"`
	Mapping      string `json:"mapping"`
	ResourceType string `json:"resource_type,omitempty"`
	ImpactLevel  string `json:"impact_level,omitempty"`
	TargetStack  string `json:"target_stack,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Document is the detect-stage output.
//
// # Description
//
// Nil slice and map fields mean the corresponding key was absent from
// the JSON document, which the validator's structural gate relies on;
// the detector always emits them non-nil.
type Document struct {
	ChangeDetectionConfig string `json:"change_detection_config,omitempty"`
	BaseCommit            string `json:"base_commit,omitempty"`
	HeadCommit            string `json:"head_commit,omitempty"`

	ChangedFilesCount int      `json:"changed_files_count"`
	ChangedFiles      []string `json:"changed_files"`

	AffectedResources []AffectedResource `json:"affected_resources"`
	AffectedMappings  []string           `json:"affected_mappings"`

	DeploymentChecklist map[string]bool `json:"deployment_checklist"`
	RequiredActions     []string        `json:"required_actions"`

	// Empty after detection; populated by the enhance stage.
	CloudFormationConditions map[string]bool `json:"cloudformation_conditions"`
}

// EnhancedDocument is the enhance-stage output: the detect document
// carried through unchanged plus derived condition flags.
//
// A plain detect document decodes into EnhancedDocument with Enhanced
// false, so the validator accepts artifacts from either stage.
type EnhancedDocument struct {
	Document

	MetadataVersion      string `json:"metadata_version,omitempty"`
	Enhanced             bool   `json:"enhanced"`
	HasAffectedResources bool   `json:"has_affected_resources"`
	HasDeployments       bool   `json:"has_deployments"`
	IsValid              bool   `json:"is_valid"`
}
