// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
)

var conditionMapping = map[string]string{
	"infrastructure": "DeployInfrastructureStack",
	"monitoring":     "DeployMonitoringStack",
}

func detectDoc() *metadata.Document {
	return &metadata.Document{
		ChangedFilesCount: 2,
		ChangedFiles:      []string{"lambda/index.py", "infrastructure/template.yaml"},
		AffectedResources: []metadata.AffectedResource{
			{File: "lambda/index.py", Mapping: "app-lambda", ImpactLevel: "CRITICAL"},
			{File: "infrastructure/template.yaml", Mapping: "infra-templates", ImpactLevel: "HIGH"},
		},
		AffectedMappings: []string{"app-lambda", "infra-templates"},
		DeploymentChecklist: map[string]bool{
			"application":    true,
			"infrastructure": true,
			"monitoring":     false,
		},
		RequiredActions:          []string{"build", "deploy", "test"},
		CloudFormationConditions: map[string]bool{},
	}
}

func TestEnhance_DerivesConditions(t *testing.T) {
	enhanced := Enhance(detectDoc(), conditionMapping)

	// Mapped flags carry the checklist booleans, including false; the
	// composite application rule fires without a mapping entry.
	assert.Equal(t, map[string]bool{
		"DeployInfrastructureStack": true,
		"DeployMonitoringStack":     false,
		"DeployApplicationStack":    true,
	}, enhanced.CloudFormationConditions)
}

func TestEnhance_SummaryFields(t *testing.T) {
	enhanced := Enhance(detectDoc(), conditionMapping)

	assert.True(t, enhanced.Enhanced)
	assert.Equal(t, metadata.Version, enhanced.MetadataVersion)
	assert.True(t, enhanced.HasAffectedResources)
	assert.True(t, enhanced.HasDeployments)
	assert.True(t, enhanced.IsValid)
}

func TestEnhance_NoChangesIsInvalid(t *testing.T) {
	doc := &metadata.Document{
		ChangedFiles:      []string{},
		AffectedResources: []metadata.AffectedResource{},
		DeploymentChecklist: map[string]bool{
			"application":    false,
			"infrastructure": false,
		},
		CloudFormationConditions: map[string]bool{},
	}

	enhanced := Enhance(doc, conditionMapping)

	assert.False(t, enhanced.HasAffectedResources)
	assert.False(t, enhanced.HasDeployments)
	assert.False(t, enhanced.IsValid)
	assert.Equal(t, map[string]bool{
		"DeployInfrastructureStack": false,
		"DeployApplicationStack":    false,
	}, enhanced.CloudFormationConditions)
}

func TestEnhance_UnmappedChecklistKeysSkipped(t *testing.T) {
	doc := detectDoc()
	doc.DeploymentChecklist["storage"] = true

	enhanced := Enhance(doc, conditionMapping)

	for name := range enhanced.CloudFormationConditions {
		assert.NotEqual(t, "storage", name)
	}
	require.Len(t, enhanced.CloudFormationConditions, 3)
}

func TestEnhance_NilConditionMapping(t *testing.T) {
	enhanced := Enhance(detectDoc(), nil)

	// Only the composite rule applies.
	assert.Equal(t, map[string]bool{"DeployApplicationStack": true}, enhanced.CloudFormationConditions)
}

func TestEnhance_DoesNotMutateInput(t *testing.T) {
	doc := detectDoc()
	Enhance(doc, conditionMapping)

	assert.Empty(t, doc.CloudFormationConditions)
	assert.Equal(t, 2, doc.ChangedFilesCount)
}

func TestEnhance_Idempotent(t *testing.T) {
	first := Enhance(detectDoc(), conditionMapping)
	second := Enhance(&first.Document, conditionMapping)

	assert.Equal(t, first.CloudFormationConditions, second.CloudFormationConditions)
	assert.Equal(t, first.IsValid, second.IsValid)
}
