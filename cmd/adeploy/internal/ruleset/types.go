// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ruleset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ImpactLevel represents the deployment impact of a resource mapping.
type ImpactLevel string

const (
	ImpactLow      ImpactLevel = "LOW"
	ImpactMedium   ImpactLevel = "MEDIUM"
	ImpactHigh     ImpactLevel = "HIGH"
	ImpactCritical ImpactLevel = "CRITICAL"
)

// TargetStackAll is the sentinel target that marks every checklist
// stack for deployment (critical shared code paths).
const TargetStackAll = "all"

// ResourceMapping associates file glob patterns with a resource
// classification and its deployment impact.
type ResourceMapping struct {
	Patterns        []string    `yaml:"patterns" validate:"required,min=1"`
	ResourceType    string      `yaml:"resource_type"`
	ImpactLevel     ImpactLevel `yaml:"impact_level"`
	TargetStack     string      `yaml:"target_stack"`
	Description     string      `yaml:"description"`
	RequiredActions []string    `yaml:"required_actions"`
}

// Exclusions holds glob patterns for files that are ignored entirely.
type Exclusions struct {
	Patterns []string `yaml:"patterns"`
}

// ResourceMappings is an order-preserving map of mapping key to
// ResourceMapping.
//
// # Description
//
// Declaration order in the YAML file is the order mappings are
// evaluated against each changed file, and therefore the order of
// affected-resource entries in the output document. A plain Go map
// would lose that order, so the YAML mapping node is decoded by hand.
type ResourceMappings struct {
	keys  []string
	byKey map[string]ResourceMapping
}

// UnmarshalYAML decodes a YAML mapping node preserving key order.
func (m *ResourceMappings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("resourceMappings must be a mapping, got %v", node.Kind)
	}

	m.byKey = make(map[string]ResourceMapping, len(node.Content)/2)
	m.keys = make([]string, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("decoding mapping key: %w", err)
		}
		var mapping ResourceMapping
		if err := node.Content[i+1].Decode(&mapping); err != nil {
			return fmt.Errorf("decoding mapping %q: %w", key, err)
		}
		if _, exists := m.byKey[key]; exists {
			return fmt.Errorf("duplicate mapping key %q", key)
		}
		m.keys = append(m.keys, key)
		m.byKey[key] = mapping
	}
	return nil
}

// Keys returns mapping keys in declaration order.
func (m *ResourceMappings) Keys() []string {
	return m.keys
}

// Get returns the mapping for the given key.
func (m *ResourceMappings) Get(key string) (ResourceMapping, bool) {
	mapping, ok := m.byKey[key]
	return mapping, ok
}

// Len returns the number of mappings.
func (m *ResourceMappings) Len() int {
	return len(m.keys)
}

// RuleSet is the change-detection configuration.
//
// # Fields
//
//   - Exclusions: Glob patterns for files ignored entirely.
//   - ResourceMappings: Mapping key -> classification rule, in
//     declaration order.
//   - DeploymentChecklist: Its keys seed the deployment checklist;
//     values are free-form descriptions and are not interpreted.
//   - ConditionMapping: Checklist key -> CloudFormation condition
//     name, used only by the enhance stage.
type RuleSet struct {
	Exclusions          Exclusions        `yaml:"exclusions"`
	ResourceMappings    ResourceMappings  `yaml:"resourceMappings"`
	DeploymentChecklist map[string]string `yaml:"deploymentChecklist"`
	ConditionMapping    map[string]string `yaml:"cloudFormationConditionMapping"`
}

// ChecklistKeys returns the stack identifiers that seed the
// deployment checklist.
func (r *RuleSet) ChecklistKeys() []string {
	keys := make([]string, 0, len(r.DeploymentChecklist))
	for key := range r.DeploymentChecklist {
		keys = append(keys, key)
	}
	return keys
}
