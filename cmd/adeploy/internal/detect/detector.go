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
	"sort"
	"strings"

	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/metadata"
	"github.com/AleutianAI/AleutianDeploy/cmd/adeploy/internal/ruleset"
	"github.com/AleutianAI/AleutianDeploy/pkg/logging"
)

// Detector classifies changed files against a rule set.
//
// # Description
//
// Construction compiles every glob in the rule set once; Detect then
// runs pure pattern matching over a file list. Mappings are evaluated
// in their YAML declaration order, so affected-resource output is
// deterministic for a given (file list, rule set) pair.
//
// # Thread Safety
//
// Detector is immutable after construction and safe for concurrent
// use.
type Detector struct {
	rules      *ruleset.RuleSet
	exclusions []*Pattern
	mappings   map[string][]*Pattern
	logger     *logging.Logger
}

// NewDetector compiles the rule set's patterns into a Detector.
func NewDetector(rules *ruleset.RuleSet, logger *logging.Logger) *Detector {
	if logger == nil {
		logger = logging.Default()
	}

	mappings := make(map[string][]*Pattern, rules.ResourceMappings.Len())
	for _, key := range rules.ResourceMappings.Keys() {
		mapping, _ := rules.ResourceMappings.Get(key)
		mappings[key] = CompilePatterns(mapping.Patterns)
	}

	return &Detector{
		rules:      rules,
		exclusions: CompilePatterns(rules.Exclusions.Patterns),
		mappings:   mappings,
		logger:     logger,
	}
}

// Excluded reports whether a path matches any exclusion pattern.
func (d *Detector) Excluded(path string) bool {
	return MatchAny(d.exclusions, path)
}

// Detect classifies the changed files and builds the change-metadata
// document.
//
// # Description
//
// Blank entries are dropped and paths '/'-normalized before matching.
// Excluded files contribute to nothing: not the resource list, not the
// checklist, not the changed-file count's downstream effects. A file
// matching several mappings produces one affected-resource entry per
// mapping. The deployment checklist starts with every configured stack
// false; a matched mapping flips its target stack to true, or every
// stack when the target is "all". Flips are monotonic: nothing resets
// a stack to false. A target stack that is not a checklist key is
// ignored, so a typo in one mapping cannot invent a deployment.
//
// # Inputs
//
//   - changedFiles: Raw changed-file paths, e.g. from git diff.
//
// # Outputs
//
//   - *metadata.Document: Complete detect-stage document with every
//     collection field non-nil and affected_mappings /
//     required_actions sorted.
func (d *Detector) Detect(changedFiles []string) *metadata.Document {
	files := cleanFiles(changedFiles)

	checklist := make(map[string]bool, len(d.rules.DeploymentChecklist))
	for key := range d.rules.DeploymentChecklist {
		checklist[key] = false
	}

	resources := []metadata.AffectedResource{}
	mappingSet := map[string]bool{}
	actionSet := map[string]bool{}

	for _, file := range files {
		if d.Excluded(file) {
			d.logger.Debug("file excluded from impact analysis", "file", file)
			continue
		}

		for _, key := range d.rules.ResourceMappings.Keys() {
			if !MatchAny(d.mappings[key], file) {
				continue
			}
			mapping, _ := d.rules.ResourceMappings.Get(key)

			resources = append(resources, metadata.AffectedResource{
				File:         file,
				Mapping:      key,
				ResourceType: mapping.ResourceType,
				ImpactLevel:  string(mapping.ImpactLevel),
				TargetStack:  mapping.TargetStack,
				Description:  mapping.Description,
			})
			mappingSet[key] = true
			for _, action := range mapping.RequiredActions {
				actionSet[action] = true
			}
			d.markStack(checklist, mapping.TargetStack)
		}
	}

	return &metadata.Document{
		ChangedFilesCount:        len(files),
		ChangedFiles:             files,
		AffectedResources:        resources,
		AffectedMappings:         sortedKeys(mappingSet),
		DeploymentChecklist:      checklist,
		RequiredActions:          sortedKeys(actionSet),
		CloudFormationConditions: map[string]bool{},
	}
}

// markStack flips checklist entries for a mapping's target stack.
func (d *Detector) markStack(checklist map[string]bool, target string) {
	if target == ruleset.TargetStackAll {
		for key := range checklist {
			checklist[key] = true
		}
		return
	}
	if _, known := checklist[target]; known {
		checklist[target] = true
		return
	}
	if target != "" {
		d.logger.Warn("mapping targets a stack missing from deploymentChecklist, ignoring",
			"target_stack", target)
	}
}

// cleanFiles drops blank entries and normalizes separators.
func cleanFiles(files []string) []string {
	cleaned := []string{}
	for _, f := range files {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		cleaned = append(cleaned, NormalizePath(f))
	}
	return cleaned
}

// sortedKeys returns the set's members in lexical order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
