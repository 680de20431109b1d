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
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// LoadFromPath reads and validates a rule-set YAML file.
//
// # Description
//
// Configuration errors are fatal to the pipeline: a missing file, a
// YAML parse failure, or a mapping without patterns all surface here
// as an error rather than being papered over downstream.
//
// # Inputs
//
//   - path: Path to the change-detection configuration YAML.
//
// # Outputs
//
//   - *RuleSet: The parsed rule set.
//   - error: Non-nil if the file is missing, malformed, or invalid.
func LoadFromPath(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set: %w", err)
	}

	var rules RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rule set %s: %w", path, err)
	}

	// ResourceMappings decodes through a custom unmarshaler, so the
	// struct validator cannot dive into it; validate each rule here.
	for _, key := range rules.ResourceMappings.Keys() {
		mapping, _ := rules.ResourceMappings.Get(key)
		if err := validate.Struct(mapping); err != nil {
			return nil, fmt.Errorf("invalid mapping %q in %s: %w", key, path, err)
		}
	}

	return &rules, nil
}
