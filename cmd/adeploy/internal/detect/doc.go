// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package detect implements the change-detection stage of the
// deployment pipeline.
//
// Given a changed-file list (from a git diff, a saved patch file, or
// an explicit list) and a rule set, the detector classifies each file
// against the configured resource mappings and produces a
// change-metadata document: affected resources, triggered mappings,
// the deployment checklist, and the union of required follow-up
// actions.
//
// Matching uses fnmatch-style globs: case-sensitive, '/'-normalized
// paths, with '*' and '?' free to cross path separators. Exclusion
// patterns are applied first; an excluded file contributes to nothing
// downstream.
package detect
