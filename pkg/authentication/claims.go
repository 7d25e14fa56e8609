// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
	"github.com/isambard-sc/brics-auth-service/internal/types"
)

// NormalizeProjects canonicalizes the "projects" claim, which has taken
// several incompatible shapes over time: an object, or a JSON-encoded
// string of one. Anything undecodable degrades to an empty claim rather
// than failing authentication, the user then bounces off the
// authorization filter with a clear 403 instead of an opaque 500.
//
// Per-entry shape problems are tolerated: a project whose record does
// not decode keeps its key with no resources, so it simply never
// matches a platform.
func NormalizeProjects(claims jwt.MapClaims, logger logging.LoggerInterface) types.ProjectsClaim {
	raw, present := claims["projects"]
	if !present || raw == nil {
		return types.ProjectsClaim{}
	}

	if encoded, ok := raw.(string); ok {
		var decoded any
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			logger.Warnf("invalid projects format: could not decode JSON")
			return types.ProjectsClaim{}
		}
		raw = decoded
	}

	object, ok := raw.(map[string]any)
	if !ok {
		logger.Warnf("projects claim is not an object")
		return types.ProjectsClaim{}
	}

	projects := make(types.ProjectsClaim, len(object))
	for id, entry := range object {
		projects[id] = decodeProjectRecord(id, entry, logger)
	}

	return projects
}

func decodeProjectRecord(id string, entry any, logger logging.LoggerInterface) types.ProjectRecord {
	encoded, err := json.Marshal(entry)
	if err != nil {
		logger.Warnf("unexpected project format: %s", id)
		return types.ProjectRecord{}
	}

	var record types.ProjectRecord
	if err := json.Unmarshal(encoded, &record); err != nil {
		logger.Warnf("unexpected project format: %s", id)
		return types.ProjectRecord{}
	}

	return record
}
