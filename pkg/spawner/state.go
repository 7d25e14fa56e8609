// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"encoding/json"
	"fmt"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

// stateVersion tags the persisted spawner record so future format
// changes go through explicit migration instead of ad hoc merges.
const stateVersion = 1

// State is the spawner record persisted across hub restarts. The
// brics_projects mapping must survive a save/load cycle unchanged.
type State struct {
	Version       int                      `json:"version"`
	BricsProjects types.AuthorizationState `json:"brics_projects"`
}

// GetState serializes the record for persistence.
func (s *State) GetState() ([]byte, error) {
	s.Version = stateVersion
	return json.Marshal(s)
}

// LoadState restores a previously persisted record. Records written
// before versioning carry version 0 and load as-is.
func (s *State) LoadState(raw []byte) error {
	loaded := new(State)
	if err := json.Unmarshal(raw, loaded); err != nil {
		return fmt.Errorf("corrupt spawner state: %w", err)
	}

	if loaded.Version > stateVersion {
		return fmt.Errorf("unsupported spawner state version %d", loaded.Version)
	}

	if loaded.BricsProjects != nil {
		s.BricsProjects = loaded.BricsProjects
	}
	s.Version = stateVersion

	return nil
}
