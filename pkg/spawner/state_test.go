// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"reflect"
	"testing"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

func TestStateRoundTrip(t *testing.T) {
	projects := types.AuthorizationState{
		"proj1.portal": {Name: "Project One", Username: "user1.proj1"},
		"proj2":        {Name: "Project Two", Username: "user1.proj2"},
	}

	original := &State{BricsProjects: projects}
	raw, err := original.GetState()
	if err != nil {
		t.Fatalf("unexpected error serializing state: %v", err)
	}

	restored := new(State)
	if err := restored.LoadState(raw); err != nil {
		t.Fatalf("unexpected error loading state: %v", err)
	}

	if restored.Version != 1 {
		t.Errorf("expected version 1, got %d", restored.Version)
	}
	if !reflect.DeepEqual(restored.BricsProjects, projects) {
		t.Errorf("expected projects %v, got %v", projects, restored.BricsProjects)
	}
}

func TestStateLoadPreVersioningRecord(t *testing.T) {
	// Records written before versioning have no version field.
	raw := []byte(`{"brics_projects":{"proj1":{"name":"Project One","username":"u.proj1"}}}`)

	s := new(State)
	if err := s.LoadState(raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Version != 1 {
		t.Errorf("expected version to be upgraded to 1, got %d", s.Version)
	}
	if grant, ok := s.BricsProjects["proj1"]; !ok || grant.Username != "u.proj1" {
		t.Errorf("expected proj1 grant to survive, got %v", s.BricsProjects)
	}
}

func TestStateLoadEmptyRecordKeepsExistingProjects(t *testing.T) {
	projects := types.AuthorizationState{"proj1": {Name: "Project One", Username: "u"}}

	s := &State{BricsProjects: projects}
	if err := s.LoadState([]byte(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(s.BricsProjects, projects) {
		t.Errorf("expected existing projects to be kept, got %v", s.BricsProjects)
	}
}

func TestStateLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "Corrupt payload", raw: []byte(`{"version":`)},
		{name: "Future version", raw: []byte(`{"version":2,"brics_projects":{}}`)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := new(State)
			if err := s.LoadState(test.raw); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
