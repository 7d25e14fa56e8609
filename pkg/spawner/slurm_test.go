// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"reflect"
	"testing"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

func TestNewJobRequest(t *testing.T) {
	state := types.AuthorizationState{
		"proj1.portal": {Name: "Project One", Username: "user1.proj1"},
		"proj2":        {Name: "Project Two", Username: "user1.proj2"},
	}

	partition := "gpu-a100"
	reservation := "maintenance"

	tests := []struct {
		name    string
		options *FormOptions

		expectedUsername string
		expectedHomeDir  string
		expectedArgs     []string
		expectedError    bool
	}{
		{
			name: "Scoped project strips portal suffix from home directory",
			options: &FormOptions{
				BricsProject: "proj1.portal",
				Runtime:      "01:00:00",
				Ngpus:        "2",
			},
			expectedUsername: "user1.proj1",
			expectedHomeDir:  "/home/proj1/user1.proj1",
			expectedArgs: []string{
				"--account=proj1.portal",
				"--time=01:00:00",
				"--gpus=2",
			},
		},
		{
			name: "Optional fields become submit args",
			options: &FormOptions{
				BricsProject: "proj2",
				Runtime:      "12:00:00",
				Ngpus:        "0",
				Partition:    &partition,
				Reservation:  &reservation,
			},
			expectedUsername: "user1.proj2",
			expectedHomeDir:  "/home/proj2/user1.proj2",
			expectedArgs: []string{
				"--account=proj2",
				"--time=12:00:00",
				"--gpus=0",
				"--partition=gpu-a100",
				"--reservation=maintenance",
			},
		},
		{
			name: "Project absent from authorization state",
			options: &FormOptions{
				BricsProject: "proj3",
				Runtime:      "01:00:00",
				Ngpus:        "1",
			},
			expectedError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request, err := NewJobRequest(test.options, state)

			if test.expectedError {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if request.Username != test.expectedUsername {
				t.Errorf("expected username %q, got %q", test.expectedUsername, request.Username)
			}
			if request.HomeDir != test.expectedHomeDir {
				t.Errorf("expected home dir %q, got %q", test.expectedHomeDir, request.HomeDir)
			}
			if !reflect.DeepEqual(request.SubmitArgs, test.expectedArgs) {
				t.Errorf("expected args %v, got %v", test.expectedArgs, request.SubmitArgs)
			}

			expectedEnv := map[string]string{
				"USER":  test.expectedUsername,
				"HOME":  test.expectedHomeDir,
				"SHELL": "/bin/bash",
			}
			if !reflect.DeepEqual(request.Environment, expectedEnv) {
				t.Errorf("expected environment %v, got %v", expectedEnv, request.Environment)
			}
		})
	}
}
