// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"fmt"
	"strings"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

// JobRequest is the command-construction input for the scheduler
// adapter. All string fields originate from defused form options or
// from the verified authorization state, never from raw user input.
type JobRequest struct {
	Username    string
	HomeDir     string
	Environment map[string]string
	SubmitArgs  []string
}

// NewJobRequest derives the submission input for the selected project.
// The per-project username comes from the session's authorization
// state, the home directory follows the platform convention
// /home/<project prefix>/<username>.
func NewJobRequest(options *FormOptions, state types.AuthorizationState) (*JobRequest, error) {
	grant, ok := state[options.BricsProject]
	if !ok {
		return nil, fmt.Errorf("project %q not present in authorization state", options.BricsProject)
	}

	homeDir := fmt.Sprintf("/home/%s/%s", projectPrefix(options.BricsProject), grant.Username)

	args := []string{
		"--account=" + options.BricsProject,
		"--time=" + options.Runtime,
		"--gpus=" + options.Ngpus,
	}
	if options.Partition != nil {
		args = append(args, "--partition="+*options.Partition)
	}
	if options.Reservation != nil {
		args = append(args, "--reservation="+*options.Reservation)
	}

	return &JobRequest{
		Username: grant.Username,
		HomeDir:  homeDir,
		Environment: map[string]string{
			"USER":  grant.Username,
			"HOME":  homeDir,
			"SHELL": "/bin/bash",
		},
		SubmitArgs: args,
	}, nil
}

// projectPrefix is the project identifier up to the '.' scope
// separator, e.g. "proj1" for "proj1.portal".
func projectPrefix(project string) string {
	prefix, _, _ := strings.Cut(project, ".")
	return prefix
}
