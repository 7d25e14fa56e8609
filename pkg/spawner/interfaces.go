// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import "context"

type SchedulerInterface interface {
	// Submit hands a fully validated, shell-safe job request to the
	// batch scheduler and returns the scheduler's job identifier.
	Submit(context.Context, *JobRequest) (string, error)
}
