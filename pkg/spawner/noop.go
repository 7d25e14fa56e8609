// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"context"

	"github.com/google/uuid"

	"github.com/isambard-sc/brics-auth-service/internal/logging"
)

var _ SchedulerInterface = (*NoopScheduler)(nil)

// NoopScheduler accepts every job request without launching anything,
// used when the service runs without a batch scheduler attached.
type NoopScheduler struct {
	logger logging.LoggerInterface
}

func (n *NoopScheduler) Submit(ctx context.Context, request *JobRequest) (string, error) {
	jobID := uuid.NewString()
	n.logger.Infof("noop scheduler accepted job %s for %s: %v", jobID, request.Username, request.SubmitArgs)
	return jobID, nil
}

func NewNoopScheduler(logger logging.LoggerInterface) *NoopScheduler {
	return &NoopScheduler{logger: logger}
}
