// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

type ServiceInterface interface {
	DeriveState(context.Context, types.ProjectsClaim) (types.AuthorizationState, error)
}
