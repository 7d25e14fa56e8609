// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "errors"

var (
	// ErrNoValidPlatform means the verified identity holds no project
	// with a resource on the current platform. A session without usable
	// projects is not a valid session.
	ErrNoValidPlatform = errors.New("no projects with valid platform")
)
