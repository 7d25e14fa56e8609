// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the JSON envelope used by all non-HTML endpoints.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
