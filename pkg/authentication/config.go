// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "time"

type Config struct {
	// OidcServer is the provider base URL, used both for discovery and
	// as the expected token issuer.
	OidcServer string
	Audience   string
	Leeway     time.Duration
}

func NewConfig(oidcServer, audience string, leewaySeconds float64) *Config {
	return &Config{
		OidcServer: oidcServer,
		Audience:   audience,
		Leeway:     time.Duration(leewaySeconds * float64(time.Second)),
	}
}
