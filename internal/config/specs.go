// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// OidcServer is the base URL of the identity provider, discovery is
	// performed against {OidcServer}/.well-known/openid-configuration and
	// it is also the expected token issuer.
	OidcServer  string  `envconfig:"oidc_server" default:"https://keycloak.isambard.ac.uk/realms/isambard" validate:"required,url"`
	JwtAudience string  `envconfig:"jwt_audience" default:"zenith-jupyter" validate:"required"`
	JwtLeeway   float64 `envconfig:"jwt_leeway_seconds" default:"5"`

	// Platform identifies the current deployment target, matched against
	// project resource names when deriving the authorization state.
	Platform string `envconfig:"brics_platform" validate:"required"`

	RedisAddr     string        `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword string        `envconfig:"redis_password" default:""`
	RedisDB       int           `envconfig:"redis_db" default:"0"`
	SessionTTL    time.Duration `envconfig:"session_ttl" default:"12h"`
}

// Validate enforces the constraints that envconfig defaults alone cannot.
func (e *EnvSpec) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(e)
}
