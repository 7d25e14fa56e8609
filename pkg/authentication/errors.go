// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Stable reason strings carried by Error, matched by callers and tests.
const (
	ReasonMalformed        = "token is malformed"
	ReasonSignatureInvalid = "signature verification failed"
	ReasonExpired          = "signature has expired"
	ReasonNotYetValidIat   = "token is not yet valid (iat)"
	ReasonNotYetValidNbf   = "token is not yet valid (nbf)"
	ReasonInvalidAudience  = "invalid audience"
	ReasonInvalidIssuer    = "invalid issuer"
	ReasonClaimMissing     = "missing required claim"
	ReasonInvalidToken     = "invalid token"
)

// Error is an authentication failure, surfaced to clients as a 401
// with a human-readable reason.
type Error struct {
	Reason string
	cause  error
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.cause
}

func newError(reason string, cause error) *Error {
	return &Error{Reason: reason, cause: cause}
}

// errorFromJWT maps golang-jwt sentinel errors to stable reasons.
func errorFromJWT(err error) *Error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return newError(ReasonMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return newError(ReasonSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return newError(ReasonExpired, err)
	case errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return newError(ReasonNotYetValidIat, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return newError(ReasonNotYetValidNbf, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return newError(ReasonInvalidAudience, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return newError(ReasonInvalidIssuer, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return newError(ReasonClaimMissing, err)
	default:
		return newError(ReasonInvalidToken, err)
	}
}

func missingClaimError(claim string) *Error {
	return newError(fmt.Sprintf("%s: %s", ReasonClaimMissing, claim), jwt.ErrTokenRequiredClaimMissing)
}
