// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package types

// Resource is a named grant within a project. Name identifies the
// platform the grant applies to, Username is the per-project account
// the user holds on that platform.
type Resource struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// ProjectRecord is the canonical shape of one entry in the "projects"
// token claim. Resource order is significant: the first resource
// matching the current platform wins.
type ProjectRecord struct {
	Name      string     `json:"name"`
	Resources []Resource `json:"resources"`
}

// ProjectsClaim maps project identifiers to their records. Project
// identifiers are unique within one claim.
type ProjectsClaim map[string]ProjectRecord

// ProjectGrant is the per-project entry of an AuthorizationState:
// the project's human name and the username usable on the current
// platform.
type ProjectGrant struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// AuthorizationState maps project identifiers to the grant usable on
// the current platform. It is written once at login and read-only for
// the rest of the session.
type AuthorizationState map[string]ProjectGrant
