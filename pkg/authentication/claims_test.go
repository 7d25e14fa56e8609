// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"reflect"
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"

	"github.com/isambard-sc/brics-auth-service/internal/types"
)

func TestNormalizeProjects(t *testing.T) {
	record := types.ProjectRecord{
		Name: "Project One",
		Resources: []types.Resource{
			{Name: "cluster-a", Username: "user1.proj1"},
		},
	}

	tests := []struct {
		name   string
		claims jwt.MapClaims

		setupLogger func(*MockLoggerInterface)
		expected    types.ProjectsClaim
	}{
		{
			name:     "Absent claim",
			claims:   jwt.MapClaims{},
			expected: types.ProjectsClaim{},
		},
		{
			name:     "Nil claim",
			claims:   jwt.MapClaims{"projects": nil},
			expected: types.ProjectsClaim{},
		},
		{
			name: "Object claim",
			claims: jwt.MapClaims{
				"projects": map[string]any{
					"proj1": map[string]any{
						"name": "Project One",
						"resources": []any{
							map[string]any{"name": "cluster-a", "username": "user1.proj1"},
						},
					},
				},
			},
			expected: types.ProjectsClaim{"proj1": record},
		},
		{
			name: "JSON-encoded string claim",
			claims: jwt.MapClaims{
				"projects": `{"proj1":{"name":"Project One","resources":[{"name":"cluster-a","username":"user1.proj1"}]}}`,
			},
			expected: types.ProjectsClaim{"proj1": record},
		},
		{
			name:   "Undecodable string claim",
			claims: jwt.MapClaims{"projects": "{not json"},
			setupLogger: func(logger *MockLoggerInterface) {
				logger.EXPECT().Warnf("invalid projects format: could not decode JSON")
			},
			expected: types.ProjectsClaim{},
		},
		{
			name:   "Non-object claim",
			claims: jwt.MapClaims{"projects": 42.0},
			setupLogger: func(logger *MockLoggerInterface) {
				logger.EXPECT().Warnf("projects claim is not an object")
			},
			expected: types.ProjectsClaim{},
		},
		{
			name:   "String claim decoding to a non-object",
			claims: jwt.MapClaims{"projects": `["proj1"]`},
			setupLogger: func(logger *MockLoggerInterface) {
				logger.EXPECT().Warnf("projects claim is not an object")
			},
			expected: types.ProjectsClaim{},
		},
		{
			name: "Entry with unexpected shape keeps its key",
			claims: jwt.MapClaims{
				"projects": map[string]any{
					"proj1": map[string]any{
						"name": "Project One",
						"resources": []any{
							map[string]any{"name": "cluster-a", "username": "user1.proj1"},
						},
					},
					"proj2": "not an object",
				},
			},
			setupLogger: func(logger *MockLoggerInterface) {
				logger.EXPECT().Warnf("unexpected project format: %s", "proj2")
			},
			expected: types.ProjectsClaim{
				"proj1": record,
				"proj2": {},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			if test.setupLogger != nil {
				test.setupLogger(mockLogger)
			}

			projects := NormalizeProjects(test.claims, mockLogger)

			if !reflect.DeepEqual(projects, test.expected) {
				t.Errorf("expected projects %v, got %v", test.expected, projects)
			}
		})
	}
}
