// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "brics-auth-service",
	Short:   "Token verification and job-launch gateway for BriCS platforms",
	Long:    `brics-auth-service verifies identity tokens issued by the BriCS identity provider, derives per-platform project authorization, and gates job-launch requests behind validated, shell-safe launch options.`,
	Version: Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
