// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/isambard-sc/brics-auth-service/cmd"

func main() {
	cmd.Execute()
}
