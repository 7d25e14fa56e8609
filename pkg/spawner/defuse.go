// Copyright 2025 University of Bristol
// SPDX-License-Identifier: AGPL-3.0

package spawner

import (
	"regexp"
	"strings"
)

// shellSafe matches strings that need no quoting on a POSIX command
// line. \w is ASCII letters, digits and underscore.
var shellSafe = regexp.MustCompile(`^[\w@%+=:,./-]+$`)

// Defuse applies POSIX-shell quoting so the input can be placed
// literally in a command line. The empty string becomes a quoted empty
// pair, already-safe strings pass through unchanged, anything else is
// single-quoted with embedded single quotes escaped by closing the
// quote, inserting an escaped quote and reopening.
func Defuse(input string) string {
	if input == "" {
		return "''"
	}
	if shellSafe.MatchString(input) {
		return input
	}
	return "'" + strings.ReplaceAll(input, "'", `'"'"'`) + "'"
}
