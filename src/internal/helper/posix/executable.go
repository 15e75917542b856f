// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"strings"
)

// ExecutableName returns the program name from args (normally os.Args) with
// any directory and ".exe" suffix removed, for use in CLI usage strings.
// Both '/' and '\' are treated as separators so Windows paths resolve the
// same way on every platform:
//   - "/usr/local/bin/jsonrpc-request" -> "jsonrpc-request"
//   - `C:\bin\jsonrpc-request.exe` -> "jsonrpc-request"
//
// It returns fallback when args is empty or names nothing.
func ExecutableName(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}

	parts := strings.FieldsFunc(args[0], func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return fallback
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return fallback
	}
	return name
}
