// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutableName(t *testing.T) {
	const fallback = "jsonrpc-request"

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative path", args: []string{"./myapp"}, expected: "myapp"},
		{name: "Just filename", args: []string{"myapp"}, expected: "myapp"},
		{name: "Absolute Unix path", args: []string{"/usr/local/bin/myapp", "build"}, expected: "myapp"},
		{name: "Windows path", args: []string{`C:\bin\myapp.exe`}, expected: "myapp"},
		{name: "Other extensions kept", args: []string{"/opt/myapp.sh"}, expected: "myapp.sh"},
		{name: "Trailing separator", args: []string{"/opt/myapp/"}, expected: "myapp"},
		{name: "Empty args", args: []string{}, expected: fallback},
		{name: "Empty first arg", args: []string{""}, expected: fallback},
		{name: "Only separators", args: []string{"//"}, expected: fallback},
		{name: "Only extension", args: []string{".exe"}, expected: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExecutableName(tt.args, fallback))
		})
	}
}
