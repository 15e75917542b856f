// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for building JSON-RPC 2.0 payloads.
// It implements a Cobra-based CLI with three commands: build (requests and
// notifications from a method name and arguments), canonicalize (re-order an
// existing payload) and validate (JSON Schema check). Settings come from an
// optional JSON or YAML config file, overridden by flags. The package
// integrates with the logger package for diagnostics on stderr.
package cli
