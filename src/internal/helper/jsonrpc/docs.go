// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package jsonrpc provides helper functions for raw [JSON-RPC 2.0] payloads.
// It normalizes decoded payloads (lowercase keys, default version, integer
// ids), re-emits them in canonical member order, and validates request and
// notification payloads against a JSON Schema.
//
// [JSON-RPC 2.0]: https://www.jsonrpc.org/specification
package jsonrpc
