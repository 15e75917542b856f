// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// jsonrpc-request is a command-line tool for building canonical JSON-RPC 2.0
// requests and notifications.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/jsonrpc-request/cmd/jsonrpc-request@latest
//
// # Usage
//
//	jsonrpc-request build METHOD [ARGS...] [FLAGS]
//	jsonrpc-request canonicalize [FILE]
//	jsonrpc-request validate [FILE]
//
// # Build Flags
//
//	-n, --notify     Build a notification (no id)
//	    --id         Explicit request id
//	-k, --kw         Keyword argument name=value (repeatable)
//	    --source     Id source: counter, hex-counter, hex, uuid, xid
//	    --start      First id drawn by counter sources (default 1)
//	    --width      Digits per id for the hex source (default 8)
//	-c, --count      Number of messages to build
//	    --compact    Print compact JSON
//	    --table      Print messages as a markdown table
//	    --validate   Check every message against the JSON-RPC schema
//
// # Examples
//
// Build a request with positional params:
//
//	jsonrpc-request build sqrt 4
//	{"jsonrpc": "2.0", "method": "sqrt", "params": [4], "id": 1}
//
// Build a notification with keyword params:
//
//	jsonrpc-request build find -k name=Foo --notify
//	{"jsonrpc": "2.0", "method": "find", "params": {"name": "Foo"}}
//
// Re-order an existing payload:
//
//	echo '{"id": 2, "method": "add", "jsonrpc": "2.0"}' | jsonrpc-request canonicalize
//	{"jsonrpc": "2.0", "method": "add", "id": 2}
package main
