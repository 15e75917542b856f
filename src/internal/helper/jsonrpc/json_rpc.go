// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"encoding/json"
	"strings"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
)

// Marshal normalizes a JSON-RPC payload and re-encodes it in canonical order.
//
// It unmarshals the input JSON, normalizes the keys using Map(), and then
// marshals the result with members ordered jsonrpc, method, params, id.
//
// Parameters:
//   - data: Raw JSON data to normalize
//
// Returns:
//   - []byte: Canonical compact JSON data
//   - error: Error if unmarshaling or marshaling fails
func Marshal(data []byte) ([]byte, error) {
	msg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return msg.MarshalJSON()
}

// Decode normalizes a JSON-RPC payload into a canonical [request.Message].
//
// Nested objects inside params decode as plain maps, so their members
// render in lexical order.
func Decode(data []byte) (request.Message, error) {
	var temp map[string]any
	if err := json.Unmarshal(data, &temp); err != nil {
		return request.Message{}, err
	}
	return request.Canonicalize(Map(temp)), nil
}

// Map converts a decoded JSON-RPC map to canonical lowercase key form.
//
// It processes a map of arbitrary keys and values, converting all keys to
// lowercase. It handles specific JSON-RPC fields like "id" and "jsonrpc"
// with special logic:
//   - "id": Preserves values, converting whole number floats to int
//   - "jsonrpc": Adds default version "2.0" if missing
//
// Parameters:
//   - temp: Input map with potentially mixed-case keys
//
// Returns:
//   - map[string]any: Normalized map with lowercase keys
func Map(temp map[string]any) map[string]any {
	fixed := make(map[string]any, len(temp)+1)
	for k, v := range temp {
		key := strings.ToLower(k)
		switch key {
		case request.KeyID:
			if idMap, ok := v.(map[string]any); ok && len(idMap) == 0 {
				fixed[request.KeyID] = nil
			} else {
				fixed[request.KeyID] = normalizeIDValue(v)
			}
		default:
			fixed[key] = v
		}
	}

	if _, ok := fixed[request.KeyJSONRPC]; !ok {
		fixed[request.KeyJSONRPC] = request.Version
	}

	return fixed
}

// normalizeIDValue converts whole number float64 values to int for JSON-RPC ID fields.
//
// JSON unmarshaling treats numbers as float64. Ids produced by a
// [request.Counter] are ints, so whole numbers are converted back to keep
// decoded payloads comparable with built ones.
func normalizeIDValue(v any) any {
	if f, ok := v.(float64); ok {
		if f == float64(int(f)) {
			return int(f)
		}
	}
	return v
}
