// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package jsonrpc

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/request"
	"github.com/xeipuuv/gojsonschema"
)

// ErrInvalidPayload indicates that a payload does not satisfy [Schema].
var ErrInvalidPayload = errors.New("jsonrpc: invalid payload")

// Schema describes a request or notification as built by package request:
// params, when present, is a non-empty array or object.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["jsonrpc", "method"],
  "properties": {
    "jsonrpc": {"const": "2.0"},
    "method": {"type": "string", "minLength": 1},
    "params": {
      "oneOf": [
        {"type": "array", "minItems": 1},
        {"type": "object", "minProperties": 1}
      ]
    },
    "id": {"type": ["string", "number", "null"]}
  },
  "additionalProperties": false
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
})

// Validate checks a raw payload against [Schema].
//
// Returns:
//   - error: ErrInvalidPayload wrapping every schema violation, or the
//     underlying error if the payload is not JSON
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("jsonrpc: compile schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("jsonrpc: decode payload: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(msgs, "; "))
}

// ValidateMessage encodes msg and checks it against [Schema].
func ValidateMessage(msg request.Message) error {
	data, err := msg.MarshalJSON()
	if err != nil {
		return err
	}
	return Validate(data)
}
