// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]any
		expected string
		keys     []string
	}{
		{
			name:     "full request",
			input:    map[string]any{"id": 2, "params": []any{2, 3}, "method": "add", "jsonrpc": "2.0"},
			expected: `{"jsonrpc": "2.0", "method": "add", "params": [2, 3], "id": 2}`,
			keys:     []string{"jsonrpc", "method", "params", "id"},
		},
		{
			name:     "missing keys stay missing",
			input:    map[string]any{"id": "x", "method": "get"},
			expected: `{"method": "get", "id": "x"}`,
			keys:     []string{"method", "id"},
		},
		{
			name:     "unknown keys follow in lexical order",
			input:    map[string]any{"zeta": 1, "alpha": 2, "method": "get", "jsonrpc": "2.0"},
			expected: `{"jsonrpc": "2.0", "method": "get", "alpha": 2, "zeta": 1}`,
			keys:     []string{"jsonrpc", "method", "alpha", "zeta"},
		},
		{
			name:     "empty",
			input:    map[string]any{},
			expected: `{}`,
			keys:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Canonicalize(tt.input)
			assert.Equal(t, tt.expected, msg.String())
			assert.Equal(t, tt.keys, msg.Keys())

			again := CanonicalizeFields(msg.Fields())
			assert.Equal(t, msg.String(), again.String(), "canonicalize must be idempotent")
			assert.True(t, msg.Equal(again))
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	msg, err := NewBuilder(nil).Request("find", "Foo", Keyword("age", 42))
	assert.NoError(t, err)

	assert.True(t, msg.Equal(Canonicalize(msg.Map())))
	assert.Equal(t, msg.String(), CanonicalizeFields(msg.Fields()).String())
}

func TestCanonicalizeFields_KeepsKeywordOrder(t *testing.T) {
	msg, err := Notification("point", Keyword("y", 2), Keyword("x", 1))
	assert.NoError(t, err)
	assert.Equal(t, `{"jsonrpc": "2.0", "method": "point", "params": {"y": 2, "x": 1}}`, msg.String())

	again := CanonicalizeFields(msg.Fields())
	assert.Equal(t, msg.String(), again.String())

	want, err := msg.MarshalJSON()
	assert.NoError(t, err)
	got, err := again.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	// A map loses the call order but keeps the structure.
	assert.True(t, msg.Equal(Canonicalize(msg.Map())))
}

func TestMarshalValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "html characters", input: "a<b&c>", want: `"a<b&c>"`},
		{name: "array", input: []any{1, "x"}, want: `[1,"x"]`},
		{name: "object", input: Object{{Name: "b", Value: "<"}, {Name: "a", Value: 1}}, want: `{"b":"<","a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalValue(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCanonicalizeFields_DoesNotModifyInput(t *testing.T) {
	in := []Field{{Name: "id", Value: 1}, {Name: "jsonrpc", Value: "2.0"}}
	CanonicalizeFields(in)
	assert.Equal(t, "id", in[0].Name)
}

func TestEqual_IgnoresOrder(t *testing.T) {
	a := CanonicalizeFields([]Field{
		{Name: "method", Value: "p"},
		{Name: "params", Value: Object{{Name: "x", Value: 1}, {Name: "y", Value: 2}}},
	})
	b := CanonicalizeFields([]Field{
		{Name: "params", Value: Object{{Name: "y", Value: 2}, {Name: "x", Value: 1}}},
		{Name: "method", Value: "p"},
	})
	assert.True(t, a.Equal(b))

	c := CanonicalizeFields([]Field{{Name: "method", Value: "q"}})
	assert.False(t, a.Equal(c))
}

func TestSpaced(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "object", input: `{"a":1,"b":[1,2]}`, want: `{"a": 1, "b": [1, 2]}`},
		{name: "separators inside strings", input: `{"a":"x,y:z"}`, want: `{"a": "x,y:z"}`},
		{name: "escaped quote", input: `{"a":"q\",:"}`, want: `{"a": "q\",:"}`},
		{name: "escaped backslash", input: `{"a":"\\","b":2}`, want: `{"a": "\\", "b": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(Spaced([]byte(tt.input))))
		})
	}
}

func TestObject(t *testing.T) {
	var o Object
	o.set("b", 1)
	o.set("a", 2)
	o.set("b", 3)

	v, ok := o.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = o.Get("missing")
	assert.False(t, ok)

	data, err := o.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"b":3,"a":2}`, string(data))
}
