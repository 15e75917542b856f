// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"

	"github.com/H0llyW00dzZ/jsonrpc-request/src/internal/helper/gc"
	"github.com/mark3labs/mcp-go/mcp"
)

// Version is the protocol version carried in the jsonrpc member.
const Version = mcp.JSONRPC_VERSION

// Member names of a JSON-RPC message.
const (
	KeyJSONRPC = "jsonrpc"
	KeyMethod  = "method"
	KeyParams  = "params"
	KeyID      = "id"
)

// keyRank gives the canonical position of each known member.
var keyRank = map[string]int{
	KeyJSONRPC: 0,
	KeyMethod:  1,
	KeyParams:  2,
	KeyID:      3,
}

// Field is a single named value. As a builder argument it marks a keyword
// argument; inside a [Message] or [Object] it is one member.
type Field struct {
	Name  string
	Value any
}

// Keyword returns a keyword argument for [Request] and [Notification].
func Keyword(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// Object is a JSON object that keeps its members in insertion order.
type Object []Field

// Get returns the value stored under name.
func (o Object) Get(name string) (any, bool) {
	for _, f := range o {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// set stores value under name. An existing member keeps its position.
func (o *Object) set(name string, value any) {
	for i := range *o {
		if (*o)[i].Name == name {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Field{Name: name, Value: value})
}

// MarshalJSON encodes the object with members in insertion order.
func (o Object) MarshalJSON() ([]byte, error) {
	return gc.Bytes(func(buf gc.Buffer) error {
		return writeObject(buf, o)
	})
}

// Message is a JSON-RPC 2.0 request or notification.
//
// Members are held in canonical order: jsonrpc, method, params, id. A Message
// is immutable once built: arrays and objects are copied on the way in and on
// the way out. The zero value is an empty mapping.
type Message struct {
	fields []Field
}

// Canonicalize returns a Message holding exactly the keys of m, ordered
// jsonrpc, method, params, id. Keys outside that set follow the known keys
// in lexical order.
//
// A map carries no order, so keyword params held in one keep whatever order
// the map iterates in. Use [CanonicalizeFields] with [Message.Fields] to keep
// the call order of keyword arguments.
func Canonicalize(m map[string]any) Message {
	fields := make([]Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, Field{Name: k, Value: v})
	}
	return CanonicalizeFields(fields)
}

// CanonicalizeFields is like [Canonicalize] but takes members as an ordered
// list. Duplicate names keep the last value. The input is not modified.
//
// CanonicalizeFields(msg.Fields()) renders the same bytes as msg.
func CanonicalizeFields(fields []Field) Message {
	var out Object
	for _, f := range fields {
		out.set(f.Name, clone(f.Value))
	}

	slices.SortStableFunc(out, func(a, b Field) int {
		if c := cmp.Compare(rank(a.Name), rank(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return Message{fields: out}
}

func rank(name string) int {
	if r, ok := keyRank[name]; ok {
		return r
	}
	return len(keyRank)
}

// Fields returns a deep copy of the members in canonical order.
func (m Message) Fields() []Field {
	out, _ := clone(Object(m.fields)).(Object)
	return out
}

// Len returns the number of members.
func (m Message) Len() int { return len(m.fields) }

// Keys returns the member names in canonical order.
func (m Message) Keys() []string {
	keys := make([]string, len(m.fields))
	for i, f := range m.fields {
		keys[i] = f.Name
	}
	return keys
}

// Get returns a copy of the value of the named member.
func (m Message) Get(key string) (any, bool) {
	v, ok := Object(m.fields).Get(key)
	return clone(v), ok
}

// Has reports whether the named member is present.
func (m Message) Has(key string) bool {
	_, ok := Object(m.fields).Get(key)
	return ok
}

// Method returns the method name, or "" when absent.
func (m Message) Method() string {
	v, _ := m.Get(KeyMethod)
	s, _ := v.(string)
	return s
}

// Params returns a copy of the params member. It is either []any or [Object].
func (m Message) Params() (any, bool) { return m.Get(KeyParams) }

// ID returns the id member.
func (m Message) ID() (any, bool) { return m.Get(KeyID) }

// IsNotification reports whether the message has no id.
func (m Message) IsNotification() bool { return !m.Has(KeyID) }

// Map returns a structural view of the message. [Object] values, including
// those nested in params, become map[string]any.
func (m Message) Map() map[string]any {
	out := make(map[string]any, len(m.fields))
	for _, f := range m.fields {
		out[f.Name] = plain(f.Value)
	}
	return out
}

// Equal reports whether m and other hold the same members and values,
// regardless of member order.
func (m Message) Equal(other Message) bool {
	return reflect.DeepEqual(m.Map(), other.Map())
}

// MarshalJSON encodes the message in canonical member order.
func (m Message) MarshalJSON() ([]byte, error) {
	return gc.Bytes(func(buf gc.Buffer) error {
		return writeObject(buf, m.fields)
	})
}

// String renders the message with ", " and ": " separators, for example
// {"jsonrpc": "2.0", "method": "get", "id": 1}.
func (m Message) String() string {
	data, err := m.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%%!s(request: %v)", err)
	}
	return string(Spaced(data))
}

// clone copies arrays, objects and maps so a Message never shares them with
// its callers.
func clone(v any) any {
	switch t := v.(type) {
	case Object:
		if t == nil {
			return t
		}
		out := make(Object, len(t))
		for i, f := range t {
			out[i] = Field{Name: f.Name, Value: clone(f.Value)}
		}
		return out
	case []any:
		if t == nil {
			return t
		}
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = clone(e)
		}
		return out
	case map[string]any:
		if t == nil {
			return t
		}
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = clone(e)
		}
		return out
	default:
		return v
	}
}

// plain converts ordered objects into maps so values compare structurally.
func plain(v any) any {
	switch t := v.(type) {
	case Object:
		out := make(map[string]any, len(t))
		for _, f := range t {
			out[f.Name] = plain(f.Value)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = plain(e)
		}
		return out
	default:
		return v
	}
}

func writeObject(buf gc.Buffer, fields []Field) error {
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := MarshalValue(f.Name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := MarshalValue(f.Value)
		if err != nil {
			return fmt.Errorf("request: encode member %q: %w", f.Name, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

// MarshalValue encodes v like [json.Marshal] but leaves '<', '>' and '&'
// unescaped.
func MarshalValue(v any) ([]byte, error) {
	out, err := gc.Bytes(func(buf gc.Buffer) error {
		enc := json.NewEncoder(buf)
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	})
	if err != nil {
		return nil, err
	}
	// Encode terminates each value with a newline.
	return bytes.TrimSuffix(out, []byte{'\n'}), nil
}

// Spaced rewrites compact JSON with a space after every ',' and ':' that is
// not inside a string. Input must be compact, as produced by [MarshalValue].
func Spaced(compact []byte) []byte {
	out, _ := gc.Bytes(func(buf gc.Buffer) error {
		inString, escaped := false, false
		for _, c := range compact {
			buf.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case inString:
				if c == '\\' {
					escaped = true
				} else if c == '"' {
					inString = false
				}
			case c == '"':
				inString = true
			case c == ',' || c == ':':
				buf.WriteByte(' ')
			}
		}
		return nil
	})
	return out
}
