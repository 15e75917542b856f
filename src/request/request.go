// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"errors"
	"slices"
	"sync"
)

var (
	// ErrInvalidMethod indicates that a message was built without a method name.
	ErrInvalidMethod = errors.New("request: method name must not be empty")

	// ErrInvalidWidth indicates a non-positive width for a random hex source.
	ErrInvalidWidth = errors.New("request: hex width must be positive")

	// ErrUnknownIDSource indicates an identifier source kind that [NewIDSource] does not know.
	ErrUnknownIDSource = errors.New("request: unknown identifier source")
)

// RequestID is the builder option returned by [WithID].
type RequestID struct{ value any }

// Value returns the id carried by the option.
func (r RequestID) Value() any { return r.value }

// WithID makes a request use id verbatim instead of drawing from the
// builder's [IDSource]. Any value is accepted, including nil, 0 and "".
// It is never folded into params and is ignored by notifications.
func WithID(id any) RequestID { return RequestID{value: id} }

// Builder builds messages and owns the identifier source used for requests.
//
// Builder is safe for concurrent use by multiple goroutines: drawing an id and
// swapping the source are serialized.
type Builder struct {
	mu  sync.Mutex
	ids IDSource
}

// NewBuilder returns a Builder drawing request ids from ids.
// A nil ids installs a [Counter] starting at 1.
func NewBuilder(ids IDSource) *Builder {
	if ids == nil {
		ids = NewCounter(1)
	}
	return &Builder{ids: ids}
}

// IDSource returns the active identifier source.
func (b *Builder) IDSource() IDSource {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ids
}

// SetIDSource installs ids for subsequent requests and returns the previous
// source. Messages built earlier are not affected. A nil ids installs a fresh
// [Counter] starting at 1.
func (b *Builder) SetIDSource(ids IDSource) IDSource {
	if ids == nil {
		ids = NewCounter(1)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.ids
	b.ids = ids
	return prev
}

// ResetIDSource restores the default source, a fresh [Counter] starting at 1.
func (b *Builder) ResetIDSource() { b.SetIDSource(nil) }

func (b *Builder) nextID() any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ids.Next()
}

// Notification builds a message without an id.
//
// Arguments of type [Field] (see [Keyword]) are keyword arguments, every other
// argument is positional. It returns [ErrInvalidMethod] when method is empty.
func (b *Builder) Notification(method string, args ...any) (Message, error) {
	return b.build(method, args, false)
}

// Request builds a message with an id. The id comes from a [WithID] argument
// when present, otherwise from the active [IDSource], which advances it.
// Params are shaped exactly as for [Builder.Notification].
func (b *Builder) Request(method string, args ...any) (Message, error) {
	return b.build(method, args, true)
}

// Method returns a shorthand bound to name, so that
// b.Method("cat").Request() is the same as b.Request("cat").
func (b *Builder) Method(name string) Call {
	return Call{b: b, method: name}
}

func (b *Builder) build(method string, args []any, withID bool) (Message, error) {
	if method == "" {
		return Message{}, ErrInvalidMethod
	}

	a := splitArgs(args)

	fields := make([]Field, 0, 4)
	fields = append(fields,
		Field{Name: KeyJSONRPC, Value: Version},
		Field{Name: KeyMethod, Value: method},
	)

	if params, ok := a.params(); ok {
		fields = append(fields, Field{Name: KeyParams, Value: params})
	}

	if withID {
		var id any
		if a.id != nil {
			id = a.id.value
		} else {
			id = b.nextID()
		}
		fields = append(fields, Field{Name: KeyID, Value: id})
	}

	return CanonicalizeFields(fields), nil
}

// Call is a builder bound to one method name. See [Builder.Method].
type Call struct {
	b      *Builder
	method string
}

// Name returns the bound method name.
func (c Call) Name() string { return c.method }

// Notification is [Builder.Notification] with the bound method name.
func (c Call) Notification(args ...any) (Message, error) {
	return c.b.Notification(c.method, args...)
}

// Request is [Builder.Request] with the bound method name.
func (c Call) Request(args ...any) (Message, error) {
	return c.b.Request(c.method, args...)
}

// callArgs is the result of sorting builder arguments by kind.
type callArgs struct {
	positional []any
	keywords   Object
	id         *RequestID
}

func splitArgs(args []any) callArgs {
	var a callArgs
	for _, arg := range args {
		switch v := arg.(type) {
		case Field:
			a.keywords.set(v.Name, v.Value)
		case RequestID:
			a.id = &v
		default:
			a.positional = append(a.positional, arg)
		}
	}
	return a
}

// params applies the shaping rule. Mixed calls put the keyword object after
// the positional values in a single array.
func (a callArgs) params() (any, bool) {
	switch {
	case len(a.positional) > 0 && len(a.keywords) > 0:
		return append(slices.Clone(a.positional), a.keywords), true
	case len(a.positional) > 0:
		return a.positional, true
	case len(a.keywords) > 0:
		return a.keywords, true
	default:
		return nil, false
	}
}

// Default is the process-wide builder used by the package-level functions.
var Default = NewBuilder(nil)

// Notification builds a notification with [Default].
func Notification(method string, args ...any) (Message, error) {
	return Default.Notification(method, args...)
}

// Request builds a request with [Default].
func Request(method string, args ...any) (Message, error) {
	return Default.Request(method, args...)
}

// Method returns a shorthand bound to name on [Default].
func Method(name string) Call { return Default.Method(name) }

// SetIDSource installs ids on [Default] and returns the previous source.
func SetIDSource(ids IDSource) IDSource { return Default.SetIDSource(ids) }

// ResetIDSource restores the default source on [Default].
func ResetIDSource() { Default.ResetIDSource() }
