// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package request

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

// IDSource produces request identifiers. Next must never run dry; a source is
// restarted by constructing a new one.
//
// Sources shared between builders must be safe for concurrent use.
type IDSource interface {
	Next() any
}

// IDSourceFunc adapts a function to [IDSource].
type IDSourceFunc func() any

// Next calls f.
func (f IDSourceFunc) Next() any { return f() }

// Counter yields sequential integers, step 1.
type Counter struct {
	mu   sync.Mutex
	next int
}

// NewCounter returns a Counter whose first draw is start.
func NewCounter(start int) *Counter { return &Counter{next: start} }

// Next returns the current value and advances the counter.
func (c *Counter) Next() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := c.next
	c.next++
	return n
}

// Reset makes start the next value drawn.
func (c *Counter) Reset(start int) {
	c.mu.Lock()
	c.next = start
	c.mu.Unlock()
}

// HexCounter yields sequential integers rendered as lowercase hex strings.
type HexCounter struct{ c Counter }

// NewHexCounter returns a HexCounter whose first draw is start in hex,
// so a start of 10 yields "a", "b", "c" and so on.
func NewHexCounter(start int) *HexCounter {
	return &HexCounter{c: Counter{next: start}}
}

// Next returns the current value in hex and advances the counter.
func (h *HexCounter) Next() any {
	return strconv.FormatInt(int64(h.c.Next().(int)), 16)
}

// RandomHex yields random strings of a fixed number of hex digits. Every draw
// is independent and uniform over the 16^width possible values.
type RandomHex struct{ width int }

// NewRandomHex returns a RandomHex producing width digits per draw.
func NewRandomHex(width int) (*RandomHex, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	return &RandomHex{width: width}, nil
}

// Width returns the number of digits per draw.
func (r *RandomHex) Width() int { return r.width }

// Next returns a fresh random hex string.
func (r *RandomHex) Next() any {
	b := make([]byte, (r.width+1)/2)
	// crypto/rand.Read never returns an error.
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)[:r.width]
}

// UUIDSource yields random (version 4) UUID strings.
type UUIDSource struct{}

// Next returns a new UUID string.
func (UUIDSource) Next() any { return uuid.NewString() }

// XIDSource yields globally unique, sortable 20-character xid strings.
type XIDSource struct{}

// Next returns a new xid string.
func (XIDSource) Next() any { return xid.New().String() }

// Identifier source kinds accepted by [NewIDSource].
const (
	SourceCounter    = "counter"
	SourceHexCounter = "hex-counter"
	SourceRandomHex  = "hex"
	SourceUUID       = "uuid"
	SourceXID        = "xid"
)

// SourceKinds lists every kind accepted by [NewIDSource].
var SourceKinds = []string{SourceCounter, SourceHexCounter, SourceRandomHex, SourceUUID, SourceXID}

// NewIDSource constructs a source by kind. start applies to the counter kinds
// and width to the random hex kind. An empty kind selects [SourceCounter].
func NewIDSource(kind string, start, width int) (IDSource, error) {
	switch kind {
	case SourceCounter, "":
		return NewCounter(start), nil
	case SourceHexCounter:
		return NewHexCounter(start), nil
	case SourceRandomHex:
		r, err := NewRandomHex(width)
		if err != nil {
			return nil, err
		}
		return r, nil
	case SourceUUID:
		return UUIDSource{}, nil
	case SourceXID:
		return XIDSource{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIDSource, kind)
	}
}
