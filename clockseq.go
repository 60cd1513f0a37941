package rfcuuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// The clock sequence lives in the 14 bits below the RFC 4122 variant bits,
// so every value handed out is in [clockSeqMin, clockSeqMax).
const (
	clockSeqMin = 0x8000
	clockSeqMax = 0xc000
)

// ClockSequence is the counter shared by the Version 1 and Version 6
// generators. It is seeded from random bits on first use and then advances
// by one per call, wrapping within the 14-bit window.
//
// A ClockSequence is safe for concurrent use.
type ClockSequence struct {
	rand io.Reader

	initMu sync.Mutex
	seeded atomic.Bool
	next   atomic.Uint32
}

// NewClockSequence returns an unseeded clock sequence reading its seed from r.
// A nil r selects crypto/rand.
func NewClockSequence(r io.Reader) *ClockSequence {
	if r == nil {
		r = rand.Reader
	}
	return &ClockSequence{rand: r}
}

// defaultClockSequence is the process-wide sequence used unless a generator
// is given its own.
var defaultClockSequence = NewClockSequence(rand.Reader)

func (c *ClockSequence) seed() error {
	if c.seeded.Load() {
		return nil
	}
	c.initMu.Lock()
	defer c.initMu.Unlock()
	if c.seeded.Load() {
		return nil
	}

	var b [4]byte
	if _, err := io.ReadFull(c.rand, b[:]); err != nil {
		return fmt.Errorf("rfcuuid: seed clock sequence: %w", err)
	}
	c.next.Store(binary.BigEndian.Uint32(b[:])&0x3fff | clockSeqMin)
	c.seeded.Store(true)
	return nil
}

// Next returns the current value and advances the sequence. The returned
// value always has the RFC 4122 variant bits (10) on top.
func (c *ClockSequence) Next() (uint16, error) {
	if err := c.seed(); err != nil {
		return 0, err
	}
	for {
		cur := c.next.Load()
		n := cur + 1
		if n >= clockSeqMax {
			n = clockSeqMin
		}
		if c.next.CompareAndSwap(cur, n) {
			return uint16(cur), nil
		}
	}
}

// Bytes is Next in network byte order.
func (c *ClockSequence) Bytes() ([]byte, error) {
	v, err := c.Next()
	if err != nil {
		return nil, err
	}
	return []byte{byte(v >> 8), byte(v)}, nil
}

// ClockSequenceBytes advances the process-wide clock sequence and returns it
// in network byte order.
func ClockSequenceBytes() ([]byte, error) {
	return defaultClockSequence.Bytes()
}
