package rfcuuid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"
)

// Generator produces time-based and random UUIDs from injected sources of
// randomness, time, clock sequence and hardware addresses.
//
// A Generator is safe for concurrent use. Reads from the random source are
// serialized, so a source that is not itself safe for concurrent use, such as
// a math/rand.Rand, may be injected.
type Generator struct {
	randMu   sync.Mutex // guards rand
	rand     io.Reader
	now      Clock
	clockSeq *ClockSequence
	hwAddrs  HardwareAddrFunc
	mode     RandAMode

	nodeMu sync.Mutex
	node   []byte // Version 1 node, chosen once

	mu            sync.Mutex // guards the rand_a counter
	counterSeeded bool
	lastMilli     int64
	counter       uint16 // 12-bit rand_a counter
}

// Option configures a Generator.
type Option func(*Generator)

// WithReader sets the random source. The default is crypto/rand.
// The Generator never reads r from two goroutines at once.
func WithReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithClock sets the time source. The default is time.Now.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.now = c
		}
	}
}

// WithClockSequence sets the clock sequence used by Version 1 and Version 6.
// The default is the process-wide sequence shared by all generators.
func WithClockSequence(c *ClockSequence) Option {
	return func(g *Generator) {
		if c != nil {
			g.clockSeq = c
		}
	}
}

// WithHardwareAddrs sets how network interfaces are enumerated for the
// Version 1 node. The default is InterfaceAddrs.
func WithHardwareAddrs(f HardwareAddrFunc) Option {
	return func(g *Generator) {
		g.hwAddrs = f
	}
}

// WithRandAMode sets how rand_a is filled for Version 7.
func WithRandAMode(m RandAMode) Option {
	return func(g *Generator) {
		g.mode = m
	}
}

// NewGenerator creates a new generator. Without options it reads
// crypto/rand, uses time.Now, the process-wide clock sequence, the host's
// network interfaces and random rand_a bits.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rand:     rand.Reader,
		now:      time.Now,
		clockSeq: defaultClockSequence,
		hwAddrs:  InterfaceAddrs,
		mode:     RandARandom,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGeneratorWithReader creates a new generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGenerator(WithReader(r))
}

// read fills p from the random source.
func (g *Generator) read(p []byte) error {
	g.randMu.Lock()
	defer g.randMu.Unlock()
	_, err := io.ReadFull(g.rand, p)
	return err
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()
