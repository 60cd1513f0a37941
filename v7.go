package rfcuuid

import (
	"encoding/binary"
	"fmt"
	"time"
)

// RandAMode selects how a Generator fills the 12-bit rand_a field of
// Version 7 UUIDs.
type RandAMode uint8

const (
	// RandARandom fills rand_a with random bits.
	RandARandom RandAMode = iota
	// RandACounter uses a 12-bit counter that increments within a
	// millisecond and is re-seeded from random bits when the millisecond
	// changes. On exhaustion it wraps.
	RandACounter
	// RandAClockPrecision stores the sub-millisecond fraction of the
	// timestamp scaled to 12 bits.
	RandAClockPrecision
)

func (m RandAMode) String() string {
	switch m {
	case RandACounter:
		return "counter"
	case RandAClockPrecision:
		return "precision"
	default:
		return "random"
	}
}

// NewV7WithParams returns a Version 7 UUID for t with explicit rand_a (at
// least 2 bytes, low 12 bits used) and rand_b (at least 8 bytes, low 62 bits
// used). Times before the Unix epoch fail with ErrTimeOutOfRange.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           unix_ts_ms                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|          unix_ts_ms           |  ver  |       rand_a          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|var|                        rand_b                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                            rand_b                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
func NewV7WithParams(t time.Time, randA, randB []byte) (UUID, error) {
	if randA == nil {
		return Nil, fmt.Errorf("%w: rand_a is nil", ErrNullInput)
	}
	if len(randA) < 2 {
		return Nil, fmt.Errorf("%w: rand_a has %d bytes, need 2", ErrInvalidLength, len(randA))
	}
	if randB == nil {
		return Nil, fmt.Errorf("%w: rand_b is nil", ErrNullInput)
	}
	if len(randB) < 8 {
		return Nil, fmt.Errorf("%w: rand_b has %d bytes, need 8", ErrInvalidLength, len(randB))
	}

	ms, err := unixMillis(t)
	if err != nil {
		return Nil, err
	}

	var b [16]byte

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(b[0:8], ms<<16)

	// Version 7 = 0111
	b[6] = 0x70 | (randA[0] & 0x0f)
	b[7] = randA[1]

	// Set variant to RFC 4122 (10xx xxxx)
	b[8] = 0x80 | (randB[0] & 0x3f)
	copy(b[9:16], randB[1:8])

	return build(b), nil
}

// NewV7WithTime generates a Version 7 UUID with the specified timestamp.
// rand_a is filled according to the generator's RandAMode.
func (g *Generator) NewV7WithTime(t time.Time) (UUID, error) {
	randA, err := g.randA(t)
	if err != nil {
		return Nil, err
	}
	randB := make([]byte, 8)
	if err := g.read(randB); err != nil {
		return Nil, err
	}
	return NewV7WithParams(t, randA, randB)
}

// NewV7 generates a Version 7 UUID with the current timestamp.
func (g *Generator) NewV7() (UUID, error) {
	return g.NewV7WithTime(g.now())
}

// New is an alias for NewV7.
func (g *Generator) New() (UUID, error) {
	return g.NewV7()
}

// NewWithTime is an alias for NewV7WithTime.
func (g *Generator) NewWithTime(t time.Time) (UUID, error) {
	return g.NewV7WithTime(t)
}

func (g *Generator) randA(t time.Time) ([]byte, error) {
	switch g.mode {
	case RandACounter:
		return g.counterA(t)
	case RandAClockPrecision:
		return clockPrecisionA(t), nil
	default:
		randA := make([]byte, 2)
		if err := g.read(randA); err != nil {
			return nil, err
		}
		return randA, nil
	}
}

// counterA advances the dedicated rand_a counter. A new millisecond re-seeds
// the counter in the lower half of the 12-bit range so that at least 2048
// increments fit before it wraps.
func (g *Generator) counterA(t time.Time) ([]byte, error) {
	ms := t.UnixMilli()

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.counterSeeded && ms == g.lastMilli {
		g.counter = (g.counter + 1) & 0x0fff
	} else {
		var seed [2]byte
		if err := g.read(seed[:]); err != nil {
			return nil, err
		}
		g.counter = binary.BigEndian.Uint16(seed[:]) & 0x07ff
		g.lastMilli = ms
		g.counterSeeded = true
	}
	return []byte{byte(g.counter >> 8), byte(g.counter)}, nil
}

// clockPrecisionA maps the nanoseconds within the millisecond onto 12 bits.
func clockPrecisionA(t time.Time) []byte {
	frac := int64(t.Nanosecond() % 1_000_000)
	v := uint16(frac << 12 / 1_000_000)
	return []byte{byte(v >> 8), byte(v)}
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = rfcuuid.Must(rfcuuid.NewV7())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// New generates a new UUIDv7 using the default generator.
func New() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV7 generates a new UUIDv7 using the default generator.
func NewV7() (UUID, error) {
	return defaultGenerator.NewV7()
}
