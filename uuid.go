package rfcuuid

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// UUID represents a Universally Unique Identifier as defined by RFC 4122 and RFC 9562.
// The 16 bytes are the big-endian concatenation of time_low, time_mid,
// time_hi_and_version, clock_seq_hi_and_reserved, clock_seq_low and node.
type UUID [16]byte

// Version represents the UUID version
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionReorderedTime // UUIDv6
	VersionTimeSorted    // UUIDv7
	VersionCustom        // UUIDv8
)

// String returns the version digit as it appears in the canonical text form.
func (v Version) String() string {
	return fmt.Sprintf("%x", byte(v))
}

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}

var (
	// Nil is the nil UUID (all zeros)
	Nil UUID

	// Max is the max UUID (all ones)
	Max = UUID{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
)

// Fields is the RFC 4122 field view of a UUID.
type Fields struct {
	TimeLow               uint32
	TimeMid               uint16
	TimeHiAndVersion      uint16
	ClockSeqHiAndReserved uint8
	ClockSeqLow           uint8
	Node                  [6]byte
}

// fromFields is the single place where field values are laid out into bytes.
func fromFields(f Fields) UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], f.TimeLow)
	binary.BigEndian.PutUint16(u[4:6], f.TimeMid)
	binary.BigEndian.PutUint16(u[6:8], f.TimeHiAndVersion)
	u[8] = f.ClockSeqHiAndReserved
	u[9] = f.ClockSeqLow
	copy(u[10:16], f.Node[:])
	return u
}

// decodeFields reads the field view out of exactly 16 bytes.
func decodeFields(b []byte) Fields {
	f := Fields{
		TimeLow:               binary.BigEndian.Uint32(b[0:4]),
		TimeMid:               binary.BigEndian.Uint16(b[4:6]),
		TimeHiAndVersion:      binary.BigEndian.Uint16(b[6:8]),
		ClockSeqHiAndReserved: b[8],
		ClockSeqLow:           b[9],
	}
	copy(f.Node[:], b[10:16])
	return f
}

// FromBytes creates a UUID from its 16-byte big-endian representation.
func FromBytes(b []byte) (UUID, error) {
	if b == nil {
		return Nil, fmt.Errorf("%w: byte slice is nil", ErrNullInput)
	}
	if len(b) != 16 {
		return Nil, fmt.Errorf("%w: got %d bytes, want 16", ErrInvalidLength, len(b))
	}
	return fromFields(decodeFields(b)), nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}

// FromFields creates a UUID from explicit field values. Multi-byte fields are
// stored in network byte order. The node must be exactly 6 bytes.
func FromFields(timeLow uint32, timeMid, timeHiAndVersion uint16, clockSeqHi, clockSeqLow uint8, node []byte) (UUID, error) {
	if node == nil {
		return Nil, fmt.Errorf("%w: node is nil", ErrNullInput)
	}
	if len(node) != 6 {
		return Nil, fmt.Errorf("%w: node has %d bytes, want 6", ErrInvalidLength, len(node))
	}
	f := Fields{
		TimeLow:               timeLow,
		TimeMid:               timeMid,
		TimeHiAndVersion:      timeHiAndVersion,
		ClockSeqHiAndReserved: clockSeqHi,
		ClockSeqLow:           clockSeqLow,
	}
	copy(f.Node[:], node)
	return fromFields(f), nil
}

// FromValues creates a UUID from the three leading fields and the eight
// trailing bytes given one by one.
func FromValues(a uint32, b, c uint16, d, e, f, g, h, i, j, k byte) UUID {
	return fromFields(Fields{
		TimeLow:               a,
		TimeMid:               b,
		TimeHiAndVersion:      c,
		ClockSeqHiAndReserved: d,
		ClockSeqLow:           e,
		Node:                  [6]byte{f, g, h, i, j, k},
	})
}

// Fields returns the RFC 4122 field view of the UUID.
func (u UUID) Fields() Fields {
	return decodeFields(u[:])
}

// TimeLow returns the low 32 bits of the timestamp field.
func (u UUID) TimeLow() uint32 { return binary.BigEndian.Uint32(u[0:4]) }

// TimeMid returns the middle 16 bits of the timestamp field.
func (u UUID) TimeMid() uint16 { return binary.BigEndian.Uint16(u[4:6]) }

// TimeHiAndVersion returns the version nibble and the high 12 timestamp bits.
func (u UUID) TimeHiAndVersion() uint16 { return binary.BigEndian.Uint16(u[6:8]) }

// ClockSeqHiAndReserved returns the variant bits and the high clock sequence bits.
func (u UUID) ClockSeqHiAndReserved() uint8 { return u[8] }

// ClockSeqLow returns the low 8 bits of the clock sequence.
func (u UUID) ClockSeqLow() uint8 { return u[9] }

// Node returns a copy of the 48-bit node field.
func (u UUID) Node() [6]byte {
	var n [6]byte
	copy(n[:], u[10:16])
	return n
}

// Version returns the version of the UUID
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// Bytes returns a copy of the 16-byte big-endian representation.
func (u UUID) Bytes() []byte {
	b := make([]byte, 16)
	copy(b, u[:])
	return b
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// IsMax returns true if the UUID is the max UUID (all ones)
func (u UUID) IsMax() bool {
	return u == Max
}

// Compare orders two UUIDs by their field tuple in declaration order.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	a, b := u.Fields(), other.Fields()
	if c := cmp.Compare(a.TimeLow, b.TimeLow); c != 0 {
		return c
	}
	if c := cmp.Compare(a.TimeMid, b.TimeMid); c != 0 {
		return c
	}
	if c := cmp.Compare(a.TimeHiAndVersion, b.TimeHiAndVersion); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ClockSeqHiAndReserved, b.ClockSeqHiAndReserved); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ClockSeqLow, b.ClockSeqLow); c != 0 {
		return c
	}
	return bytes.Compare(a.Node[:], b.Node[:])
}

// Less reports whether u sorts before other.
func (u UUID) Less(other UUID) bool {
	return u.Compare(other) < 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Hash returns a 64-bit hash of the UUID. Equal UUIDs hash equally.
func (u UUID) Hash() uint64 {
	return xxhash.Sum64(u[:])
}
