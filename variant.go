package rfcuuid

import (
	"encoding/binary"
	"fmt"
)

// ToVariant2 returns a copy of u re-encoded with the Microsoft variant
// (top three bits of clock_seq_hi_and_reserved set to 110).
func (u UUID) ToVariant2() UUID {
	f := u.Fields()
	f.ClockSeqHiAndReserved = f.ClockSeqHiAndReserved&0x1f | 0xc0
	return fromFields(f)
}

// ToVariant1 returns a copy of a Microsoft-variant UUID re-encoded with the
// RFC 4122 variant (top two bits of clock_seq_hi_and_reserved set to 10).
func ToVariant1(u UUID) UUID {
	f := u.Fields()
	f.ClockSeqHiAndReserved = f.ClockSeqHiAndReserved&0x3f | 0x80
	return fromFields(f)
}

// GUIDBytes returns the Microsoft GUID binary layout of u: time_low,
// time_mid and time_hi_and_version little-endian, the rest unchanged.
func (u UUID) GUIDBytes() []byte {
	f := u.Fields()
	b := make([]byte, 16)
	binary.LittleEndian.PutUint32(b[0:4], f.TimeLow)
	binary.LittleEndian.PutUint16(b[4:6], f.TimeMid)
	binary.LittleEndian.PutUint16(b[6:8], f.TimeHiAndVersion)
	b[8] = f.ClockSeqHiAndReserved
	b[9] = f.ClockSeqLow
	copy(b[10:], f.Node[:])
	return b
}

// FromGUIDBytes is the inverse of GUIDBytes.
func FromGUIDBytes(b []byte) (UUID, error) {
	if b == nil {
		return Nil, fmt.Errorf("%w: byte slice is nil", ErrNullInput)
	}
	if len(b) != 16 {
		return Nil, fmt.Errorf("%w: got %d bytes, want 16", ErrInvalidLength, len(b))
	}
	f := Fields{
		TimeLow:               binary.LittleEndian.Uint32(b[0:4]),
		TimeMid:               binary.LittleEndian.Uint16(b[4:6]),
		TimeHiAndVersion:      binary.LittleEndian.Uint16(b[6:8]),
		ClockSeqHiAndReserved: b[8],
		ClockSeqLow:           b[9],
	}
	copy(f.Node[:], b[10:16])
	return fromFields(f), nil
}
