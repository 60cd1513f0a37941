package rfcuuid

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Clock reports the current time.
type Clock func() time.Time

// Difference in 100-nanosecond intervals between
// UUID epoch (October 15, 1582) and Unix epoch (January 1, 1970).
const gregorianOffset = 122192928000000000

const (
	maxGregorianTicks = 1<<60 - 1
	minGregorianSec   = -gregorianOffset / 10_000_000
	maxGregorianSec   = (maxGregorianTicks - gregorianOffset) / 10_000_000
)

// gregorianTicks returns the 60-bit count of 100ns intervals since the
// Gregorian epoch. Times outside [1582-10-15, ~5236] yield ErrTimeOutOfRange.
func gregorianTicks(t time.Time) (uint64, error) {
	sec := t.Unix()
	if sec >= minGregorianSec && sec <= maxGregorianSec {
		ticks := sec*10_000_000 + int64(t.Nanosecond()/100) + gregorianOffset
		if ticks <= maxGregorianTicks {
			return uint64(ticks), nil
		}
	}
	return 0, fmt.Errorf("%w: %s does not fit 60-bit Gregorian time", ErrTimeOutOfRange, t.UTC().Format(time.RFC3339Nano))
}

// unixMillis returns the 48-bit Unix millisecond timestamp of a Version 7 UUID.
func unixMillis(t time.Time) (uint64, error) {
	ms := t.UnixMilli()
	if ms < 0 || ms >= 1<<48 {
		return 0, fmt.Errorf("%w: %s does not fit 48-bit Unix milliseconds", ErrTimeOutOfRange, t.UTC().Format(time.RFC3339Nano))
	}
	return uint64(ms), nil
}

func fromGregorianTicks(ticks uint64) time.Time {
	unix := int64(ticks) - gregorianOffset
	return time.Unix(unix/10_000_000, (unix%10_000_000)*100).UTC()
}

// checkTimeParams validates explicit clock sequence and node arguments.
func checkTimeParams(clockSeq, node []byte) error {
	if clockSeq == nil {
		return fmt.Errorf("%w: clock sequence is nil", ErrNullInput)
	}
	if len(clockSeq) < 2 {
		return fmt.Errorf("%w: clock sequence has %d bytes, need 2", ErrInvalidLength, len(clockSeq))
	}
	if node == nil {
		return fmt.Errorf("%w: node ID is nil", ErrNullInput)
	}
	if len(node) < 6 {
		return fmt.Errorf("%w: node ID has %d bytes, need 6", ErrInvalidLength, len(node))
	}
	return nil
}

// Time returns the time embedded in a Version 1, 6 or 7 UUID, in UTC.
// Versions 1 and 6 have 100ns resolution, version 7 millisecond resolution.
func (u UUID) Time() (time.Time, error) {
	switch u.Version() {
	case VersionTimeBased:
		ticks := uint64(u.TimeHiAndVersion()&0x0fff)<<48 |
			uint64(u.TimeMid())<<32 |
			uint64(u.TimeLow())
		return fromGregorianTicks(ticks), nil
	case VersionReorderedTime:
		ticks := uint64(binary.BigEndian.Uint32(u[0:4]))<<28 |
			uint64(binary.BigEndian.Uint16(u[4:6]))<<12 |
			uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)
		return fromGregorianTicks(ticks), nil
	case VersionTimeSorted:
		return time.UnixMilli(u.Timestamp()).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: version %s", ErrInvalidVersion, u.Version())
	}
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7.
// It returns 0 for other versions.
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}
