package rfcuuid

import "errors"

var (
	// ErrNullInput indicates that a required argument was absent (nil slice or empty string)
	ErrNullInput = errors.New("rfcuuid: required input is missing")

	// ErrInvalidLength indicates that a byte slice argument has the wrong size
	ErrInvalidLength = errors.New("rfcuuid: invalid input length")

	// ErrInvalidFormat indicates that a UUID string or a format layout is invalid
	ErrInvalidFormat = errors.New("rfcuuid: invalid UUID format")

	// ErrOverflow indicates that a hex pair does not fit the targeted byte.
	// Parse only converts two digits at a time, so it never returns this
	// today; the kind is reserved.
	ErrOverflow = errors.New("rfcuuid: hex value overflows a byte")

	// ErrTimeOutOfRange indicates a timestamp that the version's time field
	// cannot hold: before 1582-10-15 or past the 60-bit range for versions 1
	// and 6, before 1970 or past the 48-bit range for version 7
	ErrTimeOutOfRange = errors.New("rfcuuid: time out of range for UUID timestamp")

	// ErrInvalidVersion indicates that the UUID version carries no timestamp
	ErrInvalidVersion = errors.New("rfcuuid: UUID version has no embedded time")
)
