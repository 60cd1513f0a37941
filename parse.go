package rfcuuid

import (
	"errors"
	"fmt"
	"strconv"
)

// Parse parses a UUID from its string representation.
// It accepts the following formats, with case-insensitive hex digits:
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (32 digits, no hyphens)
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)
//
// An empty string yields ErrNullInput. Brackets must match.
func Parse(s string) (UUID, error) {
	if s == "" {
		return Nil, fmt.Errorf("%w: empty string", ErrNullInput)
	}

	if len(s) == 38 {
		first, last := s[0], s[37]
		if !(first == '{' && last == '}') && !(first == '(' && last == ')') {
			return Nil, fmt.Errorf("%w: unmatched brackets in %q", ErrInvalidFormat, s)
		}
		s = s[1:37]
	}

	var digits [32]byte
	switch len(s) {
	case 36:
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return Nil, fmt.Errorf("%w: misplaced hyphens in %q", ErrInvalidFormat, s)
		}
		n := copy(digits[:], s[0:8])
		n += copy(digits[n:], s[9:13])
		n += copy(digits[n:], s[14:18])
		n += copy(digits[n:], s[19:23])
		copy(digits[n:], s[24:36])
	case 32:
		copy(digits[:], s)
	default:
		return Nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidFormat, len(s))
	}

	var b [16]byte
	for i := range b {
		v, err := decodeHexPair(digits[2*i : 2*i+2])
		if err != nil {
			return Nil, err
		}
		b[i] = v
	}
	return fromFields(decodeFields(b[:])), nil
}

// decodeHexPair converts two hex digits into a byte.
func decodeHexPair(pair []byte) (byte, error) {
	v, err := strconv.ParseUint(string(pair), 16, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, pair)
		}
		return 0, fmt.Errorf("%w: invalid hex %q", ErrInvalidFormat, pair)
	}
	return byte(v), nil
}

// TryParse is like Parse but reports failure with a boolean instead of an
// error. On failure the returned UUID is Nil.
func TryParse(s string) (UUID, bool) {
	uuid, err := Parse(s)
	if err != nil {
		return Nil, false
	}
	return uuid, true
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("rfcuuid: Parse(%q): %v", s, err))
	}
	return uuid
}
