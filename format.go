package rfcuuid

import (
	"encoding/hex"
	"fmt"
)

// Layout selects one of the text representations produced by Encode.
type Layout string

const (
	LayoutDefault Layout = ""  // same as LayoutD
	LayoutN       Layout = "N" // 32 digits: xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx
	LayoutD       Layout = "D" // hyphenated: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	LayoutB       Layout = "B" // braces: {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
	LayoutP       Layout = "P" // parentheses: (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx)
)

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// Encode renders the UUID in the given layout. Output is always lowercase.
// Any layout other than N, D, B, P or the empty default fails with
// ErrInvalidFormat.
func (u UUID) Encode(layout Layout) (string, error) {
	switch layout {
	case LayoutDefault, LayoutD:
		return u.String(), nil
	case LayoutN:
		return hex.EncodeToString(u[:]), nil
	case LayoutB:
		return u.wrap('{', '}'), nil
	case LayoutP:
		return u.wrap('(', ')'), nil
	default:
		return "", fmt.Errorf("%w: unknown layout %q", ErrInvalidFormat, string(layout))
	}
}

func (u UUID) wrap(open, closing byte) string {
	var buf [38]byte
	buf[0] = open
	encodeHex(buf[1:37], u)
	buf[37] = closing
	return string(buf[:])
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}
