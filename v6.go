package rfcuuid

import (
	"encoding/binary"
	"time"
)

// NewV6WithParams returns a Version 6 UUID for t with an explicit clock
// sequence (at least 2 bytes) and node (at least 6 bytes). It carries the
// same 60-bit timestamp as Version 1, most significant bits first, so
// Version 6 UUIDs sort by creation time. Times before 1582-10-15 fail with
// ErrTimeOutOfRange.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                           time_high                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|           time_mid            |      time_low_and_version     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|clk_seq_hi_res |  clk_seq_low  |         node (0-1)            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         node (2-5)                            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
func NewV6WithParams(t time.Time, clockSeq, node []byte) (UUID, error) {
	if err := checkTimeParams(clockSeq, node); err != nil {
		return Nil, err
	}

	ticks, err := gregorianTicks(t)
	if err != nil {
		return Nil, err
	}

	// The low nibble of the shifted timestamp makes room for the version.
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], ticks<<4)

	var b [16]byte
	copy(b[0:6], ts[0:6])
	b[6] = 0x60 | ts[6]>>4
	b[7] = ts[6]<<4 | ts[7]>>4
	b[8] = (clockSeq[0] & 0x3f) | 0x80
	b[9] = clockSeq[1]
	copy(b[10:16], node[:6])
	return build(b), nil
}

// NewV6WithTime returns a Version 6 UUID for t using the generator's clock
// sequence and a random node.
func (g *Generator) NewV6WithTime(t time.Time) (UUID, error) {
	clockSeq, err := g.clockSeq.Bytes()
	if err != nil {
		return Nil, err
	}
	node, err := g.RandomNodeID()
	if err != nil {
		return Nil, err
	}
	return NewV6WithParams(t, clockSeq, node)
}

// NewV6 returns a Version 6 UUID for the current time.
func (g *Generator) NewV6() (UUID, error) {
	return g.NewV6WithTime(g.now())
}

// NewV6 returns a Version 6 UUID using the default generator.
func NewV6() (UUID, error) {
	return defaultGenerator.NewV6()
}
