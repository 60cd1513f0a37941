package rfcuuid

import (
	"time"
)

// NewV1WithParams returns a Version 1 UUID for t with an explicit clock
// sequence (at least 2 bytes) and node (at least 6 bytes). The RFC 4122
// variant is forced onto the clock sequence. Times before 1582-10-15 fail
// with ErrTimeOutOfRange.
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                          time_low                             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|       time_mid                |         time_hi_and_version   |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|clk_seq_hi_res |  clk_seq_low  |         node (0-1)            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                         node (2-5)                            |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
func NewV1WithParams(t time.Time, clockSeq, node []byte) (UUID, error) {
	if err := checkTimeParams(clockSeq, node); err != nil {
		return Nil, err
	}

	ticks, err := gregorianTicks(t)
	if err != nil {
		return Nil, err
	}
	f := Fields{
		TimeLow:               uint32(ticks),
		TimeMid:               uint16(ticks >> 32),
		TimeHiAndVersion:      uint16(ticks>>48)&0x0fff | 0x1000,
		ClockSeqHiAndReserved: (clockSeq[0] & 0x3f) | 0x80,
		ClockSeqLow:           clockSeq[1],
	}
	copy(f.Node[:], node[:6])
	return fromFields(f), nil
}

// NewV1WithTime returns a Version 1 UUID for t using the generator's clock
// sequence and hardware node.
func (g *Generator) NewV1WithTime(t time.Time) (UUID, error) {
	clockSeq, err := g.clockSeq.Bytes()
	if err != nil {
		return Nil, err
	}
	node, err := g.NodeID()
	if err != nil {
		return Nil, err
	}
	return NewV1WithParams(t, clockSeq, node)
}

// NewV1 returns a Version 1 UUID for the current time.
func (g *Generator) NewV1() (UUID, error) {
	return g.NewV1WithTime(g.now())
}

// NewV1 returns a Version 1 UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}
