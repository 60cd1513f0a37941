package rfcuuid

import (
	"io"
)

// NewV4FromReader returns a Version 4 UUID built from 16 bytes of r.
func NewV4FromReader(r io.Reader) (UUID, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Nil, err
	}
	return v4FromBytes(b), nil
}

func v4FromBytes(b [16]byte) UUID {
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return build(b)
}

// NewV4 returns a random Version 4 UUID from the generator's random source.
func (g *Generator) NewV4() (UUID, error) {
	var b [16]byte
	if err := g.read(b[:]); err != nil {
		return Nil, err
	}
	return v4FromBytes(b), nil
}

// NewV4 returns a random Version 4 UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}
