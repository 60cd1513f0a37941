package rfcuuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_ToVariant2(t *testing.T) {
	v1 := MustParse(sampleString) // clock_seq_hi_and_reserved = 0xb2
	v2 := v1.ToVariant2()

	assert.Equal(t, VariantRFC4122, v1.Variant())
	assert.Equal(t, VariantMicrosoft, v2.Variant())
	assert.Equal(t, uint8(0xd2), v2.ClockSeqHiAndReserved())

	a, b := v1.Fields(), v2.Fields()
	b.ClockSeqHiAndReserved = a.ClockSeqHiAndReserved
	assert.Equal(t, a, b, "only clock_seq_hi_and_reserved may change")
}

func TestToVariant1(t *testing.T) {
	v2 := MustParse("7d444840-9dc0-11d1-d245-5ffdce74fad2")
	v1 := ToVariant1(v2)

	assert.Equal(t, VariantMicrosoft, v2.Variant())
	assert.Equal(t, VariantRFC4122, v1.Variant())
	assert.Equal(t, "7d444840-9dc0-11d1-9245-5ffdce74fad2", v1.String())
}

func TestVariant_RoundTripKeepsLowBits(t *testing.T) {
	gen := NewGenerator()
	for range 100 {
		id := Must(gen.NewV4())
		back := ToVariant1(id.ToVariant2())
		// The variant-2 form keeps 5 bits of clock_seq_hi, so bit 5 is lost.
		assert.Equal(t, id[8]&0x1f, back[8]&0x1f)
		assert.Equal(t, VariantRFC4122, back.Variant())
		assert.Equal(t, id[:8], back[:8])
		assert.Equal(t, id[9:], back[9:])
	}
}

func TestGUIDBytes(t *testing.T) {
	uuid := MustParse(sampleString)
	want := []byte{0x40, 0x48, 0x44, 0x7d, 0xc0, 0x9d, 0xd1, 0x11, 0xb2, 0x45, 0x5f, 0xfd, 0xce, 0x74, 0xfa, 0xd2}
	assert.Equal(t, want, uuid.GUIDBytes())

	back, err := FromGUIDBytes(want)
	require.NoError(t, err)
	assert.Equal(t, uuid, back)

	_, err = FromGUIDBytes(nil)
	assert.ErrorIs(t, err, ErrNullInput)
	_, err = FromGUIDBytes(make([]byte, 10))
	assert.ErrorIs(t, err, ErrInvalidLength)
}
