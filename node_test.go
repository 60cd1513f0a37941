package rfcuuid

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticAddrs(addrs ...net.HardwareAddr) HardwareAddrFunc {
	return func() ([]net.HardwareAddr, error) { return addrs, nil }
}

func TestGenerator_NodeIDPrefersHardware(t *testing.T) {
	gen := NewGenerator(WithHardwareAddrs(staticAddrs(
		net.HardwareAddr{0, 0, 0, 0, 0, 0},
		net.HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		net.HardwareAddr{0x02, 0x42, 0xac, 0x13, 0x00, 0x03},
	)))

	node, err := gen.NodeID()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x42, 0xac, 0x13, 0x00, 0x03}, node)
}

func TestGenerator_NodeIDIsStable(t *testing.T) {
	gen := NewGenerator(WithHardwareAddrs(staticAddrs()))

	node1, err := gen.NodeID()
	require.NoError(t, err)
	node2, err := gen.NodeID()
	require.NoError(t, err)

	assert.Len(t, node1, 6)
	assert.Equal(t, node1, node2)

	node1[0] ^= 0xff
	node3, err := gen.NodeID()
	require.NoError(t, err)
	assert.Equal(t, node2, node3, "callers must not be able to mutate the cached node")
}

func TestGenerator_NodeIDFallsBackToRandom(t *testing.T) {
	tests := []struct {
		name  string
		addrs HardwareAddrFunc
	}{
		{"no interfaces", staticAddrs()},
		{"enumeration error", func() ([]net.HardwareAddr, error) { return nil, errors.New("boom") }},
		{"nil enumerator", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			random := []byte{0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6}
			gen := NewGenerator(
				WithReader(bytes.NewReader(random)),
				WithHardwareAddrs(tt.addrs),
			)
			node, err := gen.NodeID()
			require.NoError(t, err)
			assert.Equal(t, random, node)
		})
	}
}

func TestGenerator_NodeIDRandomFailure(t *testing.T) {
	gen := NewGenerator(WithReader(&brokenReader{}), WithHardwareAddrs(staticAddrs()))
	_, err := gen.NodeID()
	assert.Error(t, err)
}

func TestNodeID_MatchesInterface(t *testing.T) {
	addrs, err := InterfaceAddrs()
	require.NoError(t, err)

	node, err := NodeID()
	require.NoError(t, err)
	require.Len(t, node, 6)

	if hw := hardwareNode(InterfaceAddrs); hw != nil {
		found := false
		for _, addr := range addrs {
			if bytes.Equal(addr, node) {
				found = true
			}
		}
		assert.True(t, found, "node %x is not a local hardware address", node)
	}
}

func TestRandomNodeID(t *testing.T) {
	node1, err := RandomNodeID()
	require.NoError(t, err)
	node2, err := RandomNodeID()
	require.NoError(t, err)

	assert.Len(t, node1, 6)
	assert.NotEqual(t, node1, node2)
}
