package rfcuuid

import (
	"bytes"
	"net"
)

// HardwareAddrFunc enumerates the physical addresses of the host's network
// interfaces. It may return an empty list.
type HardwareAddrFunc func() ([]net.HardwareAddr, error)

// InterfaceAddrs is the default HardwareAddrFunc. It reports every 6-byte
// hardware address found by net.Interfaces.
func InterfaceAddrs() ([]net.HardwareAddr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	addrs := make([]net.HardwareAddr, 0, len(ifaces))
	for _, ifi := range ifaces {
		if len(ifi.HardwareAddr) == 6 {
			addrs = append(addrs, ifi.HardwareAddr)
		}
	}
	return addrs, nil
}

var zeroNode = make([]byte, 6)

// hardwareNode picks the first usable 6-byte address, or nil if there is none.
func hardwareNode(list HardwareAddrFunc) []byte {
	if list == nil {
		return nil
	}
	addrs, err := list()
	if err != nil {
		return nil
	}
	for _, addr := range addrs {
		if len(addr) == 6 && !bytes.Equal(addr, zeroNode) {
			node := make([]byte, 6)
			copy(node, addr)
			return node
		}
	}
	return nil
}

func (g *Generator) randomNode() ([]byte, error) {
	node := make([]byte, 6)
	if err := g.read(node); err != nil {
		return nil, err
	}
	return node, nil
}

// NodeID returns the node used for Version 1 UUIDs. The first call picks a
// hardware address, falling back to 6 random bytes when none is available;
// later calls return the same value.
func (g *Generator) NodeID() ([]byte, error) {
	g.nodeMu.Lock()
	defer g.nodeMu.Unlock()

	if g.node == nil {
		node := hardwareNode(g.hwAddrs)
		if node == nil {
			var err error
			if node, err = g.randomNode(); err != nil {
				return nil, err
			}
		}
		g.node = node
	}

	node := make([]byte, 6)
	copy(node, g.node)
	return node, nil
}

// RandomNodeID returns 6 fresh random bytes, the node used for Version 6 UUIDs.
func (g *Generator) RandomNodeID() ([]byte, error) {
	return g.randomNode()
}

// NodeID returns the Version 1 node of the default generator.
func NodeID() ([]byte, error) {
	return defaultGenerator.NodeID()
}

// RandomNodeID returns a random 6-byte node from the default generator.
func RandomNodeID() ([]byte, error) {
	return defaultGenerator.RandomNodeID()
}
