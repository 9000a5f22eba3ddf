package dns

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQueryWireLayout(t *testing.T) {
	restore := RandomID
	RandomID = func() uint16 { return 0x1234 }
	defer func() { RandomID = restore }()

	b, id := BuildQuery("example.com", uint16(TypeA))
	require.Equal(t, uint16(0x1234), id)

	expected := []byte{
		0x12, 0x34, // ID
		0x01, 0x00, // Flags: RD=1, everything else 0
		0x00, 0x01, // QDCount = 1
		0x00, 0x00, // ANCount = 0
		0x00, 0x00, // NSCount = 0
		0x00, 0x00, // ARCount = 0
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		3, 'c', 'o', 'm',
		0,          // end of name
		0x00, 0x01, // QTYPE = A
		0x00, 0x01, // QCLASS = IN
	}
	assert.Equal(t, expected, b)
}

func TestBuildQueryIDMatchesWire(t *testing.T) {
	for _, qtype := range []uint16{uint16(TypeA), uint16(TypeAAAA), uint16(TypeCNAME)} {
		b, id := BuildQuery("www.example.com", qtype)
		assert.Equal(t, id, binary.BigEndian.Uint16(b[0:2]))
		assert.Equal(t, qtype, binary.BigEndian.Uint16(b[len(b)-4:len(b)-2]))
	}
}

func TestRandomIDRange(t *testing.T) {
	for range 256 {
		assert.Less(t, RandomID(), uint16(65535))
	}
}
