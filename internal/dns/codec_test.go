package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []byte
	}{
		{
			name:     "simple domain",
			input:    "google.com",
			expected: []byte{6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name:     "trailing dot",
			input:    "google.com.",
			expected: []byte{6, 'g', 'o', 'o', 'g', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name:     "empty input is the root name",
			input:    "",
			expected: []byte{0},
		},
		{
			name:     "lone dot is the root name",
			input:    ".",
			expected: []byte{0},
		},
		{
			name:     "doubled dots are skipped",
			input:    "a..b",
			expected: []byte{1, 'a', 1, 'b', 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EncodeName(tt.input))
		})
	}
}

func TestDecodeName_Uncompressed(t *testing.T) {
	msg := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	off := 0
	n, err := DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", n)
	assert.Equal(t, len(msg), off)
}

func TestDecodeName_RoundTrip(t *testing.T) {
	names := []string{
		"example.com",
		"www.example.com",
		"a.b.c.d.e",
		"localhost",
		"xn--bcher-kva.example",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			wire := EncodeName(name)
			off := 0
			decoded, err := DecodeName(wire, &off)
			require.NoError(t, err)
			assert.Equal(t, name, decoded)
			assert.Equal(t, len(wire), off)
		})
	}
}

func TestDecodeName_PointerResumesAfterTwoBytes(t *testing.T) {
	// Question name at offset 12, answer name encoded purely as a
	// pointer back to it.
	msg := make([]byte, 12)
	msg = append(msg, EncodeName("example.com")...)
	ptrOff := len(msg)
	msg = append(msg, 0xC0, 12)

	off := ptrOff
	n, err := DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "example.com", n)
	assert.Equal(t, ptrOff+2, off, "resume offset advances past the pointer, not the expanded name")
}

func TestDecodeName_PointerIntoSuffix(t *testing.T) {
	// "www" literal label followed by a pointer into the middle of a
	// previously encoded name.
	msg := make([]byte, 12)
	msg = append(msg, EncodeName("mail.example.com")...) // offset 12; "example" starts at 17
	start := len(msg)
	msg = append(msg, 3, 'w', 'w', 'w', 0xC0, 17)

	off := start
	n, err := DecodeName(msg, &off)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", n)
	assert.Equal(t, len(msg), off)
}

func TestDecodeName_PointerCycle(t *testing.T) {
	msg := make([]byte, 12)
	msg = append(msg, 0xC0, 12) // points at itself

	off := 12
	_, err := DecodeName(msg, &off)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeName_Truncated(t *testing.T) {
	tests := []struct {
		name string
		msg  []byte
		off  int
	}{
		{"empty buffer", nil, 0},
		{"offset past end", []byte{0}, 5},
		{"label runs past end", []byte{5, 'a', 'b'}, 0},
		{"missing terminator", []byte{1, 'a'}, 0},
		{"pointer second byte missing", []byte{0xC0}, 0},
		{"pointer past end", []byte{0xC0, 200}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off := tt.off
			_, err := DecodeName(tt.msg, &off)
			require.ErrorIs(t, err, ErrTruncated)
		})
	}
}
