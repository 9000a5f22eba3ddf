package dns

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Record is a single decoded answer. Data holds the type-specific text:
// a dotted-decimal address for A, a zero-run-compressed address for
// AAAA, the target name for CNAME. Records of any other type are
// reported with Data empty and their rdata skipped.
type Record struct {
	Name  string
	Type  uint16
	Class uint16
	TTL   uint32
	Data  string
}

// ParseResponse decodes a raw response message and returns its answer
// records in response order. expectedID is the transaction id the query
// was sent with.
//
// Validation short-circuits on the first failure: header length, id
// match, QR bit, response code, question count, question class, then a
// coarse bounds check before the per-record parse. A structurally valid
// message with uninterpreted record types is still a success.
func ParseResponse(msg []byte, expectedID uint16) ([]Record, error) {
	if len(msg) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a DNS header", ErrTruncated, len(msg))
	}
	off := 0
	h, err := ParseHeader(msg, &off)
	if err != nil {
		return nil, err
	}
	if h.ID != expectedID {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrIDMismatch, h.ID, expectedID)
	}
	if !h.IsResponse() {
		return nil, fmt.Errorf("%w: QR bit not set", ErrNotResponse)
	}
	if code := RCodeFromFlags(h.Flags); code != 0 {
		return nil, &ServerError{Code: code}
	}
	if h.QDCount != 1 {
		return nil, fmt.Errorf("%w: got %d questions, want exactly 1", ErrBadQuestionCount, h.QDCount)
	}

	if err := skipQuestion(msg, &off); err != nil {
		return nil, err
	}

	// Coarse lower bound before parsing records: every answer occupies at
	// least a 2-byte name pointer plus the 10 fixed record-header bytes.
	// Each field is still validated individually below.
	if len(msg)-off < int(h.ANCount)*12 {
		return nil, fmt.Errorf("%w: %d answers cannot fit in %d remaining bytes", ErrTruncated, h.ANCount, len(msg)-off)
	}

	records := make([]Record, 0, h.ANCount)
	for range h.ANCount {
		rr, err := parseAnswer(msg, &off)
		if err != nil {
			return nil, err
		}
		records = append(records, rr)
	}
	return records, nil
}

// skipQuestion advances *off past the single question section entry and
// validates its class. The question name never carries a compression
// pointer, because it is the echo of the name this client encoded, so a
// linear scan for the zero terminator is sufficient.
func skipQuestion(msg []byte, off *int) error {
	for {
		if *off >= len(msg) {
			return fmt.Errorf("%w: question name has no terminator", ErrTruncated)
		}
		if msg[*off] == 0 {
			break
		}
		*off++
	}
	*off++ // terminator
	if *off+4 > len(msg) {
		return fmt.Errorf("%w: unexpected end of message reading question type and class", ErrTruncated)
	}
	qclass := binary.BigEndian.Uint16(msg[*off+2 : *off+4])
	*off += 4
	if qclass != uint16(ClassIN) {
		return fmt.Errorf("%w: class %d", ErrUnknownClass, qclass)
	}
	return nil
}

// parseAnswer parses one resource record at *off and advances *off past it.
func parseAnswer(msg []byte, off *int) (Record, error) {
	name, err := DecodeName(msg, off)
	if err != nil {
		return Record{}, err
	}
	if *off+10 > len(msg) {
		return Record{}, fmt.Errorf("%w: unexpected end of message reading record header", ErrTruncated)
	}
	rr := Record{
		Name:  name,
		Type:  binary.BigEndian.Uint16(msg[*off : *off+2]),
		Class: binary.BigEndian.Uint16(msg[*off+2 : *off+4]),
		TTL:   binary.BigEndian.Uint32(msg[*off+4 : *off+8]),
	}
	rdlen := int(binary.BigEndian.Uint16(msg[*off+8 : *off+10]))
	*off += 10

	switch RecordType(rr.Type) {
	case TypeA:
		if rdlen != 4 {
			return Record{}, fmt.Errorf("%w: A record rdata is %d bytes, want 4", ErrBadRecordLength, rdlen)
		}
		if *off+4 > len(msg) {
			return Record{}, fmt.Errorf("%w: unexpected end of message reading A rdata", ErrTruncated)
		}
		rr.Data = formatIPv4(msg[*off : *off+4])
		*off += 4

	case TypeCNAME:
		// The target may itself be compressed relative to the whole
		// message; the cursor ends up wherever the name decoder says,
		// not start+rdlen.
		target, err := DecodeName(msg, off)
		if err != nil {
			return Record{}, err
		}
		rr.Data = target

	case TypeAAAA:
		if rdlen != 16 {
			return Record{}, fmt.Errorf("%w: AAAA record rdata is %d bytes, want 16", ErrBadRecordLength, rdlen)
		}
		if *off+16 > len(msg) {
			return Record{}, fmt.Errorf("%w: unexpected end of message reading AAAA rdata", ErrTruncated)
		}
		rr.Data = formatIPv6(msg[*off : *off+16])
		*off += 16

	default:
		// Unknown types are skipped, not interpreted; the record itself
		// is still reported.
		if *off+rdlen > len(msg) {
			return Record{}, fmt.Errorf("%w: unexpected end of message skipping type %d rdata", ErrTruncated, rr.Type)
		}
		*off += rdlen
	}
	return rr, nil
}

// formatIPv4 renders 4 rdata bytes as dotted-decimal text.
func formatIPv4(b []byte) string {
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
}

// formatIPv6 renders 16 rdata bytes as eight lowercase hex groups joined
// by colons, with the leftmost run of one or more all-zero groups
// collapsed to "::". The leftmost run wins even when a later run is
// longer; this keeps the output identical to the first-match pattern
// substitution this formatter replaces, rather than the RFC 5952
// longest-run rule.
func formatIPv6(b []byte) string {
	groups := make([]uint16, 8)
	for i := range groups {
		groups[i] = binary.BigEndian.Uint16(b[i*2 : i*2+2])
	}

	runStart, runEnd := -1, -1
	for i, g := range groups {
		if g == 0 {
			runStart = i
			runEnd = i + 1
			for runEnd < len(groups) && groups[runEnd] == 0 {
				runEnd++
			}
			break
		}
	}

	if runStart < 0 {
		return joinHexGroups(groups)
	}
	return joinHexGroups(groups[:runStart]) + "::" + joinHexGroups(groups[runEnd:])
}

func joinHexGroups(groups []uint16) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = fmt.Sprintf("%x", g)
	}
	return strings.Join(parts, ":")
}
