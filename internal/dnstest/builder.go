// Package dnstest builds DNS response fixtures for tests.
//
// The builder is the deliberate mirror image of the decoder in
// internal/dns: it encodes whatever it is told, including messages the
// decoder must reject, so tests can synthesize malformed responses
// (wrong counts, wrong rdata lengths, dangling pointers) as easily as
// valid ones. Nothing here validates anything.
package dnstest

import (
	"encoding/binary"
	"net"

	"github.com/jroosing/dnsdig/internal/dns"
	"github.com/jroosing/dnsdig/internal/helpers"
)

// Message describes one DNS message fixture: a header, one question,
// and any number of answers. Every field is optional; Build fills
// derived fields in a single resolution pass with the precedence
// explicit raw value > typed shorthand > default.
type Message struct {
	// ID is the transaction id (default 0).
	ID uint16

	// Flags, when set, is used verbatim and RCode is ignored.
	Flags *uint16

	// RCode is folded into the low bits of the default flags word
	// (QR set, everything else zero).
	RCode uint16

	// QName, QType, and QClass describe the single echoed question.
	// Defaults: "example.com", A, IN.
	QName  string
	QType  uint16
	QClass *uint16

	// QDCount and ANCount override the header counts, which otherwise
	// derive from the question (always 1) and len(Answers). Overriding
	// them lets tests lie about what follows.
	QDCount *uint16
	ANCount *uint16

	// Answers are appended in order after the question.
	Answers []Answer
}

// Answer describes one answer record. The owner name is either Name
// (encoded literally) or NamePointer (a 2-byte compression pointer to
// the given message offset). Exactly one of the rdata sources applies,
// by precedence: RData, then the A / AAAA / CNAME shorthand, then empty
// rdata. The shorthand also implies Type unless Type is set explicitly.
type Answer struct {
	Name        string
	NamePointer *uint16

	Type  *uint16
	Class *uint16
	TTL   uint32

	A     string // IPv4 shorthand, e.g. "93.184.216.34"
	AAAA  string // IPv6 shorthand, e.g. "2001:db8::1"
	CNAME string // target-name shorthand

	RData    []byte  // raw rdata, beats every shorthand
	RDLength *uint16 // override; default is len(rdata)
}

// Build encodes the message. It never fails: out-of-range and
// inconsistent inputs are encoded as-is, that being the point.
func (m Message) Build() []byte {
	flags := dns.QRFlag | (m.RCode & dns.RCodeMask)
	if m.Flags != nil {
		flags = *m.Flags
	}

	qname := m.QName
	if qname == "" {
		qname = "example.com"
	}
	qtype := m.QType
	if qtype == 0 {
		qtype = uint16(dns.TypeA)
	}
	qclass := uint16(dns.ClassIN)
	if m.QClass != nil {
		qclass = *m.QClass
	}

	qdcount := uint16(1)
	if m.QDCount != nil {
		qdcount = *m.QDCount
	}
	ancount := helpers.ClampIntToUint16(len(m.Answers))
	if m.ANCount != nil {
		ancount = *m.ANCount
	}

	h := dns.Header{
		ID:      m.ID,
		Flags:   flags,
		QDCount: qdcount,
		ANCount: ancount,
	}
	q := dns.Question{Name: qname, Type: qtype, Class: qclass}

	out := h.Marshal()
	out = append(out, q.Marshal()...)
	for _, a := range m.Answers {
		out = append(out, a.build()...)
	}
	return out
}

// build encodes one answer record after resolving its optional fields.
func (a Answer) build() []byte {
	var nameWire []byte
	if a.NamePointer != nil {
		nameWire = []byte{0xC0 | byte(*a.NamePointer>>8), byte(*a.NamePointer)}
	} else {
		nameWire = dns.EncodeName(a.Name)
	}

	rdata, impliedType := a.rdata()
	rrType := impliedType
	if a.Type != nil {
		rrType = *a.Type
	}
	class := uint16(dns.ClassIN)
	if a.Class != nil {
		class = *a.Class
	}
	rdlen := helpers.ClampIntToUint16(len(rdata))
	if a.RDLength != nil {
		rdlen = *a.RDLength
	}

	out := make([]byte, 0, len(nameWire)+10+len(rdata))
	out = append(out, nameWire...)
	fixed := make([]byte, 10)
	binary.BigEndian.PutUint16(fixed[0:2], rrType)
	binary.BigEndian.PutUint16(fixed[2:4], class)
	binary.BigEndian.PutUint32(fixed[4:8], a.TTL)
	binary.BigEndian.PutUint16(fixed[8:10], rdlen)
	out = append(out, fixed...)
	return append(out, rdata...)
}

// rdata resolves the record payload and the record type it implies.
func (a Answer) rdata() ([]byte, uint16) {
	switch {
	case a.RData != nil:
		return a.RData, uint16(dns.TypeA)
	case a.A != "":
		return net.ParseIP(a.A).To4(), uint16(dns.TypeA)
	case a.AAAA != "":
		return net.ParseIP(a.AAAA).To16(), uint16(dns.TypeAAAA)
	case a.CNAME != "":
		return dns.EncodeName(a.CNAME), uint16(dns.TypeCNAME)
	default:
		return nil, uint16(dns.TypeA)
	}
}
