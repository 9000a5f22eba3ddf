package dns

import "math/rand/v2"

// RandomID produces transaction ids for BuildQuery. It defaults to the
// shared math/rand/v2 generator, which is safe for concurrent use; tests
// and embedders may swap in their own source.
var RandomID = func() uint16 {
	return uint16(rand.IntN(65535))
}

// BuildQuery encodes a standard recursive query for name with the given
// query type and returns the wire bytes together with the transaction id
// they carry. The message is a 12-byte header (RD set, all other flags
// zero, qdcount=1) followed by a single Internet-class question; no
// other sections are emitted.
func BuildQuery(name string, qtype uint16) ([]byte, uint16) {
	id := RandomID()
	h := Header{
		ID:      id,
		Flags:   RDFlag,
		QDCount: 1,
	}
	q := Question{
		Name:  name,
		Type:  qtype,
		Class: uint16(ClassIN),
	}
	out := h.Marshal()
	out = append(out, q.Marshal()...)
	return out, id
}
