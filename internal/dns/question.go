package dns

import "encoding/binary"

// Question represents a DNS question section entry (RFC 1035 Section 4.1.2).
type Question struct {
	Name  string
	Type  uint16
	Class uint16
}

// Marshal serializes the question to DNS wire format.
func (q Question) Marshal() []byte {
	name := EncodeName(q.Name)
	b := make([]byte, 0, len(name)+4)
	b = append(b, name...)
	fixed := make([]byte, 4)
	binary.BigEndian.PutUint16(fixed[0:2], q.Type)
	binary.BigEndian.PutUint16(fixed[2:4], q.Class)
	return append(b, fixed...)
}
