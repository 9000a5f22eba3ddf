package dns

import (
	"fmt"
	"strings"
)

// maxPointerHops bounds compression-pointer chasing while decoding a
// single name. Pointer loops would otherwise never terminate; exceeding
// the bound is reported as a truncation error, not a hang.
const maxPointerHops = 128

// EncodeName encodes a domain name to DNS wire format (RFC 1035 Section 3.1).
//
// DNS names are encoded as a sequence of labels, where each label is:
//   - 1 byte: length (0-63)
//   - N bytes: label characters
//
// The name is terminated by a zero-length label (single 0x00 byte).
//
// Example: "www.example.com" encodes as:
//
//	[3]www[7]example[3]com[0]
//
// Empty labels (leading, trailing, or doubled dots) are skipped, so an
// empty input encodes the root name: a lone terminator byte. Labels
// longer than 63 octets are the caller's responsibility; their length
// byte would collide with the compression-pointer bit pattern.
func EncodeName(name string) []byte {
	out := make([]byte, 0, len(name)+2)
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0)
}

// DecodeName decodes a possibly-compressed DNS name from wire format.
//
// DNS name compression (RFC 1035 Section 4.1.4) uses pointers to reduce
// message size. A compression pointer is identified by the two high bits
// of a label length byte being set (11xxxxxx pattern = 0xC0); the low 6
// bits combined with the following byte form a 14-bit absolute offset
// into the message where the remaining labels live.
//
// The function reads from msg starting at *off. On return *off is the
// offset the enclosing parse resumes from: past the whole literal name,
// or past the first pointer (2 bytes) when the name is compressed. The
// read cursor keeps following pointers independently of *off; conflating
// the two corrupts every field parsed after the name.
//
// Returns an ASCII, dot-separated name without a trailing dot.
func DecodeName(msg []byte, off *int) (string, error) {
	labels := make([]string, 0, 6)
	p := *off
	jumped := false
	hops := 0
	for {
		if p < 0 || p >= len(msg) {
			return "", fmt.Errorf("%w: unexpected end of message while decoding name", ErrTruncated)
		}
		b := msg[p]

		// Zero-length label marks end of name
		if b == 0 {
			if !jumped {
				*off = p + 1
			}
			break
		}

		// Compression pointer (high 2 bits = 11)
		if b&0xC0 == 0xC0 {
			if p+1 >= len(msg) {
				return "", fmt.Errorf("%w: unexpected end of message inside compression pointer", ErrTruncated)
			}
			hops++
			if hops > maxPointerHops {
				return "", fmt.Errorf("%w: more than %d compression pointer hops", ErrTruncated, maxPointerHops)
			}
			target := int(b&0x3F)<<8 | int(msg[p+1])
			// The enclosing parse resumes right after the first pointer,
			// no matter how far the chain goes from here.
			if !jumped {
				*off = p + 2
				jumped = true
			}
			p = target
			continue
		}

		// Regular label
		length := int(b)
		if p+1+length > len(msg) {
			return "", fmt.Errorf("%w: unexpected end of message while reading label", ErrTruncated)
		}
		labels = append(labels, string(msg[p+1:p+1+length]))
		p += length + 1
		if !jumped {
			*off = p
		}
	}
	return strings.Join(labels, "."), nil
}
