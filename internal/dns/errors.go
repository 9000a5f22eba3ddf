package dns

import (
	"errors"
	"fmt"
)

// Decoding failures are reported as one of the sentinel errors below,
// wrapped with context using fmt.Errorf("...: %w", err). Every condition
// is terminal for the current parse: the first failure aborts and no
// partial record list is returned.
var (
	// ErrTruncated means a read would pass the logical end of the buffer,
	// at any header, question, or answer field boundary, or that a
	// compression-pointer chain exceeded the hop limit.
	ErrTruncated = errors.New("dns: truncated message")

	// ErrIDMismatch means the response transaction id does not match the
	// id the query was sent with.
	ErrIDMismatch = errors.New("dns: transaction id mismatch")

	// ErrNotResponse means the QR bit is clear, so the message is a query
	// rather than a response.
	ErrNotResponse = errors.New("dns: invalid response flag")

	// ErrBadQuestionCount means the response does not carry exactly one
	// question.
	ErrBadQuestionCount = errors.New("dns: bad question count")

	// ErrUnknownClass means the echoed question class is not Internet.
	ErrUnknownClass = errors.New("dns: unknown query class")

	// ErrBadRecordLength means an A or AAAA record declared an rdata
	// length other than the fixed size for that type.
	ErrBadRecordLength = errors.New("dns: bad record length")
)

// ServerError reports a response with a nonzero RCODE. The numeric code
// is kept so callers can branch on it; Error renders the fixed label.
type ServerError struct {
	Code uint16
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("dns: server returned code %d (%s)", e.Code, RCodeLabel(e.Code))
}
