package message

import (
	"errors"
	"fmt"
)

// Decode error taxonomy. Decode is total: every malformed input maps to
// one of these values or types, never a panic.
var (
	// ErrEmptyInput is returned when the input contains no fields.
	ErrEmptyInput = errors.New("message: empty input")

	// ErrMissingBeginString is returned when tag 8 is not the first field.
	ErrMissingBeginString = errors.New("message: missing BeginString (tag 8)")

	// ErrMissingBodyLength is returned when the second field is not a
	// tag 9 with a parseable value, or the declared length does not
	// match the measured body.
	ErrMissingBodyLength = errors.New("message: missing BodyLength (tag 9)")

	// ErrMissingCheckSum is returned when tag 10 is absent or not the
	// final field.
	ErrMissingCheckSum = errors.New("message: missing or misplaced CheckSum (tag 10)")
)

// ChecksumError is returned when the declared checksum does not match the
// sum computed over the message bytes.
type ChecksumError struct {
	// Expected is the checksum declared in the message, folded modulo 256.
	// Zero when the declared digits do not parse at all.
	Expected byte

	// Actual is the checksum computed over the bytes preceding the
	// CheckSum field.
	Actual byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("message: invalid checksum: expected %03d, actual %03d", e.Expected, e.Actual)
}

// MalformedFieldError is returned when a field contains no '=' separator.
type MalformedFieldError struct {
	// Segment is the raw field text.
	Segment string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("message: malformed field: %q", e.Segment)
}

// InvalidTagError is returned when a tag prefix does not parse as an
// unsigned 32-bit integer.
type InvalidTagError struct {
	// Raw is the offending tag text.
	Raw string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("message: invalid tag number: %q", e.Raw)
}
