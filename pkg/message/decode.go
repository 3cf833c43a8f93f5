package message

import (
	"strconv"
	"strings"

	"github.com/backkem/fix/pkg/tag"
)

// Decode parses a complete FIX wire message.
//
// Validation is strictly left to right. The first field must be tag 8
// (BeginString) and the second tag 9 (BodyLength, checked against the
// measured body); the final field must be tag 10 (CheckSum, checked
// against the modulo-256 sum of all preceding bytes). Fields between
// BodyLength and CheckSum land in the field map with
// overwrite-on-duplicate semantics; tag 35 is captured as the message
// type. A message carrying no tag 35 decodes with an empty MsgType.
//
// Decode never panics: any byte sequence either decodes or yields one of
// the package's error values. Non-UTF-8 bytes inside values are passed
// through untouched.
func Decode(data []byte) (*Message, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	segments := splitSegments(data)
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}

	// First field: BeginString.
	t0, beginString, err := splitField(segments[0])
	if err != nil {
		return nil, err
	}
	if t0 != tag.BeginString {
		return nil, ErrMissingBeginString
	}

	// Second field: BodyLength.
	if len(segments) < 2 {
		return nil, ErrMissingBodyLength
	}
	t1, lengthStr, err := splitField(segments[1])
	if err != nil {
		return nil, err
	}
	if t1 != tag.BodyLength {
		return nil, ErrMissingBodyLength
	}
	declaredLen, err := strconv.ParseUint(lengthStr, 10, 64)
	if err != nil {
		return nil, ErrMissingBodyLength
	}

	// The body spans from just after the tag 9 separator to the start of
	// the fixed-width CheckSum trailer. A declared/measured disagreement
	// is treated the same as a missing BodyLength.
	bodyStart := len(segments[0]) + 1 + len(segments[1]) + 1
	bodyEnd := len(data) - checksumFieldLen
	if bodyEnd < 0 {
		bodyEnd = 0
	}
	if bodyEnd < bodyStart || uint64(bodyEnd-bodyStart) != declaredLen {
		return nil, ErrMissingBodyLength
	}

	// Final field: CheckSum. The declared digits are folded modulo 256
	// before comparing; digits that do not parse fail outright, reported
	// with a zero Expected value.
	tLast, checksumStr, err := splitField(segments[len(segments)-1])
	if err != nil {
		return nil, err
	}
	if tLast != tag.CheckSum {
		return nil, ErrMissingCheckSum
	}

	actual := Checksum(data[:bodyEnd])
	declared, err := strconv.ParseUint(checksumStr, 10, 16)
	if err != nil {
		return nil, &ChecksumError{Expected: 0, Actual: actual}
	}
	expected := byte(declared % 256)
	if expected != actual {
		return nil, &ChecksumError{Expected: expected, Actual: actual}
	}

	// Body fields: everything between tag 9 and tag 10. Tag 35 becomes
	// the message type (last occurrence wins); a stray tag 10 before the
	// trailer is dropped rather than stored.
	msg := &Message{
		BeginString: beginString,
		fields:      make(map[tag.Tag]string),
	}
	for _, seg := range segments[2:] {
		t, v, err := splitField(seg)
		if err != nil {
			return nil, err
		}
		if t == tag.MsgType {
			msg.MsgType = v
		} else if t != tag.CheckSum {
			msg.fields[t] = v
		}
	}
	return msg, nil
}

// splitSegments splits the raw message on SOH, dropping the empty
// segments produced by consecutive or trailing separators.
func splitSegments(data []byte) []string {
	parts := strings.Split(string(data), sohStr)
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// splitField splits a "<tag>=<value>" segment into tag number and value.
func splitField(segment string) (tag.Tag, string, error) {
	eq := strings.IndexByte(segment, '=')
	if eq < 0 {
		return 0, "", &MalformedFieldError{Segment: segment}
	}
	tagStr := segment[:eq]
	n, err := strconv.ParseUint(tagStr, 10, 32)
	if err != nil {
		return 0, "", &InvalidTagError{Raw: tagStr}
	}
	return tag.Tag(n), segment[eq+1:], nil
}
