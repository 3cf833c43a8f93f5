// Package message implements FIX tag/value message framing.
//
// The wire format is the classic FIX 4.4 tag=value encoding. Fields are
// "<tag>=<value>" pairs delimited by the SOH byte (0x01); every message
// starts with BeginString (tag 8) and BodyLength (tag 9) and ends with a
// CheckSum (tag 10) trailer of exactly three decimal digits.
//
// The package provides:
//   - Message, the parsed tag/value representation
//   - Decode, the wire-format parser with framing validation
//   - Builder, the serializer with automatic length and checksum
//   - Checksum, the modulo-256 checksum primitive
package message

import (
	"sort"
	"strconv"

	"github.com/backkem/fix/pkg/tag"
)

// SOH is the FIX field delimiter byte (ASCII 0x01).
const SOH byte = 0x01

// sohStr is SOH as a string, for segment splitting.
const sohStr = "\x01"

// checksumFieldLen is the wire length of the CheckSum trailer:
// "10=DDD" plus the trailing SOH.
const checksumFieldLen = 7

// Message is a single parsed FIX message.
//
// The structural framing fields are not stored as body fields: Decode
// captures tags 8 and 35 into BeginString and MsgType and validates tags
// 9 and 10 away, and Builder re-derives all four at serialization time.
type Message struct {
	// BeginString is the protocol version from tag 8 (e.g. "FIX.4.4").
	BeginString string

	// MsgType is the message type from tag 35 (e.g. "D" for
	// NewOrderSingle, "8" for ExecutionReport).
	MsgType string

	fields map[tag.Tag]string
}

// New creates an empty message with the given protocol version and
// message type.
func New(beginString, msgType string) *Message {
	return &Message{
		BeginString: beginString,
		MsgType:     msgType,
		fields:      make(map[tag.Tag]string),
	}
}

// Set stores a field value, overwriting any existing value for the tag.
// It returns the message for call chaining.
func (m *Message) Set(t tag.Tag, value string) *Message {
	if m.fields == nil {
		m.fields = make(map[tag.Tag]string)
	}
	m.fields[t] = value
	return m
}

// Get returns the value of a field. The second return value is false
// when the tag is absent.
func (m *Message) Get(t tag.Tag) (string, bool) {
	v, ok := m.fields[t]
	return v, ok
}

// GetInt returns the value of a field parsed as a signed 64-bit integer.
// The second return value is false when the tag is absent or the value
// does not parse.
func (m *Message) GetInt(t tag.Tag) (int64, bool) {
	v, ok := m.fields[t]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetUint returns the value of a field parsed as an unsigned 64-bit
// integer. The second return value is false when the tag is absent or
// the value does not parse.
func (m *Message) GetUint(t tag.Tag) (uint64, bool) {
	v, ok := m.fields[t]
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Tags returns the message's field tags in ascending order. The order is
// stable across calls, so iterating Tags and Get gives a deterministic
// serialization of arbitrary field sets.
func (m *Message) Tags() []tag.Tag {
	tags := make([]tag.Tag, 0, len(m.fields))
	for t := range m.fields {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Len returns the number of fields in the message, excluding the
// structural tags.
func (m *Message) Len() int {
	return len(m.fields)
}

// Clone returns an independent copy of the message. Mutating the copy
// never affects the original.
func (m *Message) Clone() *Message {
	c := &Message{
		BeginString: m.BeginString,
		MsgType:     m.MsgType,
		fields:      make(map[tag.Tag]string, len(m.fields)),
	}
	for t, v := range m.fields {
		c.fields[t] = v
	}
	return c
}
