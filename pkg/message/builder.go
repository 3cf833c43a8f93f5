package message

import (
	"fmt"
	"strconv"

	"github.com/backkem/fix/pkg/tag"
)

// Builder serializes a FIX message to wire format.
//
// Fields appear on the wire in the order they are appended; duplicates
// are all retained. Tags 8 (BeginString), 9 (BodyLength), 35 (MsgType),
// and 10 (CheckSum) are managed by the builder and must not be appended
// explicitly.
//
// Values must not contain the SOH byte or '='. The builder does not
// check this; violating it corrupts the framing of the produced message.
type Builder struct {
	beginString string
	msgType     string

	// Staged body fields, in insertion order.
	fields []builderField
}

type builderField struct {
	tag   tag.Tag
	value string
}

// NewBuilder creates a builder for a message of the given protocol
// version and message type.
func NewBuilder(beginString, msgType string) *Builder {
	return &Builder{
		beginString: beginString,
		msgType:     msgType,
	}
}

// Field appends a string value for a tag. It returns the builder for
// call chaining.
func (b *Builder) Field(t tag.Tag, value string) *Builder {
	b.fields = append(b.fields, builderField{tag: t, value: value})
	return b
}

// FieldInt appends a signed 64-bit integer value for a tag.
func (b *Builder) FieldInt(t tag.Tag, value int64) *Builder {
	return b.Field(t, strconv.FormatInt(value, 10))
}

// FieldUint appends an unsigned 64-bit integer value for a tag.
func (b *Builder) FieldUint(t tag.Tag, value uint64) *Builder {
	return b.Field(t, strconv.FormatUint(value, 10))
}

// Encode serializes the staged message, including the leading "8=" and
// "9=" fields and the trailing "10=" checksum. Encode does not mutate
// the builder; repeated calls return identical output.
func (b *Builder) Encode() []byte {
	// Body: "35=<type>" followed by the staged fields.
	body := appendField(nil, tag.MsgType, b.msgType)
	for _, f := range b.fields {
		body = appendField(body, f.tag, f.value)
	}

	// Header: "8=<version>" then "9=<body byte length>".
	header := appendField(nil, tag.BeginString, b.beginString)
	header = appendField(header, tag.BodyLength, strconv.Itoa(len(body)))

	out := make([]byte, 0, len(header)+len(body)+checksumFieldLen)
	out = append(out, header...)
	out = append(out, body...)

	// Trailer: checksum over everything so far, always three digits.
	return appendField(out, tag.CheckSum, fmt.Sprintf("%03d", Checksum(out)))
}

// appendField appends "<tag>=<value>" plus the SOH terminator to buf.
func appendField(buf []byte, t tag.Tag, value string) []byte {
	buf = strconv.AppendUint(buf, uint64(t), 10)
	buf = append(buf, '=')
	buf = append(buf, value...)
	buf = append(buf, SOH)
	return buf
}
