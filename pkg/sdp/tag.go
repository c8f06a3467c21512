// Package sdp provides the tagged-value tree used by SDP attribute records,
// together with a BlueZ-compatible XML codec for it. The tree is the exchange
// format between the generic record serializer and profile-specific codecs
// such as pkg/hidprofile.
package sdp

import (
	"github.com/go-ble/ble"
)

// Kind identifies the concrete variant behind a Tag.
type Kind int

const (
	KindRecord Kind = iota
	KindAttribute
	KindSequence
	KindBoolean
	KindUInt8
	KindUInt16
	KindText
	KindRawText
	KindUUID
)

// String returns the wire-level name of the kind, as used in error messages
// and as the XML element name.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindAttribute:
		return "attribute"
	case KindSequence:
		return "sequence"
	case KindBoolean:
		return "boolean"
	case KindUInt8:
		return "uint8"
	case KindUInt16:
		return "uint16"
	case KindText:
		return "text"
	case KindRawText:
		return "raw text"
	case KindUUID:
		return "uuid"
	default:
		return "unknown"
	}
}

// Tag is a single node of a tagged-value tree. The closed set of
// implementations is Record, Attribute, Sequence, Boolean, UInt8, UInt16,
// Text, RawText and UUID.
type Tag interface {
	Kind() Kind
}

// Record is the root of an SDP record. Its children are normally Attribute
// nodes, but the tree itself does not enforce that; consumers validate shape.
type Record struct {
	Items []Tag
}

// Attribute pairs a 16-bit attribute ID with its value.
type Attribute struct {
	ID    uint16
	Value Tag
}

// Sequence is an ordered list of child tags.
type Sequence struct {
	Items []Tag
}

// Boolean is a boolean leaf.
type Boolean bool

// UInt8 is an unsigned 8-bit integer leaf.
type UInt8 uint8

// UInt16 is an unsigned 16-bit integer leaf.
type UInt16 uint16

// Text is a character string leaf.
type Text string

// RawText is an uninterpreted byte string leaf.
type RawText []byte

// UUID is a UUID leaf. Short Bluetooth SIG UUIDs are represented in their
// 16-bit form via ble.UUID16.
type UUID struct {
	Value ble.UUID
}

func (Record) Kind() Kind    { return KindRecord }
func (Attribute) Kind() Kind { return KindAttribute }
func (Sequence) Kind() Kind  { return KindSequence }
func (Boolean) Kind() Kind   { return KindBoolean }
func (UInt8) Kind() Kind     { return KindUInt8 }
func (UInt16) Kind() Kind    { return KindUInt16 }
func (Text) Kind() Kind      { return KindText }
func (RawText) Kind() Kind   { return KindRawText }
func (UUID) Kind() Kind      { return KindUUID }

// NewRecord builds a Record from the given children.
func NewRecord(items ...Tag) Record {
	return Record{Items: items}
}

// NewSequence builds a Sequence from the given children.
func NewSequence(items ...Tag) Sequence {
	return Sequence{Items: items}
}

// Attr builds an Attribute node.
func Attr(id uint16, value Tag) Attribute {
	return Attribute{ID: id, Value: value}
}

// UUID16 builds a UUID leaf from a 16-bit Bluetooth SIG alias.
func UUID16(v uint16) UUID {
	return UUID{Value: ble.UUID16(v)}
}
