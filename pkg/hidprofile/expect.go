package hidprofile

import (
	"github.com/go-ble/ble"

	"github.com/srg/hidsdp/pkg/sdp"
)

// The expect helpers match one tag against the shape the schema demands at
// that position, converting a mismatch into the typed decode error.

func expectBoolean(id uint16, t sdp.Tag) (bool, error) {
	v, ok := t.(sdp.Boolean)
	if !ok {
		return false, TypeMismatchError{Attribute: id, Expected: sdp.KindBoolean, Actual: t}
	}
	return bool(v), nil
}

func expectUInt8(id uint16, t sdp.Tag) (uint8, error) {
	v, ok := t.(sdp.UInt8)
	if !ok {
		return 0, TypeMismatchError{Attribute: id, Expected: sdp.KindUInt8, Actual: t}
	}
	return uint8(v), nil
}

func expectUInt16(id uint16, t sdp.Tag) (uint16, error) {
	v, ok := t.(sdp.UInt16)
	if !ok {
		return 0, TypeMismatchError{Attribute: id, Expected: sdp.KindUInt16, Actual: t}
	}
	return uint16(v), nil
}

func expectText(id uint16, t sdp.Tag) (string, error) {
	v, ok := t.(sdp.Text)
	if !ok {
		return "", TypeMismatchError{Attribute: id, Expected: sdp.KindText, Actual: t}
	}
	return string(v), nil
}

func expectSequence(id uint16, t sdp.Tag) ([]sdp.Tag, error) {
	v, ok := t.(sdp.Sequence)
	if !ok {
		return nil, TypeMismatchError{Attribute: id, Expected: sdp.KindSequence, Actual: t}
	}
	return v.Items, nil
}

func expectLen(id uint16, items []sdp.Tag, want int) error {
	if len(items) != want {
		return LengthMismatchError{Attribute: id, Expected: want, Actual: len(items)}
	}
	return nil
}

// expectUUID matches t against one specific UUID value.
func expectUUID(id uint16, t sdp.Tag, want ble.UUID) error {
	v, ok := t.(sdp.UUID)
	if !ok {
		return TypeMismatchError{Attribute: id, Expected: sdp.KindUUID, Actual: t}
	}
	if !v.Value.Equal(want) {
		return UUIDMismatchError{Attribute: id, Expected: want, Actual: v.Value}
	}
	return nil
}
