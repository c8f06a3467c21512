package hidprofile

import (
	"errors"
	"fmt"

	"github.com/go-ble/ble"

	"github.com/srg/hidsdp/pkg/sdp"
)

// Descriptor-list entry errors. Each entry may carry its type and payload in
// either order, but at most once each.
var (
	ErrDuplicateDescriptorID    = errors.New("unexpected duplicate descriptor ID")
	ErrDuplicateDescriptorValue = errors.New("unexpected duplicate descriptor value")
)

// ExpectedRecordError reports a top-level node that is not a record.
type ExpectedRecordError struct {
	Actual sdp.Tag
}

func (e ExpectedRecordError) Error() string {
	return fmt.Sprintf("expected record, received %s", e.Actual.Kind())
}

// ExpectedAttributeError reports a record child that is not an attribute.
type ExpectedAttributeError struct {
	Actual sdp.Tag
}

func (e ExpectedAttributeError) Error() string {
	return fmt.Sprintf("expected attribute, received %s", e.Actual.Kind())
}

// TypeMismatchError reports an attribute value of the wrong kind. Expected
// names the kind the schema demands at that position.
type TypeMismatchError struct {
	Attribute uint16
	Expected  sdp.Kind
	Actual    sdp.Tag
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("in attribute 0x%04x: expected %s, received %s",
		e.Attribute, e.Expected, e.Actual.Kind())
}

// LengthMismatchError reports a fixed-arity sequence of the wrong length.
type LengthMismatchError struct {
	Attribute uint16
	Expected  int
	Actual    int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("in attribute 0x%04x: expected sequence of length %d, received sequence of length %d",
		e.Attribute, e.Expected, e.Actual)
}

// UUIDMismatchError reports a UUID other than the one the schema fixes.
type UUIDMismatchError struct {
	Attribute uint16
	Expected  ble.UUID
	Actual    ble.UUID
}

func (e UUIDMismatchError) Error() string {
	return fmt.Sprintf("in attribute 0x%04x: expected uuid %s, received %s",
		e.Attribute, e.Expected, e.Actual)
}

// DuplicateAttributeError reports a scalar attribute that occurs twice in one
// record. Name is the human-readable attribute label.
type DuplicateAttributeError struct {
	Attribute uint16
	Name      string
}

func (e DuplicateAttributeError) Error() string {
	return fmt.Sprintf("duplicate attribute %s (0x%04x)", e.Name, e.Attribute)
}

// MissingFieldError reports a required value that never appeared: a required
// attribute at finalize time, or a descriptor entry half missing its other
// half.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UnexpectedTagError reports a tag kind that has no place at its position,
// such as a sequence inside a descriptor-list entry.
type UnexpectedTagError struct {
	Actual sdp.Tag
}

func (e UnexpectedTagError) Error() string {
	return fmt.Sprintf("unexpected tag %s", e.Actual.Kind())
}
