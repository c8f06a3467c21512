package hidprofile

import (
	"github.com/sirupsen/logrus"

	"github.com/srg/hidsdp/pkg/btids"
	"github.com/srg/hidsdp/pkg/sdp"
)

// Decoder turns SDP record trees into draft configurations. The zero cost of
// construction makes a Decoder safe to create per call; one Decoder may also
// be shared across goroutines since Decode keeps all state in the draft.
type Decoder struct {
	logger *logrus.Logger
}

// NewDecoder creates a decoder. A nil logger gets a default instance.
func NewDecoder(logger *logrus.Logger) *Decoder {
	if logger == nil {
		logger = logrus.New()
	}
	return &Decoder{logger: logger}
}

// Decode walks the record in one pass and accumulates a draft. The tree must
// be a record whose children are all attributes; attribute IDs outside the
// registry are skipped so that records from newer profile revisions still
// decode. The first schema violation aborts the call.
func (dec *Decoder) Decode(root sdp.Tag) (*Draft, error) {
	record, ok := root.(sdp.Record)
	if !ok {
		return nil, ExpectedRecordError{Actual: root}
	}
	draft := &Draft{}
	for _, item := range record.Items {
		attr, ok := item.(sdp.Attribute)
		if !ok {
			return nil, ExpectedAttributeError{Actual: item}
		}
		codec, known := attributeRegistry.Get(attr.ID)
		if !known || codec.decode == nil {
			dec.logger.WithField("attribute", attr.ID).Debug("Skipping attribute outside the decoded schema")
			continue
		}
		if err := codec.decode(draft, attr.ID, attr.Value); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// DecodeConfiguration is Decode followed by Finalize.
func (dec *Decoder) DecodeConfiguration(root sdp.Tag) (*Configuration, error) {
	draft, err := dec.Decode(root)
	if err != nil {
		return nil, err
	}
	return draft.Finalize()
}

// decodeLanguageBaseIDList handles the universal language base attribute ID
// list: exactly [language, encoding, base]. The base element is carried but
// not consumed; the primary base offset is fixed by the profile.
func decodeLanguageBaseIDList(d *Draft, id uint16, value sdp.Tag) error {
	items, err := expectSequence(id, value)
	if err != nil {
		return err
	}
	if err := expectLen(id, items, 3); err != nil {
		return err
	}
	lang, err := expectUInt16(id, items[0])
	if err != nil {
		return err
	}
	encoding, err := expectUInt16(id, items[1])
	if err != nil {
		return err
	}
	if err := setScalar(&d.primaryLanguage, lang, id, "Language Base Attribute ID List"); err != nil {
		return err
	}
	return setScalar(&d.encoding, encoding, id, "Language Base Attribute ID List")
}

// decodeProfileDescriptorList handles the profile descriptor list: a
// one-element sequence holding [HID service class UUID, version].
func decodeProfileDescriptorList(d *Draft, id uint16, value sdp.Tag) error {
	outer, err := expectSequence(id, value)
	if err != nil {
		return err
	}
	if err := expectLen(id, outer, 1); err != nil {
		return err
	}
	inner, err := expectSequence(id, outer[0])
	if err != nil {
		return err
	}
	if err := expectLen(id, inner, 2); err != nil {
		return err
	}
	if err := expectUUID(id, inner[0], btids.ServiceClassHID); err != nil {
		return err
	}
	version, err := expectUInt16(id, inner[1])
	if err != nil {
		return err
	}
	return setScalar(&d.version, version, id, "Profile Descriptor List")
}

// decodeDescriptorList handles the HID descriptor list. Each entry is a
// sequence carrying one uint8 descriptor type and one text or raw-text
// payload, in either order.
func decodeDescriptorList(d *Draft, id uint16, value sdp.Tag) error {
	entries, err := expectSequence(id, value)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		elements, err := expectSequence(id, entry)
		if err != nil {
			return err
		}
		var descType *uint8
		var descData []byte
		seenData := false
		for _, element := range elements {
			switch v := element.(type) {
			case sdp.UInt8:
				if descType != nil {
					return ErrDuplicateDescriptorID
				}
				t := uint8(v)
				descType = &t
			case sdp.Text:
				if seenData {
					return ErrDuplicateDescriptorValue
				}
				descData = []byte(v)
				seenData = true
			case sdp.RawText:
				if seenData {
					return ErrDuplicateDescriptorValue
				}
				descData = []byte(v)
				seenData = true
			default:
				return UnexpectedTagError{Actual: element}
			}
		}
		if descType == nil {
			return MissingFieldError{Field: "descriptor id"}
		}
		if !seenData {
			return MissingFieldError{Field: "descriptor value"}
		}
		d.classDescriptors = append(d.classDescriptors, ClassDescriptor{
			Type: *descType,
			Data: descData,
		})
	}
	return nil
}

// decodeLanguageBaseList handles the HID language ID base list: any number
// of [language, base] pairs, order preserved.
func decodeLanguageBaseList(d *Draft, id uint16, value sdp.Tag) error {
	entries, err := expectSequence(id, value)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		pair, err := expectSequence(id, entry)
		if err != nil {
			return err
		}
		if err := expectLen(id, pair, 2); err != nil {
			return err
		}
		lang, err := expectUInt16(id, pair[0])
		if err != nil {
			return err
		}
		base, err := expectUInt16(id, pair[1])
		if err != nil {
			return err
		}
		d.languageBases = append(d.languageBases, LanguageBase{
			Language: lang,
			Base:     base,
		})
	}
	return nil
}
