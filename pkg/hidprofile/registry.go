package hidprofile

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/srg/hidsdp/pkg/btids"
	"github.com/srg/hidsdp/pkg/sdp"
)

// decodeFunc folds one attribute value into the draft.
type decodeFunc func(d *Draft, id uint16, value sdp.Tag) error

// encodeFunc renders one attribute value from a configuration. The second
// return is false when the attribute is absent and must be omitted.
type encodeFunc func(c *Configuration) (sdp.Tag, bool)

// attributeCodec is one entry of the attribute registry. A nil decode means
// the attribute is emitted but ignored on decode (its content is fixed by the
// profile, not by configuration).
type attributeCodec struct {
	name   string
	decode decodeFunc
	encode encodeFunc
}

// attributeRegistry is the closed enumeration of attributes this codec
// understands, keyed by attribute ID. Insertion order is the wire order the
// HID profile mandates, so the encoder just walks the registry front to back.
// IDs outside the registry are ignored on decode; that is the
// forward-compatibility policy, not an error case.
var attributeRegistry = newAttributeRegistry()

func newAttributeRegistry() *orderedmap.OrderedMap[uint16, attributeCodec] {
	reg := orderedmap.New[uint16, attributeCodec]()

	reg.Set(btids.AttrServiceClassIDList, attributeCodec{
		name:   "Service Class ID List",
		encode: encodeFixed(sdp.NewSequence(sdp.UUID{Value: btids.ServiceClassHID})),
	})
	reg.Set(btids.AttrProtocolDescriptorList, attributeCodec{
		name:   "Protocol Descriptor List",
		encode: encodeFixed(protocolStack(btids.PSMHIDControl)),
	})
	reg.Set(btids.AttrBrowseGroupList, attributeCodec{
		name:   "Browse Group List",
		encode: encodeFixed(sdp.NewSequence(sdp.UUID{Value: btids.ServiceClassPublicBrowseRoot})),
	})
	reg.Set(btids.AttrLanguageBaseAttributeIDList, attributeCodec{
		name:   "Language Base Attribute ID List",
		decode: decodeLanguageBaseIDList,
		encode: func(c *Configuration) (sdp.Tag, bool) {
			return sdp.NewSequence(
				sdp.UInt16(c.PrimaryLanguage.ISOCode),
				sdp.UInt16(c.Encoding),
				sdp.UInt16(btids.PrimaryLanguageBase),
			), true
		},
	})
	reg.Set(btids.AttrAdditionalProtocolDescriptorLists, attributeCodec{
		name:   "Additional Protocol Descriptor Lists",
		encode: encodeFixed(sdp.NewSequence(protocolStack(btids.PSMHIDInterrupt))),
	})
	reg.Set(btids.AttrServiceName, attributeCodec{
		name:   "Service Name",
		decode: decodeScalar("Service Name", expectText, func(d *Draft) **string { return &d.serviceName }),
		encode: encodeOptionalText(func(c *Configuration) *string { return c.ServiceName }),
	})
	reg.Set(btids.AttrServiceDescription, attributeCodec{
		name:   "Service Description",
		decode: decodeScalar("Service Description", expectText, func(d *Draft) **string { return &d.serviceDescription }),
		encode: encodeOptionalText(func(c *Configuration) *string { return c.ServiceDescription }),
	})
	reg.Set(btids.AttrProviderName, attributeCodec{
		name:   "Provider Name",
		decode: decodeScalar("Provider Name", expectText, func(d *Draft) **string { return &d.providerName }),
		encode: encodeOptionalText(func(c *Configuration) *string { return c.ProviderName }),
	})
	reg.Set(btids.AttrBluetoothProfileDescriptorList, attributeCodec{
		name:   "Profile Descriptor List",
		decode: decodeProfileDescriptorList,
		encode: func(c *Configuration) (sdp.Tag, bool) {
			return sdp.NewSequence(sdp.NewSequence(
				sdp.UUID{Value: btids.ServiceClassHID},
				sdp.UInt16(c.Version),
			)), true
		},
	})
	reg.Set(btids.AttrHIDParserVersion, attributeCodec{
		name:   "HID Parser Version",
		encode: encodeFixed(sdp.UInt16(btids.HIDParserVersion)),
	})
	reg.Set(btids.AttrHIDDeviceSubclass, attributeCodec{
		name:   "HID Device Subclass",
		decode: decodeScalar("HID Device Subclass", expectUInt8, func(d *Draft) **uint8 { return &d.deviceSubclass }),
		encode: func(c *Configuration) (sdp.Tag, bool) { return sdp.UInt8(c.HID.DeviceSubclass), true },
	})
	reg.Set(btids.AttrHIDCountryCode, attributeCodec{
		name:   "HID Country Code",
		decode: decodeScalar("HID Country Code", expectUInt8, func(d *Draft) **uint8 { return &d.countryCode }),
		encode: func(c *Configuration) (sdp.Tag, bool) { return sdp.UInt8(c.HID.CountryCode), true },
	})
	reg.Set(btids.AttrHIDVirtualCable, attributeCodec{
		name:   "HID Virtual Cable",
		decode: decodeScalar("HID Virtual Cable", expectBoolean, func(d *Draft) **bool { return &d.virtualCable }),
		encode: func(c *Configuration) (sdp.Tag, bool) { return sdp.Boolean(c.HID.VirtualCable), true },
	})
	reg.Set(btids.AttrHIDReconnectInitiate, attributeCodec{
		name:   "HID Reconnect Initiate",
		decode: decodeScalar("HID Reconnect Initiate", expectBoolean, func(d *Draft) **bool { return &d.reconnectInitiate }),
		encode: func(c *Configuration) (sdp.Tag, bool) { return sdp.Boolean(c.HID.ReconnectInitiate), true },
	})
	reg.Set(btids.AttrHIDDescriptorList, attributeCodec{
		name:   "HID Descriptor List",
		decode: decodeDescriptorList,
		encode: func(c *Configuration) (sdp.Tag, bool) {
			items := make([]sdp.Tag, 0, len(c.HID.ClassDescriptors))
			for _, desc := range c.HID.ClassDescriptors {
				items = append(items, sdp.NewSequence(
					sdp.UInt8(desc.Type),
					sdp.RawText(desc.Data),
				))
			}
			return sdp.Sequence{Items: items}, true
		},
	})
	reg.Set(btids.AttrHIDLangIDBaseList, attributeCodec{
		name:   "HID Language ID Base List",
		decode: decodeLanguageBaseList,
		encode: func(c *Configuration) (sdp.Tag, bool) {
			items := make([]sdp.Tag, 0, 1+len(c.HID.AdditionalLanguages))
			items = append(items, sdp.NewSequence(
				sdp.UInt16(c.PrimaryLanguage.HIDCode),
				sdp.UInt16(btids.PrimaryLanguageBase),
			))
			for _, lb := range c.HID.AdditionalLanguages {
				items = append(items, sdp.NewSequence(
					sdp.UInt16(lb.Language),
					sdp.UInt16(lb.Base),
				))
			}
			return sdp.Sequence{Items: items}, true
		},
	})
	reg.Set(btids.AttrHIDBatteryPower, attributeCodec{
		name:   "HID Battery Power",
		decode: decodeScalar("HID Battery Power", expectBoolean, func(d *Draft) **bool { return &d.batteryPower }),
		encode: encodeOptionalBool(func(c *Configuration) *bool { return c.HID.BatteryPower }),
	})
	reg.Set(btids.AttrHIDRemoteWake, attributeCodec{
		name:   "HID Remote Wake",
		decode: decodeScalar("HID Remote Wake", expectBoolean, func(d *Draft) **bool { return &d.remoteWake }),
		encode: encodeOptionalBool(func(c *Configuration) *bool { return c.HID.RemoteWake }),
	})
	reg.Set(btids.AttrHIDSupervisionTimeout, attributeCodec{
		name:   "HID Supervision Timeout",
		decode: decodeScalar("HID Supervision Timeout", expectUInt16, func(d *Draft) **uint16 { return &d.supervisionTimeout }),
		encode: encodeOptionalUInt16(func(c *Configuration) *uint16 { return c.HID.SupervisionTimeout }),
	})
	reg.Set(btids.AttrHIDNormallyConnectable, attributeCodec{
		name:   "HID Normally Connectable",
		decode: decodeScalar("HID Normally Connectable", expectBoolean, func(d *Draft) **bool { return &d.normallyConnectable }),
		encode: encodeOptionalBool(func(c *Configuration) *bool { return c.HID.NormallyConnectable }),
	})
	reg.Set(btids.AttrHIDBootDevice, attributeCodec{
		name:   "HID Boot Device",
		decode: decodeScalar("HID Boot Device", expectBoolean, func(d *Draft) **bool { return &d.bootDevice }),
		encode: func(c *Configuration) (sdp.Tag, bool) { return sdp.Boolean(c.HID.BootDevice), true },
	})
	reg.Set(btids.AttrHIDSSRHostMaxLatency, attributeCodec{
		name:   "HID SSR Host Max Latency",
		decode: decodeScalar("HID SSR Host Max Latency", expectUInt16, func(d *Draft) **uint16 { return &d.ssrHostMaxLatency }),
		encode: encodeOptionalUInt16(func(c *Configuration) *uint16 { return c.HID.SSRHostMaxLatency }),
	})
	reg.Set(btids.AttrHIDSSRHostMinTimeout, attributeCodec{
		name:   "HID SSR Host Min Timeout",
		decode: decodeScalar("HID SSR Host Min Timeout", expectUInt16, func(d *Draft) **uint16 { return &d.ssrHostMinTimeout }),
		encode: encodeOptionalUInt16(func(c *Configuration) *uint16 { return c.HID.SSRHostMinTimeout }),
	})

	return reg
}

// protocolStack builds the two-layer L2CAP/HIDP protocol descriptor sequence
// for the given L2CAP channel.
func protocolStack(psm uint16) sdp.Sequence {
	return sdp.NewSequence(
		sdp.NewSequence(sdp.UUID{Value: btids.ProtocolL2CAP}, sdp.UInt16(psm)),
		sdp.NewSequence(sdp.UUID{Value: btids.ProtocolHIDP}),
	)
}

// decodeScalar builds the decode side for a first-occurrence-wins scalar
// attribute stored in one draft slot.
func decodeScalar[T any](name string, expect func(uint16, sdp.Tag) (T, error), slot func(*Draft) **T) decodeFunc {
	return func(d *Draft, id uint16, value sdp.Tag) error {
		v, err := expect(id, value)
		if err != nil {
			return err
		}
		return setScalar(slot(d), v, id, name)
	}
}

// encodeFixed emits a constant attribute value independent of configuration.
func encodeFixed(tag sdp.Tag) encodeFunc {
	return func(*Configuration) (sdp.Tag, bool) { return tag, true }
}

func encodeOptionalText(field func(*Configuration) *string) encodeFunc {
	return func(c *Configuration) (sdp.Tag, bool) {
		v := field(c)
		if v == nil {
			return nil, false
		}
		return sdp.Text(*v), true
	}
}

func encodeOptionalBool(field func(*Configuration) *bool) encodeFunc {
	return func(c *Configuration) (sdp.Tag, bool) {
		v := field(c)
		if v == nil {
			return nil, false
		}
		return sdp.Boolean(*v), true
	}
}

func encodeOptionalUInt16(field func(*Configuration) *uint16) encodeFunc {
	return func(c *Configuration) (sdp.Tag, bool) {
		v := field(c)
		if v == nil {
			return nil, false
		}
		return sdp.UInt16(*v), true
	}
}
