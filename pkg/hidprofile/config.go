// Package hidprofile converts between SDP attribute records for the
// Bluetooth HID profile and a validated in-memory configuration.
//
// The decode path accumulates an all-optional Draft over one pass of the
// record, then Finalize checks required fields and produces a Configuration.
// The encode path is total: any Configuration renders to a record tree.
package hidprofile

// LanguageCode identifies a human language in the two numbering spaces the
// HID profile uses: ISO 639:1988 (E/F) and the HID-defined language IDs.
// Nothing on the wire ties the two halves to the same language; they are
// carried by separate attributes.
type LanguageCode struct {
	ISOCode uint16 `yaml:"iso_code"`
	HIDCode uint16 `yaml:"hid_code"`
}

// LanguageEnglish is English in both numbering spaces.
var LanguageEnglish = LanguageCode{ISOCode: 0x656E, HIDCode: 0x0409}

// EncodingUTF8 is the MIBenum value for UTF-8 from IANA's character-set
// registry.
const EncodingUTF8 uint16 = 0x006A

// LanguageBase pairs a HID language ID with the attribute-ID base where that
// language's localized strings start.
type LanguageBase struct {
	Language uint16 `yaml:"language"`
	Base     uint16 `yaml:"base"`
}

// HID class descriptor types.
const (
	DescriptorTypeReport   uint8 = 0x22
	DescriptorTypePhysical uint8 = 0x23
)

// ClassDescriptor is a HID report or physical descriptor. Data is the raw
// descriptor payload; this package never interprets it.
type ClassDescriptor struct {
	Type uint8  `yaml:"type"`
	Data []byte `yaml:"data"`
}

// ReportDescriptor builds a class descriptor of type report.
func ReportDescriptor(data []byte) ClassDescriptor {
	return ClassDescriptor{Type: DescriptorTypeReport, Data: data}
}

// PhysicalDescriptor builds a class descriptor of type physical.
func PhysicalDescriptor(data []byte) ClassDescriptor {
	return ClassDescriptor{Type: DescriptorTypePhysical, Data: data}
}

// HIDConfiguration holds the HID-specific attributes of the record.
type HIDConfiguration struct {
	// DeviceSubclass is the device type (keyboard, mouse, ...), using the
	// minor device class encoding. Required.
	DeviceSubclass uint8 `yaml:"device_subclass"`

	// CountryCode is the 8-bit country code from the USB HID specification.
	// Zero means the hardware is not localized.
	CountryCode uint8 `yaml:"country_code"`

	// VirtualCable reports that the device supports a 1:1 bonding with one
	// host. Must be true when BootDevice is true.
	VirtualCable bool `yaml:"virtual_cable"`

	// ReconnectInitiate reports that the device reconnects on its own.
	// Must be true when BootDevice is true.
	ReconnectInitiate bool `yaml:"reconnect_initiate"`

	// ClassDescriptors lists the report and physical descriptors, in wire
	// order.
	ClassDescriptors []ClassDescriptor `yaml:"class_descriptors"`

	// AdditionalLanguages lists language bases beyond the primary language.
	AdditionalLanguages []LanguageBase `yaml:"additional_languages,omitempty"`

	// BatteryPower reports battery operation, when known.
	BatteryPower *bool `yaml:"battery_power,omitempty"`

	// RemoteWake reports that the device can wake the host, when known.
	RemoteWake *bool `yaml:"remote_wake,omitempty"`

	// SupervisionTimeout is the link supervision timeout in baseband slots
	// (625 microseconds each), when advertised.
	SupervisionTimeout *uint16 `yaml:"supervision_timeout,omitempty"`

	// NormallyConnectable reports that the device is routinely in page scan
	// mode, when advertised.
	NormallyConnectable *bool `yaml:"normally_connectable,omitempty"`

	// BootDevice reports boot-protocol support. Keyboards and pointing
	// devices must be boot devices. Required.
	BootDevice bool `yaml:"boot_device"`

	// SSRHostMaxLatency and SSRHostMinTimeout are the sniff subrating
	// bounds in baseband slots, when advertised.
	SSRHostMaxLatency *uint16 `yaml:"ssr_host_max_latency,omitempty"`
	SSRHostMinTimeout *uint16 `yaml:"ssr_host_min_timeout,omitempty"`
}

// Configuration is a complete HID service record. Build one directly for the
// encode path, or obtain one from Draft.Finalize on the decode path; decoded
// configurations always have every required field populated.
type Configuration struct {
	// PrimaryLanguage is the device's primary language. It is advertised at
	// base offset 0x0100.
	PrimaryLanguage LanguageCode `yaml:"primary_language"`

	// Encoding is the MIBenum character-encoding ID from IANA's registry.
	Encoding uint16 `yaml:"encoding"`

	ServiceName        *string `yaml:"service_name,omitempty"`
	ServiceDescription *string `yaml:"service_description,omitempty"`
	ProviderName       *string `yaml:"provider_name,omitempty"`

	// Version is the HID profile version from the profile descriptor list.
	Version uint16 `yaml:"version"`

	HID HIDConfiguration `yaml:"hid"`
}
