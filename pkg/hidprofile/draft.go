package hidprofile

// Draft accumulates attribute values over one decode pass. Every scalar is
// optional until Finalize promotes the draft to a Configuration; a draft is
// local to a single Decode call and is discarded afterwards.
type Draft struct {
	primaryLanguage    *uint16
	encoding           *uint16
	serviceName        *string
	serviceDescription *string
	providerName       *string
	version            *uint16

	deviceSubclass      *uint8
	countryCode         *uint8
	virtualCable        *bool
	reconnectInitiate   *bool
	classDescriptors    []ClassDescriptor
	languageBases       []LanguageBase
	batteryPower        *bool
	remoteWake          *bool
	supervisionTimeout  *uint16
	normallyConnectable *bool
	bootDevice          *bool
	ssrHostMaxLatency   *uint16
	ssrHostMinTimeout   *uint16
}

// setScalar stores value into a draft slot that must still be empty. A second
// write to the same slot means the record carried the attribute twice.
func setScalar[T any](slot **T, value T, id uint16, name string) error {
	if *slot != nil {
		return DuplicateAttributeError{Attribute: id, Name: name}
	}
	*slot = &value
	return nil
}

// require unwraps a mandatory slot, naming the field when it is empty.
func require[T any](slot *T, field string) (T, error) {
	if slot == nil {
		var zero T
		return zero, MissingFieldError{Field: field}
	}
	return *slot, nil
}

// Finalize validates the draft and produces an immutable Configuration. It is
// the only admission point into Configuration on the decode path: every field
// the profile marks mandatory must have been seen, and at least one language
// base entry must exist to supply the HID half of the primary language.
func (d *Draft) Finalize() (*Configuration, error) {
	isoCode, err := require(d.primaryLanguage, "primary language")
	if err != nil {
		return nil, err
	}
	if len(d.languageBases) == 0 {
		return nil, MissingFieldError{Field: "HID language"}
	}
	// The first language base entry is the primary language; the rest are
	// genuinely additional.
	hidCode := d.languageBases[0].Language
	var additional []LanguageBase
	if len(d.languageBases) > 1 {
		additional = d.languageBases[1:]
	}

	encoding, err := require(d.encoding, "encoding")
	if err != nil {
		return nil, err
	}
	version, err := require(d.version, "version")
	if err != nil {
		return nil, err
	}
	deviceSubclass, err := require(d.deviceSubclass, "device subclass")
	if err != nil {
		return nil, err
	}
	countryCode, err := require(d.countryCode, "country code")
	if err != nil {
		return nil, err
	}
	virtualCable, err := require(d.virtualCable, "virtual cable")
	if err != nil {
		return nil, err
	}
	reconnectInitiate, err := require(d.reconnectInitiate, "reconnect initiate")
	if err != nil {
		return nil, err
	}
	bootDevice, err := require(d.bootDevice, "boot device")
	if err != nil {
		return nil, err
	}

	return &Configuration{
		PrimaryLanguage:    LanguageCode{ISOCode: isoCode, HIDCode: hidCode},
		Encoding:           encoding,
		ServiceName:        d.serviceName,
		ServiceDescription: d.serviceDescription,
		ProviderName:       d.providerName,
		Version:            version,
		HID: HIDConfiguration{
			DeviceSubclass:      deviceSubclass,
			CountryCode:         countryCode,
			VirtualCable:        virtualCable,
			ReconnectInitiate:   reconnectInitiate,
			ClassDescriptors:    d.classDescriptors,
			AdditionalLanguages: additional,
			BatteryPower:        d.batteryPower,
			RemoteWake:          d.remoteWake,
			SupervisionTimeout:  d.supervisionTimeout,
			NormallyConnectable: d.normallyConnectable,
			BootDevice:          bootDevice,
			SSRHostMaxLatency:   d.ssrHostMaxLatency,
			SSRHostMinTimeout:   d.ssrHostMinTimeout,
		},
	}, nil
}
