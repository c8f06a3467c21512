// Package btids holds the Bluetooth-assigned numbers the HID profile codec
// depends on: SDP attribute IDs, protocol UUIDs, PSM values and service class
// UUIDs. The tables mirror the Bluetooth Assigned Numbers document and the
// HID profile specification; they are fixed at compile time and never change
// at runtime.
package btids

import "github.com/go-ble/ble"

// Universal SDP attribute IDs.
const (
	AttrServiceRecordHandle               uint16 = 0x0000
	AttrServiceClassIDList                uint16 = 0x0001
	AttrServiceRecordState                uint16 = 0x0002
	AttrServiceID                         uint16 = 0x0003
	AttrProtocolDescriptorList            uint16 = 0x0004
	AttrBrowseGroupList                   uint16 = 0x0005
	AttrLanguageBaseAttributeIDList       uint16 = 0x0006
	AttrServiceInfoTimeToLive             uint16 = 0x0007
	AttrServiceAvailability               uint16 = 0x0008
	AttrBluetoothProfileDescriptorList    uint16 = 0x0009
	AttrDocumentationURL                  uint16 = 0x000A
	AttrClientExecutableURL               uint16 = 0x000B
	AttrIconURL                           uint16 = 0x000C
	AttrAdditionalProtocolDescriptorLists uint16 = 0x000D
)

// PrimaryLanguageBase is the attribute-ID offset assigned to the primary
// language. Localized string attributes live at base + offset.
const PrimaryLanguageBase uint16 = 0x0100

// String attribute IDs at the primary language base.
const (
	AttrServiceName        = PrimaryLanguageBase + 0x0000
	AttrServiceDescription = PrimaryLanguageBase + 0x0001
	AttrProviderName       = PrimaryLanguageBase + 0x0002
)

// HID profile attribute IDs (HID spec 5.3.4). DeviceReleaseNumber and
// SDPDisable are deprecated since HID 1.1 but stay in the registry so the
// table matches the assigned-numbers document.
const (
	AttrHIDDeviceReleaseNumber uint16 = 0x0200
	AttrHIDParserVersion       uint16 = 0x0201
	AttrHIDDeviceSubclass      uint16 = 0x0202
	AttrHIDCountryCode         uint16 = 0x0203
	AttrHIDVirtualCable        uint16 = 0x0204
	AttrHIDReconnectInitiate   uint16 = 0x0205
	AttrHIDDescriptorList      uint16 = 0x0206
	AttrHIDLangIDBaseList      uint16 = 0x0207
	AttrHIDSDPDisable          uint16 = 0x0208
	AttrHIDBatteryPower        uint16 = 0x0209
	AttrHIDRemoteWake          uint16 = 0x020A
	AttrHIDProfileVersion      uint16 = 0x020B
	AttrHIDSupervisionTimeout  uint16 = 0x020C
	AttrHIDNormallyConnectable uint16 = 0x020D
	AttrHIDBootDevice          uint16 = 0x020E
	AttrHIDSSRHostMaxLatency   uint16 = 0x020F
	AttrHIDSSRHostMinTimeout   uint16 = 0x0210
)

// Protocol UUIDs.
var (
	ProtocolL2CAP = ble.UUID16(0x0100)
	ProtocolHIDP  = ble.UUID16(0x0011)
)

// L2CAP PSM values for the two HID channels.
const (
	PSMHIDControl   uint16 = 0x0011
	PSMHIDInterrupt uint16 = 0x0013
)

// Service class UUIDs.
var (
	ServiceClassHID              = ble.UUID16(0x1124)
	ServiceClassPublicBrowseRoot = ble.UUID16(0x1002)
)

// HIDParserVersion is the HID parser release advertised by every record;
// the profile mandates 1.1.1 regardless of device capabilities.
const HIDParserVersion uint16 = 0x0111
