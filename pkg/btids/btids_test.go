package btids

import (
	"testing"

	"github.com/go-ble/ble"
	"github.com/stretchr/testify/assert"
)

// TestAssignedNumbers pins the registry to the values from the Bluetooth
// assigned-numbers document; wire interoperability depends on these exactly.
func TestAssignedNumbers(t *testing.T) {
	assert.Equal(t, uint16(0x0001), AttrServiceClassIDList)
	assert.Equal(t, uint16(0x0004), AttrProtocolDescriptorList)
	assert.Equal(t, uint16(0x0006), AttrLanguageBaseAttributeIDList)
	assert.Equal(t, uint16(0x0009), AttrBluetoothProfileDescriptorList)
	assert.Equal(t, uint16(0x000D), AttrAdditionalProtocolDescriptorLists)

	assert.Equal(t, uint16(0x0100), AttrServiceName)
	assert.Equal(t, uint16(0x0101), AttrServiceDescription)
	assert.Equal(t, uint16(0x0102), AttrProviderName)

	assert.Equal(t, uint16(0x0201), AttrHIDParserVersion)
	assert.Equal(t, uint16(0x0206), AttrHIDDescriptorList)
	assert.Equal(t, uint16(0x0207), AttrHIDLangIDBaseList)
	assert.Equal(t, uint16(0x0210), AttrHIDSSRHostMinTimeout)

	assert.True(t, ProtocolL2CAP.Equal(ble.UUID16(0x0100)))
	assert.True(t, ProtocolHIDP.Equal(ble.UUID16(0x0011)))
	assert.True(t, ServiceClassHID.Equal(ble.UUID16(0x1124)))
	assert.True(t, ServiceClassPublicBrowseRoot.Equal(ble.UUID16(0x1002)))

	assert.Equal(t, uint16(0x0011), PSMHIDControl)
	assert.Equal(t, uint16(0x0013), PSMHIDInterrupt)
	assert.Equal(t, uint16(0x0111), HIDParserVersion)
}
