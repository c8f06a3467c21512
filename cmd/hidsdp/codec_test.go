package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srg/hidsdp/pkg/hidprofile"
	"github.com/srg/hidsdp/pkg/sdp"
)

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func testConfiguration() *hidprofile.Configuration {
	name := "File Keyboard"
	return &hidprofile.Configuration{
		PrimaryLanguage: hidprofile.LanguageEnglish,
		Encoding:        hidprofile.EncodingUTF8,
		ServiceName:     &name,
		Version:         0x0101,
		HID: hidprofile.HIDConfiguration{
			DeviceSubclass:    0x40,
			VirtualCable:      true,
			ReconnectInitiate: true,
			ClassDescriptors: []hidprofile.ClassDescriptor{
				hidprofile.ReportDescriptor([]byte{0x05, 0x01, 0x09, 0x06}),
			},
			BootDevice: true,
		},
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfiguration()

	recordXML, err := sdp.Marshal(cfg.Record())
	require.NoError(t, err)

	recordPath := filepath.Join(dir, "record.xml")
	require.NoError(t, os.WriteFile(recordPath, recordXML, 0o644))

	// decode: record XML -> configuration YAML
	var yamlOut bytes.Buffer
	require.NoError(t, decodeRecordFile(recordPath, &yamlOut, silentLogger(), true))

	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, yamlOut.Bytes(), 0o644))

	// encode: configuration YAML -> record XML
	var xmlOut bytes.Buffer
	require.NoError(t, encodeConfigFile(configPath, &xmlOut))

	assert.Equal(t, string(recordXML), xmlOut.String())
}

func TestDecodeRecordFileRejectsBadRecord(t *testing.T) {
	dir := t.TempDir()

	// Well-formed XML, but the profile's mandatory attributes are missing.
	recordPath := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(recordPath, []byte(`<record></record>`), 0o644))

	var out bytes.Buffer
	err := decodeRecordFile(recordPath, &out, silentLogger(), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HID record")
}

func TestDecodeRecordFileMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := decodeRecordFile(filepath.Join(t.TempDir(), "nope.xml"), &out, silentLogger(), true)
	require.Error(t, err)
}

func TestEncodeConfigFileRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("{ unclosed"), 0o644))

	var out bytes.Buffer
	err := encodeConfigFile(configPath, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
