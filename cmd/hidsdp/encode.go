package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srg/hidsdp/pkg/hidprofile"
	"github.com/srg/hidsdp/pkg/sdp"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <config.yaml>",
	Short: "Encode a HID service configuration into SDP record XML",
	Long: `Reads a YAML service configuration and prints the canonical SDP record
XML the device should advertise.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return encodeConfigFile(args[0], cmd.OutOrStdout())
}

// encodeConfigFile runs the full encode path for one configuration file and
// writes the record XML to out.
func encodeConfigFile(path string, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	var cfg hidprofile.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	xmlData, err := sdp.Marshal(cfg.Record())
	if err != nil {
		return err
	}

	_, err = out.Write(xmlData)
	return err
}
