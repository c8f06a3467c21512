package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/srg/hidsdp/pkg/hidprofile"
	"github.com/srg/hidsdp/pkg/sdp"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <record.xml>",
	Short: "Decode an SDP record XML file into a HID service configuration",
	Long: `Parses a BlueZ-style SDP record XML file, validates it against the HID
profile schema, and prints the resulting configuration as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var (
	decodeVerbose  bool
	decodeYAMLOnly bool
)

func init() {
	decodeCmd.Flags().BoolVarP(&decodeVerbose, "verbose", "v", false, "Verbose output")
	decodeCmd.Flags().BoolVar(&decodeYAMLOnly, "yaml-only", false, "Suppress the summary header, print YAML only")
}

func runDecode(cmd *cobra.Command, args []string) error {
	// All arguments validated - don't show usage on runtime errors
	cmd.SilenceUsage = true

	logger, err := configureLogger(cmd, "verbose")
	if err != nil {
		return err
	}

	return decodeRecordFile(args[0], cmd.OutOrStdout(), logger, decodeYAMLOnly)
}

// decodeRecordFile runs the full decode path for one record file and writes
// the configuration to out.
func decodeRecordFile(path string, out io.Writer, logger *logrus.Logger, yamlOnly bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read record: %w", err)
	}

	tree, err := sdp.Unmarshal(data)
	if err != nil {
		return err
	}

	cfg, err := hidprofile.NewDecoder(logger).DecodeConfiguration(tree)
	if err != nil {
		return fmt.Errorf("invalid HID record: %w", err)
	}

	if !yamlOnly {
		printSummary(out, cfg)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// printSummary writes a short human-oriented header above the YAML dump.
func printSummary(out io.Writer, cfg *hidprofile.Configuration) {
	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite, color.Bold)

	heading.Fprintln(out, "# Bluetooth HID service record")
	if cfg.ServiceName != nil {
		fmt.Fprintf(out, "# %s: %s\n", label.Sprint("Service"), *cfg.ServiceName)
	}
	if cfg.ProviderName != nil {
		fmt.Fprintf(out, "# %s: %s\n", label.Sprint("Provider"), *cfg.ProviderName)
	}
	fmt.Fprintf(out, "# %s: 0x%02x  %s: %d  %s: %v\n",
		label.Sprint("Subclass"), cfg.HID.DeviceSubclass,
		label.Sprint("Descriptors"), len(cfg.HID.ClassDescriptors),
		label.Sprint("Boot device"), cfg.HID.BootDevice)
}
