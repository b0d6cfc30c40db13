package tools

import "github.com/spf13/cobra"

var toolTlvDump = TlvDump{}
var CmdTlvDump = &cobra.Command{
	GroupID: "tools",
	Use:     "tlv-dump [hex]",
	Short:   "Decode an optional-parameter (TLV) section",
	Long: `Decode the hex-encoded optional-parameter section of a PDU and print
one line per TLV record. Reads standard input when no argument is given.`,
	Args:    cobra.MaximumNArgs(1),
	Example: `  echo "04240003414243" | smpp tlv-dump`,
	Run:     toolTlvDump.run,
}

func init() {
	CmdTlvDump.Flags().StringVar(&toolTlvDump.catalog, "catalog", "",
		"YAML file mapping vendor tags to display names")
	CmdTlvDump.Flags().BoolVar(&toolTlvDump.showStrings, "strings", false,
		"Also try to decode raw payloads as null-terminated strings")
}
