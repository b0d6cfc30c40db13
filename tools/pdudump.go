package tools

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smpp-go/smpp/codec"
	"github.com/smpp-go/smpp/log"
	"github.com/smpp-go/smpp/pdu"
	"github.com/smpp-go/smpp/tlv"
	"github.com/spf13/cobra"
)

type PduDump struct{}

var toolPduDump = PduDump{}
var CmdPduDump = &cobra.Command{
	GroupID: "tools",
	Use:     "pdu-dump [hex]",
	Short:   "Decode a complete PDU",
	Long: `Decode a hex-encoded PDU, header included, and print its fields and
optional parameters. Reads standard input when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	Run:  toolPduDump.run,
}

func (d *PduDump) run(_ *cobra.Command, args []string) {
	var input string
	if len(args) == 1 {
		input = strings.TrimSpace(args[0])
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("Unable to read input", "err", err)
		}
		input = strings.Join(strings.Fields(string(raw)), "")
	}

	buf, err := hex.DecodeString(input)
	if err != nil {
		log.Fatal("Input is not valid hex", "err", err)
	}

	header, body, err := pdu.DecodeHeader(buf)
	if err != nil {
		log.Fatal("Invalid PDU header", "err", err)
	}
	fmt.Printf("command:  %s\n", header.CommandID)
	fmt.Printf("status:   0x%08X\n", uint32(header.CommandStatus))
	fmt.Printf("sequence: %d\n", header.SequenceNumber)

	if int(header.CommandLength) != pdu.HeaderLength+len(body) {
		log.Warn("command_length does not match input size",
			"declared", header.CommandLength, "actual", pdu.HeaderLength+len(body))
	}

	switch header.CommandID {
	case pdu.CommandSubmitSm:
		var p pdu.SubmitSm
		if err := p.Decode(body); err != nil {
			log.Fatal("Invalid submit_sm body", "err", err)
		}
		printAddresses(p.SourceAddr, p.DestinationAddr)
		printShortMessage(p.ShortMessage)
		printTlvs(p.TLVs())
	case pdu.CommandDeliverSm:
		var p pdu.DeliverSm
		if err := p.Decode(body); err != nil {
			log.Fatal("Invalid deliver_sm body", "err", err)
		}
		printAddresses(p.SourceAddr, p.DestinationAddr)
		printShortMessage(p.ShortMessage)
		printTlvs(p.TLVs())
	case pdu.CommandDataSm:
		var p pdu.DataSm
		if err := p.Decode(body); err != nil {
			log.Fatal("Invalid data_sm body", "err", err)
		}
		printAddresses(p.SourceAddr, p.DestinationAddr)
		printTlvs(p.TLVs())
	default:
		log.Warn("Unsupported operation, header only", "command", header.CommandID)
	}
}

func printAddresses(src, dst codec.COctetString) {
	fmt.Printf("source:   %s\n", src)
	fmt.Printf("dest:     %s\n", dst)
}

func printShortMessage(sm []byte) {
	fmt.Printf("short_message: %q\n", sm)
}

func printTlvs(tlvs []tlv.TLV) {
	for _, t := range tlvs {
		fmt.Printf("tlv: %-28s len=%-5d %s\n", t.Tag(), t.ValueLength(), toolTlvDump.render(t))
	}
}
