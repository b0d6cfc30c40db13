// Package tools implements the command line tools shipped with the library.
package tools

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smpp-go/smpp/log"
	"github.com/smpp-go/smpp/tlv"
	"github.com/smpp-go/smpp/utils"
	"github.com/smpp-go/smpp/utils/toolutils"
	"github.com/spf13/cobra"
)

type TlvDump struct {
	catalog     string
	showStrings bool

	vendorNames map[uint16]string
}

type tlvDumpCatalog struct {
	VendorTags map[uint16]string `yaml:"vendor_tags"`
}

func (d *TlvDump) run(_ *cobra.Command, args []string) {
	if d.catalog != "" {
		var cat tlvDumpCatalog
		if err := toolutils.ReadYaml(&cat, d.catalog); err != nil {
			log.Fatal("Unable to read tag catalog", "err", err)
		}
		d.vendorNames = cat.VendorTags
	}

	input, err := d.readInput(args)
	if err != nil {
		log.Fatal("Unable to read input", "err", err)
	}

	buf, err := hex.DecodeString(input)
	if err != nil {
		log.Fatal("Input is not valid hex", "err", err)
	}

	tlvs, err := tlv.DecodeAll(buf)
	if err != nil {
		log.Fatal("Invalid TLV stream", "err", err)
	}

	for _, t := range tlvs {
		fmt.Printf("%-28s len=%-5d %s\n", d.tagName(t.Tag()), t.ValueLength(), d.render(t))
	}
}

func (d *TlvDump) readInput(args []string) (string, error) {
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(string(raw)), ""), nil
}

func (d *TlvDump) tagName(tag tlv.Tag) string {
	name, ok := d.vendorNames[uint16(tag)]
	return utils.If(ok, name, tag.String())
}

func (d *TlvDump) render(t tlv.TLV) string {
	v := t.Value()
	if v == nil {
		return "(no value)"
	}
	raw, ok := t.RawBytes().Get()
	if !ok {
		// modeled standard parameter
		return fmt.Sprintf("%v", v)
	}
	out := hex.EncodeToString(raw)
	if d.showStrings {
		if s, ok := t.AsString().Get(); ok {
			out += fmt.Sprintf(" %q", s)
		}
	}
	return out
}
