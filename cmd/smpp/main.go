package main

import (
	"os"

	"github.com/smpp-go/smpp/tools"
	"github.com/smpp-go/smpp/utils"
	"github.com/spf13/cobra"
)

var root = &cobra.Command{
	Use:     "smpp",
	Short:   "SMPP PDU toolkit",
	Version: utils.Version,
}

func main() {
	root.AddGroup(&cobra.Group{ID: "tools", Title: "Tools"})
	root.AddCommand(tools.CmdTlvDump)
	root.AddCommand(tools.CmdPduDump)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
