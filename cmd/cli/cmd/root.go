package cmd

import (
	"os"

	"github.com/keurnel/x86dis/cmd/cli/cmd/x86_64"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keurnel-disasm",
	Short: "Keurnels disassembler",
	Long:  `Keurnels disassembler decodes machine code into Intel-syntax assembly.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {

	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	x8664Cmd.AddGroup(&cobra.Group{
		ID:    "file-operations",
		Title: "File operations",
	})
	x8664Cmd.AddCommand(x86_64.DisassembleCmd)

	rootCmd.AddCommand(x8664Cmd)

	rootCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
