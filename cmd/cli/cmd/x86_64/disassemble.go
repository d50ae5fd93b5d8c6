package x86_64

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/keurnel/x86dis/architecture/x86_64"
	"github.com/keurnel/x86dis/internal/debugcontext"
	"github.com/spf13/cobra"
)

// DisassembleCmd decodes a buffer of machine code into Intel-syntax
// assembly, one instruction per line. The buffer comes from either a file
// argument or the --hex flag.
var DisassembleCmd = &cobra.Command{
	Use:     "disassemble <file>",
	GroupID: "file-operations",
	Short:   "Disassemble x86_64 machine code into Intel syntax.",
	Long:    `Disassemble x86_64 machine code into Intel syntax, reading from a binary file or a --hex literal.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDisassemble(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

var (
	hexFlag     string
	checkerFlag bool
	traceFlag   bool
)

func init() {
	DisassembleCmd.Flags().StringVar(&hexFlag, "hex", "", "decode a hex literal instead of reading a file")
	DisassembleCmd.Flags().BoolVar(&checkerFlag, "checker", true, "validate each decoded instruction's operand shape")
	DisassembleCmd.Flags().BoolVar(&traceFlag, "trace", false, "print per-instruction decode diagnostics to stderr")
}

// runDisassemble resolves the input buffer, decodes it, and prints one
// Intel-syntax line per decoded instruction.
func runDisassemble(cmd *cobra.Command, args []string) error {
	buf, err := resolveInputBytes(args)
	if err != nil {
		return err
	}

	var trace *debugcontext.DebugContext
	if traceFlag {
		label := hexFlag
		if label == "" && len(args) > 0 {
			label = args[0]
		}
		trace = debugcontext.NewDebugContext(label)
	}

	decoder := x86_64.NewDecoder(x86_64.DecodeOptions{
		RunChecker: checkerFlag,
		Trace:      trace,
	})

	instrs, decodeErr := decoder.Decode(buf)
	for _, instr := range instrs {
		cmd.Printf("%04x: %s\n", instr.Offset, instr.IntelSyntax())
	}

	if trace != nil {
		for _, entry := range trace.Entries() {
			cmd.PrintErrln(entry.String())
		}
	}

	if decodeErr != nil {
		return fmt.Errorf("decoded %d instruction(s) before: %w", len(instrs), decodeErr)
	}
	return nil
}

// resolveInputBytes returns the buffer to decode, from --hex when set or
// from the file named by args[0] otherwise.
func resolveInputBytes(args []string) ([]byte, error) {
	if hexFlag != "" {
		cleaned := strings.ReplaceAll(strings.TrimSpace(hexFlag), " ", "")
		buf, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, fmt.Errorf("invalid --hex literal: %w", err)
		}
		return buf, nil
	}

	fullPath, err := resolveFilePath(args)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(fullPath)
}

// resolveFilePath validates the CLI arguments and returns the absolute path
// to the machine-code file.
func resolveFilePath(args []string) (string, error) {
	if len(args) < 1 || args[0] == "" {
		return "", fmt.Errorf("no input file provided (use a file argument or --hex)")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to get current working directory: %w", err)
	}

	fullPath := filepath.Join(cwd, args[0])
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return "", fmt.Errorf("input file does not exist at path: %s", fullPath)
	}

	return fullPath, nil
}
