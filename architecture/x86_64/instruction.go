package x86_64

import "strings"

// Instruction is a single decoded instruction: the opcode the dispatcher
// resolved, the prefixes consumed ahead of it, and its operands in the
// order they print in Intel syntax (destination first, where the encoding
// has one). Offset and Length locate it in the original buffer for the
// driver's trace logging and the CLI's byte-offset-prefixed listing.
type Instruction struct {
	Op       Opcode
	Operands []Operand
	Prefixes Prefixes
	Offset   int
	Length   int
}

// IntelSyntax renders the instruction as a single line: the lowercase
// mnemonic (with a "lock " prefix when the LOCK prefix was present),
// followed by its comma-separated operands.
func (i Instruction) IntelSyntax() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(i.Op.String()))
	if i.Prefixes.Lock {
		b.Reset()
		b.WriteString("lock ")
		b.WriteString(strings.ToLower(i.Op.String()))
	}
	if len(i.Operands) == 0 {
		return b.String()
	}
	b.WriteByte(' ')
	for idx, op := range i.Operands {
		if idx > 0 {
			b.WriteString(",")
		}
		b.WriteString(op.IntelSyntax())
	}
	return b.String()
}
