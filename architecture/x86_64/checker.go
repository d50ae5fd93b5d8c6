package x86_64

import "github.com/keurnel/x86dis/internal/asm"

// operandTypeOf classifies a decoded Operand into the asm.OperandType
// vocabulary the checker's signature tables (instructions.go) are keyed
// on. Memory operands always classify as OperandMem: the table's memory
// forms don't distinguish pointer size, since the ModR/M encoding alone
// never forces one (only a surrounding instruction convention, e.g. LEA
// never takes a sized pointer, does).
func operandTypeOf(op Operand) asm.OperandType {
	switch v := op.(type) {
	case Register:
		switch v.Type {
		case Register8:
			return OperandReg8
		case Register16:
			return OperandReg16
		case Register32, RegisterIP:
			return OperandReg32
		case Register64:
			return OperandReg64
		default:
			return OperandReg64
		}
	case Immediate:
		switch v.Width_ {
		case ImmWidth8:
			return OperandImm8
		case ImmWidth16:
			return OperandImm16
		case ImmWidth64:
			return OperandImm64
		default:
			return OperandImm32
		}
	case RelativeOffset:
		if v.Width_ == ImmWidth8 {
			return OperandRel8
		}
		return OperandRel32
	case IndirectOperand:
		return OperandMem
	default:
		return OperandNone
	}
}

// Check validates a decoded Instruction against its mnemonic's checker
// signature table (§4.9): some registered InstructionForm must have the
// same arity as the decoded instruction and, position by position, the
// same operand types. Returns an *InvalidInstructionError when no form
// matches. A decoded instruction whose opcode has no checker entry (many
// do not, e.g. the system, fence, prefetch, SSE and VEX opcodes) is
// treated as valid, since the checker only ever rejects, never invents,
// unsupported encodings.
func Check(instr Instruction) error {
	table, ok := instructionFor(instr.Op)
	if !ok {
		return nil
	}

	if len(instr.Operands) == 0 {
		for _, form := range table.Forms {
			if len(form.Operands) == 1 && form.Operands[0].Identifier == OperandNone.Identifier {
				return nil
			}
			if len(form.Operands) == 0 {
				return nil
			}
		}
		return &InvalidInstructionError{Msg: instr.Op.String() + ": no zero-operand form registered"}
	}

	want := make([]asm.OperandType, len(instr.Operands))
	for i, op := range instr.Operands {
		want[i] = operandTypeOf(op)
	}

	for _, form := range table.Form(want[0]) {
		if len(form.Operands) != len(want) {
			continue
		}
		match := true
		for i, t := range want {
			if form.Operands[i].Identifier != t.Identifier {
				match = false
				break
			}
		}
		if match {
			return nil
		}
	}

	return &InvalidInstructionError{Msg: instr.Op.String() + ": no registered form matches the decoded operand types"}
}
