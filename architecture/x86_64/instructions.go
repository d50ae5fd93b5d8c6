package x86_64

import "github.com/keurnel/x86dis/internal/asm"

// InstructionsByMnemonic is the instruction checker's signature table
// (§4.9): for each mnemonic, the set of operand-type combinations the
// encoding actually supports. Check (checker.go) does the arity/type
// matching, narrowing the forms with Instruction.Form (internal/asm);
// this table only needs to enumerate the forms.
var (
	//
	// Data Movement Instructions
	//
	MOV = asm.Instruction{
		Mnemonic: "MOV",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x88}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg16, OperandReg16}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandMem}, Opcode: []byte{0x8B}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandMem}, Opcode: []byte{0x8B}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xB0}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0xB8}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandImm64}, Opcode: []byte{0xB8}, Imm: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	MOVZX = asm.Instruction{
		Mnemonic: "MOVZX",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandReg8}, Opcode: []byte{0x0F, 0xB6}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg16}, Opcode: []byte{0x0F, 0xB7}, ModRM: true, Encoding: EncodingLegacy},
		},
	}

	MOVSX = asm.Instruction{
		Mnemonic: "MOVSX",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandReg8}, Opcode: []byte{0x0F, 0xBE}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg16}, Opcode: []byte{0x0F, 0xBF}, ModRM: true, Encoding: EncodingLegacy},
		},
	}

	LEA = asm.Instruction{
		Mnemonic: "LEA",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandMem}, Opcode: []byte{0x8D}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandMem}, Opcode: []byte{0x8D}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	PUSH = asm.Instruction{
		Mnemonic: "PUSH",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0x50}, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandImm8}, Opcode: []byte{0x6A}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandImm32}, Opcode: []byte{0x68}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandMem}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	POP = asm.Instruction{
		Mnemonic: "POP",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0x58}, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandMem}, Opcode: []byte{0x8F}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	XCHG = asm.Instruction{
		Mnemonic: "XCHG",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x86}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x87}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x87}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x90}, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x90}, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	//
	// Arithmetic Instructions
	//
	ADD = asm.Instruction{
		Mnemonic: "ADD",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x00}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x01}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x01}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	SUB = asm.Instruction{
		Mnemonic: "SUB",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x28}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x29}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x29}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	ADC = asm.Instruction{
		Mnemonic: "ADC",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x10}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x11}, ModRM: true, Encoding: EncodingLegacy},
		},
	}

	SBB = asm.Instruction{
		Mnemonic: "SBB",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x18}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x19}, ModRM: true, Encoding: EncodingLegacy},
		},
	}

	MUL = asm.Instruction{
		Mnemonic: "MUL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xF6}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	IMUL = asm.Instruction{
		Mnemonic: "IMUL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x0F, 0xAF}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x0F, 0xAF}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	DIV = asm.Instruction{
		Mnemonic: "DIV",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xF6}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	IDIV = asm.Instruction{
		Mnemonic: "IDIV",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xF6}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	INC = asm.Instruction{
		Mnemonic: "INC",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xFE}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	DEC = asm.Instruction{
		Mnemonic: "DEC",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xFE}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	NEG = asm.Instruction{
		Mnemonic: "NEG",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xF6}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	CMP = asm.Instruction{
		Mnemonic: "CMP",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x38}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x39}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x39}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	//
	// Logical Instructions
	//
	AND = asm.Instruction{
		Mnemonic: "AND",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x20}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x21}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x21}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	OR = asm.Instruction{
		Mnemonic: "OR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x08}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x09}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x09}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	XOR = asm.Instruction{
		Mnemonic: "XOR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x30}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x31}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x31}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	NOT = asm.Instruction{
		Mnemonic: "NOT",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0xF6}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	TEST = asm.Instruction{
		Mnemonic: "TEST",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x84}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x85}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x85}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0xF7}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	//
	// Shift and Rotate Instructions
	//
	SHL = asm.Instruction{
		Mnemonic: "SHL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xD0}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	SHR = asm.Instruction{
		Mnemonic: "SHR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xD0}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	SAR = asm.Instruction{
		Mnemonic: "SAR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xD0}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}

	ROL = asm.Instruction{
		Mnemonic: "ROL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xC0}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	ROR = asm.Instruction{
		Mnemonic: "ROR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xC0}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	RCL = asm.Instruction{
		Mnemonic: "RCL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xC0}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	RCR = asm.Instruction{
		Mnemonic: "RCR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xC0}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0xC1}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	//
	// Bit Instructions
	//
	BT = asm.Instruction{
		Mnemonic: "BT",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0x0F, 0xBA}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	BTS = asm.Instruction{
		Mnemonic: "BTS",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0x0F, 0xBA}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	BTR = asm.Instruction{
		Mnemonic: "BTR",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0x0F, 0xBA}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	BTC = asm.Instruction{
		Mnemonic: "BTC",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandImm8}, Opcode: []byte{0x0F, 0xBA}, ModRM: true, Imm: true, Encoding: EncodingLegacy},
		},
	}

	//
	// Control Flow Instructions
	//
	JMP = asm.Instruction{
		Mnemonic: "JMP",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandRel8}, Opcode: []byte{0xEB}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandRel32}, Opcode: []byte{0xE9}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy},
		},
	}

	JO  = condJump("JO", 0x70, 0x80)
	JNO = condJump("JNO", 0x71, 0x81)
	JE  = condJump("JE", 0x74, 0x84)
	JNE = condJump("JNE", 0x75, 0x85)
	JG  = condJump("JG", 0x7F, 0x8F)
	JGE = condJump("JGE", 0x7D, 0x8D)
	JL  = condJump("JL", 0x7C, 0x8C)
	JLE = condJump("JLE", 0x7E, 0x8E)
	JA  = condJump("JA", 0x77, 0x87)
	JAE = condJump("JAE", 0x73, 0x83)
	JB  = condJump("JB", 0x72, 0x82)
	JBE = condJump("JBE", 0x76, 0x86)
	JS  = condJump("JS", 0x78, 0x88)
	JNS = condJump("JNS", 0x79, 0x89)
	JP  = condJump("JP", 0x7A, 0x8A)
	JNP = condJump("JNP", 0x7B, 0x8B)

	CMOVO  = condMove("CMOVO", 0x40)
	CMOVNO = condMove("CMOVNO", 0x41)
	CMOVB  = condMove("CMOVB", 0x42)
	CMOVAE = condMove("CMOVAE", 0x43)
	CMOVE  = condMove("CMOVE", 0x44)
	CMOVNE = condMove("CMOVNE", 0x45)
	CMOVBE = condMove("CMOVBE", 0x46)
	CMOVA  = condMove("CMOVA", 0x47)
	CMOVS  = condMove("CMOVS", 0x48)
	CMOVNS = condMove("CMOVNS", 0x49)
	CMOVP  = condMove("CMOVP", 0x4A)
	CMOVNP = condMove("CMOVNP", 0x4B)
	CMOVL  = condMove("CMOVL", 0x4C)
	CMOVGE = condMove("CMOVGE", 0x4D)
	CMOVLE = condMove("CMOVLE", 0x4E)
	CMOVG  = condMove("CMOVG", 0x4F)

	SETO  = condSet("SETO", 0x90)
	SETNO = condSet("SETNO", 0x91)
	SETB  = condSet("SETB", 0x92)
	SETAE = condSet("SETAE", 0x93)
	SETE  = condSet("SETE", 0x94)
	SETNE = condSet("SETNE", 0x95)
	SETBE = condSet("SETBE", 0x96)
	SETA  = condSet("SETA", 0x97)
	SETS  = condSet("SETS", 0x98)
	SETNS = condSet("SETNS", 0x99)
	SETP  = condSet("SETP", 0x9A)
	SETNP = condSet("SETNP", 0x9B)
	SETL  = condSet("SETL", 0x9C)
	SETGE = condSet("SETGE", 0x9D)
	SETLE = condSet("SETLE", 0x9E)
	SETG  = condSet("SETG", 0x9F)

	CALL = asm.Instruction{
		Mnemonic: "CALL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandRel32}, Opcode: []byte{0xE8}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy},
		},
	}

	RET = asm.Instruction{
		Mnemonic: "RET",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0xC3}, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandImm16}, Opcode: []byte{0xC2}, Imm: true, Encoding: EncodingLegacy},
		},
	}

	//
	// Miscellaneous Instructions
	//
	NOP = asm.Instruction{
		Mnemonic: "NOP",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0x90}, Encoding: EncodingLegacy},
		},
	}

	HLT = asm.Instruction{
		Mnemonic: "HLT",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0xF4}, Encoding: EncodingLegacy},
		},
	}

	SYSCALL = asm.Instruction{
		Mnemonic: "SYSCALL",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0x0F, 0x05}, Encoding: EncodingLegacy},
		},
	}

	SYSRET = asm.Instruction{
		Mnemonic: "SYSRET",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0x0F, 0x07}, Encoding: EncodingLegacy},
		},
	}

	INT = asm.Instruction{
		Mnemonic: "INT",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandImm8}, Opcode: []byte{0xCD}, Imm: true, Encoding: EncodingLegacy},
		},
	}

	IRET = asm.Instruction{
		Mnemonic: "IRET",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0xCF}, Encoding: EncodingLegacy},
		},
	}

	CPUID = asm.Instruction{
		Mnemonic: "CPUID",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0x0F, 0xA2}, Encoding: EncodingLegacy},
		},
	}

	RDTSC = asm.Instruction{
		Mnemonic: "RDTSC",
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0x0F, 0x31}, Encoding: EncodingLegacy},
		},
	}
)

// condJump builds the short/near form pair shared by every conditional
// jump mnemonic: an 8-bit rel8 opcode in 0x70..0x7F, and its 0F-escaped
// rel32 counterpart in 0x80..0x8F.
func condJump(mnemonic string, rel8Opcode, rel32SecondByte byte) asm.Instruction {
	return asm.Instruction{
		Mnemonic: mnemonic,
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandRel8}, Opcode: []byte{rel8Opcode}, Imm: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandRel32}, Opcode: []byte{0x0F, rel32SecondByte}, Imm: true, Encoding: EncodingLegacy},
		},
	}
}

// condMove builds a CMOVcc mnemonic's signature: a 0F-escaped reg,r/m form,
// parallel to condJump's rel8/rel32 pair but over the 0F 40-4F range.
func condMove(mnemonic string, secondByte byte) asm.Instruction {
	return asm.Instruction{
		Mnemonic: mnemonic,
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x0F, secondByte}, ModRM: true, Encoding: EncodingLegacy},
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x0F, secondByte}, ModRM: true, Encoding: EncodingLegacy, REXPrefix: 0x48},
		},
	}
}

// condSet builds a SETcc mnemonic's signature: a single byte-register
// destination, over the 0F 90-9F range.
func condSet(mnemonic string, secondByte byte) asm.Instruction {
	return asm.Instruction{
		Mnemonic: mnemonic,
		Forms: []asm.InstructionForm{
			{Operands: []asm.OperandType{OperandReg8}, Opcode: []byte{0x0F, secondByte}, ModRM: true, Encoding: EncodingLegacy},
		},
	}
}

// InstructionsByMnemonic is a map for looking up checker signature tables
// by mnemonic.
var InstructionsByMnemonic = map[string]asm.Instruction{
	"MOV": MOV, "MOVZX": MOVZX, "MOVSX": MOVSX, "LEA": LEA,
	"PUSH": PUSH, "POP": POP, "XCHG": XCHG,

	"ADD": ADD, "SUB": SUB, "ADC": ADC, "SBB": SBB,
	"MUL": MUL, "IMUL": IMUL, "DIV": DIV, "IDIV": IDIV,
	"INC": INC, "DEC": DEC, "NEG": NEG, "CMP": CMP,

	"AND": AND, "OR": OR, "XOR": XOR, "NOT": NOT, "TEST": TEST,
	"BT": BT, "BTS": BTS, "BTR": BTR, "BTC": BTC,

	"SHL": SHL, "SHR": SHR, "SAR": SAR, "ROL": ROL, "ROR": ROR,
	"RCL": RCL, "RCR": RCR,

	"JMP": JMP, "JO": JO, "JNO": JNO, "JE": JE, "JNE": JNE, "JG": JG, "JGE": JGE,
	"JL": JL, "JLE": JLE, "JA": JA, "JAE": JAE, "JB": JB, "JBE": JBE,
	"JS": JS, "JNS": JNS, "JP": JP, "JNP": JNP,
	"CALL": CALL, "RET": RET,

	"CMOVO": CMOVO, "CMOVNO": CMOVNO, "CMOVB": CMOVB, "CMOVAE": CMOVAE,
	"CMOVE": CMOVE, "CMOVNE": CMOVNE, "CMOVBE": CMOVBE, "CMOVA": CMOVA,
	"CMOVS": CMOVS, "CMOVNS": CMOVNS, "CMOVP": CMOVP, "CMOVNP": CMOVNP,
	"CMOVL": CMOVL, "CMOVGE": CMOVGE, "CMOVLE": CMOVLE, "CMOVG": CMOVG,

	"SETO": SETO, "SETNO": SETNO, "SETB": SETB, "SETAE": SETAE,
	"SETE": SETE, "SETNE": SETNE, "SETBE": SETBE, "SETA": SETA,
	"SETS": SETS, "SETNS": SETNS, "SETP": SETP, "SETNP": SETNP,
	"SETL": SETL, "SETGE": SETGE, "SETLE": SETLE, "SETG": SETG,

	"NOP": NOP, "HLT": HLT, "SYSCALL": SYSCALL, "SYSRET": SYSRET,
	"INT": INT, "IRET": IRET, "CPUID": CPUID, "RDTSC": RDTSC,
}
