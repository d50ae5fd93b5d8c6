package x86_64

import "github.com/keurnel/x86dis/internal/asm"

// Opcode names a decoded mnemonic as a comparable value, so callers can
// switch on the operation a decoded Instruction performs without string
// comparison. The dispatcher (dispatch.go, vex.go) and FromIntelSyntax
// (textsyntax.go) are the only places that produce these; InstructionsByMnemonic (instructions.go) is the only place that
// validates their operand shapes.
type Opcode int

const (
	OpInvalid Opcode = iota

	// Data movement
	OpMOV
	OpMOVZX
	OpMOVSX
	OpMOVBE
	OpLEA
	OpPUSH
	OpPOP
	OpXCHG
	OpCMPXCHG8B

	// Arithmetic
	OpADD
	OpSUB
	OpADC
	OpSBB
	OpMUL
	OpIMUL
	OpDIV
	OpIDIV
	OpINC
	OpDEC
	OpNEG
	OpCMP

	// Logical
	OpAND
	OpOR
	OpXOR
	OpNOT
	OpTEST
	OpBT
	OpBTS
	OpBTR
	OpBTC

	// Shift/rotate
	OpSHL
	OpSHR
	OpSAR
	OpROL
	OpROR
	OpRCL
	OpRCR

	// Control flow (unconditional)
	OpJMP
	OpCALL
	OpRET

	// Control flow (conditional jump, one per condition code)
	OpJO
	OpJNO
	OpJB
	OpJAE
	OpJE
	OpJNE
	OpJBE
	OpJA
	OpJS
	OpJNS
	OpJP
	OpJNP
	OpJL
	OpJGE
	OpJLE
	OpJG

	// Conditional move, same 16 condition codes as the Jcc family.
	OpCMOVO
	OpCMOVNO
	OpCMOVB
	OpCMOVAE
	OpCMOVE
	OpCMOVNE
	OpCMOVBE
	OpCMOVA
	OpCMOVS
	OpCMOVNS
	OpCMOVP
	OpCMOVNP
	OpCMOVL
	OpCMOVGE
	OpCMOVLE
	OpCMOVG

	// Byte set-on-condition, same 16 condition codes again.
	OpSETO
	OpSETNO
	OpSETB
	OpSETAE
	OpSETE
	OpSETNE
	OpSETBE
	OpSETA
	OpSETS
	OpSETNS
	OpSETP
	OpSETNP
	OpSETL
	OpSETGE
	OpSETLE
	OpSETG

	// Miscellaneous
	OpNOP
	OpHLT
	OpSYSCALL
	OpSYSRET
	OpINT
	OpIRET
	OpCPUID
	OpRDTSC
	OpRDTSCP
	OpRDRAND
	OpRDSEED
	OpSWAPGS

	// System / descriptor-table (0F 01, a "group of groups")
	OpSGDT
	OpSIDT
	OpLGDT
	OpLIDT
	OpSMSW
	OpLMSW
	OpINVLPG
	OpXGETBV
	OpXSETBV

	// FPU/SSE state and cache-management (0F AE, also a group of groups)
	OpFXSAVE
	OpFXRSTOR
	OpLDMXCSR
	OpSTMXCSR
	OpXSAVE
	OpXRSTOR
	OpXSAVEOPT
	OpCLFLUSH
	OpLFENCE
	OpMFENCE
	OpSFENCE

	// Software prefetch hints (0F 18)
	OpPREFETCHNTA
	OpPREFETCHT0
	OpPREFETCHT1
	OpPREFETCHT2

	// Packed-integer immediate-count shifts (0F 71/72/73)
	OpPSRLW
	OpPSRAW
	OpPSLLW
	OpPSRLD
	OpPSRAD
	OpPSLLD
	OpPSRLQ
	OpPSRLDQ
	OpPSLLQ
	OpPSLLDQ

	// SSE scalar/packed move, legacy-prefix-modulated (0F 10/11)
	OpMOVUPS
	OpMOVUPD
	OpMOVSS
	OpMOVSD

	// Three-byte opcode-map escapes (0F 38 / 0F 3A)
	OpPSHUFB
	OpPALIGNR

	// Vector (VEX-encoded)
	OpVMOVDQA
	OpVMOVDQU
)

// mnemonicByOpcode backs Opcode.String(). Its names are the keys
// InstructionsByMnemonic uses, but only some of the opcodes here have a
// checker signature in that table; instructionFor reports which.
var mnemonicByOpcode = map[Opcode]string{
	OpMOV: "MOV", OpMOVZX: "MOVZX", OpMOVSX: "MOVSX", OpMOVBE: "MOVBE", OpLEA: "LEA",
	OpPUSH: "PUSH", OpPOP: "POP", OpXCHG: "XCHG", OpCMPXCHG8B: "CMPXCHG8B",

	OpADD: "ADD", OpSUB: "SUB", OpADC: "ADC", OpSBB: "SBB",
	OpMUL: "MUL", OpIMUL: "IMUL", OpDIV: "DIV", OpIDIV: "IDIV",
	OpINC: "INC", OpDEC: "DEC", OpNEG: "NEG", OpCMP: "CMP",

	OpAND: "AND", OpOR: "OR", OpXOR: "XOR", OpNOT: "NOT", OpTEST: "TEST",
	OpBT: "BT", OpBTS: "BTS", OpBTR: "BTR", OpBTC: "BTC",

	OpSHL: "SHL", OpSHR: "SHR", OpSAR: "SAR", OpROL: "ROL", OpROR: "ROR",
	OpRCL: "RCL", OpRCR: "RCR",

	OpJMP: "JMP", OpCALL: "CALL", OpRET: "RET",

	OpJO: "JO", OpJNO: "JNO", OpJB: "JB", OpJAE: "JAE", OpJE: "JE", OpJNE: "JNE",
	OpJBE: "JBE", OpJA: "JA", OpJS: "JS", OpJNS: "JNS", OpJP: "JP", OpJNP: "JNP",
	OpJL: "JL", OpJGE: "JGE", OpJLE: "JLE", OpJG: "JG",

	OpCMOVO: "CMOVO", OpCMOVNO: "CMOVNO", OpCMOVB: "CMOVB", OpCMOVAE: "CMOVAE",
	OpCMOVE: "CMOVE", OpCMOVNE: "CMOVNE", OpCMOVBE: "CMOVBE", OpCMOVA: "CMOVA",
	OpCMOVS: "CMOVS", OpCMOVNS: "CMOVNS", OpCMOVP: "CMOVP", OpCMOVNP: "CMOVNP",
	OpCMOVL: "CMOVL", OpCMOVGE: "CMOVGE", OpCMOVLE: "CMOVLE", OpCMOVG: "CMOVG",

	OpSETO: "SETO", OpSETNO: "SETNO", OpSETB: "SETB", OpSETAE: "SETAE",
	OpSETE: "SETE", OpSETNE: "SETNE", OpSETBE: "SETBE", OpSETA: "SETA",
	OpSETS: "SETS", OpSETNS: "SETNS", OpSETP: "SETP", OpSETNP: "SETNP",
	OpSETL: "SETL", OpSETGE: "SETGE", OpSETLE: "SETLE", OpSETG: "SETG",

	OpNOP: "NOP", OpHLT: "HLT", OpSYSCALL: "SYSCALL", OpSYSRET: "SYSRET",
	OpINT: "INT", OpIRET: "IRET", OpCPUID: "CPUID", OpRDTSC: "RDTSC",
	OpRDTSCP: "RDTSCP", OpRDRAND: "RDRAND", OpRDSEED: "RDSEED", OpSWAPGS: "SWAPGS",

	OpSGDT: "SGDT", OpSIDT: "SIDT", OpLGDT: "LGDT", OpLIDT: "LIDT",
	OpSMSW: "SMSW", OpLMSW: "LMSW", OpINVLPG: "INVLPG",
	OpXGETBV: "XGETBV", OpXSETBV: "XSETBV",

	OpFXSAVE: "FXSAVE", OpFXRSTOR: "FXRSTOR", OpLDMXCSR: "LDMXCSR", OpSTMXCSR: "STMXCSR",
	OpXSAVE: "XSAVE", OpXRSTOR: "XRSTOR", OpXSAVEOPT: "XSAVEOPT", OpCLFLUSH: "CLFLUSH",
	OpLFENCE: "LFENCE", OpMFENCE: "MFENCE", OpSFENCE: "SFENCE",

	OpPREFETCHNTA: "PREFETCHNTA", OpPREFETCHT0: "PREFETCHT0",
	OpPREFETCHT1: "PREFETCHT1", OpPREFETCHT2: "PREFETCHT2",

	OpPSRLW: "PSRLW", OpPSRAW: "PSRAW", OpPSLLW: "PSLLW",
	OpPSRLD: "PSRLD", OpPSRAD: "PSRAD", OpPSLLD: "PSLLD",
	OpPSRLQ: "PSRLQ", OpPSRLDQ: "PSRLDQ", OpPSLLQ: "PSLLQ", OpPSLLDQ: "PSLLDQ",

	OpMOVUPS: "MOVUPS", OpMOVUPD: "MOVUPD", OpMOVSS: "MOVSS", OpMOVSD: "MOVSD",

	OpPSHUFB: "PSHUFB", OpPALIGNR: "PALIGNR",

	OpVMOVDQA: "VMOVDQA", OpVMOVDQU: "VMOVDQU",
}

// String renders the opcode's mnemonic, or "?" for OpInvalid / an opcode
// value outside the known range.
func (o Opcode) String() string {
	if m, ok := mnemonicByOpcode[o]; ok {
		return m
	}
	return "?"
}

// opcodeByMnemonic is mnemonicByOpcode inverted, built once at package
// init. fromIntelSyntax (textsyntax.go) uses it to recover an Opcode from
// the mnemonic token at the head of a decoded instruction's text form.
var opcodeByMnemonic = invertMnemonics(mnemonicByOpcode)

func invertMnemonics(m map[Opcode]string) map[string]Opcode {
	out := make(map[string]Opcode, len(m))
	for op, name := range m {
		out[name] = op
	}
	return out
}

// instructionFor returns the checker signature table entry for an Opcode,
// reporting false when InstructionsByMnemonic has no entry for it.
func instructionFor(op Opcode) (instr asm.Instruction, ok bool) {
	instr, ok = InstructionsByMnemonic[op.String()]
	return
}
