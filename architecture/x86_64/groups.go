package x86_64

// Several one- and two-byte opcodes do not name an operation directly:
// the ModR/M.reg field selects among a small family of related
// instructions sharing one opcode byte. These are the "extension groups"
// the Intel manual numbers 1 through 16; groups.go covers the subset this
// decoder dispatches through (§4.6).

// group1 maps ModRM.reg (0-7) to the arithmetic opcode sharing the
// 80/81/83 opcode bytes: ADD, OR, ADC, SBB, AND, SUB, XOR, CMP.
var group1 = [8]Opcode{OpADD, OpOR, OpADC, OpSBB, OpAND, OpSUB, OpXOR, OpCMP}

// group2 maps ModRM.reg to the shift/rotate opcode sharing the
// C0/C1/D0/D1/D2/D3 opcode bytes: ROL, ROR, RCL, RCR, SHL, SHR, SAR.
// Reg 6 has no mnemonic and is reserved.
var group2 = [8]Opcode{OpROL, OpROR, OpRCL, OpRCR, OpSHL, OpSHR, OpInvalid, OpSAR}

// group3 maps ModRM.reg to the unary/test opcode sharing the F6/F7
// opcode bytes. Reg 0 and 1 both mean TEST r/m, imm (the second slot is a
// reserved alias of the first in the manual); this table exposes only
// reg 0 as TEST since that's the encoding every assembler emits.
var group3 = [8]Opcode{OpTEST, OpInvalid, OpNOT, OpNEG, OpMUL, OpIMUL, OpDIV, OpIDIV}

// group4 maps ModRM.reg to the byte INC/DEC sharing the FE opcode byte.
// Reg 2-7 are reserved: FE never reaches CALL/JMP/PUSH, those only exist
// on the wider FF opcode byte (group5).
var group4 = [8]Opcode{OpINC, OpDEC, OpInvalid, OpInvalid, OpInvalid, OpInvalid, OpInvalid, OpInvalid}

// group5 maps ModRM.reg to the opcode sharing the FF opcode byte: INC,
// DEC, near CALL (reg 2), near JMP (reg 4) and PUSH (reg 6). Reg 3 (CALL
// far), reg 5 (JMP far) and reg 7 are not represented and report as
// reserved: this decoder only reaches near forms.
var group5 = [8]Opcode{OpINC, OpDEC, OpCALL, OpInvalid, OpJMP, OpInvalid, OpPUSH, OpInvalid}

// group7 covers 0F 01, a "group of groups": most reg values address a
// memory-only system descriptor-table instruction, but when ModRM.mod==11
// (no memory operand) a handful of reg/rm combinations instead name a
// register-only instruction (XGETBV/XSETBV, SWAPGS, RDTSCP). decodeGroup7
// resolves both cases; there is no flat [8]Opcode table for this group.
func decodeGroup7(mod, reg, rm byte) (Opcode, bool) {
	if mod == 3 {
		switch {
		case reg == 2 && rm == 0:
			return OpXGETBV, true
		case reg == 2 && rm == 1:
			return OpXSETBV, true
		case reg == 4:
			return OpSMSW, true
		case reg == 6:
			return OpLMSW, true
		case reg == 7 && rm == 0:
			return OpSWAPGS, true
		case reg == 7 && rm == 1:
			return OpRDTSCP, true
		default:
			return OpInvalid, false
		}
	}
	switch reg {
	case 0:
		return OpSGDT, true
	case 1:
		return OpSIDT, true
	case 2:
		return OpLGDT, true
	case 3:
		return OpLIDT, true
	case 4:
		return OpSMSW, true
	case 6:
		return OpLMSW, true
	case 7:
		return OpINVLPG, true
	default:
		return OpInvalid, false
	}
}

// group8 maps ModRM.reg to the bit-test opcode sharing the 0F BA opcode
// byte: BT, BTS, BTR, BTC. Reg 0-3 are reserved (those bit-test forms only
// exist in the non-immediate 0F A3/AB/B3/BB encodings, outside this group).
var group8 = [8]Opcode{OpInvalid, OpInvalid, OpInvalid, OpInvalid, OpBT, OpBTS, OpBTR, OpBTC}

// group9 covers 0F C7: ModRM.mod==11 selects RDRAND (reg 6) or RDSEED
// (reg 7); the memory form (mod!=11, reg 1) is reported as CMPXCHG8B,
// whether or not REX.W selects the 16-byte variant.
func decodeGroup9(mod, reg byte) (Opcode, bool) {
	if mod == 3 {
		switch reg {
		case 6:
			return OpRDRAND, true
		case 7:
			return OpRDSEED, true
		default:
			return OpInvalid, false
		}
	}
	if reg == 1 {
		return OpCMPXCHG8B, true
	}
	return OpInvalid, false
}

// group11 maps ModRM.reg to the opcode sharing the C6/C7 opcode bytes.
// Only reg 0 (MOV r/m, imm) is defined; other values are reserved.
var group11 = [8]Opcode{OpMOV, OpInvalid, OpInvalid, OpInvalid, OpInvalid, OpInvalid, OpInvalid, OpInvalid}

// group12 maps ModRM.reg to the packed-word shift opcode sharing the
// 0F 71 opcode byte (an immediate-count MMX/SSE shift, register form
// only). Reg 2 SRL, 4 SRA, 6 SLL; the rest are reserved.
var group12 = [8]Opcode{OpInvalid, OpInvalid, OpPSRLW, OpInvalid, OpPSRAW, OpInvalid, OpPSLLW, OpInvalid}

// group13 is group12's doubleword counterpart, sharing the 0F 72 opcode
// byte: reg 2 PSRLD, 4 PSRAD, 6 PSLLD.
var group13 = [8]Opcode{OpInvalid, OpInvalid, OpPSRLD, OpInvalid, OpPSRAD, OpInvalid, OpPSLLD, OpInvalid}

// group14 is the quadword/double-quadword shift family sharing the 0F 73
// opcode byte: reg 2 PSRLQ, 3 PSRLDQ, 6 PSLLQ, 7 PSLLDQ.
var group14 = [8]Opcode{OpInvalid, OpInvalid, OpPSRLQ, OpPSRLDQ, OpInvalid, OpInvalid, OpPSLLQ, OpPSLLDQ}

// group15 covers 0F AE, another "group of groups": reg 0-4 are memory-form
// FPU/SSE state instructions (FXSAVE, FXRSTOR, LDMXCSR, STMXCSR, XSAVE),
// while reg 5-7 are register-only fence/flush instructions only when
// ModRM.mod==11 (otherwise they're the memory-form XRSTOR/XSAVEOPT/
// CLFLUSH). decodeGroup15 resolves both, like group7/group9.
func decodeGroup15(mod, reg byte) (Opcode, bool) {
	if mod == 3 {
		switch reg {
		case 5:
			return OpLFENCE, true
		case 6:
			return OpMFENCE, true
		case 7:
			return OpSFENCE, true
		default:
			return decodeGroup15Mem(reg)
		}
	}
	return decodeGroup15Mem(reg)
}

func decodeGroup15Mem(reg byte) (Opcode, bool) {
	switch reg {
	case 0:
		return OpFXSAVE, true
	case 1:
		return OpFXRSTOR, true
	case 2:
		return OpLDMXCSR, true
	case 3:
		return OpSTMXCSR, true
	case 4:
		return OpXSAVE, true
	case 5:
		return OpXRSTOR, true
	case 6:
		return OpXSAVEOPT, true
	case 7:
		return OpCLFLUSH, true
	default:
		return OpInvalid, false
	}
}

// group16 maps ModRM.reg to the software-prefetch hint sharing the 0F 18
// opcode byte (a memory-only, no-op-on-non-supporting-CPUs hint). Reg 4-7
// are architecturally reserved NOP-hint slots this decoder doesn't name.
var group16 = [8]Opcode{OpPREFETCHNTA, OpPREFETCHT0, OpPREFETCHT1, OpPREFETCHT2, OpInvalid, OpInvalid, OpInvalid, OpInvalid}

// groupOpcode resolves one of the flat [8]Opcode tables above by ModRM.reg,
// reporting false for a reserved slot.
func groupOpcode(table [8]Opcode, reg byte) (Opcode, bool) {
	op := table[reg&0x7]
	return op, op != OpInvalid
}
