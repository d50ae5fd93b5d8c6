package x86_64

import "github.com/keurnel/x86dis/internal/bytesource"

// operandWidth resolves the default operand-size register width from the
// REX.W bit and the 66h operand-size override, per §4.3: REX.W wins,
// otherwise 66h selects 16-bit, otherwise 64-bit mode's default of 32-bit
// applies.
func operandWidth(p Prefixes) RegisterType {
	switch {
	case p.Rex.W:
		return Register64
	case p.OperandSizeOverride:
		return Register16
	default:
		return Register32
	}
}

func pointerSizeForWidth(width RegisterType) PointerSize {
	switch width {
	case Register8:
		return PointerSizeByte
	case Register16:
		return PointerSizeWord
	case Register32:
		return PointerSizeDword
	case Register64:
		return PointerSizeQword
	default:
		return PointerSizeNone
	}
}

func immWidthForRegisterWidth(width RegisterType) ImmWidth {
	switch width {
	case Register8:
		return ImmWidth8
	case Register16:
		return ImmWidth16
	case Register64:
		return ImmWidth64
	default:
		return ImmWidth32
	}
}

// arithImmWidth is immWidthForRegisterWidth capped at 32 bits: every
// immediate-form arithmetic/test/mov-to-r/m encoding sign-extends a
// 16- or 32-bit immediate into the operand size, even under REX.W — only
// the dedicated MOV r64, imm64 form (0xB8-0xBF with REX.W) ever encodes a
// full 64-bit immediate.
func arithImmWidth(width RegisterType) ImmWidth {
	if width == Register16 {
		return ImmWidth16
	}
	return ImmWidth32
}

// modrmOperands reads a ModR/M byte (and its SIB/displacement, if any) and
// returns the reg-field operand and the rm-field operand, in that order.
// Callers reorder them into Intel destination-first order themselves,
// since that order differs by opcode (Ev,Gv vs Gv,Ev).
func modrmOperands(r *bytesource.Reader, p Prefixes, width RegisterType) (reg Operand, rm Operand, m ModRM, err error) {
	return modrmOperandsMixed(r, p, width, width)
}

// modrmOperandsMixed is modrmOperands generalized to a reg-field width
// distinct from the rm-field width, needed by MOVZX/MOVSX where the
// destination register is wider than the source r/m (§4.5).
func modrmOperandsMixed(r *bytesource.Reader, p Prefixes, regWidth, rmWidth RegisterType) (reg Operand, rm Operand, m ModRM, err error) {
	b, err := r.Read1()
	if err != nil {
		return nil, nil, ModRM{}, err
	}
	m = decodeModRM(b)

	regReg := FromCode(m.RegCode(p.Rex.R), regWidth, p.Rex.Present)
	reg = regReg

	ctx := AddressingContext{
		RexX:            p.Rex.X,
		RexB:            p.Rex.B,
		AddressSize32:   p.AddressSizeOverride,
		SegmentOverride: p.SegmentOverride,
		PointerSize:     pointerSizeForWidth(rmWidth),
	}
	indirect, ok, err := resolveModRM(r, m, ctx)
	if err != nil {
		return nil, nil, ModRM{}, err
	}
	if ok {
		rm = indirect
	} else {
		rm = FromCode(m.RMCode(p.Rex.B), rmWidth, p.Rex.Present)
	}
	return reg, rm, m, nil
}

// readImm reads an immediate of the given width, little-endian, and wraps
// it in an Immediate operand.
func readImm(r *bytesource.Reader, width ImmWidth) (Immediate, error) {
	switch width {
	case ImmWidth8:
		b, err := r.Read1()
		if err != nil {
			return Immediate{}, err
		}
		return NewImmediate(int64(b), ImmWidth8), nil
	case ImmWidth16:
		v, err := r.Read2LE()
		if err != nil {
			return Immediate{}, err
		}
		return NewImmediate(int64(v), ImmWidth16), nil
	case ImmWidth64:
		v, err := r.Read8LE()
		if err != nil {
			return Immediate{}, err
		}
		return NewImmediate(int64(v), ImmWidth64), nil
	default:
		v, err := r.Read4LE()
		if err != nil {
			return Immediate{}, err
		}
		return NewImmediate(int64(v), ImmWidth32), nil
	}
}

// readRel reads a signed rel8 or rel32 branch displacement.
func readRel(r *bytesource.Reader, width ImmWidth) (RelativeOffset, error) {
	switch width {
	case ImmWidth8:
		b, err := r.Read1()
		if err != nil {
			return RelativeOffset{}, err
		}
		return RelativeOffset{Value: int64(int8(b)), Width_: ImmWidth8}, nil
	default:
		v, err := r.Read4LE()
		if err != nil {
			return RelativeOffset{}, err
		}
		return RelativeOffset{Value: int64(int32(v)), Width_: ImmWidth32}, nil
	}
}

// arithRow describes one of the eight 00h-3Dh "basic arithmetic" opcode
// rows (ADD, OR, ADC, SBB, AND, SUB, XOR, CMP). Every row follows the same
// six-opcode regularity: +0 r/m8,r8; +1 r/m32,r32; +2 r8,r/m8; +3
// r32,r/m32; +4 al,imm8; +5 eax,imm32 (§4.4).
type arithRow struct {
	base byte
	op   Opcode
}

var arithRows = []arithRow{
	{0x00, OpADD}, {0x08, OpOR}, {0x10, OpADC}, {0x18, OpSBB},
	{0x20, OpAND}, {0x28, OpSUB}, {0x30, OpXOR}, {0x38, OpCMP},
}

// decodeSingleByte dispatches the first opcode byte (already consumed)
// of a legacy (non-0F) instruction, reading any ModR/M/SIB/displacement/
// immediate bytes the form requires and returning the fully-built
// Instruction body (Op and Operands; the driver fills in Offset/Length).
func decodeSingleByte(r *bytesource.Reader, p Prefixes, opcode byte) (Opcode, []Operand, error) {
	width := operandWidth(p)

	for _, row := range arithRows {
		switch opcode {
		case row.base:
			reg, rm, _, err := modrmOperands(r, p, Register8)
			return row.op, []Operand{rm, reg}, err
		case row.base + 1:
			reg, rm, _, err := modrmOperands(r, p, width)
			return row.op, []Operand{rm, reg}, err
		case row.base + 2:
			reg, rm, _, err := modrmOperands(r, p, Register8)
			return row.op, []Operand{reg, rm}, err
		case row.base + 3:
			reg, rm, _, err := modrmOperands(r, p, width)
			return row.op, []Operand{reg, rm}, err
		case row.base + 4:
			imm, err := readImm(r, ImmWidth8)
			return row.op, []Operand{AL, imm}, err
		case row.base + 5:
			imm, err := readImm(r, arithImmWidth(width))
			accum := FromCode(0, width, p.Rex.Present)
			return row.op, []Operand{accum, imm}, err
		}
	}

	switch {
	case opcode >= 0x50 && opcode <= 0x57:
		reg := FromCode((opcode-0x50)|rexBit(p.Rex.B), Register64, true)
		return OpPUSH, []Operand{reg}, nil
	case opcode >= 0x58 && opcode <= 0x5F:
		reg := FromCode((opcode-0x58)|rexBit(p.Rex.B), Register64, true)
		return OpPOP, []Operand{reg}, nil
	case opcode >= 0x70 && opcode <= 0x7F:
		rel, err := readRel(r, ImmWidth8)
		return condJumpOpcode(opcode - 0x70), []Operand{rel}, err
	case opcode >= 0xB0 && opcode <= 0xB7:
		reg := FromCode((opcode-0xB0)|rexBit(p.Rex.B), Register8, p.Rex.Present)
		imm, err := readImm(r, ImmWidth8)
		return OpMOV, []Operand{reg, imm}, err
	case opcode >= 0xB8 && opcode <= 0xBF:
		reg := FromCode((opcode-0xB8)|rexBit(p.Rex.B), width, p.Rex.Present)
		immWidth := immWidthForRegisterWidth(width)
		if width == Register64 {
			immWidth = ImmWidth64
		}
		imm, err := readImm(r, immWidth)
		return OpMOV, []Operand{reg, imm}, err
	case opcode >= 0x91 && opcode <= 0x97:
		reg := FromCode((opcode-0x90)|rexBit(p.Rex.B), width, p.Rex.Present)
		accum := FromCode(0, width, p.Rex.Present)
		return OpXCHG, []Operand{accum, reg}, nil
	}

	switch opcode {
	case 0x88:
		reg, rm, _, err := modrmOperands(r, p, Register8)
		return OpMOV, []Operand{rm, reg}, err
	case 0x89:
		reg, rm, _, err := modrmOperands(r, p, width)
		return OpMOV, []Operand{rm, reg}, err
	case 0x8A:
		reg, rm, _, err := modrmOperands(r, p, Register8)
		return OpMOV, []Operand{reg, rm}, err
	case 0x8B:
		reg, rm, _, err := modrmOperands(r, p, width)
		return OpMOV, []Operand{reg, rm}, err
	case 0x8D:
		reg, rm, m, err := modrmOperands(r, p, width)
		if err == nil {
			if indirect, ok := rm.(IndirectOperand); ok {
				indirect.Suppress = true
				rm = indirect
			}
			_ = m
		}
		return OpLEA, []Operand{reg, rm}, err
	case 0x86:
		reg, rm, _, err := modrmOperands(r, p, Register8)
		return OpXCHG, []Operand{rm, reg}, err
	case 0x87:
		reg, rm, _, err := modrmOperands(r, p, width)
		return OpXCHG, []Operand{rm, reg}, err
	case 0x90:
		return OpNOP, nil, nil
	case 0xA8:
		imm, err := readImm(r, ImmWidth8)
		return OpTEST, []Operand{AL, imm}, err
	case 0xA9:
		imm, err := readImm(r, arithImmWidth(width))
		accum := FromCode(0, width, p.Rex.Present)
		return OpTEST, []Operand{accum, imm}, err
	case 0x80:
		reg, rm, m, err := modrmOperands(r, p, Register8)
		_ = reg
		op, ok := groupOpcode(group1, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0x81:
		reg, rm, m, err := modrmOperands(r, p, width)
		_ = reg
		op, ok := groupOpcode(group1, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, arithImmWidth(width))
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0x83:
		reg, rm, m, err := modrmOperands(r, p, width)
		_ = reg
		op, ok := groupOpcode(group1, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0xC0:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group2, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0xC1:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := groupOpcode(group2, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0xD0:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group2, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		return op, []Operand{rm, NewImmediate(1, ImmWidth8)}, err
	case 0xD1:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := groupOpcode(group2, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		return op, []Operand{rm, NewImmediate(1, ImmWidth8)}, err
	case 0xD2:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group2, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		return op, []Operand{rm, CL}, err
	case 0xD3:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := groupOpcode(group2, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		return op, []Operand{rm, CL}, err
	case 0xF6:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group3, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		if op == OpTEST {
			imm, err2 := readImm(r, ImmWidth8)
			if err == nil {
				err = err2
			}
			return op, []Operand{rm, imm}, err
		}
		return op, []Operand{rm}, err
	case 0xF7:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := groupOpcode(group3, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		if op == OpTEST {
			imm, err2 := readImm(r, arithImmWidth(width))
			if err == nil {
				err = err2
			}
			return op, []Operand{rm, imm}, err
		}
		return op, []Operand{rm}, err
	case 0xFE:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group4, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		return op, []Operand{rm}, err
	case 0xFF:
		// Group5 reg values 2-6 (CALL/JMP/PUSH) are always 64-bit in
		// 64-bit mode; only INC/DEC (reg 0-1) honor the operand-size
		// prefix. Peek the ModR/M byte to learn reg before deciding.
		peeked, err := r.Peek1()
		if err != nil {
			return OpInvalid, nil, err
		}
		opWidth := width
		if regField := (peeked >> 3) & 0x7; regField >= 2 {
			opWidth = Register64
		}
		_, rm, m, err := modrmOperands(r, p, opWidth)
		op, ok := groupOpcode(group5, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		return op, []Operand{rm}, err
	case 0xC6:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group11, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0xC7:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := groupOpcode(group11, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{opcode}}
		}
		imm, err2 := readImm(r, arithImmWidth(width))
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0x6A:
		imm, err := readImm(r, ImmWidth8)
		return OpPUSH, []Operand{imm}, err
	case 0x68:
		imm, err := readImm(r, ImmWidth32)
		return OpPUSH, []Operand{imm}, err
	case 0xEB:
		rel, err := readRel(r, ImmWidth8)
		return OpJMP, []Operand{rel}, err
	case 0xE9:
		rel, err := readRel(r, ImmWidth32)
		return OpJMP, []Operand{rel}, err
	case 0xE8:
		rel, err := readRel(r, ImmWidth32)
		return OpCALL, []Operand{rel}, err
	case 0xC3:
		return OpRET, nil, nil
	case 0xC2:
		imm, err := readImm(r, ImmWidth16)
		return OpRET, []Operand{imm}, err
	case 0xCD:
		imm, err := readImm(r, ImmWidth8)
		return OpINT, []Operand{imm}, err
	case 0xCF:
		return OpIRET, nil, nil
	case 0xF4:
		return OpHLT, nil, nil
	}

	return OpInvalid, nil, &UnknownOpcodeError{Bytes: []byte{opcode}}
}

// decodeTwoByte dispatches the second byte of a 0F-escaped opcode.
func decodeTwoByte(r *bytesource.Reader, p Prefixes, second byte) (Opcode, []Operand, error) {
	width := operandWidth(p)

	switch {
	case second >= 0x80 && second <= 0x8F:
		rel, err := readRel(r, ImmWidth32)
		return condJumpOpcode(second - 0x80), []Operand{rel}, err
	case second >= 0x40 && second <= 0x4F:
		reg, rm, _, err := modrmOperands(r, p, width)
		return condMoveOpcodes[second-0x40], []Operand{reg, rm}, err
	case second >= 0x90 && second <= 0x9F:
		_, rm, _, err := modrmOperands(r, p, Register8)
		return condSetOpcodes[second-0x90], []Operand{rm}, err
	}

	switch second {
	case 0xB6:
		reg, rm, _, err := modrmOperandsMixed(r, p, width, Register8)
		return OpMOVZX, []Operand{reg, rm}, err
	case 0xB7:
		reg, rm, _, err := modrmOperandsMixed(r, p, width, Register16)
		return OpMOVZX, []Operand{reg, rm}, err
	case 0xBE:
		reg, rm, _, err := modrmOperandsMixed(r, p, width, Register8)
		return OpMOVSX, []Operand{reg, rm}, err
	case 0xBF:
		reg, rm, _, err := modrmOperandsMixed(r, p, width, Register16)
		return OpMOVSX, []Operand{reg, rm}, err
	case 0xAF:
		reg, rm, _, err := modrmOperands(r, p, width)
		return OpIMUL, []Operand{reg, rm}, err
	case 0x05:
		return OpSYSCALL, nil, nil
	case 0x07:
		return OpSYSRET, nil, nil
	case 0xA2:
		return OpCPUID, nil, nil
	case 0x31:
		return OpRDTSC, nil, nil
	case 0x10:
		reg, rm, _, err := modrmOperands(r, p, RegisterXMM)
		return sseMoveOpcode(p), []Operand{reg, rm}, err
	case 0x11:
		reg, rm, _, err := modrmOperands(r, p, RegisterXMM)
		return sseMoveOpcode(p), []Operand{rm, reg}, err
	case 0x18:
		_, rm, m, err := modrmOperands(r, p, Register8)
		op, ok := groupOpcode(group16, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		return op, []Operand{rm}, err
	case 0x01:
		_, rm, m, err := modrmOperands(r, p, Register32)
		op, ok := decodeGroup7(m.Mod, m.Reg, m.RM)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		switch op {
		case OpXGETBV, OpXSETBV, OpSWAPGS, OpRDTSCP:
			return op, nil, err
		default:
			return op, []Operand{rm}, err
		}
	case 0xBA:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := groupOpcode(group8, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0xC7:
		_, rm, m, err := modrmOperands(r, p, width)
		op, ok := decodeGroup9(m.Mod, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		return op, []Operand{rm}, err
	case 0x71:
		_, rm, m, err := modrmOperands(r, p, RegisterXMM)
		op, ok := groupOpcode(group12, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0x72:
		_, rm, m, err := modrmOperands(r, p, RegisterXMM)
		op, ok := groupOpcode(group13, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0x73:
		_, rm, m, err := modrmOperands(r, p, RegisterXMM)
		op, ok := groupOpcode(group14, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return op, []Operand{rm, imm}, err
	case 0xAE:
		_, rm, m, err := modrmOperands(r, p, Register32)
		op, ok := decodeGroup15(m.Mod, m.Reg)
		if !ok {
			return OpInvalid, nil, &ReservedOpcodeError{Bytes: []byte{0x0F, second}}
		}
		switch op {
		case OpLFENCE, OpMFENCE, OpSFENCE:
			return op, nil, err
		default:
			return op, []Operand{rm}, err
		}
	case 0x38:
		third, err := r.Read1()
		if err != nil {
			return OpInvalid, nil, err
		}
		return decodeThreeByte38(r, p, third)
	case 0x3A:
		third, err := r.Read1()
		if err != nil {
			return OpInvalid, nil, err
		}
		return decodeThreeByte3A(r, p, third)
	}

	return OpInvalid, nil, &UnknownOpcodeError{Bytes: []byte{0x0F, second}}
}

// sseMoveOpcode resolves the legacy-prefix-modulated MOVUPS family (0F
// 10/11, §4.5): the mandatory prefix (none, 66h, F3h, F2h) selects the
// packed/scalar, single/double-precision variant sharing one opcode byte,
// the same modulation vex.go's vmovdqaOrU does for VEX.PP.
func sseMoveOpcode(p Prefixes) Opcode {
	switch {
	case p.RepNE:
		return OpMOVSD
	case p.Rep:
		return OpMOVSS
	case p.OperandSizeOverride:
		return OpMOVUPD
	default:
		return OpMOVUPS
	}
}

// decodeThreeByte38 dispatches the third byte of a 0F 38-escaped opcode
// (Table A4 in the manual's numbering). Only the handful of mnemonics the
// conformance corpus exercises are wired; anything else is unknown rather
// than guessed at.
func decodeThreeByte38(r *bytesource.Reader, p Prefixes, third byte) (Opcode, []Operand, error) {
	width := operandWidth(p)
	switch third {
	case 0x00:
		reg, rm, _, err := modrmOperands(r, p, RegisterXMM)
		return OpPSHUFB, []Operand{reg, rm}, err
	case 0xF0:
		reg, rm, _, err := modrmOperands(r, p, width)
		return OpMOVBE, []Operand{reg, rm}, err
	case 0xF1:
		reg, rm, _, err := modrmOperands(r, p, width)
		return OpMOVBE, []Operand{rm, reg}, err
	}
	return OpInvalid, nil, &UnknownOpcodeError{Bytes: []byte{0x0F, 0x38, third}}
}

// decodeThreeByte3A dispatches the third byte of a 0F 3A-escaped opcode
// (Table A5). Like decodeThreeByte38, only a representative mnemonic is
// wired (PALIGNR): the full table runs to dozens of AVX-only entries this
// decoder doesn't attempt.
func decodeThreeByte3A(r *bytesource.Reader, p Prefixes, third byte) (Opcode, []Operand, error) {
	switch third {
	case 0x0F:
		reg, rm, _, err := modrmOperands(r, p, RegisterXMM)
		imm, err2 := readImm(r, ImmWidth8)
		if err == nil {
			err = err2
		}
		return OpPALIGNR, []Operand{reg, rm, imm}, err
	}
	return OpInvalid, nil, &UnknownOpcodeError{Bytes: []byte{0x0F, 0x3A, third}}
}

func rexBit(set bool) byte {
	if set {
		return 0x8
	}
	return 0
}

// condJumpOpcodes, condMoveOpcodes, and condSetOpcodes all share the same
// 16-entry condition-code ordering (the low nibble of a Jcc/CMOVcc/SETcc
// opcode byte): O, NO, B/C/NAE, AE/NB/NC, E/Z, NE/NZ, BE/NA, A/NBE, S, NS,
// P/PE, NP/PO, L/NGE, GE/NL, LE/NG, G/NLE.
var condJumpOpcodes = [16]Opcode{
	OpJO, OpJNO, OpJB, OpJAE, OpJE, OpJNE, OpJBE, OpJA,
	OpJS, OpJNS, OpJP, OpJNP, OpJL, OpJGE, OpJLE, OpJG,
}

var condMoveOpcodes = [16]Opcode{
	OpCMOVO, OpCMOVNO, OpCMOVB, OpCMOVAE, OpCMOVE, OpCMOVNE, OpCMOVBE, OpCMOVA,
	OpCMOVS, OpCMOVNS, OpCMOVP, OpCMOVNP, OpCMOVL, OpCMOVGE, OpCMOVLE, OpCMOVG,
}

var condSetOpcodes = [16]Opcode{
	OpSETO, OpSETNO, OpSETB, OpSETAE, OpSETE, OpSETNE, OpSETBE, OpSETA,
	OpSETS, OpSETNS, OpSETP, OpSETNP, OpSETL, OpSETGE, OpSETLE, OpSETG,
}

// condJumpOpcode maps the low nibble of a Jcc opcode (0x70-0x7F or
// 0x80-0x8F) to its Opcode.
func condJumpOpcode(nibble byte) Opcode {
	if int(nibble) < len(condJumpOpcodes) {
		return condJumpOpcodes[nibble]
	}
	return OpInvalid
}
