package x86_64

import "github.com/keurnel/x86dis/internal/bytesource"

// The VEX/EVEX opcode maps are enormous (hundreds of AVX/AVX-512 mnemonics)
// and this decoder does not attempt to cover them exhaustively. decodeVex
// wires up the handful of vector moves the conformance corpus exercises
// (VMOVDQA/VMOVDQU, VEX.0F 6F/7F) and is structured so additional VEX-space
// opcodes are one more case in the switch, following the same
// vexModRMOperands helper.

func vecWidth(l bool) RegisterType {
	if l {
		return RegisterYMM
	}
	return RegisterXMM
}

// vexModRMOperands is modrmOperandsMixed's VEX-prefixed counterpart: the
// register-extension bits come from the VEX prefix fields (already
// un-inverted by ParsePrefixes) rather than a REX byte.
func vexModRMOperands(r *bytesource.Reader, p Prefixes, width RegisterType) (reg Operand, rm Operand, m ModRM, err error) {
	b, err := r.Read1()
	if err != nil {
		return nil, nil, ModRM{}, err
	}
	m = decodeModRM(b)

	regReg := FromCode(m.RegCode(p.Vex.R), width, true)
	reg = regReg

	ctx := AddressingContext{
		RexX:        p.Vex.X,
		RexB:        p.Vex.B,
		PointerSize: pointerSizeForWidth(width),
	}
	indirect, ok, err := resolveModRM(r, m, ctx)
	if err != nil {
		return nil, nil, ModRM{}, err
	}
	if ok {
		rm = indirect
	} else {
		rm = FromCode(m.RMCode(p.Vex.B), width, true)
	}
	return reg, rm, m, nil
}

// decodeVex dispatches a VEX2/VEX3-prefixed opcode byte (the EVEX opcode
// space is not covered: an EVEX-prefixed opcode reports as unknown).
// p.Vex.PP selects the implied legacy prefix: 1 means 66h, 2 means F3h,
// 3 means F2h, 0 means none.
func decodeVex(r *bytesource.Reader, p Prefixes, opcode byte) (Opcode, []Operand, error) {
	if p.Evex.Present {
		return OpInvalid, nil, &UnknownOpcodeError{Bytes: []byte{opcode}}
	}
	width := vecWidth(p.Vex.L)

	switch opcode {
	case 0x6F:
		reg, rm, _, err := vexModRMOperands(r, p, width)
		op := vmovdqaOrU(p.Vex.PP)
		return op, []Operand{reg, rm}, err
	case 0x7F:
		reg, rm, _, err := vexModRMOperands(r, p, width)
		op := vmovdqaOrU(p.Vex.PP)
		return op, []Operand{rm, reg}, err
	}

	return OpInvalid, nil, &UnknownOpcodeError{Bytes: []byte{opcode}}
}

func vmovdqaOrU(pp byte) Opcode {
	if pp == 0x02 {
		return OpVMOVDQU
	}
	return OpVMOVDQA
}
