package x86_64

import "github.com/keurnel/x86dis/internal/bytesource"

// ModRM splits the ModR/M byte into its three fields.
type ModRM struct {
	Mod byte // 2 bits
	Reg byte // 3 bits
	RM  byte // 3 bits
}

func decodeModRM(b byte) ModRM {
	return ModRM{Mod: (b >> 6) & 0x3, Reg: (b >> 3) & 0x7, RM: b & 0x7}
}

// RegCode combines ModRM.Reg with the REX.R / VEX.R extension bit into the
// full 4-bit register index.
func (m ModRM) RegCode(extBit bool) byte {
	if extBit {
		return m.Reg | 0x8
	}
	return m.Reg
}

// RMCode combines ModRM.RM with the REX.B / VEX.B extension bit into the
// full 4-bit register index. Only meaningful when Mod == 0b11.
func (m ModRM) RMCode(extBit bool) byte {
	if extBit {
		return m.RM | 0x8
	}
	return m.RM
}

// SIB splits the SIB byte into its three fields.
type SIB struct {
	Scale byte // 2 bits
	Index byte // 3 bits
	Base  byte // 3 bits
}

func decodeSIB(b byte) SIB {
	return SIB{Scale: (b >> 6) & 0x3, Index: (b >> 3) & 0x7, Base: b & 0x7}
}

func scaleValue(bits byte) int {
	return 1 << bits
}

// AddressingContext carries the extension bits and mode flags the ModR/M
// resolver needs but cannot recover from the ModR/M byte alone.
type AddressingContext struct {
	RexX, RexB       bool // REX.X / REX.B, or the VEX/EVEX equivalents.
	AddressSize32    bool // 67h prefix forces 32-bit addressing.
	SegmentOverride  byte // raw legacy prefix byte, 0 when absent.
	PointerSize      PointerSize
	SuppressPointer  bool // LEA suppresses the "<SIZE> PTR" prefix.
}

// resolveModRM implements §4.7: given a ModR/M byte already read, decides
// whether operand is register-direct (mod == 0b11, returns ok=false so the
// caller resolves a plain register from RM instead) or builds an
// IndirectOperand from the optional SIB byte and displacement.
func resolveModRM(r *bytesource.Reader, m ModRM, ctx AddressingContext) (IndirectOperand, bool, error) {
	if m.Mod == 0b11 {
		return IndirectOperand{}, false, nil
	}

	baseWidth := Register64
	if ctx.AddressSize32 {
		baseWidth = Register32
	}

	var base, index *Register
	var scale int
	var disp *Displacement

	if m.RM == 0b100 {
		sibByte, err := r.Read1()
		if err != nil {
			return IndirectOperand{}, false, err
		}
		sib := decodeSIB(sibByte)

		indexCode := sib.Index
		if ctx.RexX {
			indexCode |= 0x8
		}
		if sib.Index != 0b100 {
			reg := FromCode(indexCode, baseWidth, true)
			if reg.Name != "rsp" && reg.Name != "esp" {
				index = &reg
				scale = scaleValue(sib.Scale)
			}
		}

		baseCode := sib.Base
		if ctx.RexB {
			baseCode |= 0x8
		}
		if m.Mod == 0b00 && sib.Base == 0b101 {
			d, err := r.Read4LE()
			if err != nil {
				return IndirectOperand{}, false, err
			}
			v := int32(d)
			disp = &Displacement{Value: v, Wide: true}
		} else {
			reg := FromCode(baseCode, baseWidth, true)
			base = &reg
		}
	} else if m.Mod == 0b00 && m.RM == 0b101 {
		ipReg := RIP
		if ctx.AddressSize32 {
			ipReg = EIP
		}
		base = &ipReg
		d, err := r.Read4LE()
		if err != nil {
			return IndirectOperand{}, false, err
		}
		v := int32(d)
		disp = &Displacement{Value: v, Wide: true}
	} else {
		rmCode := m.RM
		if ctx.RexB {
			rmCode |= 0x8
		}
		reg := FromCode(rmCode, baseWidth, true)
		base = &reg
	}

	if disp == nil {
		switch m.Mod {
		case 0b01:
			d, err := r.Read1()
			if err != nil {
				return IndirectOperand{}, false, err
			}
			v := int32(int8(d))
			disp = &Displacement{Value: v, Wide: false}
		case 0b10:
			d, err := r.Read4LE()
			if err != nil {
				return IndirectOperand{}, false, err
			}
			v := int32(d)
			disp = &Displacement{Value: v, Wide: true}
		}
	}

	var segment *Register
	if ctx.SegmentOverride != 0 {
		seg := segmentRegisterForOverride(ctx.SegmentOverride)
		segment = &seg
	}

	operand := NewIndirectOperand(ctx.PointerSize, base, index, scale, disp, segment)
	operand.Suppress = ctx.SuppressPointer
	return operand, true, nil
}

func segmentRegisterForOverride(b byte) Register {
	switch b {
	case byte(PrefixCS):
		return CS
	case byte(PrefixSS):
		return SS
	case byte(PrefixDS):
		return DS
	case byte(PrefixES):
		return ES
	case byte(PrefixFS):
		return FS
	case byte(PrefixGS):
		return GS
	default:
		return DS
	}
}
