package x86_64

import "github.com/keurnel/x86dis/internal/asm"

const (
	PrefixNone        asm.Prefix = 0x00
	PrefixLock        asm.Prefix = 0xF0 // LOCK prefix
	PrefixRepNE       asm.Prefix = 0xF2 // REPNE/REPNZ prefix
	PrefixRep         asm.Prefix = 0xF3 // REP/REPE/REPZ prefix
	PrefixCS          asm.Prefix = 0x2E // CS segment override
	PrefixSS          asm.Prefix = 0x36 // SS segment override
	PrefixDS          asm.Prefix = 0x3E // DS segment override
	PrefixES          asm.Prefix = 0x26 // ES segment override
	PrefixFS          asm.Prefix = 0x64 // FS segment override
	PrefixGS          asm.Prefix = 0x65 // GS segment override
	PrefixOperandSize asm.Prefix = 0x66 // Operand-size override
	PrefixAddressSize asm.Prefix = 0x67 // Address-size override
	PrefixREX         asm.Prefix = 0x40 // REX prefix base (REX.W = 0x48)
	PrefixVEX2        asm.Prefix = 0xC5 // Two-byte VEX lead-in
	PrefixVEX3        asm.Prefix = 0xC4 // Three-byte VEX lead-in
	PrefixEVEX        asm.Prefix = 0x62 // EVEX lead-in
)

// REXMask bits, ORed into the low nibble of a REX prefix byte (0x40-0x4F).
const (
	REXB byte = 1 << 0 // Extends ModR/M.rm, SIB.base, or opcode reg.
	REXX byte = 1 << 1 // Extends SIB.index.
	REXR byte = 1 << 2 // Extends ModR/M.reg.
	REXW byte = 1 << 3 // 64-bit operand size.
)

// IsREX reports whether b is a REX prefix byte (0x40-0x4F). A REX prefix
// must be the last prefix immediately before the opcode; callers are
// responsible for enforcing that ordering.
func IsREX(b byte) bool {
	return b&0xF0 == 0x40
}
