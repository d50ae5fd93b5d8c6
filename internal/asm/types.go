package asm

// Prefix identifies a single legacy/REX/VEX prefix byte recognised during
// prefix parsing. Architectures declare their own named constants against
// this type (see x86_64.PrefixLock, x86_64.PrefixREX, ...).
type Prefix byte

// InstructionEncoding distinguishes the encoding family an instruction form
// belongs to: legacy one/two/three-byte opcodes versus the VEX/EVEX/XOP
// prefix families that carry operand-size and vector-length bits outside
// the opcode map itself.
type InstructionEncoding int
