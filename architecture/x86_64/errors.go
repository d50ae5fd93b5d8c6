package x86_64

import "fmt"

// UnknownOpcodeError reports that the dispatch tables have no entry for the
// given opcode byte sequence.
type UnknownOpcodeError struct {
	Bytes []byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode: % x", e.Bytes)
}

// ReservedOpcodeError reports that the bytes decode to a reserved slot in
// an extension group or opcode map.
type ReservedOpcodeError struct {
	Bytes []byte
}

func (e *ReservedOpcodeError) Error() string {
	return fmt.Sprintf("reserved opcode: % x", e.Bytes)
}

// UnrecognizedPrefixError reports a prefix byte appearing where it should
// have already been consumed, indicating the parser has desynchronized.
type UnrecognizedPrefixError struct {
	Name     string
	Position int
}

func (e *UnrecognizedPrefixError) Error() string {
	return fmt.Sprintf("unrecognized prefix %q at position %d", e.Name, e.Position)
}

// IllegalPrefixCombinationError reports VEX/EVEX combined with a legacy
// prefix, or more than one of {VEX2, VEX3, EVEX} present at once.
type IllegalPrefixCombinationError struct {
	Detail string
}

func (e *IllegalPrefixCombinationError) Error() string {
	return fmt.Sprintf("illegal prefix combination: %s", e.Detail)
}

// DecodingError is the generic malformed-encoding case that doesn't fit one
// of the more specific error kinds.
type DecodingError struct {
	Msg string
}

func (e *DecodingError) Error() string { return e.Msg }

// InvalidInstructionError reports that the checker rejected a syntactically
// decoded instruction: no registered signature matched its operand types.
type InvalidInstructionError struct {
	Msg string
}

func (e *InvalidInstructionError) Error() string { return e.Msg }
