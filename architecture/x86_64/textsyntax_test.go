package x86_64

import "testing"

// assertRoundTrips hand-traces the round-trip law from §8:
// fromIntelSyntax(toIntelSyntax(I)) renders back to the same text I did.
// Struct-level equality isn't the right comparison here: printing collapses
// some distinctions (a suppressed LEA operand's pointer size, a rel8 vs
// rel32 branch displacement's declared width) that the text alone can't
// recover, so string equality on the re-rendered form is the property this
// decoder's text front end actually guarantees.
func assertRoundTrips(t *testing.T, instr Instruction) {
	t.Helper()
	text := instr.IntelSyntax()
	parsed, err := FromIntelSyntax(text)
	if err != nil {
		t.Fatalf("FromIntelSyntax(%q): unexpected error: %v", text, err)
	}
	if got := parsed.IntelSyntax(); got != text {
		t.Fatalf("round trip mismatch: decoded %q, parsed+re-rendered %q", text, got)
	}
}

func TestTextSyntax_RoundTrip_MOVRegReg(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x48, 0x89, 0xd8}))
}

func TestTextSyntax_RoundTrip_MOVRIPRelative(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x48, 0x8b, 0x05, 0x11, 0x22, 0x33, 0x44}))
}

func TestTextSyntax_RoundTrip_LEAWithSIB(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x8d, 0x04, 0x4b}))
}

func TestTextSyntax_RoundTrip_JMPShort(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0xeb, 0xfe}))
}

func TestTextSyntax_RoundTrip_JMPNear(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0xe9, 0x10, 0x00, 0x00, 0x00}))
}

func TestTextSyntax_RoundTrip_ConditionalJump(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x0f, 0x8c, 0x10, 0x00, 0x00, 0x00})) // jl near
}

func TestTextSyntax_RoundTrip_PushImm32(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x68, 0x78, 0x56, 0x34, 0x12}))
}

func TestTextSyntax_RoundTrip_ArithImm8(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x83, 0xc0, 0x05})) // add eax,0x05
}

func TestTextSyntax_RoundTrip_CMOVcc(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x48, 0x0f, 0x44, 0xd8})) // cmove rbx,rax
}

func TestTextSyntax_RoundTrip_SETcc(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0x0f, 0x97, 0xc0})) // seta al
}

func TestTextSyntax_RoundTrip_SIBAbsoluteDisp(t *testing.T) {
	// lea eax,[0x11223344] - no base, no index, absolute displacement only.
	assertRoundTrips(t, decodeHex(t, []byte{0x8d, 0x04, 0x25, 0x44, 0x33, 0x22, 0x11}))
}

func TestTextSyntax_RoundTrip_LOCKPrefix(t *testing.T) {
	assertRoundTrips(t, decodeHex(t, []byte{0xf0, 0x48, 0x01, 0xd8})) // lock add rax,rbx
}

func TestTextSyntax_FromIntelSyntax_UnrecognizedMnemonic(t *testing.T) {
	if _, err := FromIntelSyntax("frobnicate eax,ebx"); err == nil {
		t.Fatalf("expected an error for an unrecognized mnemonic")
	}
}

func TestTextSyntax_FromIntelSyntax_Basic(t *testing.T) {
	instr, err := FromIntelSyntax("mov rax,rbx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if instr.Op != OpMOV {
		t.Fatalf("got op %v, want OpMOV", instr.Op)
	}
	if len(instr.Operands) != 2 {
		t.Fatalf("got %d operands, want 2", len(instr.Operands))
	}
	if instr.Operands[0].(Register).Name != "rax" || instr.Operands[1].(Register).Name != "rbx" {
		t.Fatalf("got operands %+v", instr.Operands)
	}
}
