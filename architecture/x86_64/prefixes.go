package x86_64

import "github.com/keurnel/x86dis/internal/bytesource"

// REX carries the four extension bits of a REX prefix. Present is false
// when no REX byte was emitted, in which case all bits read as zero.
type REX struct {
	Present bool
	W, R, X, B bool
}

// VEX carries the fields common to the two- and three-byte VEX encodings.
// Two-byte VEX (0xC5) never sets X or B; see ParsePrefixes.
type VEX struct {
	Present bool
	ThreeByte bool
	R, X, B   bool // Stored already inverted back to "set means 1".
	W         bool // Only meaningful for VEX3; VEX2 always implies W=0.
	Vvvv      byte // 4-bit inverted source-register field, already un-inverted.
	L         bool // Vector length: false=128-bit, true=256-bit.
	PP        byte // Implied legacy prefix: 0=none,1=66,2=F3,3=F2.
	MMMMM     byte // Opcode map selector (VEX3 only; VEX2 implies 1, the 0F map).
}

// EVEX carries the AVX-512 prefix fields: the VEX-equivalent bits plus a
// mask register, zeroing behavior, and broadcast flag.
type EVEX struct {
	Present bool
	R, X, B, Rp bool
	W           bool
	Vvvv        byte
	PP          byte
	MMM         byte
	Aaa         byte // Mask register selector, k0 meaning "no masking".
	Z           bool // Zeroing- vs merging-masking.
	L           bool
	LL          byte // Full 2-bit vector length (512-bit needs the extra bit).
	Broadcast   bool
}

// Prefixes is the merged view of every prefix byte consumed ahead of an
// opcode. At most one of {VEX2-shaped, VEX3-shaped, EVEX} may be present;
// ParsePrefixes enforces that exclusivity.
type Prefixes struct {
	Lock       bool
	RepNE      bool // F2
	Rep        bool // F3
	SegmentOverride byte // raw legacy prefix byte (PrefixCS, PrefixSS, ...); 0 when absent
	OperandSizeOverride bool // 66h
	AddressSizeOverride bool // 67h
	Rex  REX
	Vex  VEX
	Evex EVEX
}

// HasVectorPrefix reports whether a VEX2, VEX3, or EVEX prefix is present.
func (p Prefixes) HasVectorPrefix() bool {
	return p.Vex.Present || p.Evex.Present
}

// HasLegacyPrefix reports whether any legacy (non-REX, non-vector) prefix
// byte was consumed.
func (p Prefixes) HasLegacyPrefix() bool {
	return p.Lock || p.RepNE || p.Rep || p.SegmentOverride != 0 ||
		p.OperandSizeOverride || p.AddressSizeOverride
}

// ParsePrefixes consumes zero or more prefix bytes, in any order, stopping
// at the first non-prefix byte and rewinding the reader to it (§4.2).
func ParsePrefixes(r *bytesource.Reader) (Prefixes, error) {
	var p Prefixes

	for {
		b, err := r.Peek1()
		if err != nil {
			return p, err
		}
		switch b {
		case byte(PrefixLock):
			p.Lock = true
		case byte(PrefixRepNE):
			p.RepNE = true
		case byte(PrefixRep):
			p.Rep = true
		case byte(PrefixCS), byte(PrefixSS), byte(PrefixDS), byte(PrefixES), byte(PrefixFS), byte(PrefixGS):
			p.SegmentOverride = b
		case byte(PrefixOperandSize):
			p.OperandSizeOverride = true
		case byte(PrefixAddressSize):
			p.AddressSizeOverride = true
		default:
			goto afterLegacy
		}
		r.Read1()
	}

afterLegacy:
	if b, err := r.Peek1(); err == nil && IsREX(b) {
		r.Read1()
		p.Rex = REX{
			Present: true,
			W:       b&REXW != 0,
			R:       b&REXR != 0,
			X:       b&REXX != 0,
			B:       b&REXB != 0,
		}
	}

	b, err := r.Peek1()
	if err != nil {
		return p, nil
	}

	switch b {
	case byte(PrefixVEX2):
		r.Read1()
		b1, err := r.Read1()
		if err != nil {
			return p, err
		}
		if p.HasLegacyPrefix() || p.Rex.Present {
			return p, &IllegalPrefixCombinationError{Detail: "VEX2 combined with a legacy or REX prefix"}
		}
		p.Vex = VEX{
			Present: true,
			R:       b1&0x80 == 0, // stored inverted
			Vvvv:    (b1 >> 3) & 0xF ^ 0xF,
			L:       b1&0x04 != 0,
			PP:      b1 & 0x03,
			MMMMM:   1,
		}
	case byte(PrefixVEX3):
		r.Read1()
		b1, err := r.Read1()
		if err != nil {
			return p, err
		}
		b2, err := r.Read1()
		if err != nil {
			return p, err
		}
		if p.HasLegacyPrefix() || p.Rex.Present {
			return p, &IllegalPrefixCombinationError{Detail: "VEX3 combined with a legacy or REX prefix"}
		}
		p.Vex = VEX{
			Present:   true,
			ThreeByte: true,
			R:         b1&0x80 == 0,
			X:         b1&0x40 == 0,
			B:         b1&0x20 == 0,
			MMMMM:     b1 & 0x1F,
			W:         b2&0x80 != 0,
			Vvvv:      (b2>>3)&0xF ^ 0xF,
			L:         b2&0x04 != 0,
			PP:        b2 & 0x03,
		}
	case byte(PrefixEVEX):
		r.Read1()
		b1, err := r.Read1()
		if err != nil {
			return p, err
		}
		b2, err := r.Read1()
		if err != nil {
			return p, err
		}
		b3, err := r.Read1()
		if err != nil {
			return p, err
		}
		if p.HasLegacyPrefix() || p.Rex.Present {
			return p, &IllegalPrefixCombinationError{Detail: "EVEX combined with a legacy or REX prefix"}
		}
		p.Evex = EVEX{
			Present: true,
			R:       b1&0x80 == 0,
			X:       b1&0x40 == 0,
			B:       b1&0x20 == 0,
			Rp:      b1&0x10 == 0,
			MMM:     b1 & 0x03,
			W:       b2&0x80 != 0,
			Vvvv:    (b2>>3)&0xF ^ 0xF,
			PP:      b2 & 0x03,
			Aaa:     b3 & 0x07,
			Z:       b3&0x80 != 0,
			LL:      (b3 >> 5) & 0x03,
			L:       b3&0x20 != 0,
			Broadcast: b3&0x10 != 0,
		}
	}

	return p, nil
}
