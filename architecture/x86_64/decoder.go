package x86_64

import (
	"fmt"

	"github.com/keurnel/x86dis/internal/bytesource"
	"github.com/keurnel/x86dis/internal/debugcontext"
)

// DecodeOptions configures a single Decode call (§4.10).
type DecodeOptions struct {
	// MaxInstructions caps the number of instructions decoded before
	// Decode stops early, 0 meaning "until the buffer is exhausted".
	MaxInstructions int
	// RunChecker runs every decoded Instruction through Check. A failure
	// is recorded as a "checker"-phase warning on Trace (if set) rather
	// than aborting the decode — the checker's signature tables are a
	// curated subset and a miss there doesn't mean the bytes are
	// malformed, only that this decoder can't yet vouch for the form.
	RunChecker bool
	// Trace, if non-nil, receives one trace entry for every decoded
	// instruction, carrying the hex bytes it consumed. The driver sets the
	// "prefix", "opcode" and (with RunChecker) "checker" phases as it
	// goes, so that entry carries "opcode" or "checker".
	Trace *debugcontext.DebugContext
}

// Decoder is the top-level driver: repeatedly calls DecodeOne across a
// byte buffer until it is exhausted, a decode error occurs, or
// DecodeOptions.MaxInstructions is reached.
type Decoder struct {
	Options DecodeOptions
}

// NewDecoder constructs a Decoder with the given options.
func NewDecoder(opts DecodeOptions) *Decoder {
	return &Decoder{Options: opts}
}

// Decode walks buf from offset 0, decoding one instruction at a time.
// It returns every successfully decoded Instruction; decoding stops at
// the first error, which is returned alongside the instructions decoded
// so far. An empty buf returns (nil, nil).
func (d *Decoder) Decode(buf []byte) ([]Instruction, error) {
	r := bytesource.New(buf)
	var out []Instruction

	for r.Remaining() > 0 {
		if d.Options.MaxInstructions > 0 && len(out) >= d.Options.MaxInstructions {
			break
		}
		instr, err := d.DecodeOne(r)
		if err != nil {
			return out, err
		}
		out = append(out, instr)
	}
	return out, nil
}

// DecodeOne decodes a single instruction starting at r's current cursor
// position, advancing the cursor past it. It is the unit DecodeOptions.Trace
// logs against and the unit the checker validates.
func (d *Decoder) DecodeOne(r *bytesource.Reader) (Instruction, error) {
	start := r.Position()
	ctx := d.Options.Trace

	if ctx != nil {
		ctx.SetPhase("prefix")
	}
	prefixes, err := ParsePrefixes(r)
	if err != nil {
		return Instruction{}, err
	}

	if ctx != nil {
		ctx.SetPhase("opcode")
	}
	first, err := r.Read1()
	if err != nil {
		return Instruction{}, err
	}

	var op Opcode
	var operands []Operand
	switch {
	case prefixes.HasVectorPrefix():
		// VEX/EVEX encode the two/three-byte-opcode-map escape in their
		// own MMMMM field, so the byte right after the prefix is already
		// the opcode — no separate 0x0F lead-in byte to consume.
		op, operands, err = decodeVex(r, prefixes, first)
		if err != nil {
			return Instruction{}, err
		}
	case first == 0x0F:
		second, err := r.Read1()
		if err != nil {
			return Instruction{}, err
		}
		op, operands, err = decodeTwoByte(r, prefixes, second)
		if err != nil {
			return Instruction{}, err
		}
	default:
		op, operands, err = decodeSingleByte(r, prefixes, first)
		if err != nil {
			return Instruction{}, err
		}
	}

	instr := Instruction{
		Op:       op,
		Operands: operands,
		Prefixes: prefixes,
		Offset:   start,
		Length:   r.Position() - start,
	}

	if d.Options.RunChecker {
		if ctx != nil {
			ctx.SetPhase("checker")
		}
		if err := Check(instr); err != nil && ctx != nil {
			ctx.Warning(ctx.Loc(start, instr.Length), err.Error())
		}
	}

	if ctx != nil {
		raw, rerr := bytesRange(r, start, instr.Length)
		msg := instr.IntelSyntax()
		if rerr == nil {
			msg = fmt.Sprintf("%s  ; % x", msg, raw)
		}
		ctx.Trace(ctx.Loc(start, instr.Length), msg)
	}

	return instr, nil
}

// bytesRange re-reads [start,start+length) from r without disturbing its
// current cursor position, for trace logging after decoding has already
// advanced past the instruction.
func bytesRange(r *bytesource.Reader, start, length int) ([]byte, error) {
	saved := r.Position()
	r.SetPosition(start)
	b, err := r.Bytes(length)
	r.SetPosition(saved)
	return b, err
}
