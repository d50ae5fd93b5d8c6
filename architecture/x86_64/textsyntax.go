package x86_64

import (
	"fmt"
	"strconv"
	"strings"
)

// FromIntelSyntax parses a single line of the Intel syntax Instruction.
// IntelSyntax produces back into an Instruction (§4.8): the inverse
// direction of decoding. It only needs to understand the subset of Intel
// syntax this decoder itself ever emits — an optional "lock " prefix, a
// mnemonic, and 0-4 comma-separated operands (registers, "0x"-hex
// immediates/displacements, and "[...]" memory references) — not the full
// generality of a hand-written assembly source file (§8's round-trip law
// only asks that parsing back what this decoder printed reproduce it).
//
// The cursor-based tokenizer below (splitIndirectTerms) mirrors the
// read-then-peek idiom used throughout the lexer this decoder's text
// front end is descended from: advance one byte at a time, never backtrack
// past what's already been consumed.
func FromIntelSyntax(text string) (Instruction, error) {
	rest := strings.TrimSpace(text)

	var lock bool
	if strings.HasPrefix(rest, "lock ") {
		lock = true
		rest = strings.TrimSpace(rest[len("lock "):])
	}

	mnemonic, operandsText, _ := strings.Cut(rest, " ")
	mnemonic = strings.ToUpper(mnemonic)
	if mnemonic == "" {
		return Instruction{}, &DecodingError{Msg: "empty instruction text"}
	}

	op, ok := opcodeByMnemonic[mnemonic]
	if !ok {
		return Instruction{}, &DecodingError{Msg: fmt.Sprintf("unrecognized mnemonic %q", mnemonic)}
	}

	var operands []Operand
	if strings.TrimSpace(operandsText) != "" {
		for _, tok := range splitOperands(operandsText) {
			operand, err := parseOperand(strings.TrimSpace(tok), op)
			if err != nil {
				return Instruction{}, err
			}
			operands = append(operands, operand)
		}
	}

	return Instruction{
		Op:       op,
		Operands: operands,
		Prefixes: Prefixes{Lock: lock},
	}, nil
}

// splitOperands splits an operand list on its top-level commas. None of
// this decoder's operand renderings ever contain a literal comma (memory
// bodies use "+"/"-"/"*", never ","), so a plain split suffices.
func splitOperands(s string) []string {
	return strings.Split(s, ",")
}

// branchMnemonics names the opcodes whose sole numeric operand renders as
// a RelativeOffset rather than an Immediate: every Jcc, JMP, and CALL form
// this decoder produces.
var branchMnemonics = buildBranchMnemonics()

func buildBranchMnemonics() map[Opcode]bool {
	m := map[Opcode]bool{OpJMP: true, OpCALL: true}
	for _, op := range condJumpOpcodes {
		m[op] = true
	}
	return m
}

// pointerSizeKeywords maps the "XXXX PTR" prefix token IntelSyntax prints
// ahead of a sized memory operand back to its PointerSize.
var pointerSizeKeywords = map[string]PointerSize{
	"BYTE":    PointerSizeByte,
	"WORD":    PointerSizeWord,
	"DWORD":   PointerSizeDword,
	"QWORD":   PointerSizeQword,
	"XMMWORD": PointerSizeXMMWord,
	"YMMWORD": PointerSizeYMMWord,
	"ZMMWORD": PointerSizeZMMWord,
}

// parseOperand classifies and parses a single already-trimmed operand
// token. op is the instruction's opcode, needed only to disambiguate a
// bare "0x..." token between Immediate and RelativeOffset.
func parseOperand(tok string, op Opcode) (Operand, error) {
	if tok == "" {
		return nil, &DecodingError{Msg: "empty operand"}
	}

	size := PointerSizeNone
	suppress := true
	body := tok
	if upper := strings.ToUpper(tok); strings.Contains(upper, " PTR [") {
		keyword, rest, _ := strings.Cut(tok, " ")
		if sz, ok := pointerSizeKeywords[strings.ToUpper(keyword)]; ok {
			size = sz
			suppress = false
			_, bracketed, found := strings.Cut(rest, "PTR ")
			if !found {
				return nil, &DecodingError{Msg: fmt.Sprintf("malformed pointer-size operand %q", tok)}
			}
			body = bracketed
		}
	}

	if strings.HasPrefix(body, "[") {
		if !strings.HasSuffix(body, "]") {
			return nil, &DecodingError{Msg: fmt.Sprintf("unterminated memory operand %q", tok)}
		}
		return parseIndirectBody(body[1:len(body)-1], size, suppress)
	}

	if strings.HasPrefix(tok, "0x") {
		value, err := parseHex(tok[2:])
		if err != nil {
			return nil, err
		}
		if branchMnemonics[op] {
			return RelativeOffset{Value: int64(int32(uint32(value))), Width_: ImmWidth32}, nil
		}
		return NewImmediate(int64(value), immWidthForHexDigits(len(tok)-2)), nil
	}

	if reg, ok := RegistersByName[strings.ToLower(tok)]; ok {
		return reg, nil
	}

	return nil, &DecodingError{Msg: fmt.Sprintf("unrecognized operand %q", tok)}
}

func immWidthForHexDigits(n int) ImmWidth {
	switch {
	case n <= 2:
		return ImmWidth8
	case n <= 4:
		return ImmWidth16
	case n <= 8:
		return ImmWidth32
	default:
		return ImmWidth64
	}
}

func parseHex(digits string) (uint64, error) {
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, &DecodingError{Msg: fmt.Sprintf("malformed hex literal %q: %v", digits, err)}
	}
	return v, nil
}

// indirectTerm is one "+"/"-"-delimited piece of a memory operand's body,
// carrying the sign that preceded it ("+" is implicit for the first term).
type indirectTerm struct {
	negative bool
	text     string
}

// splitIndirectTerms tokenizes a memory operand's bracket body on its
// top-level "+"/"-" separators. Register names and hex literals never
// contain either character themselves, so a single left-to-right scan
// suffices; this is deliberately narrower than a general expression
// parser; it only has to invert what IndirectOperand.IntelSyntax prints.
func splitIndirectTerms(body string) []indirectTerm {
	var terms []indirectTerm
	negative := false
	start := 0
	for i := 1; i <= len(body); i++ {
		if i == len(body) || body[i] == '+' || body[i] == '-' {
			terms = append(terms, indirectTerm{negative: negative, text: body[start:i]})
			if i < len(body) {
				negative = body[i] == '-'
				start = i + 1
			}
		}
	}
	return terms
}

// parseIndirectBody parses the contents of a "[...]" memory operand
// (segment override, base, index*scale, and displacement, in the order
// IndirectOperand.IntelSyntax prints them) back into an IndirectOperand.
func parseIndirectBody(body string, size PointerSize, suppress bool) (IndirectOperand, error) {
	var segment *Register
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		if reg, ok := RegistersByName[strings.ToLower(body[:idx])]; ok {
			segReg := reg
			segment = &segReg
			body = body[idx+1:]
		}
	}

	var base, index *Register
	scale := 0
	var disp *Displacement

	for _, term := range splitIndirectTerms(body) {
		text := term.text
		switch {
		case strings.HasPrefix(text, "0x"):
			v, err := parseHex(text[2:])
			if err != nil {
				return IndirectOperand{}, err
			}
			value := int32(v)
			if term.negative {
				value = -value
			}
			disp = &Displacement{Value: value, Wide: true}
		case strings.Contains(text, "*"):
			name, scaleStr, _ := strings.Cut(text, "*")
			reg, ok := RegistersByName[strings.ToLower(name)]
			if !ok {
				return IndirectOperand{}, &DecodingError{Msg: fmt.Sprintf("unrecognized index register %q", name)}
			}
			n, err := strconv.Atoi(scaleStr)
			if err != nil {
				return IndirectOperand{}, &DecodingError{Msg: fmt.Sprintf("malformed scale %q", scaleStr)}
			}
			idxReg := reg
			index = &idxReg
			scale = n
		default:
			reg, ok := RegistersByName[strings.ToLower(text)]
			if !ok {
				return IndirectOperand{}, &DecodingError{Msg: fmt.Sprintf("unrecognized register %q", text)}
			}
			regCopy := reg
			if base == nil {
				base = &regCopy
			} else {
				index = &regCopy
				if scale == 0 {
					scale = 1
				}
			}
		}
	}

	if base == nil && index == nil && disp == nil {
		return IndirectOperand{}, &DecodingError{Msg: "empty memory operand body"}
	}

	return IndirectOperand{
		Size: size, Segment: segment, Base: base, Index: index,
		Scale: scale, Disp: disp, Suppress: suppress,
	}, nil
}
