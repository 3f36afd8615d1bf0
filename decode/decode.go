// Package decode turns raw bytes into single LR35902/SM83 instructions,
// applying the operand fix-ups (PC-relative branches, HRAM zero-page
// offsets) that the emulator and listing stages rely on.
package decode

import (
	"errors"
	"fmt"

	"sm83dis/opcode"
)

// ErrSliceTooSmall is returned when fewer bytes remain than an
// instruction's encoded length requires.
var ErrSliceTooSmall = errors.New("decode: slice too small for instruction")

// ErrInvalidOpcode is returned when the opcode byte has no defined
// instruction (the CPU's unofficial-opcode gaps).
var ErrInvalidOpcode = errors.New("decode: invalid opcode")

// Instruction is a fully decoded instruction: its opcode byte and its
// operand, already fixed up to its final resting value (an absolute
// branch target for CodeRelative, 0xFF00+n for DataHram).
type Instruction struct {
	Opcode  byte
	Operand uint16
	// Selector holds the CB-page selector byte when Opcode is
	// opcode.CBPrefix; it is the value opcode.Info is looked up with.
	Selector byte
}

// Info returns the opcode table entry this instruction was decoded from.
func (ins Instruction) Info() opcode.Info {
	return opcode.Lookup(ins.Opcode, ins.Selector)
}

// IsValid reports whether the instruction's opcode is a defined one.
func (ins Instruction) IsValid() bool {
	return ins.Info().Flags&opcode.FlagInvalid == 0
}

// EncodedLen returns the total number of bytes this instruction occupies
// in the instruction stream, including its opcode byte.
func (ins Instruction) EncodedLen() int {
	return int(ins.Info().OperandLen) + 1
}

// GetJumpTarget returns the absolute address this instruction transfers
// control to, if that address is statically known. RST opcodes have a
// fixed vector; other JUMP-flagged instructions carry it in Operand
// unless their operand kind is KindNone (ret, reti, jp hl — the target
// isn't known until runtime).
func (ins Instruction) GetJumpTarget() (uint16, bool) {
	if target, ok := opcode.RSTTarget(ins.Opcode); ok {
		return target, true
	}
	info := ins.Info()
	if info.Flags&opcode.FlagJump == 0 {
		return 0, false
	}
	if info.Kind == opcode.KindNone {
		return 0, false
	}
	return ins.Operand, true
}

// IsAddrOperand reports whether Operand should be rendered through
// address-to-name resolution rather than as a bare hex literal.
func (ins Instruction) IsAddrOperand() bool {
	info := ins.Info()
	if info.Flags&(opcode.FlagReadMem|opcode.FlagWriteMem|opcode.FlagJump) == 0 {
		return false
	}
	if info.Kind == opcode.KindNone {
		return false
	}
	return info.OperandLen == 2 || info.Kind == opcode.KindDataHram || info.Kind == opcode.KindCodeRelative
}

// Decode reads one instruction starting at addr from b. addr is used
// only to compute CodeRelative fix-ups; it is not otherwise interpreted.
func Decode(addr uint16, b []byte) (Instruction, error) {
	if len(b) == 0 {
		return Instruction{}, fmt.Errorf("%w: at %04X", ErrSliceTooSmall, addr)
	}
	op := b[0]

	var selector byte
	if op == opcode.CBPrefix {
		if len(b) < 2 {
			return Instruction{}, fmt.Errorf("%w: at %04X", ErrSliceTooSmall, addr)
		}
		selector = b[1]
	}

	info := opcode.Lookup(op, selector)
	if info.Flags&opcode.FlagInvalid != 0 {
		return Instruction{}, fmt.Errorf("%w: %02X at %04X", ErrInvalidOpcode, op, addr)
	}

	ins := Instruction{Opcode: op, Selector: selector}
	total := int(info.OperandLen) + 1
	if len(b) < total {
		return Instruction{}, fmt.Errorf("%w: at %04X", ErrSliceTooSmall, addr)
	}

	if op == opcode.CBPrefix {
		return ins, nil
	}

	var operand uint16
	for i := 0; i < int(info.OperandLen); i++ {
		operand |= uint16(b[1+i]) << (8 * uint(i))
	}

	switch info.Kind {
	case opcode.KindCodeRelative:
		operand = uint16(int32(addr) + 2 + int32(int8(operand)))
	case opcode.KindDataHram:
		operand = 0xFF00 + operand
	}

	ins.Operand = operand
	return ins, nil
}
