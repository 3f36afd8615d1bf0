// Package opcode holds the two immutable 256-entry tables that describe
// every LR35902/SM83 opcode: the primary page and the CB-prefixed
// bit-ops page. The tables are pure data, embedded as package vars — they
// are never constructed at runtime.
package opcode

// Kind classifies what an instruction's operand, once decoded, denotes.
type Kind int

const (
	// KindNone means the instruction has no operand.
	KindNone Kind = iota
	// KindUndefined is a plain immediate or register-pair immediate with
	// no address semantics (e.g. `ld b, %`, `add a, %`).
	KindUndefined
	// KindLongOpcode is the CB-page operand byte itself (its length is
	// folded into the 2-byte encoded length of a bit-op instruction).
	KindLongOpcode
	// KindCode is a plain 16-bit absolute code address operand.
	KindCode
	// KindCodeRelative is a signed 8-bit PC-relative branch offset,
	// fixed up to an absolute 16-bit target by decode.Decode.
	KindCodeRelative
	// KindData is a plain 16-bit absolute data address operand.
	KindData
	// KindDataHram is an 8-bit operand widened to 0xFF00+op by decode.Decode.
	KindDataHram
)

// Flag is a bitset of behavioral properties of an instruction.
type Flag uint8

const (
	FlagJump Flag = 1 << iota
	FlagCall
	FlagConditional
	FlagWriteMem
	FlagReadMem
	_
	_
	FlagInvalid
)

// Info describes one opcode: its mnemonic template (with `%` standing in
// for the rendered operand), the number of operand bytes that follow it
// in the instruction stream, what those bytes mean, and its control-flow
// and memory-access properties.
type Info struct {
	Fmt        string
	OperandLen uint8
	Kind       Kind
	Flags      Flag
}

// CBPrefix is the opcode used to switch into the CB-prefixed page.
const CBPrefix = 0xCB

// The eight RST vectors, each a fixed call target.
const (
	RST00 = 0xC7
	RST08 = 0xCF
	RST10 = 0xD7
	RST18 = 0xDF
	RST20 = 0xE7
	RST28 = 0xEF
	RST30 = 0xF7
	RST38 = 0xFF
)

// RSTTarget returns the fixed jump vector for one of the eight RST
// opcodes, or (0, false) for any other opcode.
func RSTTarget(op byte) (uint16, bool) {
	switch op {
	case RST00:
		return 0x0000, true
	case RST08:
		return 0x0008, true
	case RST10:
		return 0x0010, true
	case RST18:
		return 0x0018, true
	case RST20:
		return 0x0020, true
	case RST28:
		return 0x0028, true
	case RST30:
		return 0x0030, true
	case RST38:
		return 0x0038, true
	default:
		return 0, false
	}
}

// Primary is the 256-entry table for the unprefixed opcode page.
var Primary = [256]Info{
	0x00: {"nop", 0, KindNone, 0},
	0x01: {"ld bc, %", 2, KindUndefined, 0},
	0x02: {"ld [bc], a", 0, KindNone, FlagWriteMem},
	0x03: {"inc bc", 0, KindNone, 0},
	0x04: {"inc b", 0, KindNone, 0},
	0x05: {"dec b", 0, KindNone, 0},
	0x06: {"ld b, %", 1, KindUndefined, 0},
	0x07: {"rlca", 0, KindNone, 0},
	0x08: {"ld [%], sp", 2, KindData, FlagWriteMem},
	0x09: {"add hl, bc", 0, KindNone, 0},
	0x0A: {"ld a, [bc]", 0, KindNone, FlagReadMem},
	0x0B: {"dec bc", 0, KindNone, 0},
	0x0C: {"inc c", 0, KindNone, 0},
	0x0D: {"dec c", 0, KindNone, 0},
	0x0E: {"ld c, %", 1, KindUndefined, 0},
	0x0F: {"rrca", 0, KindNone, 0},
	0x10: {"stop", 1, KindLongOpcode, 0},
	0x11: {"ld de, %", 2, KindUndefined, 0},
	0x12: {"ld [de], a", 0, KindNone, FlagWriteMem},
	0x13: {"inc de", 0, KindNone, 0},
	0x14: {"inc d", 0, KindNone, 0},
	0x15: {"dec d", 0, KindNone, 0},
	0x16: {"ld d, %", 1, KindUndefined, 0},
	0x17: {"rla", 0, KindNone, 0},
	0x18: {"jr %", 1, KindCodeRelative, FlagJump},
	0x19: {"add hl, de", 0, KindNone, 0},
	0x1A: {"ld a, [de]", 0, KindNone, FlagReadMem},
	0x1B: {"dec de", 0, KindNone, 0},
	0x1C: {"inc e", 0, KindNone, 0},
	0x1D: {"dec e", 0, KindNone, 0},
	0x1E: {"ld e, %", 1, KindUndefined, 0},
	0x1F: {"rra", 0, KindNone, 0},
	0x20: {"jr nz, %", 1, KindCodeRelative, FlagJump | FlagConditional},
	0x21: {"ld hl, %", 2, KindUndefined, 0},
	0x22: {"ld [hli], a", 0, KindNone, FlagWriteMem},
	0x23: {"inc hl", 0, KindNone, 0},
	0x24: {"inc h", 0, KindNone, 0},
	0x25: {"dec h", 0, KindNone, 0},
	0x26: {"ld h, %", 1, KindUndefined, 0},
	0x27: {"daa", 0, KindNone, 0},
	0x28: {"jr z, %", 1, KindCodeRelative, FlagJump | FlagConditional},
	0x29: {"add hl, hl", 0, KindNone, 0},
	0x2A: {"ld a, [hli]", 0, KindNone, FlagReadMem},
	0x2B: {"dec hl", 0, KindNone, 0},
	0x2C: {"inc l", 0, KindNone, 0},
	0x2D: {"dec l", 0, KindNone, 0},
	0x2E: {"ld l, %", 1, KindUndefined, 0},
	0x2F: {"cpl", 0, KindNone, 0},
	0x30: {"jr nc, %", 1, KindCodeRelative, FlagJump | FlagConditional},
	0x31: {"ld sp, %", 2, KindUndefined, 0},
	0x32: {"ld [hld], a", 0, KindNone, FlagWriteMem},
	0x33: {"inc sp", 0, KindNone, 0},
	0x34: {"inc [hl]", 0, KindNone, FlagWriteMem | FlagReadMem},
	0x35: {"dec [hl]", 0, KindNone, FlagWriteMem | FlagReadMem},
	0x36: {"ld [hl], %", 1, KindUndefined, FlagWriteMem},
	0x37: {"scf", 0, KindNone, 0},
	0x38: {"jr c, %", 1, KindCodeRelative, FlagJump | FlagConditional},
	0x39: {"add hl, sp", 0, KindNone, 0},
	0x3A: {"ld a, [hld]", 0, KindNone, FlagReadMem},
	0x3B: {"dec sp", 0, KindNone, 0},
	0x3C: {"inc a", 0, KindNone, 0},
	0x3D: {"dec a", 0, KindNone, 0},
	0x3E: {"ld a, %", 1, KindUndefined, 0},
	0x3F: {"ccf", 0, KindNone, 0},
	0x40: {"ld b, b", 0, KindNone, 0},
	0x41: {"ld b, c", 0, KindNone, 0},
	0x42: {"ld b, d", 0, KindNone, 0},
	0x43: {"ld b, e", 0, KindNone, 0},
	0x44: {"ld b, h", 0, KindNone, 0},
	0x45: {"ld b, l", 0, KindNone, 0},
	0x46: {"ld b, [hl]", 0, KindNone, FlagReadMem},
	0x47: {"ld b, a", 0, KindNone, 0},
	0x48: {"ld c, b", 0, KindNone, 0},
	0x49: {"ld c, c", 0, KindNone, 0},
	0x4A: {"ld c, d", 0, KindNone, 0},
	0x4B: {"ld c, e", 0, KindNone, 0},
	0x4C: {"ld c, h", 0, KindNone, 0},
	0x4D: {"ld c, l", 0, KindNone, 0},
	0x4E: {"ld c, [hl]", 0, KindNone, FlagReadMem},
	0x4F: {"ld c, a", 0, KindNone, 0},
	0x50: {"ld d, b", 0, KindNone, 0},
	0x51: {"ld d, c", 0, KindNone, 0},
	0x52: {"ld d, d", 0, KindNone, 0},
	0x53: {"ld d, e", 0, KindNone, 0},
	0x54: {"ld d, h", 0, KindNone, 0},
	0x55: {"ld d, l", 0, KindNone, 0},
	0x56: {"ld d, [hl]", 0, KindNone, FlagReadMem},
	0x57: {"ld d, a", 0, KindNone, 0},
	0x58: {"ld e, b", 0, KindNone, 0},
	0x59: {"ld e, c", 0, KindNone, 0},
	0x5A: {"ld e, d", 0, KindNone, 0},
	0x5B: {"ld e, e", 0, KindNone, 0},
	0x5C: {"ld e, h", 0, KindNone, 0},
	0x5D: {"ld e, l", 0, KindNone, 0},
	0x5E: {"ld e, [hl]", 0, KindNone, FlagReadMem},
	0x5F: {"ld e, a", 0, KindNone, 0},
	0x60: {"ld h, b", 0, KindNone, 0},
	0x61: {"ld h, c", 0, KindNone, 0},
	0x62: {"ld h, d", 0, KindNone, 0},
	0x63: {"ld h, e", 0, KindNone, 0},
	0x64: {"ld h, h", 0, KindNone, 0},
	0x65: {"ld h, l", 0, KindNone, 0},
	0x66: {"ld h, [hl]", 0, KindNone, FlagReadMem},
	0x67: {"ld h, a", 0, KindNone, 0},
	0x68: {"ld l, b", 0, KindNone, 0},
	0x69: {"ld l, c", 0, KindNone, 0},
	0x6A: {"ld l, d", 0, KindNone, 0},
	0x6B: {"ld l, e", 0, KindNone, 0},
	0x6C: {"ld l, h", 0, KindNone, 0},
	0x6D: {"ld l, l", 0, KindNone, 0},
	0x6E: {"ld l, [hl]", 0, KindNone, FlagReadMem},
	0x6F: {"ld l, a", 0, KindNone, 0},
	0x70: {"ld [hl], b", 0, KindNone, FlagWriteMem},
	0x71: {"ld [hl], c", 0, KindNone, FlagWriteMem},
	0x72: {"ld [hl], d", 0, KindNone, FlagWriteMem},
	0x73: {"ld [hl], e", 0, KindNone, FlagWriteMem},
	0x74: {"ld [hl], h", 0, KindNone, FlagWriteMem},
	0x75: {"ld [hl], l", 0, KindNone, FlagWriteMem},
	0x76: {"halt", 0, KindNone, 0},
	0x77: {"ld [hl], a", 0, KindNone, FlagWriteMem},
	0x78: {"ld a, b", 0, KindNone, 0},
	0x79: {"ld a, c", 0, KindNone, 0},
	0x7A: {"ld a, d", 0, KindNone, 0},
	0x7B: {"ld a, e", 0, KindNone, 0},
	0x7C: {"ld a, h", 0, KindNone, 0},
	0x7D: {"ld a, l", 0, KindNone, 0},
	0x7E: {"ld a, [hl]", 0, KindNone, FlagReadMem},
	0x7F: {"ld a, a", 0, KindNone, 0},
	0x80: {"add a, b", 0, KindNone, 0},
	0x81: {"add a, c", 0, KindNone, 0},
	0x82: {"add a, d", 0, KindNone, 0},
	0x83: {"add a, e", 0, KindNone, 0},
	0x84: {"add a, h", 0, KindNone, 0},
	0x85: {"add a, l", 0, KindNone, 0},
	0x86: {"add a, [hl]", 0, KindNone, FlagReadMem},
	0x87: {"add a, a", 0, KindNone, 0},
	0x88: {"adc a, b", 0, KindNone, 0},
	0x89: {"adc a, c", 0, KindNone, 0},
	0x8A: {"adc a, d", 0, KindNone, 0},
	0x8B: {"adc a, e", 0, KindNone, 0},
	0x8C: {"adc a, h", 0, KindNone, 0},
	0x8D: {"adc a, l", 0, KindNone, 0},
	0x8E: {"adc a, [hl]", 0, KindNone, FlagReadMem},
	0x8F: {"adc a, a", 0, KindNone, 0},
	0x90: {"sub a, b", 0, KindNone, 0},
	0x91: {"sub a, c", 0, KindNone, 0},
	0x92: {"sub a, d", 0, KindNone, 0},
	0x93: {"sub a, e", 0, KindNone, 0},
	0x94: {"sub a, h", 0, KindNone, 0},
	0x95: {"sub a, l", 0, KindNone, 0},
	0x96: {"sub a, [hl]", 0, KindNone, FlagReadMem},
	0x97: {"sub a, a", 0, KindNone, 0},
	0x98: {"sbc a, b", 0, KindNone, 0},
	0x99: {"sbc a, c", 0, KindNone, 0},
	0x9A: {"sbc a, d", 0, KindNone, 0},
	0x9B: {"sbc a, e", 0, KindNone, 0},
	0x9C: {"sbc a, h", 0, KindNone, 0},
	0x9D: {"sbc a, l", 0, KindNone, 0},
	0x9E: {"sbc a, [hl]", 0, KindNone, FlagReadMem},
	0x9F: {"sbc a, a", 0, KindNone, 0},
	0xA0: {"and a, b", 0, KindNone, 0},
	0xA1: {"and a, c", 0, KindNone, 0},
	0xA2: {"and a, d", 0, KindNone, 0},
	0xA3: {"and a, e", 0, KindNone, 0},
	0xA4: {"and a, h", 0, KindNone, 0},
	0xA5: {"and a, l", 0, KindNone, 0},
	0xA6: {"and a, [hl]", 0, KindNone, FlagReadMem},
	0xA7: {"and a, a", 0, KindNone, 0},
	0xA8: {"xor a, b", 0, KindNone, 0},
	0xA9: {"xor a, c", 0, KindNone, 0},
	0xAA: {"xor a, d", 0, KindNone, 0},
	0xAB: {"xor a, e", 0, KindNone, 0},
	0xAC: {"xor a, h", 0, KindNone, 0},
	0xAD: {"xor a, l", 0, KindNone, 0},
	0xAE: {"xor a, [hl]", 0, KindNone, FlagReadMem},
	0xAF: {"xor a, a", 0, KindNone, 0},
	0xB0: {"or a, b", 0, KindNone, 0},
	0xB1: {"or a, c", 0, KindNone, 0},
	0xB2: {"or a, d", 0, KindNone, 0},
	0xB3: {"or a, e", 0, KindNone, 0},
	0xB4: {"or a, h", 0, KindNone, 0},
	0xB5: {"or a, l", 0, KindNone, 0},
	0xB6: {"or a, [hl]", 0, KindNone, FlagReadMem},
	0xB7: {"or a, a", 0, KindNone, 0},
	0xB8: {"cp a, b", 0, KindNone, 0},
	0xB9: {"cp a, c", 0, KindNone, 0},
	0xBA: {"cp a, d", 0, KindNone, 0},
	0xBB: {"cp a, e", 0, KindNone, 0},
	0xBC: {"cp a, h", 0, KindNone, 0},
	0xBD: {"cp a, l", 0, KindNone, 0},
	0xBE: {"cp a, [hl]", 0, KindNone, FlagReadMem},
	0xBF: {"cp a, a", 0, KindNone, 0},
	0xC0: {"ret nz", 0, KindNone, FlagJump | FlagConditional},
	0xC1: {"pop bc", 0, KindNone, 0},
	0xC2: {"jp nz, %", 2, KindCode, FlagJump | FlagConditional},
	0xC3: {"jp %", 2, KindCode, FlagJump},
	0xC4: {"call nz, %", 2, KindCode, FlagJump | FlagCall | FlagConditional},
	0xC5: {"push bc", 0, KindNone, 0},
	0xC6: {"add a, %", 1, KindUndefined, 0},
	RST00: {"rst $0", 0, KindNone, FlagJump | FlagCall},
	0xC8:  {"ret z", 0, KindNone, FlagJump | FlagConditional},
	0xC9:  {"ret", 0, KindNone, FlagJump},
	0xCA:  {"jp z, %", 2, KindCode, FlagJump | FlagConditional},
	CBPrefix: {"bitops", 1, KindLongOpcode, 0},
	0xCC:   {"call z, %", 2, KindCode, FlagJump | FlagCall | FlagConditional},
	0xCD:   {"call %", 2, KindCode, FlagJump | FlagCall},
	0xCE:   {"adc a, %", 1, KindUndefined, 0},
	RST08:  {"rst $8", 0, KindNone, FlagJump | FlagCall},
	0xD0:   {"ret nc", 0, KindNone, FlagJump | FlagConditional},
	0xD1:   {"pop de", 0, KindNone, 0},
	0xD2:   {"jp nc, %", 2, KindCode, FlagJump | FlagConditional},
	0xD3:   {"", 0, KindNone, FlagInvalid},
	0xD4:   {"call nc, %", 2, KindCode, FlagJump | FlagCall | FlagConditional},
	0xD5:   {"push de", 0, KindNone, 0},
	0xD6:   {"sub a, %", 1, KindUndefined, 0},
	RST10:  {"rst $10", 0, KindNone, FlagJump | FlagCall},
	0xD8:   {"ret c", 0, KindNone, FlagJump | FlagConditional},
	0xD9:   {"reti", 0, KindNone, FlagJump},
	0xDA:   {"jp c, %", 2, KindCode, FlagJump | FlagConditional},
	0xDB:   {"", 0, KindNone, FlagInvalid},
	0xDC:   {"call c, %", 2, KindCode, FlagJump | FlagCall | FlagConditional},
	0xDD:   {"", 2, KindNone, FlagInvalid},
	0xDE:   {"sbc a, %", 1, KindUndefined, 0},
	RST18:  {"rst $18", 0, KindNone, FlagJump | FlagCall},
	0xE0:   {"ldh [%], a", 1, KindDataHram, FlagWriteMem},
	0xE1:   {"pop hl", 0, KindNone, 0},
	0xE2:   {"ld [$FF00+c], a", 0, KindNone, FlagWriteMem},
	0xE3:   {"", 0, KindNone, FlagInvalid},
	0xE4:   {"", 0, KindNone, FlagInvalid},
	0xE5:   {"push hl", 0, KindNone, 0},
	0xE6:   {"and a, %", 1, KindUndefined, 0},
	RST20:  {"rst $20", 0, KindNone, FlagJump | FlagCall},
	0xE8:   {"add sp, %", 1, KindUndefined, 0},
	0xE9:   {"jp hl", 0, KindNone, FlagJump},
	0xEA:   {"ld [%], a", 2, KindData, FlagWriteMem},
	0xEB:   {"", 0, KindNone, FlagInvalid},
	0xEC:   {"", 2, KindNone, FlagInvalid},
	0xED:   {"", 2, KindNone, FlagInvalid},
	0xEE:   {"xor a, %", 1, KindUndefined, 0},
	RST28:  {"rst $28", 0, KindNone, FlagJump | FlagCall},
	0xF0:   {"ldh a, [%]", 1, KindDataHram, FlagReadMem},
	0xF1:   {"pop af", 0, KindNone, 0},
	0xF2:   {"ld a, [$FF00+c]", 0, KindNone, FlagReadMem},
	0xF3:   {"di", 0, KindNone, 0},
	0xF4:   {"", 0, KindNone, FlagInvalid},
	0xF5:   {"push af", 0, KindNone, 0},
	0xF6:   {"or a, %", 1, KindUndefined, 0},
	RST30:  {"rst $30", 0, KindNone, FlagJump | FlagCall},
	0xF8:   {"ld hl, sp+%", 1, KindUndefined, 0},
	0xF9:   {"ld sp, hl", 0, KindNone, 0},
	0xFA:   {"ld a, [%]", 2, KindData, FlagReadMem},
	0xFB:   {"ei", 0, KindNone, 0},
	0xFC:   {"", 2, KindNone, FlagInvalid},
	0xFD:   {"", 2, KindNone, FlagInvalid},
	0xFE:   {"cp a, %", 1, KindUndefined, 0},
	RST38:  {"rst $38", 0, KindNone, FlagJump | FlagCall},
}

// Bitops is the 256-entry table for the CB-prefixed page. Every entry
// consumes exactly the one register-selector byte already read by the
// CB dispatch in Primary, so OperandLen is always 1 and Kind is always
// KindLongOpcode — neither is ever consulted by decode.Decode's
// CodeRelative/DataHram fix-ups.
var Bitops = [256]Info{
	// rlc b,c,d,e,h,l,[hl],a
	0x00: {"rlc b", 1, KindLongOpcode, 0},
	0x01: {"rlc c", 1, KindLongOpcode, 0},
	0x02: {"rlc d", 1, KindLongOpcode, 0},
	0x03: {"rlc e", 1, KindLongOpcode, 0},
	0x04: {"rlc h", 1, KindLongOpcode, 0},
	0x05: {"rlc l", 1, KindLongOpcode, 0},
	0x06: {"rlc [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x07: {"rlc a", 1, KindLongOpcode, 0},
	// rrc b,c,d,e,h,l,[hl],a
	0x08: {"rrc b", 1, KindLongOpcode, 0},
	0x09: {"rrc c", 1, KindLongOpcode, 0},
	0x0A: {"rrc d", 1, KindLongOpcode, 0},
	0x0B: {"rrc e", 1, KindLongOpcode, 0},
	0x0C: {"rrc h", 1, KindLongOpcode, 0},
	0x0D: {"rrc l", 1, KindLongOpcode, 0},
	0x0E: {"rrc [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x0F: {"rrc a", 1, KindLongOpcode, 0},
	// rl b,c,d,e,h,l,[hl],a
	0x10: {"rl b", 1, KindLongOpcode, 0},
	0x11: {"rl c", 1, KindLongOpcode, 0},
	0x12: {"rl d", 1, KindLongOpcode, 0},
	0x13: {"rl e", 1, KindLongOpcode, 0},
	0x14: {"rl h", 1, KindLongOpcode, 0},
	0x15: {"rl l", 1, KindLongOpcode, 0},
	0x16: {"rl [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x17: {"rl a", 1, KindLongOpcode, 0},
	// rr b,c,d,e,h,l,[hl],a
	0x18: {"rr b", 1, KindLongOpcode, 0},
	0x19: {"rr c", 1, KindLongOpcode, 0},
	0x1A: {"rr d", 1, KindLongOpcode, 0},
	0x1B: {"rr e", 1, KindLongOpcode, 0},
	0x1C: {"rr h", 1, KindLongOpcode, 0},
	0x1D: {"rr l", 1, KindLongOpcode, 0},
	0x1E: {"rr [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x1F: {"rr a", 1, KindLongOpcode, 0},
	// sla b,c,d,e,h,l,[hl],a
	0x20: {"sla b", 1, KindLongOpcode, 0},
	0x21: {"sla c", 1, KindLongOpcode, 0},
	0x22: {"sla d", 1, KindLongOpcode, 0},
	0x23: {"sla e", 1, KindLongOpcode, 0},
	0x24: {"sla h", 1, KindLongOpcode, 0},
	0x25: {"sla l", 1, KindLongOpcode, 0},
	0x26: {"sla [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x27: {"sla a", 1, KindLongOpcode, 0},
	// sra b,c,d,e,h,l,[hl],a
	0x28: {"sra b", 1, KindLongOpcode, 0},
	0x29: {"sra c", 1, KindLongOpcode, 0},
	0x2A: {"sra d", 1, KindLongOpcode, 0},
	0x2B: {"sra e", 1, KindLongOpcode, 0},
	0x2C: {"sra h", 1, KindLongOpcode, 0},
	0x2D: {"sra l", 1, KindLongOpcode, 0},
	0x2E: {"sra [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x2F: {"sra a", 1, KindLongOpcode, 0},
	// swap b,c,d,e,h,l,[hl],a
	0x30: {"swap b", 1, KindLongOpcode, 0},
	0x31: {"swap c", 1, KindLongOpcode, 0},
	0x32: {"swap d", 1, KindLongOpcode, 0},
	0x33: {"swap e", 1, KindLongOpcode, 0},
	0x34: {"swap h", 1, KindLongOpcode, 0},
	0x35: {"swap l", 1, KindLongOpcode, 0},
	0x36: {"swap [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x37: {"swap a", 1, KindLongOpcode, 0},
	// srl b,c,d,e,h,l,[hl],a
	0x38: {"srl b", 1, KindLongOpcode, 0},
	0x39: {"srl c", 1, KindLongOpcode, 0},
	0x3A: {"srl d", 1, KindLongOpcode, 0},
	0x3B: {"srl e", 1, KindLongOpcode, 0},
	0x3C: {"srl h", 1, KindLongOpcode, 0},
	0x3D: {"srl l", 1, KindLongOpcode, 0},
	0x3E: {"srl [hl]", 1, KindLongOpcode, FlagReadMem | FlagWriteMem},
	0x3F: {"srl a", 1, KindLongOpcode, 0},
	// bit 0, b,c,d,e,h,l,[hl],a
	0x40: {"bit 0, b", 1, KindLongOpcode, 0},
	0x41: {"bit 0, c", 1, KindLongOpcode, 0},
	0x42: {"bit 0, d", 1, KindLongOpcode, 0},
	0x43: {"bit 0, e", 1, KindLongOpcode, 0},
	0x44: {"bit 0, h", 1, KindLongOpcode, 0},
	0x45: {"bit 0, l", 1, KindLongOpcode, 0},
	0x46: {"bit 0, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x47: {"bit 0, a", 1, KindLongOpcode, 0},
	// bit 1
	0x48: {"bit 1, b", 1, KindLongOpcode, 0},
	0x49: {"bit 1, c", 1, KindLongOpcode, 0},
	0x4A: {"bit 1, d", 1, KindLongOpcode, 0},
	0x4B: {"bit 1, e", 1, KindLongOpcode, 0},
	0x4C: {"bit 1, h", 1, KindLongOpcode, 0},
	0x4D: {"bit 1, l", 1, KindLongOpcode, 0},
	0x4E: {"bit 1, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x4F: {"bit 1, a", 1, KindLongOpcode, 0},
	// bit 2
	0x50: {"bit 2, b", 1, KindLongOpcode, 0},
	0x51: {"bit 2, c", 1, KindLongOpcode, 0},
	0x52: {"bit 2, d", 1, KindLongOpcode, 0},
	0x53: {"bit 2, e", 1, KindLongOpcode, 0},
	0x54: {"bit 2, h", 1, KindLongOpcode, 0},
	0x55: {"bit 2, l", 1, KindLongOpcode, 0},
	0x56: {"bit 2, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x57: {"bit 2, a", 1, KindLongOpcode, 0},
	// bit 3
	0x58: {"bit 3, b", 1, KindLongOpcode, 0},
	0x59: {"bit 3, c", 1, KindLongOpcode, 0},
	0x5A: {"bit 3, d", 1, KindLongOpcode, 0},
	0x5B: {"bit 3, e", 1, KindLongOpcode, 0},
	0x5C: {"bit 3, h", 1, KindLongOpcode, 0},
	0x5D: {"bit 3, l", 1, KindLongOpcode, 0},
	0x5E: {"bit 3, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x5F: {"bit 3, a", 1, KindLongOpcode, 0},
	// bit 4
	0x60: {"bit 4, b", 1, KindLongOpcode, 0},
	0x61: {"bit 4, c", 1, KindLongOpcode, 0},
	0x62: {"bit 4, d", 1, KindLongOpcode, 0},
	0x63: {"bit 4, e", 1, KindLongOpcode, 0},
	0x64: {"bit 4, h", 1, KindLongOpcode, 0},
	0x65: {"bit 4, l", 1, KindLongOpcode, 0},
	0x66: {"bit 4, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x67: {"bit 4, a", 1, KindLongOpcode, 0},
	// bit 5
	0x68: {"bit 5, b", 1, KindLongOpcode, 0},
	0x69: {"bit 5, c", 1, KindLongOpcode, 0},
	0x6A: {"bit 5, d", 1, KindLongOpcode, 0},
	0x6B: {"bit 5, e", 1, KindLongOpcode, 0},
	0x6C: {"bit 5, h", 1, KindLongOpcode, 0},
	0x6D: {"bit 5, l", 1, KindLongOpcode, 0},
	0x6E: {"bit 5, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x6F: {"bit 5, a", 1, KindLongOpcode, 0},
	// bit 6
	0x70: {"bit 6, b", 1, KindLongOpcode, 0},
	0x71: {"bit 6, c", 1, KindLongOpcode, 0},
	0x72: {"bit 6, d", 1, KindLongOpcode, 0},
	0x73: {"bit 6, e", 1, KindLongOpcode, 0},
	0x74: {"bit 6, h", 1, KindLongOpcode, 0},
	0x75: {"bit 6, l", 1, KindLongOpcode, 0},
	0x76: {"bit 6, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x77: {"bit 6, a", 1, KindLongOpcode, 0},
	// bit 7
	0x78: {"bit 7, b", 1, KindLongOpcode, 0},
	0x79: {"bit 7, c", 1, KindLongOpcode, 0},
	0x7A: {"bit 7, d", 1, KindLongOpcode, 0},
	0x7B: {"bit 7, e", 1, KindLongOpcode, 0},
	0x7C: {"bit 7, h", 1, KindLongOpcode, 0},
	0x7D: {"bit 7, l", 1, KindLongOpcode, 0},
	0x7E: {"bit 7, [hl]", 1, KindLongOpcode, FlagReadMem},
	0x7F: {"bit 7, a", 1, KindLongOpcode, 0},
	// res 0
	0x80: {"res 0, b", 1, KindLongOpcode, 0},
	0x81: {"res 0, c", 1, KindLongOpcode, 0},
	0x82: {"res 0, d", 1, KindLongOpcode, 0},
	0x83: {"res 0, e", 1, KindLongOpcode, 0},
	0x84: {"res 0, h", 1, KindLongOpcode, 0},
	0x85: {"res 0, l", 1, KindLongOpcode, 0},
	0x86: {"res 0, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0x87: {"res 0, a", 1, KindLongOpcode, 0},
	// res 1
	0x88: {"res 1, b", 1, KindLongOpcode, 0},
	0x89: {"res 1, c", 1, KindLongOpcode, 0},
	0x8A: {"res 1, d", 1, KindLongOpcode, 0},
	0x8B: {"res 1, e", 1, KindLongOpcode, 0},
	0x8C: {"res 1, h", 1, KindLongOpcode, 0},
	0x8D: {"res 1, l", 1, KindLongOpcode, 0},
	0x8E: {"res 1, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0x8F: {"res 1, a", 1, KindLongOpcode, 0},
	// res 2
	0x90: {"res 2, b", 1, KindLongOpcode, 0},
	0x91: {"res 2, c", 1, KindLongOpcode, 0},
	0x92: {"res 2, d", 1, KindLongOpcode, 0},
	0x93: {"res 2, e", 1, KindLongOpcode, 0},
	0x94: {"res 2, h", 1, KindLongOpcode, 0},
	0x95: {"res 2, l", 1, KindLongOpcode, 0},
	0x96: {"res 2, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0x97: {"res 2, a", 1, KindLongOpcode, 0},
	// res 3
	0x98: {"res 3, b", 1, KindLongOpcode, 0},
	0x99: {"res 3, c", 1, KindLongOpcode, 0},
	0x9A: {"res 3, d", 1, KindLongOpcode, 0},
	0x9B: {"res 3, e", 1, KindLongOpcode, 0},
	0x9C: {"res 3, h", 1, KindLongOpcode, 0},
	0x9D: {"res 3, l", 1, KindLongOpcode, 0},
	0x9E: {"res 3, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0x9F: {"res 3, a", 1, KindLongOpcode, 0},
	// res 4
	0xA0: {"res 4, b", 1, KindLongOpcode, 0},
	0xA1: {"res 4, c", 1, KindLongOpcode, 0},
	0xA2: {"res 4, d", 1, KindLongOpcode, 0},
	0xA3: {"res 4, e", 1, KindLongOpcode, 0},
	0xA4: {"res 4, h", 1, KindLongOpcode, 0},
	0xA5: {"res 4, l", 1, KindLongOpcode, 0},
	0xA6: {"res 4, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xA7: {"res 4, a", 1, KindLongOpcode, 0},
	// res 5
	0xA8: {"res 5, b", 1, KindLongOpcode, 0},
	0xA9: {"res 5, c", 1, KindLongOpcode, 0},
	0xAA: {"res 5, d", 1, KindLongOpcode, 0},
	0xAB: {"res 5, e", 1, KindLongOpcode, 0},
	0xAC: {"res 5, h", 1, KindLongOpcode, 0},
	0xAD: {"res 5, l", 1, KindLongOpcode, 0},
	0xAE: {"res 5, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xAF: {"res 5, a", 1, KindLongOpcode, 0},
	// res 6
	0xB0: {"res 6, b", 1, KindLongOpcode, 0},
	0xB1: {"res 6, c", 1, KindLongOpcode, 0},
	0xB2: {"res 6, d", 1, KindLongOpcode, 0},
	0xB3: {"res 6, e", 1, KindLongOpcode, 0},
	0xB4: {"res 6, h", 1, KindLongOpcode, 0},
	0xB5: {"res 6, l", 1, KindLongOpcode, 0},
	0xB6: {"res 6, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xB7: {"res 6, a", 1, KindLongOpcode, 0},
	// res 7
	0xB8: {"res 7, b", 1, KindLongOpcode, 0},
	0xB9: {"res 7, c", 1, KindLongOpcode, 0},
	0xBA: {"res 7, d", 1, KindLongOpcode, 0},
	0xBB: {"res 7, e", 1, KindLongOpcode, 0},
	0xBC: {"res 7, h", 1, KindLongOpcode, 0},
	0xBD: {"res 7, l", 1, KindLongOpcode, 0},
	0xBE: {"res 7, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xBF: {"res 7, a", 1, KindLongOpcode, 0},
	// set 0
	0xC0: {"set 0, b", 1, KindLongOpcode, 0},
	0xC1: {"set 0, c", 1, KindLongOpcode, 0},
	0xC2: {"set 0, d", 1, KindLongOpcode, 0},
	0xC3: {"set 0, e", 1, KindLongOpcode, 0},
	0xC4: {"set 0, h", 1, KindLongOpcode, 0},
	0xC5: {"set 0, l", 1, KindLongOpcode, 0},
	0xC6: {"set 0, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xC7: {"set 0, a", 1, KindLongOpcode, 0},
	// set 1
	0xC8: {"set 1, b", 1, KindLongOpcode, 0},
	0xC9: {"set 1, c", 1, KindLongOpcode, 0},
	0xCA: {"set 1, d", 1, KindLongOpcode, 0},
	0xCB: {"set 1, e", 1, KindLongOpcode, 0},
	0xCC: {"set 1, h", 1, KindLongOpcode, 0},
	0xCD: {"set 1, l", 1, KindLongOpcode, 0},
	0xCE: {"set 1, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xCF: {"set 1, a", 1, KindLongOpcode, 0},
	// set 2
	0xD0: {"set 2, b", 1, KindLongOpcode, 0},
	0xD1: {"set 2, c", 1, KindLongOpcode, 0},
	0xD2: {"set 2, d", 1, KindLongOpcode, 0},
	0xD3: {"set 2, e", 1, KindLongOpcode, 0},
	0xD4: {"set 2, h", 1, KindLongOpcode, 0},
	0xD5: {"set 2, l", 1, KindLongOpcode, 0},
	0xD6: {"set 2, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xD7: {"set 2, a", 1, KindLongOpcode, 0},
	// set 3
	0xD8: {"set 3, b", 1, KindLongOpcode, 0},
	0xD9: {"set 3, c", 1, KindLongOpcode, 0},
	0xDA: {"set 3, d", 1, KindLongOpcode, 0},
	0xDB: {"set 3, e", 1, KindLongOpcode, 0},
	0xDC: {"set 3, h", 1, KindLongOpcode, 0},
	0xDD: {"set 3, l", 1, KindLongOpcode, 0},
	0xDE: {"set 3, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xDF: {"set 3, a", 1, KindLongOpcode, 0},
	// set 4
	0xE0: {"set 4, b", 1, KindLongOpcode, 0},
	0xE1: {"set 4, c", 1, KindLongOpcode, 0},
	0xE2: {"set 4, d", 1, KindLongOpcode, 0},
	0xE3: {"set 4, e", 1, KindLongOpcode, 0},
	0xE4: {"set 4, h", 1, KindLongOpcode, 0},
	0xE5: {"set 4, l", 1, KindLongOpcode, 0},
	0xE6: {"set 4, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xE7: {"set 4, a", 1, KindLongOpcode, 0},
	// set 5
	0xE8: {"set 5, b", 1, KindLongOpcode, 0},
	0xE9: {"set 5, c", 1, KindLongOpcode, 0},
	0xEA: {"set 5, d", 1, KindLongOpcode, 0},
	0xEB: {"set 5, e", 1, KindLongOpcode, 0},
	0xEC: {"set 5, h", 1, KindLongOpcode, 0},
	0xED: {"set 5, l", 1, KindLongOpcode, 0},
	0xEE: {"set 5, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xEF: {"set 5, a", 1, KindLongOpcode, 0},
	// set 6
	0xF0: {"set 6, b", 1, KindLongOpcode, 0},
	0xF1: {"set 6, c", 1, KindLongOpcode, 0},
	0xF2: {"set 6, d", 1, KindLongOpcode, 0},
	0xF3: {"set 6, e", 1, KindLongOpcode, 0},
	0xF4: {"set 6, h", 1, KindLongOpcode, 0},
	0xF5: {"set 6, l", 1, KindLongOpcode, 0},
	0xF6: {"set 6, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xF7: {"set 6, a", 1, KindLongOpcode, 0},
	// set 7
	0xF8: {"set 7, b", 1, KindLongOpcode, 0},
	0xF9: {"set 7, c", 1, KindLongOpcode, 0},
	0xFA: {"set 7, d", 1, KindLongOpcode, 0},
	0xFB: {"set 7, e", 1, KindLongOpcode, 0},
	0xFC: {"set 7, h", 1, KindLongOpcode, 0},
	0xFD: {"set 7, l", 1, KindLongOpcode, 0},
	0xFE: {"set 7, [hl]", 1, KindLongOpcode, FlagWriteMem},
	0xFF: {"set 7, a", 1, KindLongOpcode, 0},
}

// Lookup returns the Info for a primary opcode byte, or — when op is the
// CB prefix — for the following bit-ops selector byte.
func Lookup(op byte, bitop byte) Info {
	if op == CBPrefix {
		return Bitops[bitop]
	}
	return Primary[op]
}
