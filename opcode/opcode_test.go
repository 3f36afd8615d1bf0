package opcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/opcode"
)

func TestPrimaryTableSpotChecks(t *testing.T) {
	nop := opcode.Primary[0x00]
	assert.Equal(t, "nop", nop.Fmt)
	assert.Equal(t, uint8(0), nop.OperandLen)
	assert.EqualValues(t, 0, nop.Flags)

	jp := opcode.Primary[0xC3]
	assert.Equal(t, opcode.KindCode, jp.Kind)
	assert.NotZero(t, jp.Flags&opcode.FlagJump)

	call := opcode.Primary[0xCD]
	assert.NotZero(t, call.Flags&opcode.FlagJump)
	assert.NotZero(t, call.Flags&opcode.FlagCall)

	jrnz := opcode.Primary[0x20]
	assert.Equal(t, opcode.KindCodeRelative, jrnz.Kind)
	assert.NotZero(t, jrnz.Flags&opcode.FlagConditional)

	ldh := opcode.Primary[0xE0]
	assert.Equal(t, opcode.KindDataHram, ldh.Kind)
	assert.NotZero(t, ldh.Flags&opcode.FlagWriteMem)

	jphl := opcode.Primary[0xE9]
	assert.Equal(t, opcode.KindNone, jphl.Kind)
	assert.NotZero(t, jphl.Flags&opcode.FlagJump)
}

func TestInvalidOpcodesMarked(t *testing.T) {
	for _, op := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		require.NotZero(t, opcode.Primary[op].Flags&opcode.FlagInvalid, "opcode %02X should be invalid", op)
	}
}

func TestRSTTargets(t *testing.T) {
	target, ok := opcode.RSTTarget(opcode.RST18)
	require.True(t, ok)
	assert.EqualValues(t, 0x0018, target)

	_, ok = opcode.RSTTarget(0x00)
	assert.False(t, ok)
}

func TestBitopsTableRegisterAndHLVariants(t *testing.T) {
	rlcB := opcode.Bitops[0x00]
	assert.Equal(t, "rlc b", rlcB.Fmt)
	assert.EqualValues(t, 0, rlcB.Flags)

	rlcHL := opcode.Bitops[0x06]
	assert.Equal(t, "rlc [hl]", rlcHL.Fmt)
	assert.NotZero(t, rlcHL.Flags&opcode.FlagReadMem)
	assert.NotZero(t, rlcHL.Flags&opcode.FlagWriteMem)

	bitHL := opcode.Bitops[0x46]
	assert.Equal(t, "bit 0, [hl]", bitHL.Fmt)
	assert.NotZero(t, bitHL.Flags&opcode.FlagReadMem)
	assert.Zero(t, bitHL.Flags&opcode.FlagWriteMem)

	setHL := opcode.Bitops[0xC6]
	assert.Equal(t, "set 0, [hl]", setHL.Fmt)
	assert.Zero(t, setHL.Flags&opcode.FlagReadMem)
	assert.NotZero(t, setHL.Flags&opcode.FlagWriteMem)
}

func TestLookupDispatchesThroughCBPrefix(t *testing.T) {
	info := opcode.Lookup(opcode.CBPrefix, 0x7E)
	assert.Equal(t, "bit 7, [hl]", info.Fmt)

	info = opcode.Lookup(0xC3, 0)
	assert.Equal(t, "jp %", info.Fmt)
}
