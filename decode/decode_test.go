package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/decode"
	"sm83dis/opcode"
)

func TestDecodeNop(t *testing.T) {
	ins, err := decode.Decode(0x0100, []byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), ins.Opcode)
	assert.Equal(t, 1, ins.EncodedLen())
	assert.True(t, ins.IsValid())
}

func TestDecodeCodeRelativeFixup(t *testing.T) {
	// jr % at 0x0100 with operand byte 0x05 should land at 0x0100+2+5 = 0x0107.
	ins, err := decode.Decode(0x0100, []byte{0x18, 0x05})
	require.NoError(t, err)
	assert.EqualValues(t, 0x0107, ins.Operand)

	// Negative offset: 0xFE == -2, so target is 0x0100+2-2 = 0x0100 (infinite loop idiom).
	ins, err = decode.Decode(0x0100, []byte{0x18, 0xFE})
	require.NoError(t, err)
	assert.EqualValues(t, 0x0100, ins.Operand)
}

func TestDecodeDataHramFixup(t *testing.T) {
	ins, err := decode.Decode(0x0100, []byte{0xE0, 0x44})
	require.NoError(t, err)
	assert.EqualValues(t, 0xFF44, ins.Operand)
}

func TestDecodeCBPrefixed(t *testing.T) {
	ins, err := decode.Decode(0x0100, []byte{opcode.CBPrefix, 0x7E})
	require.NoError(t, err)
	assert.Equal(t, byte(opcode.CBPrefix), ins.Opcode)
	assert.Equal(t, byte(0x7E), ins.Selector)
	assert.Equal(t, 2, ins.EncodedLen())
	assert.Equal(t, "bit 7, [hl]", ins.Info().Fmt)
}

func TestDecodeInvalidOpcode(t *testing.T) {
	_, err := decode.Decode(0x0100, []byte{0xD3})
	require.ErrorIs(t, err, decode.ErrInvalidOpcode)
}

func TestDecodeSliceTooSmall(t *testing.T) {
	_, err := decode.Decode(0x0100, nil)
	require.ErrorIs(t, err, decode.ErrSliceTooSmall)

	_, err = decode.Decode(0x0100, []byte{0xC3, 0x00}) // jp % needs 2 operand bytes
	require.ErrorIs(t, err, decode.ErrSliceTooSmall)
}

func TestGetJumpTarget(t *testing.T) {
	jp, err := decode.Decode(0x0100, []byte{0xC3, 0x50, 0x01})
	require.NoError(t, err)
	target, ok := jp.GetJumpTarget()
	require.True(t, ok)
	assert.EqualValues(t, 0x0150, target)

	ret, err := decode.Decode(0x0100, []byte{0xC9})
	require.NoError(t, err)
	_, ok = ret.GetJumpTarget()
	assert.False(t, ok)

	rst, err := decode.Decode(0x0100, []byte{opcode.RST38})
	require.NoError(t, err)
	target, ok = rst.GetJumpTarget()
	require.True(t, ok)
	assert.EqualValues(t, 0x0038, target)
}

func TestIsAddrOperand(t *testing.T) {
	jp, err := decode.Decode(0x0100, []byte{0xC3, 0x00, 0x02})
	require.NoError(t, err)
	assert.True(t, jp.IsAddrOperand())

	ldImm, err := decode.Decode(0x0100, []byte{0x3E, 0x05})
	require.NoError(t, err)
	assert.False(t, ldImm.IsAddrOperand())

	ldh, err := decode.Decode(0x0100, []byte{0xE0, 0x44})
	require.NoError(t, err)
	assert.True(t, ldh.IsAddrOperand())
}
