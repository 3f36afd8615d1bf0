package emu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/emu"
	"sm83dis/rom"
	"sm83dis/tagset"
	"sm83dis/xaddr"
)

func romWith(t *testing.T, bytes []byte, info rom.RomInfo) *rom.View {
	t.Helper()
	data := make([]byte, 0x10000)
	copy(data, bytes)
	return rom.NewView(data, info)
}

func TestExpandAddrUnresolvedWithoutBankTag(t *testing.T) {
	v := romWith(t, nil, rom.RomInfo{BigROM: true})
	ix := tagset.NewIndex(nil)
	e := emu.WithBound(v, ix, xaddr.New(0, 0x0100), 4)

	_, ok := e.ExpandAddr(0x4500)
	assert.False(t, ok, "no RomBank register and starting bank is the fixed low bank")
}

func TestExpandAddrSeededFromStartingBank(t *testing.T) {
	v := romWith(t, nil, rom.RomInfo{BigROM: true})
	ix := tagset.NewIndex(nil)
	e := emu.WithBound(v, ix, xaddr.New(3, 0x4100), 4)

	xa, ok := e.ExpandAddr(0x4500)
	require.True(t, ok)
	assert.Equal(t, xaddr.New(3, 0x4500), xa)
}

func TestRomBankTagAppliesBeforeExpandingThatInstruction(t *testing.T) {
	// nop; ld a, (0x4500) — the RomBank tag sits on the ld instruction
	// itself and must be visible when resolving its own operand.
	program := []byte{0x00, 0xFA, 0x00, 0x45}
	v := romWith(t, program, rom.RomInfo{BigROM: true})
	ix := tagset.NewIndex([]tagset.Entry{
		{XA: xaddr.New(0, 0x0001), Tag: tagset.Tag{Kind: tagset.RomBank, Bank: 7}},
	})
	e := emu.WithBound(v, ix, xaddr.New(0, 0x0000), len(program))

	_, _, err, ok := e.Next() // nop
	require.NoError(t, err)
	require.True(t, ok)

	xa, ins, err, ok := e.Next() // ld a, [%]
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, xaddr.New(0, 0x0001), xa)

	target, ok := e.ExpandAddr(ins.Operand)
	require.True(t, ok)
	assert.Equal(t, xaddr.New(7, 0x4500), target)
}

func TestNextStopsAtWindowEnd(t *testing.T) {
	v := romWith(t, []byte{0x00, 0x00}, rom.RomInfo{BigROM: true})
	ix := tagset.NewIndex(nil)
	e := emu.WithBound(v, ix, xaddr.New(0, 0x0000), 2)

	_, _, err, ok := e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	_, _, err, ok = e.Next()
	require.NoError(t, err)
	require.True(t, ok)
	_, _, err, ok = e.Next()
	require.NoError(t, err)
	require.False(t, ok)
}
