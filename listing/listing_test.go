package listing_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/discover"
	"sm83dis/listing"
	"sm83dis/rom"
	"sm83dis/tagset"
	"sm83dis/xaddr"
)

func TestDefaultNameRegions(t *testing.T) {
	assert.Equal(t, "sCode_00_A010", listing.DefaultName(xaddr.New(0, 0xA010), "Code"))
	assert.Equal(t, "hUnkFF80", listing.DefaultName(xaddr.New(0, 0xFF80), "Unk"))
	assert.Equal(t, "wCodeC100", listing.DefaultName(xaddr.New(0, 0xC100), "Code"))
	assert.Equal(t, "wCode_02_C100", listing.DefaultName(xaddr.New(2, 0xC100), "Code"))
	assert.Equal(t, "Code_0100", listing.DefaultName(xaddr.New(0, 0x0100), "Code"))
	assert.Equal(t, "Code_03_4100", listing.DefaultName(xaddr.New(3, 0x4100), "Code"))
}

func TestResolveTableTarget(t *testing.T) {
	xa, ok := listing.ResolveTableTarget(rom.RomInfo{BigROM: true}, 2, 0x4500)
	require.True(t, ok)
	assert.Equal(t, xaddr.New(2, 0x4500), xa)

	xa, ok = listing.ResolveTableTarget(rom.RomInfo{BigROM: false}, 2, 0x4500)
	require.True(t, ok)
	assert.Equal(t, xaddr.New(0, 0x4500), xa)

	_, ok = listing.ResolveTableTarget(rom.RomInfo{}, 0, 0xC000)
	assert.False(t, ok)
}

func TestRenderSimpleBlock(t *testing.T) {
	data := make([]byte, 0x4000)
	data[0x0100] = 0x00 // nop
	data[0x0101] = 0xC9 // ret
	v := rom.NewView(data, rom.RomInfo{BigROM: true})
	tags := tagset.NewIndex([]tagset.Entry{
		{XA: xaddr.New(0, 0x0100), Tag: tagset.Tag{Kind: tagset.Name, Name: "Start"}},
	})
	blocks := []discover.Block{{Start: xaddr.New(0, 0x0100), Len: 2}}
	names := listing.BuildNameMap(v, tags, blocks)

	var buf bytes.Buffer
	require.NoError(t, listing.Render(&buf, v, tags, blocks, names))
	out := buf.String()

	assert.Contains(t, out, "Start:")
	assert.Contains(t, out, "nop")
	assert.Contains(t, out, "ret")
	assert.Contains(t, out, "section \"rom_00_0100\"")
}

func TestRenderFillsDataGaps(t *testing.T) {
	data := make([]byte, 0x4000)
	data[0x0100] = 0xC9 // ret
	data[0x0105] = 0xAB
	v := rom.NewView(data, rom.RomInfo{BigROM: true})
	tags := tagset.NewIndex(nil)
	blocks := []discover.Block{{Start: xaddr.New(0, 0x0100), Len: 1}}
	names := listing.BuildNameMap(v, tags, blocks)

	var buf bytes.Buffer
	require.NoError(t, listing.Render(&buf, v, tags, blocks, names))
	out := buf.String()
	assert.True(t, strings.Contains(out, ".db"), "gap bytes after the block should be rendered as data")
}

func TestBuildNameMapResolvesCodeRefs(t *testing.T) {
	data := make([]byte, 0x4000)
	data[0x0100] = 0xCD // call
	data[0x0101] = 0x50
	data[0x0102] = 0x01
	data[0x0150] = 0xC9 // ret
	v := rom.NewView(data, rom.RomInfo{BigROM: true})
	tags := tagset.NewIndex(nil)
	blocks := []discover.Block{{Start: xaddr.New(0, 0x0100), Len: 3}}
	names := listing.BuildNameMap(v, tags, blocks)

	name, ok := names[xaddr.New(0, 0x0150)]
	require.True(t, ok)
	assert.Equal(t, "Code_0150", name)
}
