package tagfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/tagfile"
	"sm83dis/tagset"
	"sm83dis/xaddr"
)

func TestParseBasicTags(t *testing.T) {
	input := `
; a comment
0100 .code
02:4010 .name_like_token
0150 .noreturn
0160 .rombank 03
0161 .rombank 10
0170 .rambank 1
0180 .srambank 2
0190 .addr
`
	entries, err := tagfile.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 8)

	assert.Equal(t, xaddr.New(0, 0x0100), entries[0].XA)
	assert.Equal(t, tagset.Code, entries[0].Tag.Kind)

	assert.Equal(t, xaddr.New(2, 0x4010), entries[1].XA)
	assert.Equal(t, tagset.Name, entries[1].Tag.Kind)
	assert.Equal(t, ".name_like_token", entries[1].Tag.Name)

	assert.Equal(t, tagset.NoReturn, entries[2].Tag.Kind)

	assert.Equal(t, tagset.RomBank, entries[3].Tag.Kind)
	assert.EqualValues(t, 3, entries[3].Tag.Bank)

	// Bank counts are decimal: "10" must resolve to bank ten, not 0x10.
	assert.Equal(t, tagset.RomBank, entries[4].Tag.Kind)
	assert.EqualValues(t, 10, entries[4].Tag.Bank)

	assert.Equal(t, tagset.RamBank, entries[5].Tag.Kind)
	assert.EqualValues(t, 1, entries[5].Tag.Bank)

	assert.Equal(t, tagset.SrmBank, entries[6].Tag.Kind)
	assert.EqualValues(t, 2, entries[6].Tag.Bank)

	assert.Equal(t, tagset.OperandAddr, entries[7].Tag.Kind)
}

func TestParseInvalidAddress(t *testing.T) {
	_, err := tagfile.Parse(strings.NewReader("zz:zz .code\n"))
	require.ErrorIs(t, err, tagfile.ErrInvalidAddress)
}

func TestParseMissingTag(t *testing.T) {
	_, err := tagfile.Parse(strings.NewReader("0100\n"))
	require.ErrorIs(t, err, tagfile.ErrMissingTag)
}

func TestParseMissingTagArgument(t *testing.T) {
	_, err := tagfile.Parse(strings.NewReader("0100 .rombank\n"))
	require.ErrorIs(t, err, tagfile.ErrMissingTagArgument)
}

func TestParseIgnoresBlankAndCommentLines(t *testing.T) {
	entries, err := tagfile.Parse(strings.NewReader("\n; nothing here\n  \n0100 .code\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
