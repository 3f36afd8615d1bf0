package xaddr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/xaddr"
)

func TestString(t *testing.T) {
	require.Equal(t, "02:1A3F", xaddr.New(2, 0x1A3F).String())
	require.Equal(t, "00:0100", xaddr.New(0, 0x0100).String())
}

func TestCompareAndLess(t *testing.T) {
	a := xaddr.New(0, 0x4000)
	b := xaddr.New(0, 0x4001)
	c := xaddr.New(1, 0x4000)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Less(c))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestAddWrapsAddrOnly(t *testing.T) {
	xa := xaddr.New(3, 0xFFFE)
	got := xa.Add(4)
	assert.EqualValues(t, 3, got.Bank)
	assert.EqualValues(t, 2, got.Addr)
}
