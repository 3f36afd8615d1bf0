package tagset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sm83dis/tagset"
	"sm83dis/xaddr"
)

func TestGetTagsAtEqualRange(t *testing.T) {
	a := xaddr.New(0, 0x0100)
	b := xaddr.New(0, 0x0200)
	ix := tagset.NewIndex([]tagset.Entry{
		{XA: b, Tag: tagset.Tag{Kind: tagset.Code}},
		{XA: a, Tag: tagset.Tag{Kind: tagset.Code}},
		{XA: a, Tag: tagset.Tag{Kind: tagset.Name, Name: "Start"}},
	})

	tags := ix.GetTagsAt(a)
	require.Len(t, tags, 2)
	assert.Equal(t, tagset.Code, tags[0].Kind)
	assert.Equal(t, tagset.Name, tags[1].Kind)

	assert.Empty(t, ix.GetTagsAt(xaddr.New(0, 0x9999)))
}

func TestCodeEntryPointsSortedAndDeduped(t *testing.T) {
	ix := tagset.NewIndex([]tagset.Entry{
		{XA: xaddr.New(0, 0x0200), Tag: tagset.Tag{Kind: tagset.Code}},
		{XA: xaddr.New(0, 0x0100), Tag: tagset.Tag{Kind: tagset.Code}},
		{XA: xaddr.New(0, 0x0100), Tag: tagset.Tag{Kind: tagset.Code}},
		{XA: xaddr.New(0, 0x0150), Tag: tagset.Tag{Kind: tagset.Name, Name: "x"}},
	})
	points := ix.CodeEntryPoints()
	require.Len(t, points, 2)
	assert.Equal(t, xaddr.New(0, 0x0100), points[0])
	assert.Equal(t, xaddr.New(0, 0x0200), points[1])
}
