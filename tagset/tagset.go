// Package tagset models the annotations a caller attaches to specific
// addresses — markers that seed or steer discovery (Code, NoReturn,
// bank overrides, JumpTable, DontFollowCall), and markers that only
// affect naming and listing (Name, Comment, OperandAddr).
package tagset

import (
	"sort"

	"sm83dis/xaddr"
)

// Kind discriminates the payload a Tag carries.
type Kind int

const (
	// Code marks an address as a decode entry point.
	Code Kind = iota
	// NoReturn marks a call target as never returning, letting
	// discovery stop scanning the caller's fall-through path.
	NoReturn
	// RomBank overrides the emulator's ROM bank register at this
	// address, observed before the next instruction is decoded.
	RomBank
	// RamBank overrides the emulator's CGB WRAM bank register.
	RamBank
	// SrmBank overrides the emulator's cartridge SRAM bank register.
	SrmBank
	// OperandAddr marks an instruction's operand as an address that
	// should be resolved to a name during listing, even if the opcode
	// table wouldn't otherwise flag it as one.
	OperandAddr
	// JumpTable marks an address as the head of a table of N
	// consecutive code-address entries.
	JumpTable
	// Name assigns an explicit label to an address.
	Name
	// DontFollowCall suppresses xref harvesting for a call instruction
	// at this address — its target is known not to be worth decoding.
	DontFollowCall
	// Comment attaches a free-text annotation for the listing.
	Comment
)

// Tag is one annotation. Only the fields relevant to Kind are set; the
// zero value of the rest is ignored.
type Tag struct {
	Kind    Kind
	Bank    uint16
	N       int
	Name    string
	Comment string
}

// Entry pairs a Tag with the address it annotates.
type Entry struct {
	XA  xaddr.XAddr
	Tag Tag
}

// Index is a read-only, address-sorted collection of Entry, supporting
// equal-range lookup by address.
type Index struct {
	entries []Entry
}

// NewIndex sorts entries by XAddr and returns an Index over them. The
// input slice is not retained.
func NewIndex(entries []Entry) *Index {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].XA.Less(sorted[j].XA)
	})
	return &Index{entries: sorted}
}

// GetTagsAt returns every Tag attached to xa, in the order they were
// given to NewIndex.
func (ix *Index) GetTagsAt(xa xaddr.XAddr) []Tag {
	lo := sort.Search(len(ix.entries), func(i int) bool {
		return !ix.entries[i].XA.Less(xa)
	})
	hi := sort.Search(len(ix.entries), func(i int) bool {
		return xa.Less(ix.entries[i].XA)
	})
	if lo >= hi {
		return nil
	}
	tags := make([]Tag, 0, hi-lo)
	for _, e := range ix.entries[lo:hi] {
		tags = append(tags, e.Tag)
	}
	return tags
}

// All returns every entry in address order.
func (ix *Index) All() []Entry {
	return ix.entries
}

// CodeEntryPoints returns the XAddr of every Code-tagged entry, sorted
// and de-duplicated.
func (ix *Index) CodeEntryPoints() []xaddr.XAddr {
	var points []xaddr.XAddr
	for _, e := range ix.entries {
		if e.Tag.Kind == Code {
			points = append(points, e.XA)
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	return dedup(points)
}

func dedup(points []xaddr.XAddr) []xaddr.XAddr {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
