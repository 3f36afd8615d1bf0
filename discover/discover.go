// Package discover implements the recursive-descent code-discovery
// fixpoint: starting from a set of known entry points, it decodes
// forward until control flow stops, harvests every statically known
// jump/call target it saw along the way, folds those back in as new
// entry points, and repeats until the set of points stops changing.
package discover

import (
	"sort"

	"go.uber.org/zap"

	"sm83dis/decode"
	"sm83dis/emu"
	"sm83dis/opcode"
	"sm83dis/rom"
	"sm83dis/tagset"
	"sm83dis/xaddr"
	"sm83dis/xsort"
)

// Block is a contiguous run of decoded instructions.
type Block struct {
	Start xaddr.XAddr
	Len   int
}

// ScanHeadBlock decodes forward from xa, stopping at the first
// JUMP-flagged instruction (inclusive) or after maxLen bytes, whichever
// comes first. ok is false when decoding hits an invalid opcode or an
// adversarial slice before either of those — the caller treats that cut
// as not code.
func ScanHeadBlock(view *rom.View, tags *tagset.Index, xa xaddr.XAddr, maxLen int) (Block, bool) {
	e := emu.WithBound(view, tags, xa, maxLen)
	offset := 0
	for {
		_, ins, err, ok := e.Next()
		if err != nil {
			return Block{}, false
		}
		if !ok {
			return Block{Start: xa, Len: maxLen}, true
		}
		offset += ins.EncodedLen()
		if ins.Info().Flags&opcode.FlagJump != 0 {
			return Block{Start: xa, Len: offset}, true
		}
	}
}

// SearchForCode repeatedly extends a cut with ScanHeadBlock, stopping
// when a block ends in an unconditional, non-call jump (the rest of the
// cut is unreachable straight-line code) or in a call to a target
// tagged NoReturn (the fall-through never executes).
func SearchForCode(view *rom.View, tags *tagset.Index, cut Block) []Block {
	var blocks []Block
	offset := 0
	for offset < cut.Len {
		xa := cut.Start.Add(uint16(offset))
		blk, ok := ScanHeadBlock(view, tags, xa, cut.Len-offset)
		if !ok {
			break
		}
		blocks = append(blocks, blk)

		lastIns, e, ok := lastInstructionOf(view, tags, blk)
		if !ok {
			offset += blk.Len
			continue
		}
		info := lastIns.Info()

		if info.Flags&opcode.FlagJump != 0 && info.Flags&(opcode.FlagCall|opcode.FlagConditional) == 0 {
			break
		}
		if info.Flags&opcode.FlagCall != 0 {
			if target, ok := lastIns.GetJumpTarget(); ok {
				if txa, ok := e.ExpandAddr(target); ok && hasNoReturn(tags, txa) {
					break
				}
			}
		}
		offset += blk.Len
	}
	return blocks
}

// lastInstructionOf re-walks blk with a fresh emulator to find its final
// instruction, returning that emulator (its bank registers now current
// as of the end of the block) so the caller can resolve the final
// instruction's operand against them.
func lastInstructionOf(view *rom.View, tags *tagset.Index, blk Block) (decode.Instruction, *emu.Emulator, bool) {
	e := emu.WithBound(view, tags, blk.Start, blk.Len)
	var lastIns decode.Instruction
	found := false
	for {
		_, ins, err, ok := e.Next()
		if err != nil || !ok {
			break
		}
		lastIns, found = ins, true
	}
	return lastIns, e, found
}

func hasNoReturn(tags *tagset.Index, xa xaddr.XAddr) bool {
	for _, t := range tags.GetTagsAt(xa) {
		if t.Kind == tagset.NoReturn {
			return true
		}
	}
	return false
}

// CutBlocks partitions points into per-bank (point, len) cuts, where
// len runs to the next point in the same bank or to the end of the
// bank for the last point in it. points must be sorted.
func CutBlocks(view *rom.View, points []xaddr.XAddr) []Block {
	var cuts []Block
	for _, bb := range view.BankBlocks() {
		bankEnd := bb.Start.Addr + uint16(bb.Len)
		var inBank []xaddr.XAddr
		for _, p := range points {
			if p.Bank == bb.Start.Bank && p.Addr >= bb.Start.Addr && p.Addr < bankEnd {
				inBank = append(inBank, p)
			}
		}
		for i, p := range inBank {
			var length int
			if i+1 < len(inBank) {
				length = int(inBank[i+1].Addr - p.Addr)
			} else {
				length = int(bankEnd - p.Addr)
			}
			cuts = append(cuts, Block{Start: p, Len: length})
		}
	}
	return cuts
}

// ScanXrefs re-walks every block and harvests every statically known
// jump/call target, skipping instructions tagged DontFollowCall.
func ScanXrefs(view *rom.View, tags *tagset.Index, blocks []Block) []xaddr.XAddr {
	var xrefs []xaddr.XAddr
	for _, blk := range blocks {
		e := emu.WithBound(view, tags, blk.Start, blk.Len)
		for {
			xa, ins, err, ok := e.Next()
			if err != nil || !ok {
				break
			}
			if hasKind(tags, xa, tagset.DontFollowCall) {
				continue
			}
			target, ok := ins.GetJumpTarget()
			if !ok {
				continue
			}
			if txa, ok := e.ExpandAddr(target); ok {
				xrefs = append(xrefs, txa)
			}
		}
	}
	sort.Slice(xrefs, func(i, j int) bool { return xrefs[i].Less(xrefs[j]) })
	return xsort.Dedup(xrefs)
}

func hasKind(tags *tagset.Index, xa xaddr.XAddr, k tagset.Kind) bool {
	for _, t := range tags.GetTagsAt(xa) {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// WarnAboutDifferences logs every point present in prev but not in next
// and vice versa, in address order.
func WarnAboutDifferences(logger *zap.Logger, prev, next []xaddr.XAddr) {
	i, j := 0, 0
	for i < len(prev) && j < len(next) {
		switch {
		case prev[i] == next[j]:
			i++
			j++
		case prev[i].Less(next[j]):
			logger.Warn("discovery point removed", zap.Stringer("addr", prev[i]))
			i++
		default:
			logger.Warn("discovery point added", zap.Stringer("addr", next[j]))
			j++
		}
	}
	for ; i < len(prev); i++ {
		logger.Warn("discovery point removed", zap.Stringer("addr", prev[i]))
	}
	for ; j < len(next); j++ {
		logger.Warn("discovery point added", zap.Stringer("addr", next[j]))
	}
}

// Run executes the cut → scan → harvest-xrefs → merge fixpoint loop
// until the point set stops changing, and returns the final set of
// decoded blocks. A shrinking point set is an anomaly (e.g. a NoReturn
// tag invalidating a previously reachable fall-through) that Run
// tolerates: it logs the difference and returns what it has rather than
// looping forever or treating it as fatal.
func Run(view *rom.View, tags *tagset.Index, entryPoints []xaddr.XAddr, logger *zap.Logger) []Block {
	if logger == nil {
		logger = zap.NewNop()
	}
	origin := append([]xaddr.XAddr(nil), entryPoints...)
	sort.Slice(origin, func(i, j int) bool { return origin[i].Less(origin[j]) })
	origin = xsort.Dedup(origin)

	points := origin
	var blocks []Block
	for {
		cuts := CutBlocks(view, points)
		blocks = nil
		for _, cut := range cuts {
			blocks = append(blocks, SearchForCode(view, tags, cut)...)
		}

		prevPoints := points
		xrefs := ScanXrefs(view, tags, blocks)
		points = xsort.Dedup(xsort.Merge(origin, xrefs))

		if sameAddrs(points, prevPoints) {
			return blocks
		}
		if len(points) < len(prevPoints) {
			logger.Warn("discovery point set shrank between cycles",
				zap.Int("prev", len(prevPoints)), zap.Int("next", len(points)))
			WarnAboutDifferences(logger, prevPoints, points)
			return blocks
		}
	}
}

func sameAddrs(a, b []xaddr.XAddr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
