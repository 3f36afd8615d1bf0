// Package listing turns a set of decoded blocks into the final textual
// assembly output: it synthesizes names for unlabeled addresses, fills
// the gaps between code blocks with data dumps, and renders everything
// in address order with section headers and local-label shorthand.
package listing

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"sm83dis/decode"
	"sm83dis/discover"
	"sm83dis/emu"
	"sm83dis/rom"
	"sm83dis/tagset"
	"sm83dis/xaddr"
)

// DefaultName synthesizes a name for xa using base as the semantic
// prefix ("Code" for a jump/call target, "Unk" for any other resolved
// operand address). The region an address falls in determines the
// prefix letter and whether the bank is embedded in the name.
func DefaultName(xa xaddr.XAddr, base string) string {
	switch {
	case xa.Addr >= 0xA000 && xa.Addr <= 0xAFFF:
		return fmt.Sprintf("s%s_%02X_%04X", base, xa.Bank, xa.Addr)
	case xa.Addr >= 0xFF80 && xa.Addr <= 0xFFFE:
		return fmt.Sprintf("h%s%04X", base, xa.Addr)
	case xa.Addr >= 0xC000 && xa.Addr <= 0xDFFF:
		if xa.Bank == 0 {
			return fmt.Sprintf("w%s%04X", base, xa.Addr)
		}
		return fmt.Sprintf("w%s_%02X_%04X", base, xa.Bank, xa.Addr)
	default:
		if xa.Bank == 0 {
			return fmt.Sprintf("%s_%04X", base, xa.Addr)
		}
		return fmt.Sprintf("%s_%02X_%04X", base, xa.Bank, xa.Addr)
	}
}

// ResolveTableTarget resolves a 16-bit code pointer found inside a
// JumpTable entry, using bank as the table's own bank (the convention a
// hand-written jump table follows: its entries point within the bank the
// table itself lives in).
func ResolveTableTarget(info rom.RomInfo, bank uint16, addr uint16) (xaddr.XAddr, bool) {
	switch {
	case addr <= 0x3FFF:
		return xaddr.New(0, addr), true
	case addr >= 0x4000 && addr <= 0x7FFF:
		if info.BigROM {
			return xaddr.New(bank, addr), true
		}
		return xaddr.New(0, addr), true
	default:
		return xaddr.XAddr{}, false
	}
}

// NameMap is a first-write-wins map from address to rendered name.
type NameMap map[xaddr.XAddr]string

// seed installs name, but only if xa has no name yet.
func (m NameMap) seed(xa xaddr.XAddr, name string) {
	if _, ok := m[xa]; !ok {
		m[xa] = name
	}
}

// BuildNameMap seeds a NameMap from explicit Name tags, then fills in
// default names for every resolvable code cross-reference and operand
// address that discovery's blocks touch.
func BuildNameMap(view *rom.View, tags *tagset.Index, blocks []discover.Block) NameMap {
	names := make(NameMap)
	for _, e := range tags.All() {
		if e.Tag.Kind == tagset.Name {
			names.seed(e.XA, e.Tag.Name)
		}
	}

	for _, blk := range blocks {
		e := emu.WithBound(view, tags, blk.Start, blk.Len)
		for {
			xa, ins, err, ok := e.Next()
			if err != nil || !ok {
				break
			}
			if target, ok := ins.GetJumpTarget(); ok {
				if txa, ok := e.ExpandAddr(target); ok {
					names.seed(txa, DefaultName(txa, "Code"))
				}
				continue
			}
			if ins.IsAddrOperand() || hasKind(tags, xa, tagset.OperandAddr) {
				if txa, ok := e.ExpandAddr(ins.Operand); ok {
					names.seed(txa, DefaultName(txa, "Unk"))
				}
			}
		}
	}
	return names
}

func hasKind(tags *tagset.Index, xa xaddr.XAddr, k tagset.Kind) bool {
	for _, t := range tags.GetTagsAt(xa) {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// jumpTableSpan returns the (n, true) for a JumpTable(n) tag at xa.
func jumpTableSpan(tags *tagset.Index, xa xaddr.XAddr) (int, bool) {
	for _, t := range tags.GetTagsAt(xa) {
		if t.Kind == tagset.JumpTable {
			return t.N, true
		}
	}
	return 0, false
}

func commentAt(tags *tagset.Index, xa xaddr.XAddr) (string, bool) {
	for _, t := range tags.GetTagsAt(xa) {
		if t.Kind == tagset.Comment {
			return t.Comment, true
		}
	}
	return "", false
}

type region struct {
	start xaddr.XAddr
	len   int
	kind  regionKind
}

type regionKind int

const (
	regionCode regionKind = iota
	regionJumpTable
	regionData
)

// Render writes the full listing for view's banks to w: instructions for
// each discovered block, `dw` entries for JumpTable-tagged spans, and
// `.db` dumps for whatever bytes neither covers.
func Render(w io.Writer, view *rom.View, tags *tagset.Index, blocks []discover.Block, names NameMap) error {
	sorted := append([]discover.Block(nil), blocks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Less(sorted[j].Start) })

	var lastXA xaddr.XAddr
	haveLast := false
	lastLabelBase := ""

	localName := func(xa xaddr.XAddr) (string, bool) {
		name, ok := names[xa]
		if !ok {
			return "", false
		}
		if lastLabelBase != "" && strings.HasPrefix(name, lastLabelBase+".") {
			return name[len(lastLabelBase):], true
		}
		return name, true
	}

	for _, bb := range view.BankBlocks() {
		regions := regionsInBank(tags, sorted, bb)
		bankEnd := bb.Start.Addr + uint16(bb.Len)
		cursor := bb.Start.Addr

		for _, r := range regions {
			if r.start.Addr > cursor {
				gap := rom.Block{Start: xaddr.New(bb.Start.Bank, cursor), Len: int(r.start.Addr - cursor)}
				if err := renderDataGap(w, view, gap); err != nil {
					return err
				}
			}

			switch r.kind {
			case regionCode:
				blk := discover.Block{Start: r.start, Len: r.len}
				if !haveLast || !directlyFollows(lastXA, r.start) {
					if haveLast {
						fmt.Fprintf(w, "; end: %s\n", lastXA)
					}
					fmt.Fprintf(w, "section \"rom_%02X_%04X\"\n", r.start.Bank, r.start.Addr)
				}
				if name, ok := localName(r.start); ok {
					fmt.Fprintf(w, "%s:\n", name)
					if base, ok := names[r.start]; ok {
						lastLabelBase = base
					}
				}
				if err := renderBlock(w, view, tags, blk, localName); err != nil {
					return err
				}
				lastXA = r.start.Add(uint16(r.len))
				haveLast = true

			case regionJumpTable:
				if name, ok := localName(r.start); ok {
					fmt.Fprintf(w, "%s:\n", name)
				}
				if err := renderJumpTable(w, view, r.start, r.len/2, names); err != nil {
					return err
				}
				lastXA = r.start.Add(uint16(r.len))
				haveLast = true
			}

			cursor = r.start.Addr + uint16(r.len)
		}

		if cursor < bankEnd {
			gap := rom.Block{Start: xaddr.New(bb.Start.Bank, cursor), Len: int(bankEnd - cursor)}
			if err := renderDataGap(w, view, gap); err != nil {
				return err
			}
		}
	}
	return nil
}

func directlyFollows(last, next xaddr.XAddr) bool {
	return last.Bank == next.Bank && last.Addr == next.Addr
}

func regionsInBank(tags *tagset.Index, blocks []discover.Block, bb rom.Block) []region {
	var regions []region
	for _, blk := range blocks {
		if blk.Start.Bank == bb.Start.Bank && blk.Start.Addr >= bb.Start.Addr && blk.Start.Addr < bb.Start.Addr+uint16(bb.Len) {
			regions = append(regions, region{start: blk.Start, len: blk.Len, kind: regionCode})
		}
	}
	for _, e := range tags.All() {
		if e.Tag.Kind != tagset.JumpTable {
			continue
		}
		if e.XA.Bank != bb.Start.Bank || e.XA.Addr < bb.Start.Addr || e.XA.Addr >= bb.Start.Addr+uint16(bb.Len) {
			continue
		}
		regions = append(regions, region{start: e.XA, len: e.Tag.N * 2, kind: regionJumpTable})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].start.Less(regions[j].start) })
	return regions
}

func renderBlock(w io.Writer, view *rom.View, tags *tagset.Index, blk discover.Block, localName func(xaddr.XAddr) (string, bool)) error {
	e := emu.WithBound(view, tags, blk.Start, blk.Len)
	for {
		xa, ins, err, ok := e.Next()
		if err != nil {
			return fmt.Errorf("listing: %w", err)
		}
		if !ok {
			break
		}
		line := renderOperand(ins, e, localName, tags, xa)
		fmt.Fprintf(w, "\t/* %s */ %s\n", xa, line)
		if comment, ok := commentAt(tags, xa); ok {
			fmt.Fprintf(w, "\t; %s\n", comment)
		}
	}
	return nil
}

func renderOperand(ins decode.Instruction, e *emu.Emulator, localName func(xaddr.XAddr) (string, bool), tags *tagset.Index, xa xaddr.XAddr) string {
	info := ins.Info()
	if !strings.Contains(info.Fmt, "%") {
		return info.Fmt
	}
	needsAddr := ins.IsAddrOperand() || hasKind(tags, xa, tagset.OperandAddr)
	var operandText string
	if needsAddr {
		if txa, ok := e.ExpandAddr(ins.Operand); ok {
			if name, ok := localName(txa); ok {
				operandText = name
			} else {
				operandText = fmt.Sprintf("$%04X", ins.Operand)
			}
		} else {
			operandText = fmt.Sprintf("$%04X", ins.Operand)
		}
	} else {
		operandText = fmt.Sprintf("$%X", ins.Operand)
	}
	return strings.Replace(info.Fmt, "%", operandText, 1)
}

func renderJumpTable(w io.Writer, view *rom.View, start xaddr.XAddr, n int, names NameMap) error {
	data, err := view.Slice(start, n*2)
	if err != nil {
		return fmt.Errorf("listing: jump table at %s: %w", start, err)
	}
	for i := 0; i < n && i*2+1 < len(data); i++ {
		word := uint16(data[i*2]) | uint16(data[i*2+1])<<8
		txa, ok := ResolveTableTarget(view.Info, start.Bank, word)
		entryAddr := start.Add(uint16(i * 2))
		if ok {
			if name, found := names[txa]; found {
				fmt.Fprintf(w, "\t/* %s */ dw %s\n", entryAddr, name)
				continue
			}
			fmt.Fprintf(w, "\t/* %s */ dw $%04X\n", entryAddr, word)
			continue
		}
		fmt.Fprintf(w, "\t/* %s */ dw $%04X\n", entryAddr, word)
	}
	return nil
}

func renderDataGap(w io.Writer, view *rom.View, gap rom.Block) error {
	if gap.Len <= 0 {
		return nil
	}
	data, err := view.Slice(gap.Start, gap.Len)
	if err != nil {
		return fmt.Errorf("listing: data gap at %s: %w", gap.Start, err)
	}
	const perLine = 8
	for i := 0; i < len(data); i += perLine {
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]
		parts := make([]string, len(row))
		for j, b := range row {
			parts[j] = fmt.Sprintf("$%02X", b)
		}
		fmt.Fprintf(w, "\t/* %s */ .db %s\n", gap.Start.Add(uint16(i)), strings.Join(parts, ", "))
	}
	return nil
}
