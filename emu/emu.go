// Package emu provides a lazy, bank-aware instruction stream over a
// rom.View: a decoding cursor that tracks the ROM/RAM/SRAM bank
// registers a cartridge's bank-select writes would set, as directed by
// RomBank/RamBank/SrmBank tags, so that 16-bit operands in switched
// memory regions can be resolved to full bank-qualified addresses.
package emu

import (
	"fmt"

	"sm83dis/decode"
	"sm83dis/rom"
	"sm83dis/tagset"
	"sm83dis/xaddr"
)

// Emulator decodes one instruction at a time starting from a fixed
// address, within a byte window established at construction.
type Emulator struct {
	view *rom.View
	tags *tagset.Index

	cur       xaddr.XAddr
	remaining []byte

	romb, ramb, srmb *uint16
}

// WithBound starts an Emulator at start, bounded to at most maxBytes
// bytes (fewer if start's bank ends sooner). It panics if start cannot
// be sliced at all — every caller is expected to derive start from
// discovery-engine bookkeeping that already validated the address, so a
// slice failure here means a logic bug upstream, not adversarial input.
func WithBound(view *rom.View, tags *tagset.Index, start xaddr.XAddr, maxBytes int) *Emulator {
	b, err := view.Slice(start, maxBytes)
	if err != nil {
		panic(fmt.Sprintf("emu: WithBound: %v", err))
	}
	e := &Emulator{view: view, tags: tags, cur: start, remaining: b}
	if start.Addr >= 0x4000 && start.Addr <= 0x7FFF {
		bank := start.Bank
		e.romb = &bank
	}
	return e
}

// ExpandAddr resolves a bare 16-bit operand to a full bank-qualified
// XAddr using the emulator's current bank registers. It returns false
// when the relevant register hasn't been set yet (by a tag, or for the
// ROM bank by a start address in the switched region), meaning the
// address can't be resolved.
func (e *Emulator) ExpandAddr(addr uint16) (xaddr.XAddr, bool) {
	switch {
	case addr >= 0x4000 && addr <= 0x7FFF:
		if !e.view.Info.BigROM {
			return xaddr.New(0, addr), true
		}
		if e.romb == nil {
			return xaddr.XAddr{}, false
		}
		return xaddr.New(*e.romb, addr), true

	case addr >= 0xA000 && addr <= 0xBFFF:
		if e.srmb == nil {
			return xaddr.XAddr{}, false
		}
		return xaddr.New(*e.srmb, addr), true

	case addr >= 0xD000 && addr <= 0xDFFF:
		if !e.view.Info.CGBRam {
			return xaddr.New(0, addr), true
		}
		if e.ramb == nil {
			return xaddr.XAddr{}, false
		}
		return xaddr.New(*e.ramb, addr), true

	default:
		return xaddr.New(0, addr), true
	}
}

// Next decodes the next instruction. ok is false with a nil error when
// the window is exhausted; err is non-nil when the bytes at the cursor
// don't form a valid instruction. On success, bank-register tags at the
// returned address are applied before Next returns, so a subsequent
// ExpandAddr call (including one resolving this same instruction's own
// operand) observes them.
func (e *Emulator) Next() (xa xaddr.XAddr, ins decode.Instruction, err error, ok bool) {
	if len(e.remaining) == 0 {
		return xaddr.XAddr{}, decode.Instruction{}, nil, false
	}

	xa = e.cur
	ins, err = decode.Decode(xa.Addr, e.remaining)
	if err != nil {
		return xaddr.XAddr{}, decode.Instruction{}, err, false
	}

	for _, t := range e.tags.GetTagsAt(xa) {
		switch t.Kind {
		case tagset.RomBank:
			bank := t.Bank
			e.romb = &bank
		case tagset.RamBank:
			bank := t.Bank
			e.ramb = &bank
		case tagset.SrmBank:
			bank := t.Bank
			e.srmb = &bank
		}
	}

	n := ins.EncodedLen()
	e.cur = e.cur.Add(uint16(n))
	if n >= len(e.remaining) {
		e.remaining = nil
	} else {
		e.remaining = e.remaining[n:]
	}
	return xa, ins, nil, true
}
