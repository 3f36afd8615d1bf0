// Package tagfile parses the plain-text tag files a caller hands
// sm83dis alongside a ROM: one annotation per line, addressed either as
// a bare 16-bit hex address (bank 0 implied) or an explicit BB:AAAA
// pair.
package tagfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sm83dis/tagset"
	"sm83dis/xaddr"
)

// ErrInvalidAddress is returned when a line's address field isn't a
// valid 1- or 2-part hex address.
var ErrInvalidAddress = errors.New("tagfile: invalid address field")

// ErrMissingTag is returned when a line has an address but no tag
// keyword.
var ErrMissingTag = errors.New("tagfile: missing tag")

// ErrMissingTagArgument is returned when a tag keyword that requires an
// argument (.bank, .rombank, .rambank, .srambank) doesn't have one.
var ErrMissingTagArgument = errors.New("tagfile: missing tag argument")

// Parse reads tag entries from r, one per line. Blank lines and lines
// starting with ';' are ignored. The result is not sorted; callers pass
// it to tagset.NewIndex, which sorts it.
func Parse(r io.Reader) ([]tagset.Entry, error) {
	var entries []tagset.Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		xa, err := parseAddr(fields[0])
		if err != nil {
			return nil, fmt.Errorf("tagfile: line %d: %w", lineNo, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("tagfile: line %d: %w", lineNo, ErrMissingTag)
		}
		tag, err := parseTag(fields[1], fields[2:])
		if err != nil {
			return nil, fmt.Errorf("tagfile: line %d: %w", lineNo, err)
		}
		entries = append(entries, tagset.Entry{XA: xa, Tag: tag})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tagfile: %w", err)
	}
	return entries, nil
}

func parseAddr(field string) (xaddr.XAddr, error) {
	parts := strings.Split(field, ":")
	switch len(parts) {
	case 1:
		addr, err := strconv.ParseUint(parts[0], 16, 16)
		if err != nil {
			return xaddr.XAddr{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, field, err)
		}
		return xaddr.New(0, uint16(addr)), nil
	case 2:
		bank, err := strconv.ParseUint(parts[0], 16, 16)
		if err != nil {
			return xaddr.XAddr{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, field, err)
		}
		addr, err := strconv.ParseUint(parts[1], 16, 16)
		if err != nil {
			return xaddr.XAddr{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, field, err)
		}
		return xaddr.New(uint16(bank), uint16(addr)), nil
	default:
		return xaddr.XAddr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, field)
	}
}

func parseTag(keyword string, args []string) (tagset.Tag, error) {
	switch keyword {
	case ".code":
		return tagset.Tag{Kind: tagset.Code}, nil
	case ".noreturn":
		return tagset.Tag{Kind: tagset.NoReturn}, nil
	case ".bank", ".rombank":
		n, err := requireArg(args, keyword)
		if err != nil {
			return tagset.Tag{}, err
		}
		return tagset.Tag{Kind: tagset.RomBank, Bank: n}, nil
	case ".rambank":
		n, err := requireArg(args, keyword)
		if err != nil {
			return tagset.Tag{}, err
		}
		return tagset.Tag{Kind: tagset.RamBank, Bank: n}, nil
	case ".srambank":
		n, err := requireArg(args, keyword)
		if err != nil {
			return tagset.Tag{}, err
		}
		return tagset.Tag{Kind: tagset.SrmBank, Bank: n}, nil
	case ".addr":
		return tagset.Tag{Kind: tagset.OperandAddr}, nil
	default:
		return tagset.Tag{Kind: tagset.Name, Name: keyword}, nil
	}
}

func requireArg(args []string, keyword string) (uint16, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingTagArgument, keyword)
	}
	// Bank counts are decimal, unlike the hex addresses parseAddr reads.
	n, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMissingTagArgument, keyword, err)
	}
	return uint16(n), nil
}
