package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sm83dis/discover"
	"sm83dis/listing"
	"sm83dis/rom"
	"sm83dis/tagfile"
	"sm83dis/tagset"
	"sm83dis/xaddr"
)

var (
	flagBigROM    string
	flagCGBRam    string
	flagSRAMCount int
	flagOut       string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "sm83dis <rom-path> [tags-path]",
	Short: "Static recursive-descent disassembler for LR35902/SM83 cartridge images",
	Long: `sm83dis disassembles a Game Boy-class (LR35902/SM83) cartridge image
into a human-readable assembly listing, following control flow from a set
of entry points rather than blindly decoding every byte. Entry points and
naming/bank hints come from an optional tags file; with none given,
disassembly starts from the cartridge's reset vector at 0:0100.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagBigROM, "big-rom", "", "force banked (true) or non-banked (false) rom layout; default inferred from rom size")
	rootCmd.Flags().StringVar(&flagCGBRam, "cgb-ram", "", "force CGB wram banking on (true) or off (false); default inferred from the cartridge header")
	rootCmd.Flags().IntVar(&flagSRAMCount, "sram-count", -1, "override cartridge sram bank count; -1 means infer from the cartridge header")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "write the listing to this file instead of stdout")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable info-level logging to stderr")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "sm83dis: internal error: %v\n", r)
			os.Exit(2)
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("sm83dis: %w", err)
	}
	defer logger.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("sm83dis: reading rom: %w", err)
	}

	var entries []tagset.Entry
	if len(args) == 2 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("sm83dis: opening tags file: %w", err)
		}
		defer f.Close()
		entries, err = tagfile.Parse(f)
		if err != nil {
			return fmt.Errorf("sm83dis: parsing tags file: %w", err)
		}
	}

	info := rom.RomInfo{
		BigROM:    resolveTribool(flagBigROM, len(data) > 0x8000),
		CGBRam:    resolveTribool(flagCGBRam, len(data) > 0x143 && data[0x143] == 0xC0),
		SRAMCount: flagSRAMCount,
	}
	if info.SRAMCount < 0 {
		headerByte := byte(0)
		if len(data) > 0x149 {
			headerByte = data[0x149]
		}
		info.SRAMCount = rom.SRAMCountForHeaderByte(headerByte)
	}

	view := rom.NewView(data, info)
	tags := tagset.NewIndex(entries)

	entryPoints := tags.CodeEntryPoints()
	entryPoints = append(entryPoints, expandJumpTables(view, tags, logger)...)
	if len(entryPoints) == 0 {
		entryPoints = []xaddr.XAddr{xaddr.New(0, 0x0100)}
	}

	blocks := discover.Run(view, tags, entryPoints, logger)
	names := listing.BuildNameMap(view, tags, blocks)

	out := os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("sm83dis: creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := listing.Render(out, view, tags, blocks, names); err != nil {
		return fmt.Errorf("sm83dis: rendering listing: %w", err)
	}
	return nil
}

// expandJumpTables reads every JumpTable-tagged table's entries up
// front and returns their resolved targets as additional entry points,
// since a table's contents are data the discovery engine never decodes
// on its own.
func expandJumpTables(view *rom.View, tags *tagset.Index, logger *zap.Logger) []xaddr.XAddr {
	var points []xaddr.XAddr
	for _, e := range tags.All() {
		if e.Tag.Kind != tagset.JumpTable {
			continue
		}
		data, err := view.Slice(e.XA, e.Tag.N*2)
		if err != nil {
			logger.Warn("jump table unreadable", zap.Stringer("addr", e.XA), zap.Error(err))
			continue
		}
		for i := 0; i+1 < len(data); i += 2 {
			word := uint16(data[i]) | uint16(data[i+1])<<8
			if txa, ok := listing.ResolveTableTarget(view.Info, e.XA.Bank, word); ok {
				points = append(points, txa)
			} else {
				logger.Warn("jump table entry unresolved", zap.Stringer("table", e.XA), zap.Uint16("word", word))
			}
		}
	}
	return points
}

func resolveTribool(flag string, fallback bool) bool {
	switch flag {
	case "true":
		return true
	case "false":
		return false
	default:
		return fallback
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}
