// Package listing renders a stream of service.Entry values as a
// "Disassembly of N bytes:" / "<addr>: <hexword> <mnemonic>" listing,
// with a compact and an expanded column-aligned mode.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/lookbusy1344/arm-disassembler/service"
)

// Style selects how wide each rendered line is padded.
type Style int

const (
	StyleDefault  Style = iota // addr: word mnemonic, single space separators
	StyleCompact               // no padding at all
	StyleExpanded              // mnemonic column padded for easy scanning
)

// Options controls how a Writer lays out its columns.
type Options struct {
	Style          Style
	AddressDigits  int  // hex digits the address is zero-padded to
	MnemonicColumn int  // column the mnemonic starts at, in Expanded style
	ShowRawWord    bool // include the raw hex word between address and mnemonic
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() *Options {
	return &Options{
		Style:          StyleDefault,
		AddressDigits:  8,
		MnemonicColumn: 20,
		ShowRawWord:    true,
	}
}

// CompactOptions returns minimal-whitespace listing options.
func CompactOptions() *Options {
	opts := DefaultOptions()
	opts.Style = StyleCompact
	return opts
}

// ExpandedOptions returns column-aligned listing options for side-by-side
// scanning of a long disassembly.
func ExpandedOptions() *Options {
	opts := DefaultOptions()
	opts.Style = StyleExpanded
	opts.MnemonicColumn = 24
	return opts
}

// Write renders entries to w as a full disassembly listing: a header
// line reporting the total byte count, then one line per entry.
func Write(w io.Writer, entries []service.Entry, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	totalBytes := 0
	for _, e := range entries {
		totalBytes += e.Halfwords * halfwordSize(e.Mode)
	}

	if _, err := fmt.Fprintf(w, "Disassembly of %d bytes:\n", totalBytes); err != nil {
		return fmt.Errorf("failed to write listing header: %w", err)
	}

	for _, e := range entries {
		line := formatLine(e, opts)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write listing line at %#x: %w", e.Address, err)
		}
	}
	return nil
}

func halfwordSize(mode string) int {
	if mode == "thumb" {
		return 2
	}
	return 4
}

func formatLine(e service.Entry, opts *Options) string {
	var b strings.Builder

	addrFormat := fmt.Sprintf("%%0%dX", opts.AddressDigits)
	fmt.Fprintf(&b, addrFormat+":", e.Address)

	if opts.Style != StyleCompact {
		b.WriteString(" ")
	}

	if opts.ShowRawWord {
		wordDigits := 8
		if e.Mode == "thumb" && e.Halfwords == 1 {
			wordDigits = 4
		}
		wordFormat := fmt.Sprintf("%%0%dX", wordDigits)
		word := e.Word
		if wordDigits == 4 {
			word = e.Word & 0xFFFF
		}
		fmt.Fprintf(&b, wordFormat, word)
		if opts.Style != StyleCompact {
			b.WriteString(" ")
		}
	}

	if opts.Style == StyleExpanded {
		padToColumn(&b, opts.MnemonicColumn)
	}
	b.WriteString(e.Mnemonic)

	return b.String()
}

func padToColumn(b *strings.Builder, column int) {
	if b.Len() < column {
		b.WriteString(strings.Repeat(" ", column-b.Len()))
	}
}
