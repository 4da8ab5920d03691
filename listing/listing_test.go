package listing

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/arm-disassembler/service"
)

func TestWriteDefaultStyle(t *testing.T) {
	entries := []service.Entry{
		{Address: 0x8000, Word: 0xE3A00001, Mode: "arm", Mnemonic: "mov r0, #0x1", Halfwords: 1, Recognized: true},
		{Address: 0x8004, Word: 0xEAFFFFFE, Mode: "arm", Mnemonic: "b #0x0", Halfwords: 1, Recognized: true},
	}

	var buf strings.Builder
	if err := Write(&buf, entries, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 entries): %q", len(lines), out)
	}
	if lines[0] != "Disassembly of 8 bytes:" {
		t.Errorf("header = %q, want %q", lines[0], "Disassembly of 8 bytes:")
	}
	if !strings.Contains(lines[1], "00008000:") || !strings.Contains(lines[1], "mov r0, #0x1") {
		t.Errorf("line 1 = %q, missing expected address/mnemonic", lines[1])
	}
}

func TestWriteThumbByteAccounting(t *testing.T) {
	entries := []service.Entry{
		{Address: 0x0, Word: 0x4770, Mode: "thumb", Mnemonic: "bx lr", Halfwords: 1, Recognized: true},
		{Address: 0x2, Word: 0xF800F000, Mode: "thumb", Mnemonic: "bl #0x4", Halfwords: 2, Recognized: true},
	}

	var buf strings.Builder
	if err := Write(&buf, entries, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !strings.HasPrefix(buf.String(), "Disassembly of 6 bytes:\n") {
		t.Errorf("header byte count wrong, got: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
}

func TestWriteCompactStyleHasNoPadding(t *testing.T) {
	entries := []service.Entry{
		{Address: 0x10, Word: 0xE3A00001, Mode: "arm", Mnemonic: "mov r0, #0x1", Halfwords: 1, Recognized: true},
	}

	var buf strings.Builder
	if err := Write(&buf, entries, CompactOptions()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[1] != "00000010:E3A00001mov r0, #0x1" {
		t.Errorf("compact line = %q, want no padding between fields", lines[1])
	}
}
