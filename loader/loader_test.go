package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		in      string
		want    Range
		wantErr bool
	}{
		{"", Range{}, false},
		{"0x10:0x20", Range{Start: 0x10, End: 0x20}, false},
		{"16:32", Range{Start: 16, End: 32}, false},
		{"0x10:+0x10", Range{Start: 0x10, End: 0x20}, false},
		{"0x20:0x10", Range{}, true},
		{"not-a-range", Range{}, true},
		{"0xZZ:0x10", Range{}, true},
	}
	for _, c := range cases {
		got, err := ParseRange(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseRange(%q) = %+v, want error", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRange(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestLoadWholeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.bin")
	content := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	data, base, err := Load(path, Range{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if base != 0 {
		t.Errorf("base = %#x, want 0", base)
	}
	if string(data) != string(content) {
		t.Errorf("data = %v, want %v", data, content)
	}
}

func TestLoadRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.bin")
	content := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	data, base, err := Load(path, Range{Start: 2, End: 5})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if base != 2 {
		t.Errorf("base = %#x, want 2", base)
	}
	want := []byte{0x03, 0x04, 0x05}
	if string(data) != string(want) {
		t.Errorf("data = %v, want %v", data, want)
	}
}

func TestLoadRangeStartPastEOF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.bin")
	if err := os.WriteFile(path, []byte{0x01, 0x02}, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, _, err := Load(path, Range{Start: 100, End: 0}); err == nil {
		t.Error("Load with out-of-range start: expected error, got nil")
	}
}

func TestWordReaderHalfwordsAndWords(t *testing.T) {
	data := []byte{0x00, 0xF0, 0x00, 0xF8, 0xAA, 0xBB, 0xCC, 0xDD}
	r := NewWordReader(data, 0x8000)

	hw, addr, ok := r.ReadHalfword()
	if !ok || hw != 0xF000 || addr != 0x8000 {
		t.Errorf("ReadHalfword = (%#x, %#x, %v), want (0xF000, 0x8000, true)", hw, addr, ok)
	}

	hw, addr, ok = r.ReadHalfword()
	if !ok || hw != 0xF800 || addr != 0x8002 {
		t.Errorf("ReadHalfword = (%#x, %#x, %v), want (0xF800, 0x8002, true)", hw, addr, ok)
	}

	word, addr, ok := r.ReadWord()
	if !ok || word != 0xDDCCBBAA || addr != 0x8004 {
		t.Errorf("ReadWord = (%#x, %#x, %v), want (0xDDCCBBAA, 0x8004, true)", word, addr, ok)
	}

	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
	if _, _, ok := r.ReadHalfword(); ok {
		t.Error("ReadHalfword at EOF: expected ok=false")
	}
}

func TestWordReaderPeekHalfword(t *testing.T) {
	data := []byte{0x00, 0xF0, 0x00, 0xF8}
	r := NewWordReader(data, 0)

	peeked, ok := r.PeekHalfword(2)
	if !ok || peeked != 0xF800 {
		t.Errorf("PeekHalfword(2) = (%#x, %v), want (0xF800, true)", peeked, ok)
	}
	if r.Address() != 0 {
		t.Error("PeekHalfword must not advance the reader")
	}

	if _, ok := r.PeekHalfword(4); ok {
		t.Error("PeekHalfword past end of data: expected ok=false")
	}
}
