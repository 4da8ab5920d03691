package isa

import "testing"

func TestSlice(t *testing.T) {
	cases := []struct {
		x      uint32
		offset uint
		width  uint
		want   uint32
	}{
		{0xFFFFFFFF, 0, 4, 0xF},
		{0xFFFFFFFF, 28, 4, 0xF},
		{0x12345678, 16, 8, 0x34},
		{0, 0, 32, 0},
	}
	for _, c := range cases {
		if got := Slice(c.x, c.offset, c.width); got != c.want {
			t.Errorf("Slice(%#x, %d, %d) = %#x, want %#x", c.x, c.offset, c.width, got, c.want)
		}
	}
}

func TestSignExtend(t *testing.T) {
	cases := []struct {
		value uint32
		width uint
		want  int32
	}{
		{0x7F, 8, 127},
		{0x80, 8, -128},
		{0xFFFFFF, 24, -1},
		{0, 24, 0},
	}
	for _, c := range cases {
		if got := SignExtend(c.value, c.width); got != c.want {
			t.Errorf("SignExtend(%#x, %d) = %d, want %d", c.value, c.width, got, c.want)
		}
	}
}

func TestRotateRight32(t *testing.T) {
	cases := []struct {
		x, n, want uint32
	}{
		{0x1, 0, 0x1},
		{0x1, 1, 0x80000000},
		{0x80000000, 1, 0x40000000},
		{0xFF, 32, 0xFF}, // n masked to 0
	}
	for _, c := range cases {
		if got := RotateRight32(c.x, uint(c.n)); got != c.want {
			t.Errorf("RotateRight32(%#x, %d) = %#x, want %#x", c.x, c.n, got, c.want)
		}
	}
}
