package isa

import "testing"

func TestAliasSpecialRegisters(t *testing.T) {
	cases := []struct{ in, want string }{
		{"stmdb r13!, {r4,r14}", "stmdb sp!, {r4,lr}"},
		{"mov r15, r14", "mov pc, lr"},
		{"mov r0, r1", "mov r0, r1"},
		{"mov r1, r12", "mov r1, r12"}, // r12 has no alias, per design notes
	}
	for _, c := range cases {
		if got := AliasSpecialRegisters(c.in); got != c.want {
			t.Errorf("AliasSpecialRegisters(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAliasSpecialRegistersIdempotent(t *testing.T) {
	inputs := []string{
		"stmdb r13!, {r4,r14}",
		"mov r15, r14",
		"ldr r0, [r13, #0x4]",
		"bx r14",
		"",
	}
	for _, in := range inputs {
		once := AliasSpecialRegisters(in)
		twice := AliasSpecialRegisters(once)
		if once != twice {
			t.Errorf("AliasSpecialRegisters not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
