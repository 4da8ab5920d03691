package isa

import (
	"math/bits"
	"strconv"
)

// regName renders register n (0..15) as "r<n>". Aliasing of r13/r14/r15
// to sp/lr/pc happens later, in the whole-string post-pass: every
// formatter emits the plain rN form and a single rewrite pass handles
// the three special names.
func regName(n uint32) string {
	return "r" + strconv.FormatUint(uint64(n), 10)
}

// coRegName renders coprocessor register n (0..15) as "c<n>". Unlike
// regName, this never runs through AliasSpecialRegisters: coprocessor
// registers c13/c14/c15 are not the general-purpose sp/lr/pc and must
// not be rewritten by the rN alias pass.
func coRegName(n uint32) string {
	return "c" + strconv.FormatUint(uint64(n), 10)
}

// registerListKind distinguishes how bit 8 of a Thumb register-list mask is
// interpreted.
type registerListKind int

const (
	listPlain registerListKind = iota // LDMIA/STMIA: bit 8 unused
	listPop                           // POP: bit 8 means pc
	listPush                          // PUSH: bit 8 means lr
)

// renderThumbRegisterList renders a 9-bit Thumb register-list mask (bits
// 0-7 are r0-r7, bit 8 is pc/lr/unused per kind) and returns the rendered
// body (no braces) plus the population count. An empty list (count 0)
// signals an unpredictable encoding to the caller.
func renderThumbRegisterList(mask uint32, kind registerListKind) (string, int) {
	var regs []uint32
	for i := uint32(0); i < 8; i++ {
		if mask&(1<<i) != 0 {
			regs = append(regs, i)
		}
	}
	extra := mask&(1<<8) != 0

	count := len(regs)
	if extra {
		count++
	}

	s := ""
	for i, r := range regs {
		if i > 0 {
			s += ","
		}
		s += regName(r)
	}
	if extra {
		if len(regs) > 0 {
			s += ","
		}
		switch kind {
		case listPop:
			s += regName(15)
		case listPush:
			s += regName(14)
		default:
			s += regName(8)
		}
	}
	return s, count
}

// renderARMRegisterList renders a 16-bit ARM-mode register-list mask. No
// pc/lr substitution happens here: the whole-string post-pass performs
// it uniformly for r13/r14/r15.
func renderARMRegisterList(mask uint32) (string, int) {
	s := ""
	count := bits.OnesCount32(mask & 0xFFFF)
	first := true
	for i := uint32(0); i < 16; i++ {
		if mask&(1<<i) != 0 {
			if !first {
				s += ","
			}
			s += regName(i)
			first = false
		}
	}
	return s, count
}
