package isa

import "fmt"

// decodeThumbGroup2 handles top3==2: data-processing register (format 4),
// special data-processing / branch-exchange on high registers (format 5),
// PC-relative load (format 6), and load/store with register offset
// (formats 7/8).
func decodeThumbGroup2(w uint32, profile Profile) (string, bool) {
	switch Slice(w, 10, 6) {
	case 0b010000:
		return decodeThumbALU(w)
	case 0b010001:
		return decodeThumbHiRegOps(w, profile)
	}

	if Slice(w, 11, 5) == 0b01001 {
		rd := Slice(w, 8, 3)
		word8 := Slice(w, 0, 8)
		return fmt.Sprintf("ldr %s, [pc, #0x%X]", regName(rd), word8*4), true
	}

	if Slice(w, 12, 4) == 0b0101 {
		rd := Slice(w, 0, 3)
		rb := Slice(w, 3, 3)
		ro := Slice(w, 6, 3)
		if !bit(w, 9) {
			return decodeThumbRegOffsetLS(w, rd, rb, ro)
		}
		return decodeThumbSignExtendedLS(w, rd, rb, ro)
	}

	return "", false
}

// decodeThumbALU handles Thumb format 4: the 16-mnemonic ALU-operations
// group, where Rs (source/shift-amount register) is always the second
// operand and Rd is also the first source.
func decodeThumbALU(w uint32) (string, bool) {
	op := Slice(w, 6, 4)
	rs := Slice(w, 3, 3)
	rd := Slice(w, 0, 3)
	return fmt.Sprintf("%s %s, %s", thumbALUMnemonics[op], regName(rd), regName(rs)), true
}

// decodeThumbHiRegOps handles Thumb format 5: ADD/CMP/MOV on registers
// r0-r15 (at least one operand above r7), and BX/BLX(register).
func decodeThumbHiRegOps(w uint32, profile Profile) (string, bool) {
	op := Slice(w, 8, 2)
	h1 := Slice(w, 7, 1)
	h2 := Slice(w, 6, 1)
	rs := (h2 << 3) | Slice(w, 3, 3)
	rd := (h1 << 3) | Slice(w, 0, 3)

	switch op {
	case 0b00:
		if !profile.AtLeast(V5TE) {
			return "", false
		}
		if rs == 13 {
			return fmt.Sprintf("add %s, sp, %s", regName(rd), regName(rd)), true
		}
		return fmt.Sprintf("add %s, %s", regName(rd), regName(rs)), true
	case 0b01:
		if !profile.AtLeast(V5TE) {
			return "", false
		}
		return fmt.Sprintf("cmp %s, %s", regName(rd), regName(rs)), true
	case 0b10:
		return fmt.Sprintf("mov %s, %s", regName(rd), regName(rs)), true
	default: // 0b11: BX / BLX(register)
		if h1 == 1 {
			if !profile.AtLeast(V5TE) {
				return "", false
			}
			return fmt.Sprintf("blx %s", regName(rs)), true
		}
		return fmt.Sprintf("bx %s", regName(rs)), true
	}
}

// decodeThumbRegOffsetLS handles Thumb format 7: LDR/STR/LDRB/STRB with a
// register offset.
func decodeThumbRegOffsetLS(w uint32, rd, rb, ro uint32) (string, bool) {
	l := bit(w, 11)
	b := bit(w, 10)
	mnemonic := "str"
	if l {
		mnemonic = "ldr"
	}
	if b {
		mnemonic += "b"
	}
	return fmt.Sprintf("%s %s, [%s, %s]", mnemonic, regName(rd), regName(rb), regName(ro)), true
}

// decodeThumbSignExtendedLS handles Thumb format 8:
// STRH/LDRH/LDSB/LDSH with a register offset, keyed on H (bit11) and S
// (bit10).
func decodeThumbSignExtendedLS(w uint32, rd, rb, ro uint32) (string, bool) {
	h := bit(w, 11)
	s := bit(w, 10)

	var mnemonic string
	switch {
	case !s && !h:
		mnemonic = "strh"
	case !s && h:
		mnemonic = "ldrh"
	case s && !h:
		mnemonic = "ldsb"
	default:
		mnemonic = "ldsh"
	}
	return fmt.Sprintf("%s %s, [%s, %s]", mnemonic, regName(rd), regName(rb), regName(ro)), true
}
