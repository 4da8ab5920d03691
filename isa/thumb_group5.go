package isa

import "fmt"

// decodeThumbGroup5 handles top3==5: ADR-style add of a scaled immediate
// to SP or PC (format 12), and the miscellaneous block (format 13 SP
// adjust, format 14 PUSH/POP, BKPT).
func decodeThumbGroup5(w uint32, profile Profile) (string, bool) {
	if !bit(w, 12) {
		sp := bit(w, 11)
		rd := Slice(w, 8, 3)
		word8 := Slice(w, 0, 8)
		if sp {
			return fmt.Sprintf("add %s, sp, #0x%X", regName(rd), word8*4), true
		}
		return fmt.Sprintf("adr %s, #0x%X", regName(rd), word8*4), true
	}

	switch Slice(w, 8, 4) {
	case 0b0000:
		return decodeThumbSPAdjust(w)
	case 0b0100, 0b0101:
		return decodeThumbPush(w)
	case 0b1100, 0b1101:
		return decodeThumbPop(w)
	case 0b1110:
		if !profile.AtLeast(V5TE) {
			return "", false
		}
		imm8 := Slice(w, 0, 8)
		return fmt.Sprintf("bkpt #0x%X", imm8), true
	}
	return "", false
}

// decodeThumbSPAdjust handles format 13: ADD/SUB sp, sp, #imm7 (scaled by 4).
func decodeThumbSPAdjust(w uint32) (string, bool) {
	negative := bit(w, 7)
	imm7 := Slice(w, 0, 7)
	mnemonic := "add"
	if negative {
		mnemonic = "sub"
	}
	return fmt.Sprintf("%s sp, sp, #0x%X", mnemonic, imm7*4), true
}

// decodeThumbPush handles format 14's PUSH form, where bit8 additionally
// pushes lr.
func decodeThumbPush(w uint32) (string, bool) {
	mask := Slice(w, 0, 9)
	list, count := renderThumbRegisterList(mask, listPush)
	if count == 0 {
		return "", false
	}
	return fmt.Sprintf("push {%s}", list), true
}

// decodeThumbPop handles format 14's POP form, where bit8 additionally
// pops pc.
func decodeThumbPop(w uint32) (string, bool) {
	mask := Slice(w, 0, 9)
	list, count := renderThumbRegisterList(mask, listPop)
	if count == 0 {
		return "", false
	}
	return fmt.Sprintf("pop {%s}", list), true
}
