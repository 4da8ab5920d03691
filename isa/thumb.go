package isa

import "fmt"

// DecodeThumb decodes a Thumb-mode half-word (the low 16 bits of word32)
// under the given architecture profile. word32's high 16 bits are the
// lookahead half-word, consumed only when the current half-word is a
// BL/BLX prefix. Returns the rendered text, whether the encoding
// was recognized, and how many half-words were consumed (1 or 2).
func DecodeThumb(word32 uint32, profile Profile) (text string, ok bool, halfwords int) {
	low := uint16(word32)
	high := uint16(word32 >> 16)

	top3 := Slice(uint32(low), 13, 3)
	if top3 == 7 && Slice(uint32(low), 11, 2) == 2 {
		if t, matched := decodeThumbBLBLX(low, high, profile); matched {
			return t, true, 2
		}
		return "", false, 1
	}

	t, matched := decodeThumbSingle(low, profile)
	return t, matched, 1
}

// decodeThumbSingle classifies a single Thumb half-word into one of the
// eight top-level groups keyed on bits[15:13].
func decodeThumbSingle(hw uint16, profile Profile) (string, bool) {
	w := uint32(hw)
	switch Slice(w, 13, 3) {
	case 0:
		return decodeThumbGroup0(w, profile)
	case 1:
		return decodeThumbGroup1(w)
	case 2:
		return decodeThumbGroup2(w, profile)
	case 3:
		return decodeThumbGroup3(w)
	case 4:
		return decodeThumbGroup4(w, profile)
	case 5:
		return decodeThumbGroup5(w, profile)
	case 6:
		return decodeThumbGroup6(w)
	case 7:
		return decodeThumbGroup7(w)
	}
	return "", false
}

// decodeThumbGroup0 handles top3==0: shift-by-immediate (LSL/LSR/ASR,
// format 1) and ADD/SUB register/immediate-3 (format 2).
func decodeThumbGroup0(w uint32, profile Profile) (string, bool) {
	op := Slice(w, 11, 2)
	rd := Slice(w, 0, 3)
	rs := Slice(w, 3, 3)

	if op != 0b11 {
		offset5 := Slice(w, 6, 5)
		if op == 0 && offset5 == 0 && profile.AtLeast(V5TE) {
			return fmt.Sprintf("mov %s, %s", regName(rd), regName(rs)), true
		}
		names := [3]string{"lsl", "lsr", "asr"}
		return fmt.Sprintf("%s %s, %s, #0x%X", names[op], regName(rd), regName(rs), offset5), true
	}

	immediate := bit(w, 10)
	subtract := bit(w, 9)
	rnOrImm := Slice(w, 6, 3)

	mnemonic := "add"
	if subtract {
		mnemonic = "sub"
	}
	if immediate {
		return fmt.Sprintf("%s %s, %s, #0x%X", mnemonic, regName(rd), regName(rs), rnOrImm), true
	}
	return fmt.Sprintf("%s %s, %s, %s", mnemonic, regName(rd), regName(rs), regName(rnOrImm)), true
}

// decodeThumbGroup1 handles top3==1: MOV/CMP/ADD/SUB with an 8-bit
// immediate (format 3).
func decodeThumbGroup1(w uint32) (string, bool) {
	names := [4]string{"mov", "cmp", "add", "sub"}
	op := Slice(w, 11, 2)
	rd := Slice(w, 8, 3)
	imm8 := Slice(w, 0, 8)
	return fmt.Sprintf("%s %s, #0x%X", names[op], regName(rd), imm8), true
}

// decodeThumbGroup3 handles top3==3: LDR/STR/LDRB/STRB with a 5-bit
// immediate offset (format 9), word offsets scaled by 4.
func decodeThumbGroup3(w uint32) (string, bool) {
	b := bit(w, 12)
	l := bit(w, 11)
	offset5 := Slice(w, 6, 5)
	rb := Slice(w, 3, 3)
	rd := Slice(w, 0, 3)

	scale := uint32(4)
	byteFlag := ""
	if b {
		scale = 1
		byteFlag = "b"
	}
	mnemonic := "str"
	if l {
		mnemonic = "ldr"
	}
	return fmt.Sprintf("%s%s %s, [%s, #0x%X]", mnemonic, byteFlag, regName(rd), regName(rb), offset5*scale), true
}

// decodeThumbGroup4 handles top3==4: load/store halfword immediate offset
// (format 10, scaled by 2) and SP-relative load/store (format 11, scaled
// by 4).
func decodeThumbGroup4(w uint32, profile Profile) (string, bool) {
	if !bit(w, 12) {
		l := bit(w, 11)
		offset5 := Slice(w, 6, 5)
		rb := Slice(w, 3, 3)
		rd := Slice(w, 0, 3)
		mnemonic := "strh"
		if l {
			mnemonic = "ldrh"
		}
		return fmt.Sprintf("%s %s, [%s, #0x%X]", mnemonic, regName(rd), regName(rb), offset5*2), true
	}

	if !profile.AtLeast(V5TE) {
		return "", false
	}

	l := bit(w, 11)
	rd := Slice(w, 8, 3)
	word8 := Slice(w, 0, 8)
	mnemonic := "str"
	if l {
		mnemonic = "ldr"
	}
	return fmt.Sprintf("%s %s, [sp, #0x%X]", mnemonic, regName(rd), word8*4), true
}

// decodeThumbGroup6 handles top3==6: LDMIA/STMIA (format 15), conditional
// branch (format 16), UDF, and SWI (format 17).
func decodeThumbGroup6(w uint32) (string, bool) {
	if !bit(w, 12) {
		l := bit(w, 11)
		rb := Slice(w, 8, 3)
		mask := Slice(w, 0, 8)
		list, count := renderThumbRegisterList(mask, listPlain)
		if count == 0 {
			return "", false
		}
		mnemonic := "stmia"
		wb := "!"
		if l {
			mnemonic = "ldmia"
			if mask&(1<<rb) != 0 {
				wb = "" // writeback omitted when base is in the list
			}
		}
		return fmt.Sprintf("%s %s%s, {%s}", mnemonic, regName(rb), wb, list), true
	}

	cond := Slice(w, 8, 4)
	offset8 := Slice(w, 0, 8)

	switch cond {
	case 0xF: // SWI
		return fmt.Sprintf("swi #0x%X", offset8), true
	case 0xE: // UDF: permanently undefined instruction space, not rendered
		return "", false
	default:
		target := uint32(int32(4) + int32(SignExtend(offset8, 8))*2)
		return fmt.Sprintf("b%s #0x%X", condSuffix(cond), target), true
	}
}

// decodeThumbGroup7 handles top3==7: unconditional branch (format 18) and
// the BL/BLX prefix (suffix handling lives in decodeThumbBLBLX since it
// needs the lookahead half-word).
func decodeThumbGroup7(w uint32) (string, bool) {
	if Slice(w, 11, 2) != 0 {
		// prefix/suffix forms without a valid pairing: not recognized as
		// a standalone instruction.
		return "", false
	}
	offset11 := Slice(w, 0, 11)
	target := uint32(int32(4) + int32(SignExtend(offset11, 11))*2)
	return fmt.Sprintf("b #0x%X", target), true
}

// decodeThumbBLBLX pairs a BL/BLX prefix half-word with its lookahead
// suffix half-word, forming the 32-bit two-halfword BL/BLX encoding.
func decodeThumbBLBLX(low, high uint16, profile Profile) (string, bool) {
	if Slice(uint32(high), 13, 3) != 7 {
		return "", false
	}
	suffixKind := Slice(uint32(high), 11, 2)
	if suffixKind != 1 && suffixKind != 3 {
		return "", false
	}
	if suffixKind == 1 && !profile.AtLeast(V5TE) {
		return "", false
	}

	hi11 := Slice(uint32(low), 0, 11)
	lo11 := Slice(uint32(high), 0, 11)
	imm22 := (hi11 << 11) | lo11
	offset := int32(SignExtend(imm22, 22))

	if suffixKind == 3 { // BL suffix
		target := uint32(offset*2 + 4)
		return fmt.Sprintf("bl #0x%X", target), true
	}

	// BLX suffix: bit 0 of the suffix half-word must be 0.
	if bit(uint32(high), 0) {
		return "", false
	}
	target := uint32(offset*4 + 4)
	return fmt.Sprintf("blx #0x%X", target), true
}
