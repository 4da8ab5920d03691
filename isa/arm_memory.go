package isa

import "fmt"

// decodeLoadStoreImmediate handles op1==2: LDR/STR/LDRB/STRB with a
// 12-bit immediate offset.
func decodeLoadStoreImmediate(word uint32, suffix string) (string, bool) {
	imm12 := Slice(word, 0, 12)
	u := bit(word, 23)
	v := int32(imm12)
	if !u {
		v = -v
	}
	return decodeWordByteLS(word, suffix, signedHex(v))
}

// decodeLoadStoreRegister handles op1==3: LDR/STR/LDRB/STRB with a
// register (optionally shifted) offset. Caller has already rejected
// bit4==1 as undefined.
func decodeLoadStoreRegister(word uint32, suffix string) (string, bool) {
	u := bit(word, 23)
	rm := Slice(word, 0, 4)
	shiftType := Slice(word, 5, 2)
	shiftImm := Slice(word, 7, 5)
	shiftText := ShiftImmediate(shiftType, shiftImm)

	sign := ""
	if !u {
		sign = "-"
	}
	offset := sign + regName(rm)
	if shiftText != "" {
		offset = fmt.Sprintf("%s, %s", offset, shiftText)
	}
	return decodeWordByteLS(word, suffix, offset)
}

// decodeWordByteLS assembles the common LDR/STR/LDRB/STRB rendering given
// an already-rendered offset operand. The W bit in post-indexed form
// selects the translation-mode suffix "t" rather than a writeback
// marker.
func decodeWordByteLS(word uint32, suffix, offset string) (string, bool) {
	p := bit(word, 24)
	u := bit(word, 23)
	b := bit(word, 22)
	w := bit(word, 21)
	l := bit(word, 20)
	rn := Slice(word, 16, 4)
	rd := Slice(word, 12, 4)

	addr, translation := wordByteAddressing(rn, p, u, w, offset)

	mnemonic := "str"
	if l {
		mnemonic = "ldr"
	}
	byteFlag := ""
	if b {
		byteFlag = "b"
	}
	transFlag := ""
	if translation {
		transFlag = "t"
	}

	return fmt.Sprintf("%s%s%s%s %s, %s", mnemonic, byteFlag, transFlag, suffix, regName(rd), addr), true
}

// decodeLoadStoreMultiple handles op1==4: LDM/STM.
func decodeLoadStoreMultiple(word uint32, suffix string) (string, bool) {
	p := bit(word, 24)
	u := bit(word, 23)
	s := bit(word, 22)
	w := bit(word, 21)
	l := bit(word, 20)
	rn := Slice(word, 16, 4)
	mask := Slice(word, 0, 16)

	mnemonic := "stm"
	if l {
		mnemonic = "ldm"
	}
	addrMode := ldmAddrMode(p, u)

	list, _ := renderARMRegisterList(mask)

	wb := ""
	if w {
		wb = "!"
	}
	caret := ""
	if s {
		caret = "^"
	}

	return fmt.Sprintf("%s%s%s %s%s, {%s}%s", mnemonic, addrMode, suffix, regName(rn), wb, list, caret), true
}
