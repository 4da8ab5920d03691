package isa

import "fmt"

// decodeMultiplyOrExtraLS handles the bit4==1 && bit7==1 sub-space of
// op1==0: multiply/multiply-long/swap when bits[6:5]==00, and the
// halfword/doubleword extra load/store forms otherwise.
func decodeMultiplyOrExtraLS(word uint32, suffix string) (string, bool) {
	switch Slice(word, 5, 2) {
	case 0b00:
		return decodeMultiplyOrSwap(word, suffix)
	case 0b01:
		return decodeExtraLS(word, suffix, false, false) // halfword
	case 0b10:
		return decodeExtraLS(word, suffix, true, false) // doubleword-load / signed-byte
	default: // 0b11
		return decodeExtraLS(word, suffix, true, true) // doubleword-store / signed-halfword
	}
}

// decodeMultiplyOrSwap further classifies the bits[6:5]==00 sub-space by
// bits[27:23].
func decodeMultiplyOrSwap(word uint32, suffix string) (string, bool) {
	switch Slice(word, 23, 5) {
	case 0b00000:
		return decodeMultiply(word, suffix)
	case 0b00001:
		return decodeMultiplyLong(word, suffix)
	case 0b00010:
		return decodeSwap(word, suffix)
	}
	return "", false
}

// decodeMultiply handles MUL/MLA. A non-zero Rn with the accumulate bit
// clear (MUL) is architecturally unpredictable and is rejected here.
func decodeMultiply(word uint32, suffix string) (string, bool) {
	accumulate := bit(word, 21)
	setFlags := bit(word, 20)
	rd := Slice(word, 16, 4)
	rn := Slice(word, 12, 4)
	rs := Slice(word, 8, 4)
	rm := Slice(word, 0, 4)

	sFlag := ""
	if setFlags {
		sFlag = "s"
	}

	if !accumulate {
		if rn != 0 {
			return "", false // MUL with non-zero Rn: UNPREDICTABLE, rejected
		}
		return fmt.Sprintf("mul%s%s %s, %s, %s", sFlag, suffix, regName(rd), regName(rm), regName(rs)), true
	}
	return fmt.Sprintf("mla%s%s %s, %s, %s, %s", sFlag, suffix, regName(rd), regName(rm), regName(rs), regName(rn)), true
}

// decodeMultiplyLong handles UMULL/UMLAL/SMULL/SMLAL.
func decodeMultiplyLong(word uint32, suffix string) (string, bool) {
	signedOp := bit(word, 22)
	accumulate := bit(word, 21)
	setFlags := bit(word, 20)
	rdHi := Slice(word, 16, 4)
	rdLo := Slice(word, 12, 4)
	rs := Slice(word, 8, 4)
	rm := Slice(word, 0, 4)

	sFlag := ""
	if setFlags {
		sFlag = "s"
	}
	sign := "u"
	if signedOp {
		sign = "s"
	}
	op := "mull"
	if accumulate {
		op = "mlal"
	}
	return fmt.Sprintf("%s%s%s%s %s, %s, %s, %s", sign, op, sFlag, suffix, regName(rdLo), regName(rdHi), regName(rm), regName(rs)), true
}

// decodeSwap handles SWP/SWPB.
func decodeSwap(word uint32, suffix string) (string, bool) {
	if Slice(word, 20, 2) != 0 || Slice(word, 8, 4) != 0 {
		return "", false
	}
	byteOp := bit(word, 22)
	rd := Slice(word, 12, 4)
	rn := Slice(word, 16, 4)
	rm := Slice(word, 0, 4)

	mnemonic := "swp"
	if byteOp {
		mnemonic = "swpb"
	}
	return fmt.Sprintf("%s%s %s, %s, [%s]", mnemonic, suffix, regName(rd), regName(rm), regName(rn)), true
}

// decodeExtraLS handles the halfword/doubleword/signed extra load/store
// instructions (LDRH/STRH/LDRSB/LDRSH/LDRD/STRD), distinguished by the SH
// field (highBit,lowBit) and the L bit.
func decodeExtraLS(word uint32, suffix string, highBit, lowBit bool) (string, bool) {
	l := bit(word, 20)
	p := bit(word, 24)
	u := bit(word, 23)
	w := bit(word, 21)
	immediateForm := bit(word, 22)
	rd := Slice(word, 12, 4)
	rn := Slice(word, 16, 4)
	rm := Slice(word, 0, 4)
	imm8 := (Slice(word, 8, 4) << 4) | Slice(word, 0, 4)

	if !p && w {
		return "", false // post-indexed with writeback set: unpredictable
	}

	var mnemonic string
	switch {
	case !highBit: // SH == 01: halfword
		if l {
			mnemonic = "ldrh"
		} else {
			mnemonic = "strh"
		}
	case highBit && !lowBit: // SH == 10
		if l {
			mnemonic = "ldrsb"
		} else {
			mnemonic = "ldrd"
		}
	default: // SH == 11
		if l {
			mnemonic = "ldrsh"
		} else {
			mnemonic = "strd"
		}
	}

	addr := extraLSAddressing(rn, p, u, w, immediateForm, imm8, rm)
	return fmt.Sprintf("%s%s %s, %s", mnemonic, suffix, regName(rd), addr), true
}
