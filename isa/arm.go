package isa

import "fmt"

// DecodeARM decodes a single 32-bit ARM-mode instruction word under the
// given architecture profile, returning the rendered assembly text and
// whether the encoding was recognized. Callers that need the "n/a"
// sentinel and not-recognized counter should go through Decoder
// instead of calling this directly.
func DecodeARM(word uint32, profile Profile) (string, bool) {
	// PLD: flat mask match, independent of the normal op1 dispatch and of
	// the condition field.
	if word&0xFD70F000 == 0xF550F000 {
		return decodePLD(word), true
	}

	cond := Slice(word, 28, 4)
	if cond == 0xF {
		return decodeARMUnconditional(word, profile)
	}

	suffix := condSuffix(cond)
	op1 := Slice(word, 25, 3)

	switch op1 {
	case 0:
		return decodeDPRegisterAndMisc(word, suffix)
	case 1:
		return decodeDPImmediateAndMSR(word, suffix)
	case 2:
		return decodeLoadStoreImmediate(word, suffix)
	case 3:
		if word&0x10 != 0 {
			return "", false // bit4 must be 0, else undefined
		}
		return decodeLoadStoreRegister(word, suffix)
	case 4:
		return decodeLoadStoreMultiple(word, suffix)
	case 5:
		return decodeBranch(word, suffix)
	case 6:
		return decodeCoprocessorLoadStore(word, suffix)
	case 7:
		return decodeCoprocessorOrSWI(word, suffix)
	}
	return "", false
}

// decodeARMUnconditional handles cond==NV (1111): the pre-ARMv5 undefined
// condition re-encodes specific unconditional instruction forms in
// ARMv5+. Outside those forms the encoding is not recognized.
func decodeARMUnconditional(word uint32, profile Profile) (string, bool) {
	if !profile.AtLeast(V5TE) {
		return "", false
	}

	op1 := Slice(word, 25, 3)
	switch op1 {
	case 5:
		return decodeBLXImmediate(word), true
	case 6:
		return decodeCoprocessorLoadStoreNV(word)
	case 7:
		return decodeCoprocessorNV(word)
	}
	return "", false
}

// decodePLD renders the PLD instruction; only offset addressing modes
// are legal, using the same shifter-operand rendering as
// load/store-register-offset.
func decodePLD(word uint32) string {
	rn := Slice(word, 16, 4)
	u := bit(word, 23)
	i := bit(word, 25)

	var offset string
	if !i {
		v := int32(Slice(word, 0, 12))
		if !u {
			v = -v
		}
		offset = signedHex(v)
	} else {
		rm := Slice(word, 0, 4)
		shiftType := Slice(word, 5, 2)
		shiftImm := Slice(word, 7, 5)
		shiftText := ShiftImmediate(shiftType, shiftImm)
		sign := ""
		if !u {
			sign = "-"
		}
		if shiftText == "" {
			offset = sign + regName(rm)
		} else {
			offset = fmt.Sprintf("%s%s, %s", sign, regName(rm), shiftText)
		}
	}
	return fmt.Sprintf("pld [%s, %s]", regName(rn), offset)
}

// decodeBranch handles op1==5: B and BL, condition != NV (NV is handled by
// decodeARMUnconditional as BLX-immediate).
func decodeBranch(word uint32, suffix string) (string, bool) {
	link := bit(word, 24)
	offset := int32(SignExtend(Slice(word, 0, 24), 24)) * 4
	target := uint32(int32(8) + offset)

	mnemonic := "b"
	if link {
		mnemonic = "bl"
	}
	return fmt.Sprintf("%s%s #0x%X", mnemonic, suffix, target), true
}

// decodeBLXImmediate handles the ARMv5+ BLX(immediate) form, which
// re-uses the B/BL encoding space under cond==NV with bit 24 extending the
// branch offset by one more bit of precision.
func decodeBLXImmediate(word uint32) string {
	h := Slice(word, 24, 1)
	offset := int32(SignExtend(Slice(word, 0, 24), 24))*4 + int32(h*2)
	target := uint32(int32(8) + offset)
	return fmt.Sprintf("blx #0x%X", target)
}
