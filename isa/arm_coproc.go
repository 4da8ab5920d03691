package isa

import "fmt"

// decodeCoprocessorLoadStore handles op1==6: LDC/STC, plus the double
// register transfer forms MCRR/MRRC when bits[24:21]==2.
func decodeCoprocessorLoadStore(word uint32, suffix string) (string, bool) {
	if Slice(word, 21, 4) == 2 {
		return decodeDoubleRegTransfer(word, suffix, false)
	}
	return decodeLDCSTC(word, suffix, false)
}

// decodeCoprocessorLoadStoreNV handles the ARMv5+ NV (cond==1111)
// re-encoding of op1==6 as LDC2/STC2/MCRR2/MRRC2.
func decodeCoprocessorLoadStoreNV(word uint32) (string, bool) {
	if Slice(word, 21, 4) == 2 {
		return decodeDoubleRegTransfer(word, "", true)
	}
	return decodeLDCSTC(word, "", true)
}

func decodeLDCSTC(word uint32, suffix string, nv bool) (string, bool) {
	p := bit(word, 24)
	u := bit(word, 23)
	n := bit(word, 22)
	w := bit(word, 21)
	l := bit(word, 20)
	rn := Slice(word, 16, 4)
	crd := Slice(word, 12, 4)
	cpNum := Slice(word, 8, 4)
	imm8 := Slice(word, 0, 8)

	mnemonic := "stc"
	if l {
		mnemonic = "ldc"
	}
	if n {
		mnemonic += "l"
	}
	tag := suffix
	if nv {
		tag = "2"
	}

	addr := coprocessorLSAddressing(rn, p, u, w, imm8)
	return fmt.Sprintf("%s%s p%d, %s, %s", mnemonic, tag, cpNum, coRegName(crd), addr), true
}

func decodeDoubleRegTransfer(word uint32, suffix string, nv bool) (string, bool) {
	l := bit(word, 20)
	rn := Slice(word, 16, 4)
	rd := Slice(word, 12, 4)
	cpNum := Slice(word, 8, 4)
	opc := Slice(word, 4, 4)
	crm := Slice(word, 0, 4)

	mnemonic := "mcrr"
	if l {
		mnemonic = "mrrc"
	}
	tag := suffix
	if nv {
		tag = "2"
	}
	return fmt.Sprintf("%s%s p%d, #0x%X, %s, %s, %s", mnemonic, tag, cpNum, opc, regName(rd), regName(rn), coRegName(crm)), true
}

// decodeCoprocessorOrSWI handles op1==7: SWI (bit24 set) or coprocessor
// data-processing/register transfer (MCR/MRC/CDP).
func decodeCoprocessorOrSWI(word uint32, suffix string) (string, bool) {
	if bit(word, 24) {
		imm := Slice(word, 0, 24)
		return fmt.Sprintf("swi%s #0x%X", suffix, imm), true
	}
	return decodeCDPOrMCR(word, suffix, false)
}

// decodeCoprocessorNV handles the ARMv5+ NV re-encoding of op1==7 as
// MCR2/MRC2/CDP2 (SWI has no NV re-encoding).
func decodeCoprocessorNV(word uint32) (string, bool) {
	if bit(word, 24) {
		return "", false
	}
	return decodeCDPOrMCR(word, "", true)
}

func decodeCDPOrMCR(word uint32, suffix string, nv bool) (string, bool) {
	cpNum := Slice(word, 8, 4)
	crn := Slice(word, 16, 4)
	crd := Slice(word, 12, 4)
	crm := Slice(word, 0, 4)
	opc2 := Slice(word, 5, 3)

	tag := suffix
	if nv {
		tag = "2"
	}

	if !bit(word, 4) {
		// CDP: no condition suffix for cdp2
		opc1 := Slice(word, 20, 4)
		return fmt.Sprintf("cdp%s p%d, #0x%X, %s, %s, %s, #0x%X", tag, cpNum, opc1, coRegName(crd), coRegName(crn), coRegName(crm), opc2), true
	}

	// MCR/MRC
	l := bit(word, 20)
	opc1 := Slice(word, 21, 3)
	mnemonic := "mcr"
	if l {
		mnemonic = "mrc"
	}
	return fmt.Sprintf("%s%s p%d, #0x%X, %s, %s, %s, #0x%X", mnemonic, tag, cpNum, opc1, regName(crd), coRegName(crn), coRegName(crm), opc2), true
}
