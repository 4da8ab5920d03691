package isa

import "fmt"

// decodeDPRegisterAndMisc handles op1==0: data-processing register forms,
// multiplies, extra load/store, and the miscellaneous (MRS/MSR/BX/BLX-reg/
// CLZ/BKPT/DSP) instruction classes.
func decodeDPRegisterAndMisc(word uint32, suffix string) (string, bool) {
	bit7 := bit(word, 7)
	bit4 := bit(word, 4)

	switch {
	case bit4 && bit7:
		return decodeMultiplyOrExtraLS(word, suffix)
	case bit4 && !bit7:
		if Slice(word, 23, 2) == 0b10 && !bit(word, 20) {
			return decodeMiscRegisterForm(word, suffix)
		}
		return decodeDPRegisterShift(word, suffix)
	default: // bit4==0
		if Slice(word, 23, 2) == 0b10 && !bit(word, 20) {
			return decodeMiscImmForm(word, suffix)
		}
		return decodeDPImmediateShift(word, suffix)
	}
}

// decodeDPImmediateShift handles data-processing, immediate-shift
// register form (the plain "ADD r0, r1, r2, lsl #3" shape).
func decodeDPImmediateShift(word uint32, suffix string) (string, bool) {
	opcode := Slice(word, 21, 4)
	setFlags := bit(word, 20)
	rd := Slice(word, 12, 4)
	rn := Slice(word, 16, 4)
	rm := Slice(word, 0, 4)
	shiftType := Slice(word, 5, 2)
	shiftImm := Slice(word, 7, 5)

	shiftText := ShiftImmediate(shiftType, shiftImm)
	operand2 := regName(rm)
	if shiftText != "" {
		operand2 = fmt.Sprintf("%s, %s", operand2, shiftText)
	}

	return renderDataProcessing(opcode, setFlags, suffix, rd, rn, operand2), true
}

// decodeDPRegisterShift handles data-processing, register-shift register
// form ("ADD r0, r1, r2, lsl r3").
func decodeDPRegisterShift(word uint32, suffix string) (string, bool) {
	opcode := Slice(word, 21, 4)
	setFlags := bit(word, 20)
	rd := Slice(word, 12, 4)
	rn := Slice(word, 16, 4)
	rm := Slice(word, 0, 4)
	rs := Slice(word, 8, 4)
	shiftType := Slice(word, 5, 2)

	operand2 := fmt.Sprintf("%s, %s", regName(rm), ShiftRegister(shiftType, rs))

	return renderDataProcessing(opcode, setFlags, suffix, rd, rn, operand2), true
}

// renderDataProcessing assembles the common data-processing instruction
// text given an already-rendered operand2 string. The comparison family
// (TST/TEQ/CMP/CMN) never renders a destination register and always
// updates flags without an explicit S suffix; MOV/MVN omit the Rn operand.
func renderDataProcessing(opcode uint32, setFlags bool, suffix string, rd, rn uint32, operand2 string) string {
	mnemonic := dpMnemonics[opcode]
	sFlag := ""
	if setFlags && !dpIsCompare(opcode) {
		sFlag = "s"
	}

	switch {
	case dpIsCompare(opcode):
		return fmt.Sprintf("%s%s %s, %s", mnemonic, suffix, regName(rn), operand2)
	case dpIsMoveOnly(opcode):
		return fmt.Sprintf("%s%s%s %s, %s", mnemonic, sFlag, suffix, regName(rd), operand2)
	default:
		return fmt.Sprintf("%s%s%s %s, %s, %s", mnemonic, sFlag, suffix, regName(rd), regName(rn), operand2)
	}
}

// decodeMiscRegisterForm handles MRS and the register form of MSR, keyed
// on bit 21 (opcode within the misc-register space) with bit 22 selecting
// CPSR vs SPSR.
func decodeMiscRegisterForm(word uint32, suffix string) (string, bool) {
	spsr := bit(word, 22)
	psrName := "CPSR"
	if spsr {
		psrName = "SPSR"
	}

	if !bit(word, 21) {
		// MRS Rd, <psr>
		rd := Slice(word, 12, 4)
		return fmt.Sprintf("mrs%s %s, %s", suffix, regName(rd), psrName), true
	}

	// MSR <psr>_<fields>, Rm
	fieldMask := Slice(word, 16, 4)
	rm := Slice(word, 0, 4)
	return fmt.Sprintf("msr%s %s_%s, %s", suffix, psrName, psrFieldSuffix(fieldMask), regName(rm)), true
}

// decodeMiscImmForm handles BX, BLX(register), CLZ, the Q* saturating
// arithmetic instructions, BKPT, and the DSP signed-multiply family - the
// bit4==0 half of the misc encoding space.
func decodeMiscImmForm(word uint32, suffix string) (string, bool) {
	op := Slice(word, 4, 4) // bits 7-4, secondary opcode
	bits21_20 := Slice(word, 20, 2)

	switch op {
	case 0x1: // BX, or BLX(register)
		linked := bits21_20 == 0b11
		rm := Slice(word, 0, 4)
		if Slice(word, 8, 12) != 0xFFF {
			return "", false // should-be-one bits violated
		}
		if linked {
			return fmt.Sprintf("blx%s %s", suffix, regName(rm)), true
		}
		return fmt.Sprintf("bx%s %s", suffix, regName(rm)), true

	case 0x3: // CLZ
		if bits21_20 != 0b01 {
			return "", false
		}
		rd := Slice(word, 12, 4)
		rm := Slice(word, 0, 4)
		return fmt.Sprintf("clz%s %s, %s", suffix, regName(rd), regName(rm)), true

	case 0x5: // QADD/QSUB/QDADD/QDSUB
		rd := Slice(word, 12, 4)
		rn := Slice(word, 16, 4)
		rm := Slice(word, 0, 4)
		names := [4]string{"qadd", "qsub", "qdadd", "qdsub"}
		return fmt.Sprintf("%s%s %s, %s, %s", names[bits21_20], suffix, regName(rd), regName(rm), regName(rn)), true

	case 0x7: // BKPT
		if bits21_20 != 0b01 {
			return "", false
		}
		imm := (Slice(word, 8, 12) << 4) | Slice(word, 0, 4)
		return fmt.Sprintf("bkpt #0x%X", imm), true

	case 0x8, 0xA, 0xC, 0xE: // DSP signed-multiply family (bit4==0, bit7==1)
		return decodeDSPMultiply(word, suffix)
	}
	return "", false
}

// decodeDSPMultiply handles the ARMv5TE enhanced-DSP signed multiplies:
// SMLA<x><y>, SMLAW<y>/SMULW<y>, SMLAL<x><y>, SMUL<x><y>. The sub-op is
// selected by bits[22:21], the x/y half-selectors by bits 5 and 6.
func decodeDSPMultiply(word uint32, suffix string) (string, bool) {
	subOp := Slice(word, 21, 2)
	x := xyName(bit(word, 5))
	y := xyName(bit(word, 6))

	rd := Slice(word, 16, 4)
	rn := Slice(word, 12, 4)
	rs := Slice(word, 8, 4)
	rm := Slice(word, 0, 4)

	switch subOp {
	case 0b00: // SMLA<x><y>
		return fmt.Sprintf("smla%s%s%s %s, %s, %s, %s", x, y, suffix, regName(rd), regName(rm), regName(rs), regName(rn)), true
	case 0b01: // SMLAW<y> / SMULW<y>, selected by bit 5
		if bit(word, 5) {
			return fmt.Sprintf("smulw%s%s %s, %s, %s", y, suffix, regName(rd), regName(rm), regName(rs)), true
		}
		return fmt.Sprintf("smlaw%s%s %s, %s, %s, %s", y, suffix, regName(rd), regName(rm), regName(rs), regName(rn)), true
	case 0b10: // SMLAL<x><y>
		rdLo, rdHi := rn, rd
		return fmt.Sprintf("smlal%s%s%s %s, %s, %s, %s", x, y, suffix, regName(rdLo), regName(rdHi), regName(rm), regName(rs)), true
	default: // 0b11: SMUL<x><y>
		return fmt.Sprintf("smul%s%s%s %s, %s, %s", x, y, suffix, regName(rd), regName(rm), regName(rs)), true
	}
}

func xyName(top bool) string {
	if top {
		return "t"
	}
	return "b"
}
