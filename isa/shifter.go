package isa

import "fmt"

// ShiftImmediate renders the ARM-mode immediate-shift form of a shifter
// operand. shiftType is 0=LSL,1=LSR,2=ASR,3=ROR. Returns the empty
// string when the shift is a no-op (LSL #0) and should be omitted
// entirely from the rendered instruction.
func ShiftImmediate(shiftType uint32, imm uint32) string {
	switch shiftType {
	case 0: // LSL
		if imm == 0 {
			return ""
		}
		return fmt.Sprintf("lsl #0x%X", imm)
	case 1: // LSR
		if imm == 0 {
			imm = 32
		}
		return fmt.Sprintf("lsr #0x%X", imm)
	case 2: // ASR
		if imm == 0 {
			imm = 32
		}
		return fmt.Sprintf("asr #0x%X", imm)
	case 3: // ROR
		if imm == 0 {
			return "rrx"
		}
		return fmt.Sprintf("ror #0x%X", imm)
	default:
		return ""
	}
}

// ShiftRegister renders the ARM-mode register-shift form: "<shiftname> r<s>".
// There is no special-casing for a zero shift amount here - that is a
// runtime behavior, not a rendering difference.
func ShiftRegister(shiftType uint32, rs uint32) string {
	return fmt.Sprintf("%s %s", shiftNames[shiftType&3], regName(rs))
}

// DataProcessingImmediate renders the ARM-mode 8-bit-immediate,
// 4-bit-rotation shifter operand as a hex literal: the immediate is
// rotated right by twice the rotation field.
func DataProcessingImmediate(imm8, rotate uint32) (value uint32, text string) {
	value = RotateRight32(imm8, uint(rotate)*2)
	return value, fmt.Sprintf("#0x%X", value)
}

// psrFieldSuffix renders the status-register field specifier: a 4-bit mask
// selecting among fsxc flags, bit3=f, bit2=s, bit1=x, bit0=c.
func psrFieldSuffix(mask uint32) string {
	s := ""
	if mask&0x8 != 0 {
		s += "f"
	}
	if mask&0x4 != 0 {
		s += "s"
	}
	if mask&0x2 != 0 {
		s += "x"
	}
	if mask&0x1 != 0 {
		s += "c"
	}
	return s
}

// signedHex renders a signed offset as used in memory addressing forms:
// "+0x<hex>" or "-0x<hex>".
func signedHex(value int32) string {
	if value < 0 {
		return fmt.Sprintf("-0x%X", -value)
	}
	return fmt.Sprintf("+0x%X", value)
}
